package logging

import "time"

// Generic field constructors

func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

// Err attaches an error message under the "error" key.
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Domain field constructors used across the audit pipeline

// URL tags the page URL under analysis.
func URL(url string) Field {
	return Field{Key: "url", Value: url}
}

// PageType tags the classified page type.
func PageType(pt string) Field {
	return Field{Key: "page_type", Value: pt}
}

// Provenance tags the raw-input path of a block or entity.
func Provenance(path string) Field {
	return Field{Key: "provenance", Value: path}
}

// EntityCount tags how many entities the builder produced.
func EntityCount(n int) Field {
	return Field{Key: "entities", Value: n}
}

// FindingCount tags how many findings an analysis produced.
func FindingCount(n int) Field {
	return Field{Key: "findings", Value: n}
}

// Health tags the report health label.
func Health(h string) Field {
	return Field{Key: "health", Value: h}
}

// RunID tags a single analysis invocation (CLI use).
func RunID(id string) Field {
	return Field{Key: "run_id", Value: id}
}
