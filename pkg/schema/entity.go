// Package schema holds the normalized entity model and the graph builder
// that flattens raw linked-data blocks into it. Entities are the common
// currency of the whole pipeline: every later stage (identity resolution,
// graph construction, rule evaluation) consumes them and none mutates them.
package schema

import "strings"

// Entity is one normalized structured-data record. Types is never a bare
// scalar: a single string type is normalized into a one-element slice at
// build time. Provenance is a path string describing where the entity was
// found in the raw input, e.g. "block[2]" or "block[0].graph[3]".
type Entity struct {
	ID         string
	Types      []string
	Attrs      map[string]any
	Provenance string
}

// metadataKeys are the JSON-LD keys that carry no entity content.
var metadataKeys = map[string]bool{
	"@id":      true,
	"@context": true,
	"@type":    true,
}

// Get returns the raw value of an attribute.
func (e Entity) Get(field string) (any, bool) {
	v, ok := e.Attrs[field]
	return v, ok
}

// Has reports whether the attribute is present and non-empty. An empty
// string, empty slice, or nil all count as missing: the rule engine treats
// them identically to an absent field.
func (e Entity) Has(field string) bool {
	v, ok := e.Attrs[field]
	if !ok {
		return false
	}
	return !IsEmpty(v)
}

// String returns the attribute as a string, or "" if absent or not a string.
func (e Entity) String(field string) string {
	if s, ok := e.Attrs[field].(string); ok {
		return s
	}
	return ""
}

// HasType reports whether the entity carries the exact type name.
func (e Entity) HasType(name string) bool {
	for _, t := range e.Types {
		if t == name {
			return true
		}
	}
	return false
}

// IsDefinition reports whether the entity carries real content. An
// identifier counts as a definition only if at least one non-metadata
// attribute is present; bare references (only @id, possibly @type) do not
// count toward duplicate-definition detection.
func (e Entity) IsDefinition() bool {
	for k := range e.Attrs {
		if metadataKeys[k] || strings.HasPrefix(k, "_") {
			continue
		}
		return true
	}
	return false
}

// IsEmpty reports whether a raw attribute value should be treated as
// missing.
func IsEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case []any:
		return len(x) == 0
	case map[string]any:
		return len(x) == 0
	default:
		return false
	}
}

// AsList normalizes a value into a slice: nil stays empty, a slice is
// returned as-is, anything else becomes a one-element slice.
func AsList(v any) []any {
	switch x := v.(type) {
	case nil:
		return nil
	case []any:
		return x
	default:
		return []any{x}
	}
}

// TypeList normalizes a raw @type value into an ordered string slice.
func TypeList(v any) []string {
	switch x := v.(type) {
	case string:
		if x == "" {
			return nil
		}
		return []string{x}
	case []any:
		types := make([]string, 0, len(x))
		for _, item := range x {
			if s, ok := item.(string); ok && s != "" {
				types = append(types, s)
			}
		}
		return types
	default:
		return nil
	}
}

// TypesFound collects every type name across the entities, in first-seen
// document order. Ordering matters: the report echoes this list verbatim
// and reports must be byte-identical across runs.
func TypesFound(entities []Entity) []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range entities {
		for _, t := range e.Types {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	return out
}

// GroupByType indexes entities under each of their type names. An entity
// with two types appears in two buckets.
func GroupByType(entities []Entity) map[string][]Entity {
	grouped := make(map[string][]Entity)
	for _, e := range entities {
		for _, t := range e.Types {
			grouped[t] = append(grouped[t], e)
		}
	}
	return grouped
}
