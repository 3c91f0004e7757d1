package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

// TestJSONLogger_Levels tests level filtering
func TestJSONLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSONLogger(&buf, WarnLevel)

	log.Debug("not this")
	log.Info("not this either")
	log.Warn("warned")
	log.Error("errored")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("Expected valid JSON, got %v", err)
	}
	if entry["level"] != "WARN" || entry["msg"] != "warned" {
		t.Errorf("Unexpected entry: %v", entry)
	}
}

// TestJSONLogger_Fields tests field merging, call fields over preset fields
func TestJSONLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSONLogger(&buf, InfoLevel).With(URL("https://acme.test/"), String("stage", "preset"))

	log.Info("analysis complete", String("stage", "final"), FindingCount(4))

	var entry struct {
		Fields map[string]any `json:"fields"`
	}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Expected valid JSON, got %v", err)
	}
	if entry.Fields["url"] != "https://acme.test/" {
		t.Errorf("Expected preset url field, got %v", entry.Fields)
	}
	if entry.Fields["stage"] != "final" {
		t.Errorf("Expected call-site field to win, got %v", entry.Fields["stage"])
	}
	if entry.Fields["findings"] != float64(4) {
		t.Errorf("Expected findings=4, got %v", entry.Fields["findings"])
	}
}

// TestErrField tests the error field constructor
func TestErrField(t *testing.T) {
	f := Err(errors.New("boom"))
	if f.Key != "error" || f.Value != "boom" {
		t.Errorf("Unexpected field: %+v", f)
	}
	if f := Err(nil); f.Value != nil {
		t.Errorf("Expected nil value for nil error, got %v", f.Value)
	}
}

// TestParseLevel tests level parsing and its default
func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", DebugLevel},
		{"INFO", InfoLevel},
		{"warning", WarnLevel},
		{"error", ErrorLevel},
		{"", InfoLevel},
		{"bogus", InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// TestNopLogger tests that the nop logger stays silent and chainable
func TestNopLogger(t *testing.T) {
	log := NewNopLogger()
	child := log.With(String("k", "v"))
	child.Info("nothing happens")
	if _, ok := child.(NopLogger); !ok {
		t.Error("Expected With to return a NopLogger")
	}
}
