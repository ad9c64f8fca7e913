package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestJSONLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, WarnLevel)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 log lines, got %d: %q", len(lines), buf.String())
	}

	var entry LogEntry
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("Failed to parse log line: %v", err)
	}
	if entry.Level != "WARN" {
		t.Errorf("Expected WARN, got %s", entry.Level)
	}
	if entry.Message != "warn message" {
		t.Errorf("Expected 'warn message', got %q", entry.Message)
	}
}

func TestJSONLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel)

	logger.Info("generated", Kind("person"), Int("count", 50), Seed(42))

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse log line: %v", err)
	}

	if entry.Fields["kind"] != "person" {
		t.Errorf("Expected kind=person, got %v", entry.Fields["kind"])
	}
	if entry.Fields["count"] != float64(50) {
		t.Errorf("Expected count=50, got %v", entry.Fields["count"])
	}
	if entry.Fields["seed"] != float64(42) {
		t.Errorf("Expected seed=42, got %v", entry.Fields["seed"])
	}
}

func TestJSONLogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel)

	child := logger.With(String("component", "weaver"))
	child.Info("weaving complete", Int("edges", 12))

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse log line: %v", err)
	}
	if entry.Fields["component"] != "weaver" {
		t.Errorf("Expected preset component field, got %v", entry.Fields)
	}
	if entry.Fields["edges"] != float64(12) {
		t.Errorf("Expected edges=12, got %v", entry.Fields)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   DebugLevel,
		"INFO":    InfoLevel,
		"warning": WarnLevel,
		"ERROR":   ErrorLevel,
		"bogus":   InfoLevel,
	}
	for input, want := range cases {
		if got := ParseLevel(input); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestNopLogger(t *testing.T) {
	logger := NewNopLogger()
	// Must not panic and With must return a usable logger.
	logger.With(String("a", "b")).Info("ignored")
}
