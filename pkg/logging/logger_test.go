package logging

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInit_WritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(Config{Level: LevelDebug, Output: &buf}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { _ = Close() })

	WithComponent("parser").Debug("statement parsed", "kind", "SELECT")

	out := buf.String()
	if !strings.Contains(out, "component=parser") || !strings.Contains(out, "kind=SELECT") {
		t.Errorf("expected structured fields in output, got %q", out)
	}
}

func TestInit_RejectsSecondCall(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(Config{Output: &buf}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { _ = Close() })

	if err := Init(Config{Output: &buf}); err == nil {
		t.Error("expected second Init to fail")
	}
}

func TestInit_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(Config{Level: LevelWarn, Output: &buf}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { _ = Close() })

	Info("hidden")
	Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("expected INFO record to be filtered, got %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("expected WARN record, got %q", out)
	}
}

func TestInit_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "minisql.log")
	if err := Init(Config{Level: LevelInfo, OutputPath: path, Format: "json"}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	WithError(errors.New("boom")).Error("check failed")
	if err := Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), `"error":"boom"`) {
		t.Errorf("expected JSON error field, got %q", data)
	}
}

func TestWithQuery_Truncates(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(Config{Output: &buf}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { _ = Close() })

	WithQuery(strings.Repeat("x", 500)).Info("query submitted")

	if strings.Contains(buf.String(), strings.Repeat("x", 201)) {
		t.Error("expected query attribute to be truncated")
	}
	if !strings.Contains(buf.String(), "...") {
		t.Error("expected truncation marker")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
		wantErr  bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"Error", LevelError, false},
		{"verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.expected {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestGetLogger_LazyDefault(t *testing.T) {
	_ = Close()
	if GetLogger() == nil {
		t.Fatal("expected a default logger")
	}
	_ = Close()
}
