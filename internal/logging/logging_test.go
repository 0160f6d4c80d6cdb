package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Name: "test", Level: LevelWarn, Output: &buf})

	logger.Debug("not shown")
	logger.Info("not shown either")
	logger.Warn("shown")
	logger.Error("also shown")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "shown") {
		t.Errorf("Unexpected first line: %s", lines[0])
	}
}

func TestTextFormatFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Name: "sync", Output: &buf})

	logger.Info("language changed", "from", "en", "to", "de")

	line := buf.String()
	if !strings.Contains(line, "[sync]") {
		t.Errorf("Missing logger name: %s", line)
	}
	if !strings.Contains(line, "from=en") || !strings.Contains(line, "to=de") {
		t.Errorf("Missing fields: %s", line)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Name: "stt", Format: FormatJSON, Output: &buf})

	logger.Info("negotiated", "locale", "zh-CN")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Invalid JSON output: %v", err)
	}
	if entry["message"] != "negotiated" {
		t.Errorf("Expected message=negotiated, got %v", entry["message"])
	}
	if entry["locale"] != "zh-CN" {
		t.Errorf("Expected locale=zh-CN, got %v", entry["locale"])
	}
	if entry["logger"] != "stt" {
		t.Errorf("Expected logger=stt, got %v", entry["logger"])
	}
}

func TestUnpairedValuesDropped(t *testing.T) {
	fields := toFields("key", 1, "dangling")
	if len(fields) != 1 {
		t.Fatalf("Expected 1 field, got %d", len(fields))
	}
	if fields["key"] != 1 {
		t.Errorf("Expected key=1, got %v", fields["key"])
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		"info":    LevelInfo,
		"warn":    LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"bogus":   LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
