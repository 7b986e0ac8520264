package observe

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
)

func parseLogLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log output as JSON: %v\nOutput: %s", err, buf.String())
	}
	return entry
}

func TestLogger_IncludesCollectionField(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf).WithCollection("session")

	logger.Info(context.Background(), "entry stored")

	entry := parseLogLine(t, &buf)
	if v, ok := entry["collection"].(string); !ok || v != "session" {
		t.Errorf("expected collection=session, got %v", entry["collection"])
	}
	if v, ok := entry["msg"].(string); !ok || v != "entry stored" {
		t.Errorf("expected msg='entry stored', got %v", entry["msg"])
	}
	if _, ok := entry["timestamp"]; !ok {
		t.Error("expected timestamp field")
	}
}

func TestLogger_RedactsValueFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf)

	logger.Info(context.Background(), "entry stored",
		Field{Key: "key", Value: "session:token"},
		Field{Key: "value", Value: "super-secret"},
	)

	entry := parseLogLine(t, &buf)
	if entry["value"] != "[REDACTED]" {
		t.Errorf("expected value to be redacted, got %v", entry["value"])
	}
	if entry["key"] != "session:token" {
		t.Errorf("key field should not be redacted, got %v", entry["key"])
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("warn", &buf)

	logger.Debug(context.Background(), "dropped")
	logger.Info(context.Background(), "dropped")
	if buf.Len() != 0 {
		t.Errorf("expected debug/info to be filtered at warn level, got: %s", buf.String())
	}

	logger.Warn(context.Background(), "kept")
	if buf.Len() == 0 {
		t.Error("expected warn to pass at warn level")
	}
}

func TestParseLogLevel_DefaultsToInfo(t *testing.T) {
	if got := ParseLogLevel("bogus"); got != LevelInfo {
		t.Errorf("ParseLogLevel(bogus) = %v, want LevelInfo", got)
	}
}
