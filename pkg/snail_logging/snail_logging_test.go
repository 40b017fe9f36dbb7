package snail_logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, expected := range cases {
		if actual := ParseLevel(in); actual != expected {
			t.Errorf("Expected %v, got %v for %q", expected, actual, in)
		}
	}
}

func TestNewHandler_json(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(NewHandler(buf, "json", "debug", false))
	logger.Debug("hello", slog.Int("handle", 3))

	var out map[string]any
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("Expected json output, got %q: %v", buf.String(), err)
	}
	if out["msg"] != "hello" {
		t.Errorf("Expected %v, got %v", "hello", out["msg"])
	}
}

func TestNewHandler_textFiltersLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(NewHandler(buf, "text", "warn", false))
	logger.Info("dropped")
	logger.Warn("kept")

	if strings.Contains(buf.String(), "dropped") {
		t.Errorf("Expected info message to be filtered, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "kept") {
		t.Errorf("Expected warn message, got %q", buf.String())
	}
}
