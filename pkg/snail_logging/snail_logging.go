package snail_logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// ConfigureDefaultLogger replaces the slog default logger. format is "text"
// or "json", level is one of debug, info, warn, error. Unknown values fall
// back to text and info.
func ConfigureDefaultLogger(format string, level string, addSource bool) {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, format, level, addSource)))
}

func NewHandler(w io.Writer, format string, level string, addSource bool) slog.Handler {
	opts := &slog.HandlerOptions{
		AddSource: addSource,
		Level:     ParseLevel(level),
	}
	switch strings.ToLower(format) {
	case "json":
		return slog.NewJSONHandler(w, opts)
	default:
		return slog.NewTextHandler(w, opts)
	}
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
