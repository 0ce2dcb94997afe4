package logger

import (
	"io"
	"log/slog"
	"os"
)

// New returns a text logger writing to stderr at info level.
func New() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// NewJSON returns a JSON logger writing to stderr at the given level.
func NewJSON(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// Discard returns a no-op logger for components that default to silence.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
