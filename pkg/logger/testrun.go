package logger

import (
	"io"
	"log/slog"
)

// NewTestHandler discards everything; tests only need the logger plumbing,
// not the output.
func NewTestHandler(level slog.Level) slog.Handler {
	return slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: level})
}
