// Package logging builds the process logger.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New creates a logger writing to w, or os.Stderr when w is nil.
// format is "json" or "text"; anything else falls back to JSON.
func New(format string, level slog.Level, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if format == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler).With("service", "accounts-be")
}
