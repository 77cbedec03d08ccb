package config

import (
	"io"
	"log/slog"
)

// NewLogger builds the process logger and installs it as slog's default.
func NewLogger(w io.Writer, level slog.Level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if format == "text" {
		h = slog.NewTextHandler(w, opts)
	} else {
		h = slog.NewJSONHandler(w, opts)
	}
	logger := slog.New(h).With("app", "storefront")
	slog.SetDefault(logger)
	return logger
}
