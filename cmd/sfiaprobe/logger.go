package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// newLogger creates an isolated slog.Logger for diagnostics. Probe results are
// printed separately and never go through it.
func newLogger(levelStr, formatStr string, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	switch strings.ToLower(levelStr) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be debug, info, warn, or error", levelStr)
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(formatStr) {
	case "text":
		return slog.New(slog.NewTextHandler(w, handlerOpts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, handlerOpts)), nil
	default:
		return nil, fmt.Errorf("invalid log-format %q: must be text or json", formatStr)
	}
}
