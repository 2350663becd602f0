// Package logger provides the slog factories used across the module.
//
// Rendering is a library concern, so warnings (malformed repeat targets,
// skipped nodes) are reported through an injected *slog.Logger rather than
// a package-level one. New builds a JSON logger for hosts that want those
// warnings on stdout; NewNope is the library default and discards
// everything.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// New creates a JSON-formatted logger writing to stdout at Info level.
func New() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// NewNope creates a no-op logger that discards all output.
// Use this as a default when logging is not configured.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
