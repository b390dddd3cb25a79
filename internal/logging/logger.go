// SPDX-License-Identifier: MIT

// Package logging builds the structured logger shared by the CLI and the
// interactive session. Logs go to the writer given by the caller (stderr in
// main) so they never mix with matrix output.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/katalvlaran/matcalc/internal/config"
)

// Attribute keys shared across packages.
const (
	KeySession   = "session"
	KeyOperation = "op"
	KeyShape     = "shape"
	KeySource    = "source"
)

// New creates a text or JSON slog.Logger at the configured level.
// Unknown levels fall back to info, unknown formats to text.
func New(cfg config.LogConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var h slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		h = slog.NewTextHandler(w, opts)
	}

	return slog.New(h)
}

// Discard returns a logger that drops everything; used by tests and library callers
// that do not care about logs.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// ParseLevel converts a level name to slog.Level.
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

// WithSession tags every record of l with a fresh session id and returns both.
func WithSession(l *slog.Logger) (*slog.Logger, string) {
	id := uuid.NewString()

	return l.With(slog.String(KeySession, id)), id
}
