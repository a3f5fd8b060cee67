// Package logging builds the structured logger doxme writes diagnostics to.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/pdiddy/doxme/pkg/types"
)

// New returns a logger writing to w. JSON records are used when cfg.JSON is
// set, text records otherwise.
func New(w io.Writer, cfg types.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}
	var h slog.Handler
	if cfg.JSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h)
}

// ParseLevel maps a level name to a slog.Level. Unknown names mean info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
