// Package logging provides the shared structured logger for md-cards.
//
// It wraps [log/slog] behind a single initialization point so every component
// writes through the same handler and level. The level comes from
// MDCARDS_LOG_LEVEL (debug, info, warn, error; default info).
//
// The editor runs in the terminal's alternate screen, so log lines written to
// stderr would tear the UI. Set MDCARDS_LOG_FILE to append logs to a file
// instead; if the file cannot be opened, logging falls back to stderr.
//
// Usage:
//
//	log := logging.New("export")
//	log.Info("wrote card", "path", p)
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	initLogger sync.Once
	baseLogger *slog.Logger
)

// New returns a logger tagged with component="<component>". An empty
// component returns the base logger.
func New(component string) *slog.Logger {
	initLogger.Do(func() {
		baseLogger = slog.New(slog.NewTextHandler(output(os.Getenv("MDCARDS_LOG_FILE")), &slog.HandlerOptions{
			Level: parseLevel(os.Getenv("MDCARDS_LOG_LEVEL")),
		}))
	})
	if component == "" {
		return baseLogger
	}
	return baseLogger.With("component", component)
}

func output(path string) io.Writer {
	path = strings.TrimSpace(path)
	if path == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return os.Stderr
	}
	return f
}

// parseLevel converts a level name to a [slog.Level]. Unknown values map to
// info.
func parseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
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
