// Package logger builds the slog.Logger shared by the server and the CLI.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	charm "github.com/charmbracelet/log"
)

// New returns a logger writing to stderr. Level is one of debug, info, warn
// (or warning) and error, defaulting to info. Format is "json", "console"
// (colored, for terminals) or "text", defaulting to text.
func New(level, format string) *slog.Logger {
	return NewWithWriter(os.Stderr, level, format)
}

// NewWithWriter returns a logger writing to w.
func NewWithWriter(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	case "console":
		handler = charm.NewWithOptions(w, charm.Options{
			Level:           consoleLevel(opts.Level.Level()),
			ReportTimestamp: true,
		})
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// WithComponent tags every record from l with component=name.
func WithComponent(l *slog.Logger, name string) *slog.Logger {
	if l == nil {
		l = slog.Default()
	}
	return l.With("component", name)
}

// ParseLevel converts a level string to slog.Level, ignoring case.
// Unrecognized values return LevelInfo.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

func consoleLevel(l slog.Level) charm.Level {
	switch l {
	case slog.LevelDebug:
		return charm.DebugLevel
	case slog.LevelWarn:
		return charm.WarnLevel
	case slog.LevelError:
		return charm.ErrorLevel
	default:
		return charm.InfoLevel
	}
}
