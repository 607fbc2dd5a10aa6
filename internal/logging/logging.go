// Package logging provides the structured logger used across blockwright.
//
// Loggers write slog text records to stderr by default. Arguments after the
// message are key/value pairs; an "error" key is written as "err".
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Level is the minimum severity a logger writes.
type Level int

const (
	// LevelDebug is for detailed debugging information.
	LevelDebug Level = iota
	// LevelInfo is for general informational messages.
	LevelInfo
	// LevelWarn is for recoverable problems.
	LevelWarn
	// LevelError is for failures.
	LevelError
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Slog returns the matching slog level.
func (l Level) Slog() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel parses a level name. Unknown names yield LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger is a leveled structured logger.
type Logger struct {
	l *slog.Logger
}

// New creates a logger writing to stderr.
func New(level Level) *Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter creates a logger writing to w.
func NewWithWriter(w io.Writer, level Level) *Logger {
	return &Logger{l: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level.Slog(),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))}
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	return &Logger{l: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// With returns a logger that adds the given key/value pairs to every record.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{l: l.slog().With(args...)}
}

// WithComponent returns a logger tagged with a component name.
func (l *Logger) WithComponent(name string) *Logger {
	return l.With("component", name)
}

// Enabled reports whether records at level are written.
func (l *Logger) Enabled(level Level) bool {
	return l.slog().Enabled(context.Background(), level.Slog())
}

// Debug logs at LevelDebug.
func (l *Logger) Debug(msg string, args ...any) { l.slog().Debug(msg, args...) }

// Info logs at LevelInfo.
func (l *Logger) Info(msg string, args ...any) { l.slog().Info(msg, args...) }

// Warn logs at LevelWarn.
func (l *Logger) Warn(msg string, args ...any) { l.slog().Warn(msg, args...) }

// Error logs at LevelError.
func (l *Logger) Error(msg string, args ...any) { l.slog().Error(msg, args...) }

// Slog returns the underlying slog logger.
func (l *Logger) Slog() *slog.Logger { return l.slog() }

// slog tolerates a nil or zero Logger.
func (l *Logger) slog() *slog.Logger {
	if l == nil || l.l == nil {
		return nopLogger
	}
	return l.l
}

var nopLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
