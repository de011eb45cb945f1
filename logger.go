package isingo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with isingo-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithSites adds a site count field to the logger.
func (l *Logger) WithSites(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("sites", n),
	}
}

// LogEnumeration logs a completed configuration sweep.
func (l *Logger) LogEnumeration(ctx context.Context, op string, total uint64, workers int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "enumeration failed",
			"op", op,
			"configurations", total,
			"workers", workers,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "enumeration completed",
			"op", op,
			"configurations", total,
			"workers", workers,
		)
	}
}

// LogProgress logs a throttled progress line during a sweep.
func (l *Logger) LogProgress(ctx context.Context, op string, done, total uint64) {
	l.InfoContext(ctx, "enumeration progress",
		"op", op,
		"done", done,
		"total", total,
	)
}

// LogGroundState logs the result of a ground-state search.
func (l *Logger) LogGroundState(ctx context.Context, energy float64, index uint64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "ground-state search failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "ground-state search completed",
			"energy", energy,
			"index", index,
		)
	}
}
