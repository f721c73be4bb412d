package gwtools

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with gwtools-specific context.
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

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
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

// WithTable adds a table-name field to the logger.
func (l *Logger) WithTable(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("table", name),
	}
}

// WithDetector adds a detector-name field to the logger.
func (l *Logger) WithDetector(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("detector", name),
	}
}

// LogSnapshot logs a snapshot save or load operation.
func (l *Logger) LogSnapshot(ctx context.Context, op, name string, rows int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot "+op+" failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "snapshot "+op+" completed",
			"name", name,
			"rows", rows,
		)
	}
}

// LogScan logs a pairwise coincidence scan.
func (l *Logger) LogScan(ctx context.Context, rowsA, rowsB, coincident int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "coincidence scan failed",
			"rows_a", rowsA,
			"rows_b", rowsB,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "coincidence scan completed",
			"rows_a", rowsA,
			"rows_b", rowsB,
			"coincident", coincident,
		)
	}
}
