package kdtree

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with kdtree-specific context.
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
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithDimension adds the number of axes to the logger.
func (l *Logger) WithDimension(dims int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dims", dims),
	}
}

// WithCount adds an item count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogBuild logs a build operation. Item count and dimension are expected to
// be attached with WithCount and WithDimension.
func (l *Logger) LogBuild(parallel bool, duration time.Duration, err error) {
	if err != nil {
		l.Error("build failed",
			"parallel", parallel,
			"error", err,
		)
		return
	}
	l.Debug("build completed",
		"parallel", parallel,
		"duration", duration,
	)
}

// LogDecode logs the decoding of a serialized tree.
func (l *Logger) LogDecode(codec string, err error) {
	if err != nil {
		l.Error("decode failed",
			"codec", codec,
			"error", err,
		)
		return
	}
	l.Debug("decode completed",
		"codec", codec,
	)
}
