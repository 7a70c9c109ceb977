package strhashmap

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with table specific helpers.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// LogResize logs a change of bucket count, or the failure of an operation that may change it.
func (l *Logger) LogResize(op string, fromSizeIndex, toSizeIndex int, count int64, err error) {
	if err != nil {
		l.Warn("table operation failed",
			"op", op,
			"from_size_index", fromSizeIndex,
			"to_size_index", toSizeIndex,
			"count", count,
			"error", err,
		)
		return
	}

	if fromSizeIndex != toSizeIndex {
		l.Debug("resize completed",
			"op", op,
			"from_size_index", fromSizeIndex,
			"to_size_index", toSizeIndex,
			"count", count,
		)
	}
}
