package dispergo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with solver-specific context.
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

// WithPoints adds a points (input size) field to the logger.
func (l *Logger) WithPoints(points int) *Logger {
	return &Logger{
		Logger: l.Logger.With("points", points),
	}
}

// WithPlacements adds a placements (selection size) field to the logger.
func (l *Logger) WithPlacements(placements int) *Logger {
	return &Logger{
		Logger: l.Logger.With("placements", placements),
	}
}

// WithThreshold adds a threshold field to the logger.
func (l *Logger) WithThreshold(threshold float32) *Logger {
	return &Logger{
		Logger: l.Logger.With("threshold", threshold),
	}
}

// LogSolve logs a solve operation.
func (l *Logger) LogSolve(ctx context.Context, points, placements int, minDistance float32, err error) {
	if err != nil {
		l.ErrorContext(ctx, "solve failed",
			"points", points,
			"placements", placements,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "solve completed",
			"points", points,
			"placements", placements,
			"min_distance", minDistance,
		)
	}
}

// LogProbe logs one feasibility probe of the calibration loop.
func (l *Logger) LogProbe(ctx context.Context, threshold float32, feasible bool, visited uint64) {
	l.DebugContext(ctx, "probe completed",
		"threshold", threshold,
		"feasible", feasible,
		"visited", visited,
	)
}

// LogBatchSolve logs a batch solve operation.
func (l *Logger) LogBatchSolve(ctx context.Context, count, failed int) {
	if failed > 0 {
		l.WarnContext(ctx, "batch solve completed with failures",
			"total", count,
			"failed", failed,
			"success", count-failed,
		)
	} else {
		l.InfoContext(ctx, "batch solve completed",
			"count", count,
		)
	}
}

// LogBruteSolve logs an exhaustive solve operation.
func (l *Logger) LogBruteSolve(ctx context.Context, points, placements int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "brute solve failed",
			"points", points,
			"placements", placements,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "brute solve completed",
			"points", points,
			"placements", placements,
		)
	}
}
