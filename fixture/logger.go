// SPDX-License-Identifier: MIT

package fixture

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with fixture-specific helpers so every pipeline
// step logs the same field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, uses a text handler to stderr at info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger that writes human-readable text to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewJSONLogger creates a Logger that writes JSON records to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, nil))
}

// LogGenerated logs a generation step.
func (l *Logger) LogGenerated(role Role, rows, cols int, seed uint32, err error) {
	if err != nil {
		l.Error("generate failed", "role", role.String(), "rows", rows, "cols", cols, "seed", seed, "error", err)
		return
	}
	l.Debug("generated", "role", role.String(), "rows", rows, "cols", cols, "seed", seed)
}

// LogMultiplied logs the reference product step.
func (l *Logger) LogMultiplied(mul Multiplier, rows, cols int, err error) {
	if err != nil {
		l.Error("multiply failed", "multiplier", mul.String(), "error", err)
		return
	}
	l.Debug("multiplied", "multiplier", mul.String(), "rows", rows, "cols", cols)
}

// LogWritten logs one serialized artefact.
func (l *Logger) LogWritten(a Artifact, err error) {
	if err != nil {
		l.Error("write failed", "role", a.Role.String(), "path", a.Path, "error", err)
		return
	}
	l.Info("fixture written", "role", a.Role.String(), "path", a.Path, "rows", a.Rows, "cols", a.Cols)
}
