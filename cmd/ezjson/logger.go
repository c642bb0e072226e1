package main

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with CLI-specific context.
type Logger struct {
	*slog.Logger
}

// NewTextLogger creates a Logger that outputs human-readable text logs to
// stderr.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithCommand tags records with the running subcommand.
func (l *Logger) WithCommand(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("cmd", name),
	}
}

// WithFile tags records with the document being processed.
func (l *Logger) WithFile(path string) *Logger {
	return &Logger{
		Logger: l.Logger.With("file", path),
	}
}
