package logger

import (
	"io"
	"log/slog"
)

// ConsoleLogger is an implementation of Logger that writes text records to a
// console stream. The CLI passes stderr so command output on stdout stays clean.
type ConsoleLogger struct {
	slogLogger
}

// NewConsoleLogger creates a new console logger with the specified log level.
func NewConsoleLogger(level string, w io.Writer) Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}
	handler := slog.NewTextHandler(w, opts)

	return &ConsoleLogger{slogLogger{logger: slog.New(handler)}}
}
