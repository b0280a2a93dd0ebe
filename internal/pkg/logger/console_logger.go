package logger

import (
	"io"
	"log/slog"
	"os"
)

// NewConsoleLogger returns a Logger writing text lines to stdout.
func NewConsoleLogger(level string) Logger {
	return newConsoleLoggerTo(os.Stdout, level)
}

func newConsoleLoggerTo(w io.Writer, level string) Logger {
	return newSlogLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(level)}))
}
