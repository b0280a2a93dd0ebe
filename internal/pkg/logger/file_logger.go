package logger

import (
	"log/slog"

	"github.com/natefinch/lumberjack"
)

// NewFileLogger returns a Logger writing JSON lines to filePath.
// The file is rotated after maxSize megabytes, keeping maxBackups compressed copies for maxAge days.
func NewFileLogger(level string, filePath string, maxSize int, maxBackups int, maxAge int) Logger {
	writer := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   true,
	}
	return newSlogLogger(slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: parseLevel(level)}))
}
