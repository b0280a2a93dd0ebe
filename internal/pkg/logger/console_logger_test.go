//go:build unit
// +build unit

package logger

import (
	"bytes"
	"testing"

	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleLogger_LogsToOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := newConsoleLoggerTo(&buf, config.LogLevelInfo)

	logger.Debug("debug message")
	logger.Info("purchase recorded for product ", "p-1")
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.Contains(t, output, "purchase recorded for product p-1")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestConsoleLogger_DebugLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newConsoleLoggerTo(&buf, config.LogLevelDebug)

	logger.Debug("debug message")

	assert.Contains(t, buf.String(), "debug message")
}

func TestConsoleLogger_Panic(t *testing.T) {
	var buf bytes.Buffer
	logger := newConsoleLoggerTo(&buf, config.LogLevelInfo)

	assert.PanicsWithValue(t, "boom", func() {
		logger.Panic("boom")
	})
	assert.Contains(t, buf.String(), "boom")
}

func TestNewConsoleLogger(t *testing.T) {
	logger := NewConsoleLogger(config.LogLevelInfo)
	require.NotNil(t, logger)

	require.NotPanics(t, func() {
		logger.Info("test")
		logger.Warn("test")
		logger.Error("test")
	})
}

func TestConsoleLogger_CriticalLogsErrorsOnly(t *testing.T) {
	var buf bytes.Buffer
	logger := newConsoleLoggerTo(&buf, config.LogLevelCritical)

	logger.Warn("warn message")
	logger.Error("error message")

	assert.NotContains(t, buf.String(), "warn message")
	assert.Contains(t, buf.String(), "error message")
}
