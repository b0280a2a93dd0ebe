//go:build unit
// +build unit

package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileLogger(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "server.log")

	logger := NewFileLogger(config.LogLevelInfo, logPath, 10, 3, 28)
	require.NotNil(t, logger)

	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)

	logOutput := string(content)
	assert.Contains(t, logOutput, `"msg":"info message"`)
	assert.Contains(t, logOutput, `"level":"WARN"`)
	assert.Contains(t, logOutput, `"level":"ERROR"`)
}

func TestNewFileLogger_RespectsLevel(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "server.log")

	logger := NewFileLogger(config.LogLevelError, logPath, 10, 3, 28)
	logger.Info("hidden message")
	logger.Error("visible message")

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)

	assert.NotContains(t, string(content), "hidden message")
	assert.Contains(t, string(content), "visible message")
}
