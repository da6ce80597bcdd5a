package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLoggerWritesToFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "site.log")

	logger, err := NewLogger("debug", logFile)
	require.NoError(t, err)

	logger.Info("site started")
	_ = logger.Sync()

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "INFO | ")
	assert.Contains(t, string(data), "site started")
}

func TestNewLoggerUnknownLevelDefaultsToInfo(t *testing.T) {
	logger, err := NewLogger("chatty", "")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
}
