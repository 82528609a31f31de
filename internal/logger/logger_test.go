package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInit(t *testing.T) {
	t.Cleanup(func() { Logger = nil })

	require.NoError(t, Init("debug", "json"))
	require.NotNil(t, Logger)
	assert.True(t, Logger.Core().Enabled(zapcore.DebugLevel))

	require.NoError(t, Init("warn", "console"))
	assert.False(t, Logger.Core().Enabled(zapcore.InfoLevel))
}

func TestInitBadLevel(t *testing.T) {
	assert.Error(t, Init("loud", "console"))
}
