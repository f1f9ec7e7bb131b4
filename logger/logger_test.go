package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestDefaultLoggerIsUsable(t *testing.T) {
	assert.NotNil(t, Logger)
	Logger.Info("no-op logger accepts writes")
}

func TestInitLevels(t *testing.T) {
	t.Cleanup(func() { Logger = zap.NewNop() })

	Init("debug")
	assert.True(t, Logger.Core().Enabled(zap.DebugLevel))

	Init("warn")
	assert.False(t, Logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, Logger.Core().Enabled(zap.WarnLevel))

	Init("not-a-level")
	assert.True(t, Logger.Core().Enabled(zap.InfoLevel))
	assert.False(t, Logger.Core().Enabled(zap.DebugLevel))
}
