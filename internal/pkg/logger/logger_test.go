package logger_test

import (
	"testing"

	"github.com/kleberrossi/Procman/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Run("empty_level_defaults_to_info", func(t *testing.T) {
		l, err := logger.New("")

		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
		assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("debug_level_enables_debug", func(t *testing.T) {
		l, err := logger.New("debug")

		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("unknown_level_fails", func(t *testing.T) {
		_, err := logger.New("loud")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "loud")
	})
}
