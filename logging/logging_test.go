package logging_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/tabopt/logging"
)

func TestNew(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		l, err := logging.New("warn", format)
		require.NoError(t, err, format)
		require.False(t, l.Core().Enabled(zapcore.InfoLevel))
		require.True(t, l.Core().Enabled(zapcore.ErrorLevel))
	}
}

func TestNew_Errors(t *testing.T) {
	_, err := logging.New("loud", "json")
	require.Error(t, err)
	_, err = logging.New("info", "xml")
	require.Error(t, err)
}

func TestNop(t *testing.T) {
	require.False(t, logging.Nop().Core().Enabled(zapcore.ErrorLevel))
}
