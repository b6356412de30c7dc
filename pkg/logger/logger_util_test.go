package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestHelpersWithNilLogger(t *testing.T) {
	t.Parallel()

	require.True(t, CheckError(errors.New("boom"), nil, "failed"))
	require.False(t, CheckError(nil, nil, "failed"))
	MakeInfo(nil, "info")
	MakeWarn(nil, "warn")
}

func TestHelpersLevels(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	l := zap.New(core)

	require.False(t, CheckError(nil, l, "not logged"))
	require.True(t, CheckError(errors.New("boom"), l, "failed", zap.String("action", "Test")))
	MakeInfo(l, "info")
	MakeWarn(l, "warn")

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)
	require.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	require.Equal(t, "Test", entries[0].ContextMap()["action"])
	require.Equal(t, zapcore.InfoLevel, entries[1].Level)
	require.Equal(t, zapcore.WarnLevel, entries[2].Level)
}
