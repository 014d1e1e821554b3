package diagnostics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Steinbeck-Lab/MORTAR/diagnostics"
)

func TestZapLoggerInfoAndErrorForwardToUnderlyingCore(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	l := diagnostics.NewZapLogger(base.Sugar())
	l.Info("extraction finished", "atoms", 12)
	l.Error("saturation failed", "handle", 7)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "extraction finished", entries[0].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "saturation failed", entries[1].Message)
}
