package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitialize(t *testing.T) {
	defer Set(zap.NewNop())

	require.NoError(t, Initialize("debug", FormatConsole))
	assert.True(t, Logger.Desugar().Core().Enabled(zapcore.DebugLevel))

	require.NoError(t, Initialize("warn", FormatJSON))
	assert.False(t, Logger.Desugar().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, Logger.Desugar().Core().Enabled(zapcore.WarnLevel))
}

func TestInitialize_Invalid(t *testing.T) {
	defer Set(zap.NewNop())

	err := Initialize("loud", FormatConsole)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"loud"`)

	err = Initialize("info", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"xml"`)
}

func TestSet(t *testing.T) {
	defer Set(zap.NewNop())

	core, logs := observer.New(zapcore.InfoLevel)
	Set(zap.New(core))

	Logger.Infow("generated", "file", "x_gen.go")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "generated", logs.All()[0].Message)
	assert.Equal(t, "x_gen.go", logs.All()[0].ContextMap()["file"])
}
