package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, zapcore.InfoLevel)

	l.Debug("hidden")
	l.Info("rows emitted", zap.Int("rows", 2))
	require.NoError(t, l.Sync())

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "INFO")
	require.Contains(t, out, "shape")
	require.Contains(t, out, "rows emitted")
	require.Contains(t, out, `{"rows": 2}`)
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Error("dropped")
	require.False(t, l.Core().Enabled(zapcore.ErrorLevel))
}
