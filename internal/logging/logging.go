// Package logging builds the zap logger used by the shape command.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger writing to w at level and above.
// Timestamps are ISO 8601; stack traces are never attached.
func New(w io.Writer, level zapcore.Level) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(enc),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core).Named("shape")
}

// Nop returns a logger that drops everything.
func Nop() *zap.Logger {
	return zap.NewNop()
}
