package handle

import (
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger atomic.Pointer[zap.Logger]
	nop    = zap.NewNop()
)

// Logger returns the package logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return nop
}

// SetLogger replaces the package logger. Ownership events are logged at
// debug level. A nil logger restores the no-op default.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}

func debug(msg, typeName string, p uintptr, fields ...zap.Field) {
	if ce := Logger().Check(zapcore.DebugLevel, msg); ce != nil {
		ce.Write(append([]zap.Field{zap.String("type", typeName), zap.Uintptr("ptr", p)}, fields...)...)
	}
}
