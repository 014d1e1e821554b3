// File: zap.go
// Role: the default Logger implementation, backed by go.uber.org/zap.
// Grounded on the zap usage conventions found elsewhere in the example
// pack (a single process-wide SugaredLogger wrapped behind a small
// interface, never passed around as a concrete *zap.Logger).

package diagnostics

import "go.uber.org/zap"

// ZapLogger adapts a *zap.SugaredLogger to the Logger interface.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger wraps an existing *zap.SugaredLogger.
func NewZapLogger(sugar *zap.SugaredLogger) *ZapLogger {
	return &ZapLogger{sugar: sugar}
}

// NewProductionZapLogger builds a zap production logger (JSON encoding,
// info level and above) and wraps it.
func NewProductionZapLogger() (*ZapLogger, error) {
	l, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return NewZapLogger(l.Sugar()), nil
}

// Info implements Logger.
func (z *ZapLogger) Info(msg string, fields ...interface{}) {
	z.sugar.Infow(msg, fields...)
}

// Error implements Logger.
func (z *ZapLogger) Error(msg string, fields ...interface{}) {
	z.sugar.Errorw(msg, fields...)
}

// Sync flushes any buffered log entries; callers should defer it once at
// process shutdown.
func (z *ZapLogger) Sync() error {
	return z.sugar.Sync()
}
