package zap

import (
	logpkg "github.com/cionz0/callog/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Engine is a zap-backed implementation of the log.Engine interface.
//
// The facade hands over a fully formatted line; zap contributes transport,
// JSON encoding, and runtime-adjustable level filtering on top of it.
type Engine struct {
	logger      *zap.Logger
	atomicLevel zap.AtomicLevel
}

// Compile-time assertion: *Engine implements log.Engine.
var _ logpkg.Engine = (*Engine)(nil)

func (e *Engine) must() *zap.Logger {
	if e == nil || e.logger == nil {
		return zap.NewNop()
	}

	return e.logger
}

// Log implements log.Engine. It dispatches to the appropriate zap level.
// Extra positional arguments are attached untouched under the "args" field.
func (e *Engine) Log(level logpkg.Level, line string, args ...any) {
	var fields []zap.Field
	if len(args) > 0 {
		fields = []zap.Field{zap.Any("args", args)}
	}

	switch level {
	case logpkg.LevelDebug:
		e.must().Debug(line, fields...)
	case logpkg.LevelInfo:
		e.must().Info(line, fields...)
	case logpkg.LevelWarn:
		e.must().Warn(line, fields...)
	case logpkg.LevelError:
		e.must().Error(line, fields...)
	default:
		e.must().Info(line, fields...)
	}
}

// Enabled reports whether the engine would emit a log at the given level.
func (e *Engine) Enabled(level logpkg.Level) bool {
	return e.must().Core().Enabled(levelToZap(level))
}

// Sync flushes buffered logs.
func (e *Engine) Sync() error {
	return e.must().Sync()
}

// Raw returns the underlying zap logger.
func (e *Engine) Raw() *zap.Logger {
	return e.must()
}

// Level returns the runtime-adjustable level handle for this engine.
func (e *Engine) Level() zap.AtomicLevel {
	return e.atomicLevel
}

// levelToZap converts a log.Level to a zapcore.Level.
func levelToZap(level logpkg.Level) zapcore.Level {
	switch level {
	case logpkg.LevelDebug:
		return zapcore.DebugLevel
	case logpkg.LevelInfo:
		return zapcore.InfoLevel
	case logpkg.LevelWarn:
		return zapcore.WarnLevel
	case logpkg.LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
