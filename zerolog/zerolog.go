package zerolog

import (
	"io"

	zl "github.com/rs/zerolog"

	logpkg "github.com/cionz0/callog/log"
)

// Engine is a zerolog-backed implementation of the log.Engine interface.
type Engine struct {
	logger zl.Logger
}

// Compile-time assertion: *Engine implements log.Engine.
var _ logpkg.Engine = (*Engine)(nil)

// New creates a zerolog-backed engine writing to w.
//
// The facade supplies the human-readable timestamp inside the line; zerolog
// adds its own structured timestamp field so downstream consumers keep a
// machine-parseable one.
func New(w io.Writer, level logpkg.Level) *Engine {
	logger := zl.New(w).Level(levelToZerolog(level)).With().Timestamp().Logger()

	return &Engine{logger: logger}
}

// Log implements log.Engine. Extra positional arguments are attached
// untouched under the "args" field.
func (e *Engine) Log(level logpkg.Level, line string, args ...any) {
	event := e.logger.WithLevel(levelToZerolog(level))
	if len(args) > 0 {
		event = event.Interface("args", args)
	}

	event.Msg(line)
}

// Enabled reports whether the engine would emit a log at the given level.
func (e *Engine) Enabled(level logpkg.Level) bool {
	return e.logger.WithLevel(levelToZerolog(level)).Enabled()
}

// Sync implements log.Engine. zerolog writes are unbuffered.
func (e *Engine) Sync() error { return nil }

// levelToZerolog converts a log.Level to a zerolog.Level.
func levelToZerolog(level logpkg.Level) zl.Level {
	switch level {
	case logpkg.LevelDebug:
		return zl.DebugLevel
	case logpkg.LevelInfo:
		return zl.InfoLevel
	case logpkg.LevelWarn:
		return zl.WarnLevel
	case logpkg.LevelError:
		return zl.ErrorLevel
	default:
		return zl.InfoLevel
	}
}
