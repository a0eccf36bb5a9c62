package charm

import (
	"io"

	clog "github.com/charmbracelet/log"

	logpkg "github.com/cionz0/callog/log"
)

// Engine is a charmbracelet/log-backed implementation of the log.Engine
// interface, intended for human-friendly CLI output.
type Engine struct {
	logger *clog.Logger
}

// Compile-time assertion: *Engine implements log.Engine.
var _ logpkg.Engine = (*Engine)(nil)

// New creates a charm-backed engine writing to w. Timestamps are not
// reported: the facade already embeds one in the line.
func New(w io.Writer, level logpkg.Level) *Engine {
	logger := clog.NewWithOptions(w, clog.Options{
		ReportTimestamp: false,
		Level:           levelToCharm(level),
	})

	return &Engine{logger: logger}
}

// Log implements log.Engine. Extra positional arguments are attached
// untouched under the "args" key.
func (e *Engine) Log(level logpkg.Level, line string, args ...any) {
	if len(args) > 0 {
		e.logger.Log(levelToCharm(level), line, "args", args)
		return
	}

	e.logger.Log(levelToCharm(level), line)
}

// Enabled reports whether the engine would emit a log at the given level.
func (e *Engine) Enabled(level logpkg.Level) bool {
	return levelToCharm(level) >= e.logger.GetLevel()
}

// Sync implements log.Engine. charm writes are unbuffered.
func (e *Engine) Sync() error { return nil }

// levelToCharm converts a log.Level to a charm log.Level.
func levelToCharm(level logpkg.Level) clog.Level {
	switch level {
	case logpkg.LevelDebug:
		return clog.DebugLevel
	case logpkg.LevelInfo:
		return clog.InfoLevel
	case logpkg.LevelWarn:
		return clog.WarnLevel
	case logpkg.LevelError:
		return clog.ErrorLevel
	default:
		return clog.InfoLevel
	}
}
