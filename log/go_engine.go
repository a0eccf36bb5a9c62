package log

import (
	"io"
	stdlog "log"
	"os"
)

// GoEngine is the Go built-in (log) implementation of the Engine interface.
//
// Formatted lines at info and debug severity go to stdout, warn and error
// lines go to stderr. The underlying loggers carry no flags: the facade owns
// the timestamp, so the engine writes lines exactly as handed over. Extra
// positional arguments are appended space-separated, uninterpreted.
type GoEngine struct {
	Level  Level
	out    *stdlog.Logger
	errOut *stdlog.Logger
}

// Compile-time assertion: *GoEngine implements Engine.
var _ Engine = (*GoEngine)(nil)

// NewGoEngine creates a console engine writing to stdout/stderr with the
// given verbosity ceiling.
func NewGoEngine(level Level) *GoEngine {
	return NewGoEngineWithWriters(level, os.Stdout, os.Stderr)
}

// NewGoEngineWithWriters creates a console engine with explicit writers.
// Used by tests to capture output.
func NewGoEngineWithWriters(level Level, out, errOut io.Writer) *GoEngine {
	return &GoEngine{
		Level:  level,
		out:    stdlog.New(out, "", 0),
		errOut: stdlog.New(errOut, "", 0),
	}
}

// Enabled checks if the given level is enabled.
func (e *GoEngine) Enabled(level Level) bool {
	if e == nil {
		return false
	}

	return e.Level >= level
}

// Log writes a formatted line to the stream matching the level.
func (e *GoEngine) Log(level Level, line string, args ...any) {
	if !e.Enabled(level) {
		return
	}

	target := e.out
	if level == LevelError || level == LevelWarn {
		target = e.errOut
	}

	if target == nil {
		return
	}

	if len(args) == 0 {
		target.Println(line)
		return
	}

	target.Println(append([]any{line}, args...)...)
}

// Sync implements Engine. Console writes are unbuffered, so there is nothing
// to flush.
func (e *GoEngine) Sync() error { return nil }
