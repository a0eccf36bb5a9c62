package callog

import (
	"runtime/debug"
	"sync"
	"time"

	"github.com/cionz0/callog/log"
)

// now is the clock used when stamping log lines. Overridden in tests.
var now = time.Now

// Logger resolves the call site of each logging call, formats a single
// record line, and delegates the write to an underlying engine.
//
// A Logger is safe for concurrent use: the prefix is read under a consistent
// snapshot and the engine is required to accept concurrent writes.
type Logger struct {
	engine log.Engine

	mu     sync.RWMutex
	prefix string
}

// New creates a Logger that delegates writes to engine. If the resolved
// call-site path starts with prefix, the prefix is stripped before display;
// an empty prefix disables stripping. A nil engine is replaced with a no-op
// engine.
func New(engine log.Engine, prefix string) *Logger {
	if engine == nil {
		engine = log.NewNop()
	}

	return &Logger{engine: engine, prefix: prefix}
}

// Engine returns the underlying engine instance.
//
//nolint:ireturn
func (l *Logger) Engine() log.Engine {
	return l.engine
}

// Prefix returns a snapshot of the path prefix used by call-site resolution.
func (l *Logger) Prefix() string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.prefix
}

// SetPrefix replaces the prefix used by call-site resolution for all future
// calls. It takes effect immediately; an empty string disables stripping.
func (l *Logger) SetPrefix(newPrefix string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.prefix = newPrefix
}

// Info formats and emits message at info level. It never includes a stack
// trace. Extra positional arguments are forwarded to the engine untouched.
func (l *Logger) Info(message any, args ...any) error {
	return l.emit(log.LevelInfo, message, false, args)
}

// Warn formats and emits message at warn level. It never includes a stack
// trace. Extra positional arguments are forwarded to the engine untouched.
func (l *Logger) Warn(message any, args ...any) error {
	return l.emit(log.LevelWarn, message, false, args)
}

// Error formats and emits message at error level. If includeStack is true, a
// full stack trace captured at the call site (not at the original failure)
// is appended on a new line after the formatted message.
func (l *Logger) Error(message any, includeStack bool, args ...any) error {
	return l.emit(log.LevelError, message, includeStack, args)
}

// emit is the shared routine behind Info, Warn, and Error. The call depth
// between the public methods and resolveCallSite is fixed by
// callerSkipFrames; do not add intermediate helpers without adjusting it.
func (l *Logger) emit(level log.Level, message any, includeStack bool, args []any) error {
	site, err := resolveCallSite(callerSkipFrames, l.Prefix())
	if err != nil {
		return err
	}

	text, err := renderMessage(message)
	if err != nil {
		return err
	}

	line := formatLine(now(), level, site, text)
	if includeStack {
		line = line + "\n" + string(debug.Stack())
	}

	l.engine.Log(level, line, args...)

	return nil
}
