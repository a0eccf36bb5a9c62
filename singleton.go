package callog

import (
	"path/filepath"
	"runtime"
	"sync"

	"github.com/cionz0/callog/log"
)

// Singleton state. Construction is guarded so only one instance is ever
// created per reset cycle, even under true parallelism.
var (
	singletonMu sync.Mutex
	singleton   *Logger
)

// GetLogger returns the process-wide logger, constructing it on the first
// call per process (or per reset cycle).
//
// With no argument the prefix is auto-derived from the directory of the
// immediate caller's source file. With one argument that string (including
// "") is used verbatim; an empty string disables stripping.
//
// On any subsequent call before a Reset the argument is ignored and the
// existing instance is returned unchanged. This is a deliberate,
// possibly-surprising contract: the first caller wins, and later prefixes
// are never merged in.
func GetLogger(prefix ...string) *Logger {
	singletonMu.Lock()
	defer singletonMu.Unlock()

	if singleton != nil {
		return singleton
	}

	resolved := ""

	switch {
	case len(prefix) > 0:
		resolved = prefix[0]
	default:
		if _, file, _, ok := runtime.Caller(1); ok {
			resolved = filepath.Dir(file)
		}
	}

	singleton = New(log.NewGoEngine(log.LevelDebug), resolved)

	return singleton
}

// Reset clears the receiver's prefix and, when the receiver is the current
// process-wide instance, drops the singleton reference so that the next
// GetLogger call performs full reconstruction.
//
// Intended for test isolation only; calling it concurrently with in-flight
// log calls on the same instance is not supported.
func (l *Logger) Reset() {
	l.SetPrefix("")

	singletonMu.Lock()
	defer singletonMu.Unlock()

	if singleton == l {
		singleton = nil
	}
}
