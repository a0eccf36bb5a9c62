package log

import (
	"fmt"
	"strings"
)

// Engine is the contract required from an underlying log engine.
//
// The facade formats a complete output line (timestamp, level tag, call site,
// message, optional stack block) and hands it to Log together with any extra
// positional arguments, which the engine receives uninterpreted. Level
// filtering, transport, and write safety are the engine's responsibility; the
// engine is treated as append-only and safe for concurrent writes.
type Engine interface {
	Log(level Level, line string, args ...any)
	Enabled(level Level) bool
	Sync() error
}

// Level represents the severity of a log entry.
//
// Lower numeric values indicate higher severity (LevelError=0 is most severe,
// LevelDebug=3 is least). A logger's Level acts as a verbosity ceiling: an
// engine at LevelInfo (2) emits Error (0), Warn (1), and Info (2) messages,
// but suppresses Debug (3).
type Level uint8

// Level constants define log severity. Setting an engine's Level to a given
// constant enables that level and all levels with lower numeric values
// (i.e., higher severity).
//
//	LevelError (0) -- only errors
//	LevelWarn  (1) -- errors + warnings
//	LevelInfo  (2) -- errors + warnings + info
//	LevelDebug (3) -- everything
const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

// String returns the string representation of a log level.
func (level Level) String() string {
	switch level {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLevel takes a string level and returns a Level constant.
func ParseLevel(lvl string) (Level, error) {
	switch strings.ToLower(lvl) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}

	var l Level

	return l, fmt.Errorf("not a valid Level: %q", lvl)
}
