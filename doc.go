// Package callog is a thin convenience layer over an underlying log engine
// that stamps every record with the source location of the call that
// produced it.
//
// Each record is a single line:
//
//	YYYY-MM-DD HH:mm:ss [LEVEL]: <file>:[<line>] - <message>
//
// optionally followed by a raw stack-trace block when stack inclusion is
// requested on an error-level call. Non-string messages are JSON-encoded.
// Extra positional arguments are forwarded to the engine uninterpreted.
//
// Construct a Logger explicitly with New and an engine from the log, zap,
// zerolog, or charm packages, or use the process-wide instance:
//
//	logger := callog.GetLogger("/repo/src")
//	logger.Info("ready")
//	logger.Error("boom", true) // appends a stack trace
//
// GetLogger constructs the shared instance on first call; later calls return
// it unchanged, ignoring their argument, until Reset.
package callog
