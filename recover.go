package callog

import "fmt"

// RecoverAndLog recovers from a panic, logs it at error level with the stack
// trace, and continues execution. Use this in defer statements for handlers
// and workers where a panic must not crash the process.
//
// Example:
//
//	func worker(logger *callog.Logger) {
//	    defer callog.RecoverAndLog(logger, "worker")
//	    // ...
//	}
func RecoverAndLog(l *Logger, name string) {
	if r := recover(); r != nil {
		logPanic(l, name, r)
	}
}

// RecoverAndCrash recovers from a panic, logs it with the stack trace, and
// re-panics to crash the process. Use this in defer statements for critical
// operations where continuing after a panic would be dangerous.
func RecoverAndCrash(l *Logger, name string) {
	if r := recover(); r != nil {
		logPanic(l, name, r)
		panic(r)
	}
}

// logPanic reports a recovered panic through the facade's stack-inclusion
// path. Nil loggers are tolerated so defers stay safe during early startup.
func logPanic(l *Logger, name string, recovered any) {
	if l == nil {
		return
	}

	_ = l.Error(fmt.Sprintf("panic in %s: %v", name, recovered), true)
}
