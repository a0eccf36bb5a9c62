// Package log defines the engine contract and severity levels used by the
// call-site logging facade.
//
// Adapters (such as the zap, zerolog, and charm packages) implement Engine so
// applications can keep logging calls consistent across backends. GoEngine is
// the built-in console backend used when no adapter is injected.
package log
