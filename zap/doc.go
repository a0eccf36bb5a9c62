// Package zap provides a zap-backed engine for the call-site logging facade.
//
// It bridges the log.Engine abstraction to zap while keeping level filtering
// runtime-adjustable through an atomic level handle.
package zap
