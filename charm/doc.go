// Package charm provides a charmbracelet/log-backed engine for the call-site
// logging facade.
package charm
