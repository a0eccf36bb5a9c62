// Package zerolog provides a zerolog-backed engine for the call-site logging
// facade.
package zerolog
