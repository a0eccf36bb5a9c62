package log

// NopEngine is a no-op engine implementation.
type NopEngine struct{}

// NewNop creates a no-op engine implementation.
//
//nolint:ireturn
func NewNop() Engine {
	return &NopEngine{}
}

// Log drops all log lines.
func (e *NopEngine) Log(_ Level, _ string, _ ...any) {}

// Enabled always returns false for NopEngine.
func (e *NopEngine) Enabled(_ Level) bool {
	return false
}

// Sync is a no-op and always returns nil.
func (e *NopEngine) Sync() error { return nil }
