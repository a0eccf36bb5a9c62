package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    Level
		expectError bool
	}{
		{
			name:        "parse error level",
			input:       "error",
			expected:    LevelError,
			expectError: false,
		},
		{
			name:        "parse warn level",
			input:       "warn",
			expected:    LevelWarn,
			expectError: false,
		},
		{
			name:        "parse warning level",
			input:       "warning",
			expected:    LevelWarn,
			expectError: false,
		},
		{
			name:        "parse info level",
			input:       "info",
			expected:    LevelInfo,
			expectError: false,
		},
		{
			name:        "parse debug level",
			input:       "debug",
			expected:    LevelDebug,
			expectError: false,
		},
		{
			name:        "parse uppercase level",
			input:       "INFO",
			expected:    LevelInfo,
			expectError: false,
		},
		{
			name:        "parse mixed case level",
			input:       "WaRn",
			expected:    LevelWarn,
			expectError: false,
		},
		{
			name:        "parse invalid level",
			input:       "invalid",
			expected:    Level(0),
			expectError: true,
		},
		{
			name:        "parse empty string",
			input:       "",
			expected:    Level(0),
			expectError: true,
		},
		{
			name:        "parse fatal level - not supported",
			input:       "fatal",
			expected:    Level(0),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := ParseLevel(tt.input)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, level)
			}
		})
	}
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelError, "error"},
		{LevelWarn, "warn"},
		{LevelInfo, "info"},
		{LevelDebug, "debug"},
		{Level(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.level.String())
		})
	}
}

func TestLevel_RoundTrip(t *testing.T) {
	for _, level := range []Level{LevelError, LevelWarn, LevelInfo, LevelDebug} {
		t.Run(level.String(), func(t *testing.T) {
			parsed, err := ParseLevel(level.String())
			assert.NoError(t, err)
			assert.Equal(t, level, parsed)
		})
	}
}

func TestNopEngine(t *testing.T) {
	engine := NewNop()

	assert.NotPanics(t, func() {
		engine.Log(LevelInfo, "dropped")
		engine.Log(LevelError, "dropped", "extra", 42)
	})

	assert.False(t, engine.Enabled(LevelError))
	assert.False(t, engine.Enabled(LevelDebug))
	assert.NoError(t, engine.Sync())
}
