package callog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoverAndLogSwallowsPanic(t *testing.T) {
	eng := &recordingEngine{}
	logger := New(eng, "")

	assert.NotPanics(t, func() {
		defer RecoverAndLog(logger, "worker")
		panic("boom")
	})

	require.Len(t, eng.lines, 1)
	assert.Contains(t, eng.lines[0], "[ERROR]")
	assert.Contains(t, eng.lines[0], "panic in worker: boom")
	assert.Contains(t, eng.lines[0], "goroutine")
}

func TestRecoverAndLogWithoutPanicLogsNothing(t *testing.T) {
	eng := &recordingEngine{}
	logger := New(eng, "")

	func() {
		defer RecoverAndLog(logger, "worker")
	}()

	assert.Empty(t, eng.lines)
}

func TestRecoverAndLogNilLoggerIsSafe(t *testing.T) {
	assert.NotPanics(t, func() {
		defer RecoverAndLog(nil, "worker")
		panic("boom")
	})
}

func TestRecoverAndCrashRepanicsAfterLogging(t *testing.T) {
	eng := &recordingEngine{}
	logger := New(eng, "")

	assert.PanicsWithValue(t, "boom", func() {
		defer RecoverAndCrash(logger, "critical-op")
		panic("boom")
	})

	require.Len(t, eng.lines, 1)
	assert.Contains(t, eng.lines[0], "panic in critical-op: boom")
	assert.Contains(t, eng.lines[0], "goroutine")
}

func TestRecoverAndCrashWithErrorPanicValue(t *testing.T) {
	eng := &recordingEngine{}
	logger := New(eng, "")

	assert.Panics(t, func() {
		defer RecoverAndCrash(logger, "critical-op")
		panic(assert.AnError)
	})

	require.Len(t, eng.lines, 1)
	assert.Contains(t, eng.lines[0], assert.AnError.Error())
}
