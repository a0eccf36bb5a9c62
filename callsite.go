package callog

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// callerSkipFrames is the number of stack frames between runtime.Caller and
// the external call site when resolution happens inside emit: resolveCallSite
// itself, emit, and the public logging method. This constant is a contract
// with the public logging functions and must change together with the
// facade's call depth; the known-line test in callsite_test.go pins it.
const callerSkipFrames = 3

// errCallSiteUnavailable reports a stack too shallow to contain an external
// caller frame. The log call fails rather than emitting a malformed line.
var errCallSiteUnavailable = errors.New("call site unavailable")

// resolveCallSite returns the "<path>:[<line>]" location of the frame skip
// levels above it. If the resolved file path starts with prefix, the prefix
// is stripped from the reported path; other paths are reported unmodified.
func resolveCallSite(skip int, prefix string) (string, error) {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "", errCallSiteUnavailable
	}

	if prefix != "" {
		file = strings.TrimPrefix(file, prefix)
	}

	return fmt.Sprintf("%s:[%d]", file, line), nil
}
