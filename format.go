package callog

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cionz0/callog/log"
)

// timestampLayout renders local time as YYYY-MM-DD HH:mm:ss.
const timestampLayout = "2006-01-02 15:04:05"

// logControlCharReplacer escapes control characters that can be used for log
// injection (CWE-117). Newlines, carriage returns, and tabs in log messages
// can forge fake log entries or inject false audit trail entries; escaping
// them also keeps every record on a single line, with the optional stack
// block as the only multi-line content.
var logControlCharReplacer = strings.NewReplacer(
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// renderMessage turns the message argument into its display text. Strings
// pass through verbatim apart from control-character escaping; anything else
// is JSON-encoded. A non-serializable message fails the log call instead of
// producing a partial line.
func renderMessage(message any) (string, error) {
	if s, ok := message.(string); ok {
		return logControlCharReplacer.Replace(s), nil
	}

	encoded, err := json.Marshal(message)
	if err != nil {
		return "", fmt.Errorf("serialize log message: %w", err)
	}

	return string(encoded), nil
}

// formatLine assembles the fixed record format:
//
//	<timestamp> [<LEVEL>]: <callSite> - <message>
func formatLine(ts time.Time, level log.Level, callSite, message string) string {
	return fmt.Sprintf("%s [%s]: %s - %s",
		ts.Format(timestampLayout),
		strings.ToUpper(level.String()),
		callSite,
		message,
	)
}
