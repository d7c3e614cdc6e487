// Package timeutil provides fixed-precision RFC 3339 timestamp formatting
// so API payloads and log entries always serialize the same way.
package timeutil

import (
	"time"
)

// RFC3339Millis is RFC 3339 UTC with fixed millisecond precision, the
// format used for timestamps in response bodies.
const RFC3339Millis = "2006-01-02T15:04:05.000Z"

// RFC3339Micros is RFC 3339 UTC with fixed microsecond precision, used
// for log timestamps where higher resolution matters.
const RFC3339Micros = "2006-01-02T15:04:05.000000Z"

// FormatMillis renders t as RFC 3339 UTC with millisecond precision,
// e.g. "2024-01-01T00:00:00.000Z".
func FormatMillis(t time.Time) string {
	return t.UTC().Format(RFC3339Millis)
}

// ParseMillis parses a timestamp produced by FormatMillis. Any RFC 3339
// fraction is accepted on input.
func ParseMillis(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
