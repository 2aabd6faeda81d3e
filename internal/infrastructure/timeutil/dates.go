package timeutil

import (
	"regexp"
	"time"
)

// DateLayout is the wire format for travel dates (YYYY-MM-DD).
const DateLayout = "2006-01-02"

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseDate parses a strict YYYY-MM-DD date. The shape is checked before
// parsing so values like "2026-9-1" are rejected rather than normalized.
func ParseDate(value string) (time.Time, bool) {
	if !datePattern.MatchString(value) {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// IsValidDate reports whether value is a well-formed YYYY-MM-DD date.
func IsValidDate(value string) bool {
	_, ok := ParseDate(value)
	return ok
}

// FormatDate formats a time as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Timestamp formats a time as an RFC 3339 UTC timestamp, the format booking
// records carry on the wire.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
