package matchtable

import (
	"strings"
	"time"
)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.RFC1123,
}

// ParseDate accepts the date encodings the stats API emits.
func ParseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	for _, l := range dateLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders a parsable date as M/D/YYYY and anything else verbatim.
func FormatDate(raw string) string {
	t, ok := ParseDate(raw)
	if !ok {
		return raw
	}
	return t.Format("1/2/2006")
}
