package utils

import (
	"fmt"
	"time"
)

// Clients send dates in two forms: the booking calendar uses
// "2006-01-02" and the reminder/import paths use "02.01.2006". Both are
// normalized here so no raw date string travels past the HTTP boundary.
var clientDateLayouts = []string{"2006-01-02", "02.01.2006"}

// ParseClientDate parses either accepted wire format into a
// business-local calendar date (midnight).
func ParseClientDate(s string) (time.Time, error) {
	for _, layout := range clientDateLayouts {
		if t, err := time.ParseInLocation(layout, s, BusinessLocation); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q, expected YYYY-MM-DD or DD.MM.YYYY", s)
}

// FormatMessageDate renders a date the way outbound messages show it.
func FormatMessageDate(t time.Time) string {
	return t.Format("02.01.2006")
}
