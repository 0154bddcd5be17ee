package utils

import "time"

// BusinessUTCOffsetMinutes is the fixed offset every business runs on
// (Turkey, no DST). Kept as a single constant so multi-region support
// is a config change, not a rewrite.
const BusinessUTCOffsetMinutes = 180

// BusinessLocation is the fixed-offset location derived from the constant above.
var BusinessLocation = time.FixedZone("UTC+3", BusinessUTCOffsetMinutes*60)

// ToBusinessTime converts any instant to business-local time.
func ToBusinessTime(t time.Time) time.Time {
	return t.In(BusinessLocation)
}

// SameDate reports whether two moments fall on the same calendar date,
// ignoring their clock components.
func SameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Midnight truncates a moment to its calendar date in business-local time.
func Midnight(t time.Time) time.Time {
	local := ToBusinessTime(t)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, BusinessLocation)
}
