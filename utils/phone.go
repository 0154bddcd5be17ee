package utils

import "strings"

// CountryCode is prefixed to national numbers before they reach the
// messaging gateway.
const CountryCode = "90"

// NormalizePhone converts a user-entered phone number into the
// digits-only, country-code-prefixed form the WhatsApp gateway accepts.
// "0532 111 22 33" and "+90 532 111 22 33" both become "905321112233".
// The gateway silently rejects malformed numbers, so this exact shape matters.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return ""
	}
	// National format carries a leading zero that the gateway does not accept.
	digits = strings.TrimPrefix(digits, "0")
	if !strings.HasPrefix(digits, CountryCode) {
		digits = CountryCode + digits
	}
	return digits
}
