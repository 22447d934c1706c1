package utils

import "strings"

// Digits strips every non-digit rune from s. Used to normalize phone
// numbers before validation and before building wa.me paths.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// UsablePhone reports whether s contains at least 10 digits once
// non-digit characters are stripped.
func UsablePhone(s string) bool {
	return len(Digits(s)) >= 10
}
