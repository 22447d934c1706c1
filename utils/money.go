package utils

import (
	"strconv"
	"strings"
)

// FormatLKR formats an integer rupee amount as a string like "LKR 14,990".
// Uses comma as thousands separator; prices are whole rupees, no decimals.
func FormatLKR(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	s := strconv.FormatInt(amount, 10)
	if len(s) <= 3 {
		if neg {
			return "LKR -" + s
		}
		return "LKR " + s
	}

	var b strings.Builder
	// Pre-allocate: prefix + digits + separators
	b.Grow(len(s) + len(s)/3 + 5)
	if neg {
		b.WriteString("LKR -")
	} else {
		b.WriteString("LKR ")
	}

	// Insert separators from the left.
	rem := len(s) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(s[:rem])
	for i := rem; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}

	return b.String()
}
