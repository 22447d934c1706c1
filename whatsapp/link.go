// Package whatsapp builds wa.me deep links pre-filled with storefront
// messages. There is no checkout API; orders and enquiries are handed off
// to the seller's WhatsApp as free text.
package whatsapp

import (
	"net/url"
	"strings"

	"github.com/InaamJr/Axceria/utils"
)

const baseURL = "https://wa.me/"

// MinOwnerDigits is the minimum digit count a seller number must carry to
// be considered usable.
const MinOwnerDigits = 10

// DeepLink builds a wa.me URL for owner, pre-filled with message.
// Returns ok=false when owner has fewer than MinOwnerDigits digits after
// stripping non-digit characters; callers surface that as a disabled
// affordance, never as an error.
func DeepLink(owner string, message string) (string, bool) {
	digits := utils.Digits(owner)
	if len(digits) < MinOwnerDigits {
		return "", false
	}
	return baseURL + digits + "?text=" + url.QueryEscape(message), true
}

// Lines joins message lines with newlines, the line-oriented template all
// storefront messages share.
func Lines(lines []string) string {
	return strings.Join(lines, "\n")
}
