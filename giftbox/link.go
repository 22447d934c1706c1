package giftbox

import (
	"strconv"
	"strings"

	"github.com/InaamJr/Axceria/models"
	"github.com/InaamJr/Axceria/utils"
	"github.com/InaamJr/Axceria/whatsapp"
)

// BuildOrderLink renders the current box as a wa.me deep link pre-filled
// with the order summary. Pure: no box state changes. Returns ok=false when
// the seller contact is absent or carries fewer than 10 digits; callers
// disable the send affordance in that case.
//
// Decoded message layout:
//
//	Hi Axceria! I'd like to place a custom gift box 🎁
//
//	Customer: Amal (0771234567)
//	Notes: gift wrap please
//
//	Items:
//	• Figaro Chain (50 cm) × 1 — LKR 14,990
//
//	Subtotal: LKR 14,990
func (b *Box) BuildOrderLink(customer models.Customer) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	lines := []string{"Hi Axceria! I'd like to place a custom gift box 🎁"}

	if customer.Name != "" || customer.Phone != "" {
		name := customer.Name
		if name == "" {
			name = "—"
		}
		line := "Customer: " + name
		if customer.Phone != "" {
			line += " (" + customer.Phone + ")"
		}
		lines = append(lines, "", line)
	}

	if note := strings.TrimSpace(b.note); note != "" {
		lines = append(lines, "Notes: "+note)
	}

	if len(b.items) > 0 {
		lines = append(lines, "", "Items:")
		for i := range b.items {
			it := &b.items[i]
			variantStr := ""
			if it.VariantLabel != "" {
				variantStr = " (" + it.VariantLabel + ")"
			}
			amount := it.UnitPrice * int64(it.Quantity)
			lines = append(lines, "• "+it.Title+variantStr+" × "+
				strconv.Itoa(it.Quantity)+" — "+utils.FormatLKR(amount))
		}
	}

	lines = append(lines, "", "Subtotal: "+utils.FormatLKR(b.subtotalLocked()))

	return whatsapp.DeepLink(b.owner, whatsapp.Lines(lines))
}
