package giftbox

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/InaamJr/Axceria/models"
	"github.com/InaamJr/Axceria/storage"
)

func decodeMessage(t *testing.T, link string) string {
	t.Helper()
	u, err := url.Parse(link)
	require.NoError(t, err)
	return u.Query().Get("text")
}

func TestBuildOrderLinkFullMessage(t *testing.T) {
	store := storage.NewMemory()
	box := New("test", DefaultStorageKey, "+94771425684", store)
	box.AddItem(figaro, &figaro.Variants[1], 1) // Figaro Chain, 50 cm, 14990
	box.SetNote("gift wrap please")

	link, ok := box.BuildOrderLink(models.Customer{Name: "Amal", Phone: "0771234567"})
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(link, "https://wa.me/94771425684?text="),
		"path must carry the digits of the seller contact, not the raw number")

	message := decodeMessage(t, link)
	lines := strings.Split(message, "\n")
	require.Equal(t, []string{
		"Hi Axceria! I'd like to place a custom gift box 🎁",
		"",
		"Customer: Amal (0771234567)",
		"Notes: gift wrap please",
		"",
		"Items:",
		"• Figaro Chain (50 cm) × 1 — LKR 14,990",
		"",
		"Subtotal: LKR 14,990",
	}, lines)
}

func TestBuildOrderLinkOptionalSections(t *testing.T) {
	t.Run("empty box, no customer, no note", func(t *testing.T) {
		box, _ := newTestBox(t)
		link, ok := box.BuildOrderLink(models.Customer{})
		require.True(t, ok)

		message := decodeMessage(t, link)
		assert.Equal(t,
			"Hi Axceria! I'd like to place a custom gift box 🎁\n\nSubtotal: LKR 0",
			message)
	})

	t.Run("phone only customer", func(t *testing.T) {
		box, _ := newTestBox(t)
		link, ok := box.BuildOrderLink(models.Customer{Phone: "0779999999"})
		require.True(t, ok)
		assert.Contains(t, decodeMessage(t, link), "Customer: — (0779999999)")
	})

	t.Run("whitespace-only note is omitted", func(t *testing.T) {
		box, _ := newTestBox(t)
		box.SetNote("   \n ")
		link, ok := box.BuildOrderLink(models.Customer{})
		require.True(t, ok)
		assert.NotContains(t, decodeMessage(t, link), "Notes:")
	})

	t.Run("item amount is price times quantity", func(t *testing.T) {
		box, _ := newTestBox(t)
		box.AddItem(giftWrap, nil, 3)
		link, ok := box.BuildOrderLink(models.Customer{})
		require.True(t, ok)

		message := decodeMessage(t, link)
		assert.Contains(t, message, "• Premium Gift Wrap × 3 — LKR 2,970")
		assert.Contains(t, message, "Subtotal: LKR 2,970")
	})
}

func TestBuildOrderLinkUnusableOwner(t *testing.T) {
	store := storage.NewMemory()

	t.Run("empty owner", func(t *testing.T) {
		box := New("test", DefaultStorageKey, "", store)
		box.AddItem(figaro, nil, 1)
		_, ok := box.BuildOrderLink(models.Customer{})
		assert.False(t, ok)
	})

	t.Run("fewer than 10 digits", func(t *testing.T) {
		box := New("test", DefaultStorageKey, "+94-77 14", store)
		box.AddItem(figaro, nil, 1)
		_, ok := box.BuildOrderLink(models.Customer{})
		assert.False(t, ok)
	})

	t.Run("owner swapped in later", func(t *testing.T) {
		box := New("test", DefaultStorageKey, "", store)
		box.SetOwner("+94 77 142 5684")
		link, ok := box.BuildOrderLink(models.Customer{})
		require.True(t, ok)
		assert.True(t, strings.HasPrefix(link, "https://wa.me/94771425684?"))
	})
}

func TestBuildOrderLinkIsPure(t *testing.T) {
	box, _ := newTestBox(t)
	box.AddItem(figaro, nil, 1)
	before := box.Snapshot()

	_, ok := box.BuildOrderLink(models.Customer{Name: "Amal"})
	require.True(t, ok)

	assert.Equal(t, before, box.Snapshot())
}
