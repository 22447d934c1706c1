package giftbox

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/InaamJr/Axceria/models"
	"github.com/InaamJr/Axceria/storage"
)

const testOwner = "+94771425684"

var figaro = models.Product{
	ID:       "chain-figaro-50",
	Title:    "Figaro Chain",
	Price:    14990,
	Category: "Chains",
	Thumb:    "https://example.com/figaro.jpg",
	Variants: []models.Variant{
		{Label: "45 cm", Value: "45", Price: 13990},
		{Label: "50 cm", Value: "50", Price: 14990},
	},
}

var giftWrap = models.Product{
	ID:       "gift-wrap",
	Title:    "Premium Gift Wrap",
	Price:    990,
	Category: "Gifts",
}

func newTestBox(t *testing.T) (*Box, *storage.Memory) {
	t.Helper()
	store := storage.NewMemory()
	return New("test", DefaultStorageKey, testOwner, store), store
}

func TestAddItemMergesByKey(t *testing.T) {
	box, _ := newTestBox(t)
	v := &figaro.Variants[1]

	box.AddItem(figaro, v, 1)
	box.AddItem(figaro, v, 2)

	snapshot := box.Snapshot()
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, "chain-figaro-50:50", snapshot.Items[0].Key)
	assert.Equal(t, 3, snapshot.Items[0].Quantity)
	assert.Equal(t, int64(14990), snapshot.Items[0].UnitPrice)
	assert.True(t, snapshot.Open, "adding an item should open the panel")
}

func TestAddItemDistinctVariantsStaySeparate(t *testing.T) {
	box, _ := newTestBox(t)

	box.AddItem(figaro, &figaro.Variants[0], 1)
	box.AddItem(figaro, &figaro.Variants[1], 1)
	box.AddItem(giftWrap, nil, 1)

	snapshot := box.Snapshot()
	require.Len(t, snapshot.Items, 3)
	assert.Equal(t, "chain-figaro-50:45", snapshot.Items[0].Key)
	assert.Equal(t, int64(13990), snapshot.Items[0].UnitPrice)
	assert.Equal(t, "chain-figaro-50:50", snapshot.Items[1].Key)
	// No variant: key is the bare product id, price is the base price
	assert.Equal(t, "gift-wrap", snapshot.Items[2].Key)
	assert.Equal(t, int64(990), snapshot.Items[2].UnitPrice)
	assert.Empty(t, snapshot.Items[2].VariantLabel)
}

func TestAddItemQuantityClamping(t *testing.T) {
	t.Run("incoming qty clamped to 1..99", func(t *testing.T) {
		box, _ := newTestBox(t)
		box.AddItem(giftWrap, nil, -5)
		require.Len(t, box.Snapshot().Items, 1)
		assert.Equal(t, 1, box.Snapshot().Items[0].Quantity)

		box.AddItem(figaro, nil, 500)
		assert.Equal(t, 99, box.Snapshot().Items[1].Quantity)
	})

	t.Run("merge caps at 99", func(t *testing.T) {
		box, _ := newTestBox(t)
		box.AddItem(giftWrap, nil, 60)
		box.AddItem(giftWrap, nil, 60)
		require.Len(t, box.Snapshot().Items, 1)
		assert.Equal(t, 99, box.Snapshot().Items[0].Quantity)
	})
}

func TestUpdateQty(t *testing.T) {
	box, _ := newTestBox(t)
	box.AddItem(giftWrap, nil, 2)

	t.Run("sets within range", func(t *testing.T) {
		box.UpdateQty("gift-wrap", 7)
		assert.Equal(t, 7, box.Snapshot().Items[0].Quantity)
	})

	t.Run("clamps above 99", func(t *testing.T) {
		box.UpdateQty("gift-wrap", 150)
		assert.Equal(t, 99, box.Snapshot().Items[0].Quantity)
	})

	t.Run("unknown key is a no-op", func(t *testing.T) {
		box.UpdateQty("no-such-key", 5)
		require.Len(t, box.Snapshot().Items, 1)
		assert.Equal(t, 99, box.Snapshot().Items[0].Quantity)
	})

	t.Run("zero removes the item", func(t *testing.T) {
		box.UpdateQty("gift-wrap", 0)
		assert.Empty(t, box.Snapshot().Items)
	})

	t.Run("negative removes the item", func(t *testing.T) {
		box.AddItem(giftWrap, nil, 2)
		box.UpdateQty("gift-wrap", -3)
		assert.Empty(t, box.Snapshot().Items)
	})
}

func TestRemoveItem(t *testing.T) {
	box, _ := newTestBox(t)
	box.AddItem(figaro, &figaro.Variants[0], 1)
	box.AddItem(giftWrap, nil, 1)

	box.RemoveItem("chain-figaro-50:45")
	snapshot := box.Snapshot()
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, "gift-wrap", snapshot.Items[0].Key)

	// Unknown key is a no-op
	box.RemoveItem("chain-figaro-50:45")
	assert.Len(t, box.Snapshot().Items, 1)
}

func TestSubtotal(t *testing.T) {
	box, _ := newTestBox(t)
	assert.Equal(t, int64(0), box.Subtotal())

	box.AddItem(figaro, &figaro.Variants[1], 2) // 2 x 14990
	box.AddItem(giftWrap, nil, 3)               // 3 x 990
	assert.Equal(t, int64(2*14990+3*990), box.Subtotal())

	box.UpdateQty("gift-wrap", 1)
	assert.Equal(t, int64(2*14990+990), box.Subtotal())

	box.RemoveItem("chain-figaro-50:50")
	assert.Equal(t, int64(990), box.Subtotal())

	// Snapshot subtotal always matches a fresh sum
	snapshot := box.Snapshot()
	var sum int64
	for _, it := range snapshot.Items {
		sum += it.UnitPrice * int64(it.Quantity)
	}
	assert.Equal(t, sum, snapshot.Subtotal)
}

func TestClearResetsItemsAndNoteOnly(t *testing.T) {
	box, _ := newTestBox(t)
	box.AddItem(figaro, nil, 1)
	box.SetNote("engrave it")
	box.SetOpen(true)

	box.Clear()

	snapshot := box.Snapshot()
	assert.Empty(t, snapshot.Items)
	assert.Empty(t, snapshot.Note)
	assert.True(t, snapshot.Open, "clear should not touch the panel flag")

	// The seller contact survives: links still build on a refilled box
	box.AddItem(giftWrap, nil, 1)
	_, ok := box.BuildOrderLink(models.Customer{})
	assert.True(t, ok)
}

func TestPersistenceRoundTrip(t *testing.T) {
	store := storage.NewMemory()
	box := New("test", DefaultStorageKey, testOwner, store)
	box.AddItem(figaro, &figaro.Variants[1], 2)
	box.AddItem(giftWrap, nil, 1)
	box.SetNote("gift wrap please")

	reloaded := New("test", DefaultStorageKey, testOwner, store)
	snapshot := reloaded.Snapshot()
	require.Len(t, snapshot.Items, 2)
	assert.Equal(t, box.Snapshot().Items, snapshot.Items)
	assert.Equal(t, "gift wrap please", snapshot.Note)
	assert.False(t, snapshot.Open, "panel flag is not persisted")
}

func TestClearSurvivesReload(t *testing.T) {
	store := storage.NewMemory()
	box := New("test", DefaultStorageKey, testOwner, store)
	box.AddItem(figaro, nil, 1)
	box.SetNote("keep it secret")
	box.Clear()

	reloaded := New("test", DefaultStorageKey, testOwner, store)
	snapshot := reloaded.Snapshot()
	assert.Empty(t, snapshot.Items)
	assert.Empty(t, snapshot.Note)
}

func TestHydrateLegacyPayload(t *testing.T) {
	// Payloads written before the version tag carry only {items, note}
	store := storage.NewMemory()
	legacy := `{"items":[{"key":"gift-wrap","productId":"gift-wrap","title":"Premium Gift Wrap","price":990,"qty":2}],"note":"old state"}`
	require.NoError(t, store.Save(context.Background(), DefaultStorageKey, legacy))

	box := New("test", DefaultStorageKey, testOwner, store)
	snapshot := box.Snapshot()
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, 2, snapshot.Items[0].Quantity)
	assert.Equal(t, "old state", snapshot.Note)
}

func TestHydrateBadPayloadStartsEmpty(t *testing.T) {
	t.Run("corrupt JSON", func(t *testing.T) {
		store := storage.NewMemory()
		require.NoError(t, store.Save(context.Background(), DefaultStorageKey, "{not json"))
		box := New("test", DefaultStorageKey, testOwner, store)
		assert.Empty(t, box.Snapshot().Items)
	})

	t.Run("unknown future version", func(t *testing.T) {
		store := storage.NewMemory()
		require.NoError(t, store.Save(context.Background(), DefaultStorageKey, `{"version":7,"items":[],"note":"x"}`))
		box := New("test", DefaultStorageKey, testOwner, store)
		assert.Empty(t, box.Snapshot().Note)
	})
}

// failingStore errors on every operation; the box must keep working.
type failingStore struct{}

func (failingStore) Save(context.Context, string, string) error { return errors.New("storage down") }
func (failingStore) Load(context.Context, string) (string, bool, error) {
	return "", false, errors.New("storage down")
}
func (failingStore) Delete(context.Context, string) error { return errors.New("storage down") }

func TestStorageFailuresAreSwallowed(t *testing.T) {
	box := New("test", DefaultStorageKey, testOwner, failingStore{})
	box.AddItem(figaro, nil, 1)
	box.SetNote("memory only")

	snapshot := box.Snapshot()
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, "memory only", snapshot.Note)
	assert.Equal(t, int64(14990), snapshot.Subtotal)
}
