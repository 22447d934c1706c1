// Package giftbox implements the client "gift box": an ordered collection
// of product+variant line items with a free-text note, persisted across
// sessions through a storage adapter and handed off at checkout as a
// WhatsApp deep link instead of a payment flow.
package giftbox

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/InaamJr/Axceria/models"
	"github.com/InaamJr/Axceria/storage"
)

// DefaultStorageKey is the storage key of the default (single-visitor) box.
// Kept stable so state written by earlier deployments still hydrates.
const DefaultStorageKey = "axc:giftbox:v1"

// MaxQty caps the quantity of a single line item.
const MaxQty = 99

// payloadVersion tags the persisted state layout. Payloads without a
// version field are accepted as version 1 (the layout never changed, the
// tag was added later); unknown higher versions are treated as corrupt.
const payloadVersion = 1

// persistedState is exactly what goes through the storage adapter:
// items and note only. The open flag and the seller contact are transient.
type persistedState struct {
	Version int               `json:"version"`
	Items   []models.LineItem `json:"items"`
	Note    string            `json:"note"`
}

// Box is the single authoritative owner of one gift box's state. All
// mutations go through its methods; controllers only read snapshots.
type Box struct {
	mu    sync.Mutex
	id    string
	key   string
	owner string
	store storage.Store

	items []models.LineItem
	note  string
	open  bool
}

// New creates a box and hydrates it from the store. A missing key,
// unparsable payload, or adapter failure means "no prior state": the box
// starts empty and keeps working in memory.
func New(id, key, owner string, store storage.Store) *Box {
	b := &Box{
		id:    id,
		key:   key,
		owner: owner,
		store: store,
		items: []models.LineItem{},
	}
	b.hydrate()
	return b
}

func (b *Box) hydrate() {
	payload, ok, err := b.store.Load(context.Background(), b.key)
	if err != nil {
		log.Printf("❌ GiftBox: failed to load state key=%s, starting empty: %v", b.key, err)
		return
	}
	if !ok {
		return
	}

	var state persistedState
	if err := json.Unmarshal([]byte(payload), &state); err != nil {
		log.Printf("❌ GiftBox: corrupt state key=%s, starting empty: %v", b.key, err)
		return
	}
	if state.Version > payloadVersion {
		log.Printf("❌ GiftBox: unknown state version %d for key=%s, starting empty", state.Version, b.key)
		return
	}

	if state.Items != nil {
		b.items = state.Items
	}
	b.note = state.Note
}

// persist serializes {version, items, note} to the store. Failures are
// logged and swallowed so persistence trouble never reaches the caller.
func (b *Box) persist() {
	state := persistedState{
		Version: payloadVersion,
		Items:   b.items,
		Note:    b.note,
	}
	payload, err := json.Marshal(state)
	if err != nil {
		log.Printf("❌ GiftBox: failed to encode state key=%s: %v", b.key, err)
		return
	}
	if err := b.store.Save(context.Background(), b.key, string(payload)); err != nil {
		log.Printf("❌ GiftBox: failed to persist state key=%s, continuing in memory: %v", b.key, err)
	}
}

// ItemKey computes the de-duplication key for a product+variant selection.
func ItemKey(productID string, variant *models.Variant) string {
	if variant != nil {
		return productID + ":" + variant.Value
	}
	return productID
}

func clampQty(qty int) int {
	if qty < 1 {
		return 1
	}
	if qty > MaxQty {
		return MaxQty
	}
	return qty
}

// AddItem adds qty of a product (with an optional variant) to the box.
// qty is clamped to [1,99] before use. If an item with the same key is
// already present its quantity grows (capped at 99) and every other field
// is left untouched; otherwise a new snapshot line is appended. The panel
// is opened so the addition is visible. Never fails: a missing variant
// simply falls back to the product's base price.
func (b *Box) AddItem(product models.Product, variant *models.Variant, qty int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	qty = clampQty(qty)
	key := ItemKey(product.ID, variant)

	for i := range b.items {
		if b.items[i].Key == key {
			next := b.items[i].Quantity + qty
			if next > MaxQty {
				next = MaxQty
			}
			b.items[i].Quantity = next
			b.open = true
			b.persist()
			return
		}
	}

	price := product.Price
	variantLabel := ""
	if variant != nil {
		price = variant.Price
		variantLabel = variant.Label
	}

	b.items = append(b.items, models.LineItem{
		Key:          key,
		ProductID:    product.ID,
		Title:        product.Title,
		VariantLabel: variantLabel,
		UnitPrice:    price,
		Quantity:     qty,
		Thumb:        product.Thumb,
		Category:     product.Category,
	})
	b.open = true
	b.persist()
}

// UpdateQty sets the named item's quantity. A quantity <= 0 removes the
// item; anything else is clamped to [1,99]. Unknown keys are a no-op.
func (b *Box) UpdateQty(key string, qty int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.items {
		if b.items[i].Key != key {
			continue
		}
		if qty <= 0 {
			b.items = append(b.items[:i], b.items[i+1:]...)
		} else {
			b.items[i].Quantity = clampQty(qty)
		}
		b.persist()
		return
	}
}

// RemoveItem removes the item with the given key. Unknown keys are a no-op.
func (b *Box) RemoveItem(key string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.items {
		if b.items[i].Key == key {
			b.items = append(b.items[:i], b.items[i+1:]...)
			b.persist()
			return
		}
	}
}

// SetNote replaces the free-text note verbatim. No length validation.
func (b *Box) SetNote(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.note = text
	b.persist()
}

// Clear resets items and note to empty. The seller contact and the panel
// flag are left untouched.
func (b *Box) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.items = []models.LineItem{}
	b.note = ""
	b.persist()
}

// SetOpen sets the panel visibility flag. Presentation only, not persisted.
func (b *Box) SetOpen(open bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.open = open
}

// SetOwner replaces the seller contact used to build outbound links.
func (b *Box) SetOwner(owner string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.owner = owner
}

// Subtotal returns the derived sum of unitPrice x quantity over all items.
func (b *Box) Subtotal() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.subtotalLocked()
}

func (b *Box) subtotalLocked() int64 {
	var sum int64
	for i := range b.items {
		sum += b.items[i].UnitPrice * int64(b.items[i].Quantity)
	}
	return sum
}

// Snapshot returns a read view for rendering. The returned items slice is
// a copy; callers cannot mutate box state through it.
func (b *Box) Snapshot() models.BoxSnapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	items := make([]models.LineItem, len(b.items))
	copy(items, b.items)

	return models.BoxSnapshot{
		ID:       b.id,
		Items:    items,
		Note:     b.note,
		Subtotal: b.subtotalLocked(),
		Open:     b.open,
	}
}
