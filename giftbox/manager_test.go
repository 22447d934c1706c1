package giftbox

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/InaamJr/Axceria/storage"
)

func TestManagerCreateAndOpen(t *testing.T) {
	store := storage.NewMemory()
	m := NewManager(testOwner, store)

	box := m.Create()
	id := box.Snapshot().ID
	require.NotEmpty(t, id)

	box.AddItem(giftWrap, nil, 2)

	// Open returns the same live box
	same := m.Open(id)
	assert.Len(t, same.Snapshot().Items, 1)

	// Two creates never collide
	other := m.Create()
	assert.NotEqual(t, id, other.Snapshot().ID)
	assert.Empty(t, other.Snapshot().Items)
}

func TestManagerOpenHydratesFromStore(t *testing.T) {
	store := storage.NewMemory()

	m1 := NewManager(testOwner, store)
	box := m1.Create()
	id := box.Snapshot().ID
	box.AddItem(figaro, nil, 1)
	box.SetNote("resume me")

	// A fresh manager over the same store sees the persisted state
	m2 := NewManager(testOwner, store)
	reloaded := m2.Open(id)
	snapshot := reloaded.Snapshot()
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, "resume me", snapshot.Note)
}

func TestManagerDefaultBoxUsesStableKey(t *testing.T) {
	store := storage.NewMemory()
	m := NewManager(testOwner, store)

	m.Default().AddItem(giftWrap, nil, 1)

	payload, ok, err := store.Load(context.Background(), DefaultStorageKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, payload, "gift-wrap")

	// Default always hands back the same box
	assert.Len(t, m.Default().Snapshot().Items, 1)
}
