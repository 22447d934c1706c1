package giftbox

import (
	"sync"

	"github.com/google/uuid"

	"github.com/InaamJr/Axceria/storage"
)

// Manager hands out hydrated boxes keyed by ID. Each box is hydrated from
// the store on first touch and stays live for the life of the process, so
// repeated requests for the same ID see the same authoritative state.
type Manager struct {
	mu    sync.Mutex
	owner string
	store storage.Store
	boxes map[string]*Box
}

// NewManager creates a new Manager. owner is the seller WhatsApp contact
// shared by every box.
func NewManager(owner string, store storage.Store) *Manager {
	return &Manager{
		owner: owner,
		store: store,
		boxes: make(map[string]*Box),
	}
}

// Create mints a new box with a fresh ID.
func (m *Manager) Create() *Box {
	id := uuid.NewString()

	m.mu.Lock()
	defer m.mu.Unlock()

	box := New(id, storageKey(id), m.owner, m.store)
	m.boxes[id] = box
	return box
}

// Open returns the live box for id, hydrating it from the store on first
// touch. An unknown id yields a valid empty box (the storage contract makes
// no distinction between "never existed" and "empty").
func (m *Manager) Open(id string) *Box {
	m.mu.Lock()
	defer m.mu.Unlock()

	if box, ok := m.boxes[id]; ok {
		return box
	}
	box := New(id, storageKey(id), m.owner, m.store)
	m.boxes[id] = box
	return box
}

// Default returns the single shared box stored under DefaultStorageKey,
// matching the one-box-per-browser behavior of the storefront client.
func (m *Manager) Default() *Box {
	m.mu.Lock()
	defer m.mu.Unlock()

	const id = "default"
	if box, ok := m.boxes[id]; ok {
		return box
	}
	box := New(id, DefaultStorageKey, m.owner, m.store)
	m.boxes[id] = box
	return box
}

func storageKey(id string) string {
	if id == "default" {
		return DefaultStorageKey
	}
	return DefaultStorageKey + ":" + id
}
