package storage

import "context"

// Store defines the contract for gift box state persistence.
// Save is best-effort from the caller's point of view: the gift box swallows
// Save errors (logging them) and keeps operating in memory.
// Load returns ok=false when no payload exists under the key.
type Store interface {
	Save(ctx context.Context, key string, payload string) error
	Load(ctx context.Context, key string) (payload string, ok bool, err error)
	Delete(ctx context.Context, key string) error
}
