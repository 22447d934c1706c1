package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/InaamJr/Axceria/db"
)

// Postgres is a Store backed by the box_states table. Payloads are upserted
// on conflict so repeated saves of the same box are a single-row write.
type Postgres struct{}

// NewPostgres creates a new Postgres store. db.InitDB and db.EnsureSchema
// must have run before the first Save/Load.
func NewPostgres() *Postgres {
	return &Postgres{}
}

// Ensure Postgres implements Store
var _ Store = (*Postgres)(nil)

func (p *Postgres) Save(ctx context.Context, key string, payload string) error {
	query := `
		INSERT INTO box_states (key, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key)
		DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()
	`

	if _, err := db.DB.ExecContext(ctx, query, key, payload); err != nil {
		log.Printf("❌ Save: Error upserting box state key=%s: %v", key, err)
		return fmt.Errorf("failed to save box state: %w", err)
	}
	return nil
}

func (p *Postgres) Load(ctx context.Context, key string) (string, bool, error) {
	query := `SELECT payload FROM box_states WHERE key = $1`

	var payload string
	err := db.DB.QueryRowContext(ctx, query, key).Scan(&payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		log.Printf("❌ Load: Error fetching box state key=%s: %v", key, err)
		return "", false, fmt.Errorf("failed to load box state: %w", err)
	}
	return payload, true, nil
}

func (p *Postgres) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM box_states WHERE key = $1`

	if _, err := db.DB.ExecContext(ctx, query, key); err != nil {
		log.Printf("❌ Delete: Error deleting box state key=%s: %v", key, err)
		return fmt.Errorf("failed to delete box state: %w", err)
	}
	return nil
}
