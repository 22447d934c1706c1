package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// File is a Store backed by a single JSON file mapping key -> payload.
// Writes go through a temp file and rename so a crash mid-write never
// leaves a truncated state file behind.
type File struct {
	mu   sync.Mutex
	path string
}

// NewFile creates a file-backed store at path, creating the parent
// directory if needed.
func NewFile(path string) (*File, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &File{path: path}, nil
}

// Ensure File implements Store
var _ Store = (*File)(nil)

func (f *File) Save(_ context.Context, key string, payload string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.readAll()
	if err != nil {
		return err
	}
	data[key] = payload
	return f.writeAll(data)
}

func (f *File) Load(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.readAll()
	if err != nil {
		return "", false, err
	}
	payload, ok := data[key]
	return payload, ok, nil
}

func (f *File) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.readAll()
	if err != nil {
		return err
	}
	delete(data, key)
	return f.writeAll(data)
}

func (f *File) readAll() (map[string]string, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	data := make(map[string]string)
	if err := json.Unmarshal(raw, &data); err != nil {
		// Corrupt state file: treat as empty rather than blocking every save
		log.Printf("❌ File store: corrupt state file %s, starting fresh: %v", f.path, err)
		return make(map[string]string), nil
	}
	return data, nil
}

func (f *File) writeAll(data map[string]string) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode state file: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("failed to replace state file: %w", err)
	}
	return nil
}
