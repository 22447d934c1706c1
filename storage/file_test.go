package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFile(t *testing.T) (*File, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state", "boxes.json")
	f, err := NewFile(path)
	require.NoError(t, err)
	return f, path
}

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	f, _ := newTestFile(t)

	_, ok, err := f.Load(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, f.Save(ctx, "box:a", `{"items":[]}`))
	require.NoError(t, f.Save(ctx, "box:b", `{"items":[1]}`))

	payload, ok, err := f.Load(ctx, "box:a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"items":[]}`, payload)

	require.NoError(t, f.Delete(ctx, "box:a"))
	_, ok, err = f.Load(ctx, "box:a")
	require.NoError(t, err)
	assert.False(t, ok)

	// Other keys survive a delete
	_, ok, _ = f.Load(ctx, "box:b")
	assert.True(t, ok)
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	f, path := newTestFile(t)
	require.NoError(t, f.Save(ctx, "k", "v"))

	reopened, err := NewFile(path)
	require.NoError(t, err)
	payload, ok, err := reopened.Load(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v", payload)
}

func TestFileStoreCorruptFileStartsFresh(t *testing.T) {
	ctx := context.Background()
	f, path := newTestFile(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, ok, err := f.Load(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	// Saving after corruption rewrites the file cleanly
	require.NoError(t, f.Save(ctx, "k", "v"))
	payload, ok, err := f.Load(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v", payload)
}

func TestFileStoreLeavesNoTempFile(t *testing.T) {
	ctx := context.Background()
	f, path := newTestFile(t)
	require.NoError(t, f.Save(ctx, "k", "v"))

	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}
