package blobstore

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeContract exercises the Store contract against any implementation.
func storeContract(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("OpenMissing", func(t *testing.T) {
		_, err := store.Open(ctx, "missing")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("PutOpenRead", func(t *testing.T) {
		data := []byte("hello centroids")
		require.NoError(t, store.Put(ctx, "model.bin", data))

		b, err := store.Open(ctx, "model.bin")
		require.NoError(t, err)
		defer func() { _ = b.Close() }()

		assert.Equal(t, int64(len(data)), b.Size())

		got, err := ReadAll(ctx, store, "model.bin")
		require.NoError(t, err)
		assert.Equal(t, data, got)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "model.bin", []byte("v2")))

		got, err := ReadAll(ctx, store, "model.bin")
		require.NoError(t, err)
		assert.Equal(t, []byte("v2"), got)
	})

	t.Run("List", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "model-a", []byte("a")))
		require.NoError(t, store.Put(ctx, "model-b", []byte("b")))
		require.NoError(t, store.Put(ctx, "other", []byte("c")))

		names, err := store.List(ctx, "model")
		require.NoError(t, err)
		sort.Strings(names)
		assert.Equal(t, []string{"model-a", "model-b", "model.bin"}, names)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "model.bin"))
		_, err := store.Open(ctx, "model.bin")
		require.ErrorIs(t, err, ErrNotFound)

		// Deleting a missing blob is not an error.
		require.NoError(t, store.Delete(ctx, "model.bin"))
	})
}

func TestMemoryStore(t *testing.T) {
	storeContract(t, NewMemoryStore())
}

func TestLocalStore(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	storeContract(t, store)
}

func TestMemoryStoreIsolation(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	data := []byte{1, 2, 3}
	require.NoError(t, store.Put(ctx, "blob", data))

	// Mutating the caller's slice must not affect the stored blob.
	data[0] = 99

	got, err := ReadAll(ctx, store, "blob")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, got)
}
