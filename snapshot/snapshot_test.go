package snapshot

import (
	"context"
	"testing"

	"github.com/hupe1980/centrogo/blobstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testModel() *Model {
	return &Model{
		Dimension: 3,
		Classes:   []string{"pizza_slice", "whole_pizza", "pizza_box"},
		Centroids: map[string][]float32{
			"pizza_slice": {1, 0, 0},
			"whole_pizza": {0, 1, 0},
			"pizza_box":   {0, 0, 1},
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()

	compressions := []Compression{CompressionNone, CompressionZstd, CompressionLZ4}
	for _, comp := range compressions {
		t.Run(comp.String(), func(t *testing.T) {
			store := blobstore.NewMemoryStore()

			err := Save(ctx, store, "model.bin", testModel(), func(o *Options) {
				o.Compression = comp
			})
			require.NoError(t, err)

			got, err := Load(ctx, store, "model.bin")
			require.NoError(t, err)
			assert.Equal(t, testModel(), got)
		})
	}
}

func TestLoadMissing(t *testing.T) {
	store := blobstore.NewMemoryStore()

	_, err := Load(context.Background(), store, "missing")
	require.ErrorIs(t, err, blobstore.ErrNotFound)
}

func TestLoadRejectsCorruption(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	require.NoError(t, Save(ctx, store, "model.bin", testModel()))

	data, err := blobstore.ReadAll(ctx, store, "model.bin")
	require.NoError(t, err)

	// Flip a byte in the middle of the payload.
	corrupted := make([]byte, len(data))
	copy(corrupted, data)
	corrupted[len(corrupted)/2] ^= 0xFF
	require.NoError(t, store.Put(ctx, "model.bin", corrupted))

	_, err = Load(ctx, store, "model.bin")
	var cm *ChecksumMismatchError
	require.ErrorAs(t, err, &cm)
}

func TestLoadRejectsBadMagic(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	require.NoError(t, store.Put(ctx, "model.bin", []byte("not a snapshot at all")))

	_, err := Load(ctx, store, "model.bin")
	require.ErrorIs(t, err, ErrInvalidMagic)
}

func TestLoadRejectsTruncated(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	require.NoError(t, Save(ctx, store, "model.bin", testModel()))

	data, err := blobstore.ReadAll(ctx, store, "model.bin")
	require.NoError(t, err)

	require.NoError(t, store.Put(ctx, "model.bin", data[:len(data)-8]))

	_, err = Load(ctx, store, "model.bin")
	require.ErrorIs(t, err, ErrTruncated)
}

func TestCompressionString(t *testing.T) {
	assert.Equal(t, "none", CompressionNone.String())
	assert.Equal(t, "zstd", CompressionZstd.String())
	assert.Equal(t, "lz4", CompressionLZ4.String())
}
