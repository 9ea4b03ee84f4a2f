package blobstore

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingStore wraps a Store and counts Open calls.
type countingStore struct {
	Store
	opens atomic.Int64
}

func (c *countingStore) Open(ctx context.Context, name string) (Blob, error) {
	c.opens.Add(1)
	return c.Store.Open(ctx, name)
}

func TestCachingStoreContract(t *testing.T) {
	storeContract(t, NewCachingStore(NewMemoryStore()))
}

func TestCachingStoreCachesReads(t *testing.T) {
	ctx := context.Background()

	inner := &countingStore{Store: NewMemoryStore()}
	require.NoError(t, inner.Put(ctx, "model", []byte("payload")))

	store := NewCachingStore(inner)

	for i := 0; i < 5; i++ {
		got, err := ReadAll(ctx, store, "model")
		require.NoError(t, err)
		assert.Equal(t, []byte("payload"), got)
	}

	assert.Equal(t, int64(1), inner.opens.Load())
}

func TestCachingStoreInvalidatesOnPut(t *testing.T) {
	ctx := context.Background()

	inner := &countingStore{Store: NewMemoryStore()}
	store := NewCachingStore(inner)

	require.NoError(t, store.Put(ctx, "model", []byte("v1")))

	got, err := ReadAll(ctx, store, "model")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), got)

	require.NoError(t, store.Put(ctx, "model", []byte("v2")))

	got, err = ReadAll(ctx, store, "model")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)
}

func TestCachingStoreConcurrentOpens(t *testing.T) {
	ctx := context.Background()

	inner := &countingStore{Store: NewMemoryStore()}
	require.NoError(t, inner.Put(ctx, "model", []byte("payload")))

	store := NewCachingStore(inner)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := ReadAll(ctx, store, "model")
			assert.NoError(t, err)
			assert.Equal(t, []byte("payload"), got)
		}()
	}
	wg.Wait()

	// Concurrent fills collapse; afterwards the blob is cached for good.
	got, err := ReadAll(ctx, store, "model")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)
	assert.LessOrEqual(t, inner.opens.Load(), int64(16))
}
