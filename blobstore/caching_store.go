package blobstore

import (
	"context"
	"io"
	"sync"

	"golang.org/x/sync/singleflight"
)

// CachingStore wraps a Store and memoizes whole-blob reads.
//
// Snapshot blobs are immutable once written, so a cached copy stays valid
// until the same name is overwritten or deleted through this store.
// Concurrent opens of the same uncached blob are collapsed into a single
// fetch from the inner store.
type CachingStore struct {
	inner Store

	mu    sync.RWMutex
	cache map[string][]byte
	group singleflight.Group
}

// NewCachingStore creates a new CachingStore around inner.
func NewCachingStore(inner Store) *CachingStore {
	return &CachingStore{
		inner: inner,
		cache: make(map[string][]byte),
	}
}

// Open opens a blob for reading, serving from cache when possible.
func (s *CachingStore) Open(ctx context.Context, name string) (Blob, error) {
	s.mu.RLock()
	data, ok := s.cache[name]
	s.mu.RUnlock()

	if !ok {
		v, err, _ := s.group.Do(name, func() (any, error) {
			fetched, err := ReadAll(ctx, s.inner, name)
			if err != nil {
				return nil, err
			}
			s.mu.Lock()
			s.cache[name] = fetched
			s.mu.Unlock()
			return fetched, nil
		})
		if err != nil {
			return nil, err
		}
		data = v.([]byte)
	}

	return &cachedBlob{data: data}, nil
}

// Put writes through to the inner store and invalidates the cache entry.
func (s *CachingStore) Put(ctx context.Context, name string, data []byte) error {
	s.invalidate(name)
	return s.inner.Put(ctx, name, data)
}

// Delete removes a blob and invalidates the cache entry.
func (s *CachingStore) Delete(ctx context.Context, name string) error {
	s.invalidate(name)
	return s.inner.Delete(ctx, name)
}

// List delegates to the inner store.
func (s *CachingStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

func (s *CachingStore) invalidate(name string) {
	s.mu.Lock()
	delete(s.cache, name)
	s.mu.Unlock()
	s.group.Forget(name)
}

// cachedBlob serves reads from the cached byte slice. The slice is shared
// with the cache and must not be mutated.
type cachedBlob struct {
	data []byte
}

func (b *cachedBlob) ReadAt(_ context.Context, p []byte, off int64) (int, error) {
	if off >= int64(len(b.data)) {
		return 0, io.EOF
	}
	n := copy(p, b.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (b *cachedBlob) Close() error { return nil }

func (b *cachedBlob) Size() int64 { return int64(len(b.data)) }
