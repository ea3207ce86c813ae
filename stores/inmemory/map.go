package inmemory

import (
	"context"
	"sync"

	"github.com/embedcache/embedcache/keys"
)

// MapStore implements Store with a plain map held for the process lifetime.
// It is unbounded: nothing is ever evicted, and managing growth is the
// caller's responsibility. A single RWMutex guards the whole map; operations
// are O(1) and contention is negligible next to the embedding computation
// this cache shadows.
type MapStore struct {
	mu   sync.RWMutex
	data map[keys.Key][]byte
}

// NewMapStore creates an empty unbounded in-memory store.
func NewMapStore() *MapStore {
	return &MapStore{
		data: make(map[keys.Key][]byte),
	}
}

// Get retrieves the blob stored at key. The returned slice is a copy, so
// callers cannot mutate cached state.
func (s *MapStore) Get(ctx context.Context, key keys.Key) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, true, nil
}

// Set stores or overwrites the blob at key. The value is copied on the way
// in to avoid retaining a reference to the caller's slice.
func (s *MapStore) Set(ctx context.Context, key keys.Key, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = stored
	return nil
}

// Delete removes the entry at key.
func (s *MapStore) Delete(ctx context.Context, key keys.Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// Contains checks if a key exists.
func (s *MapStore) Contains(ctx context.Context, key keys.Key) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.data[key]
	return ok, nil
}

// Flush clears all entries.
func (s *MapStore) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[keys.Key][]byte)
	return nil
}

// Len returns the number of entries.
func (s *MapStore) Len(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data), nil
}

// Close is a no-op for in-memory stores.
func (s *MapStore) Close() error {
	return nil
}
