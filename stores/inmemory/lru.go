package inmemory

import (
	"context"
	"errors"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/embedcache/embedcache/keys"
)

// LRUStore implements Store with a capacity-bounded map that evicts the
// least recently used entry once full. Use it instead of MapStore when the
// process must hold a hard memory bound.
type LRUStore struct {
	mu    sync.RWMutex
	cache *lru.Cache[keys.Key, []byte]
}

// NewLRUStore creates a bounded in-memory store holding at most capacity
// entries.
func NewLRUStore(capacity int) (*LRUStore, error) {
	if capacity <= 0 {
		return nil, errors.New("lru store capacity must be positive")
	}
	cache, err := lru.New[keys.Key, []byte](capacity)
	if err != nil {
		return nil, err
	}
	return &LRUStore{cache: cache}, nil
}

// Get retrieves the blob stored at key, marking it recently used.
func (s *LRUStore) Get(ctx context.Context, key keys.Key) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	val, ok := s.cache.Get(key)
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, true, nil
}

// Set stores or overwrites the blob at key, evicting the least recently
// used entry if the store is full.
func (s *LRUStore) Set(ctx context.Context, key keys.Key, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Add(key, stored)
	return nil
}

// Delete removes the entry at key.
func (s *LRUStore) Delete(ctx context.Context, key keys.Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Remove(key)
	return nil
}

// Contains checks for key presence without affecting recency.
func (s *LRUStore) Contains(ctx context.Context, key keys.Key) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cache.Contains(key), nil
}

// Flush clears all entries.
func (s *LRUStore) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Purge()
	return nil
}

// Len returns the number of entries.
func (s *LRUStore) Len(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cache.Len(), nil
}

// Close is a no-op for in-memory stores.
func (s *LRUStore) Close() error {
	return nil
}
