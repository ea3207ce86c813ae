package stores

import (
	"errors"
	"testing"

	"github.com/embedcache/embedcache/stores/inmemory"
	"github.com/embedcache/embedcache/types"
)

func TestNewMemoryStore(t *testing.T) {
	store, err := New(types.StoreMemory, types.StoreConfig{})
	if err != nil {
		t.Fatalf("New(memory) failed: %v", err)
	}
	if _, ok := store.(*inmemory.MapStore); !ok {
		t.Errorf("store type = %T, want *inmemory.MapStore", store)
	}
}

func TestNewLRUStore(t *testing.T) {
	store, err := New(types.StoreLRU, types.StoreConfig{Capacity: 8})
	if err != nil {
		t.Fatalf("New(lru) failed: %v", err)
	}
	if _, ok := store.(*inmemory.LRUStore); !ok {
		t.Errorf("store type = %T, want *inmemory.LRUStore", store)
	}
}

func TestNewUnsupportedStore(t *testing.T) {
	_, err := New(types.StoreType("memcached"), types.StoreConfig{})
	if !errors.Is(err, types.ErrUnsupportedStore) {
		t.Errorf("error = %v, want ErrUnsupportedStore", err)
	}
}
