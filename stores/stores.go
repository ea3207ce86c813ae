// Package stores constructs cache store backends.
package stores

import (
	"fmt"

	"github.com/embedcache/embedcache/stores/inmemory"
	"github.com/embedcache/embedcache/stores/remote"
	"github.com/embedcache/embedcache/types"
)

// New creates a cache store of the specified type.
func New(storeType types.StoreType, config types.StoreConfig) (types.Store, error) {
	switch storeType {
	case types.StoreMemory:
		return inmemory.NewMapStore(), nil
	case types.StoreLRU:
		return inmemory.NewLRUStore(config.Capacity)
	case types.StoreRedis:
		return remote.NewRedisStore(config)
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrUnsupportedStore, storeType)
	}
}
