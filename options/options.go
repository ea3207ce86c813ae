// Package options provides functional options for configuring
// EmbeddingsCache instances.
package options

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/embedcache/embedcache/stores"
	"github.com/embedcache/embedcache/types"
)

// Option represents a configuration option for EmbeddingsCache.
type Option func(*Config) error

// Config holds the configuration for building an EmbeddingsCache.
type Config struct {
	Store  types.Store
	Logger zerolog.Logger
}

// NewConfig creates a new configuration with default values.
func NewConfig() *Config {
	return &Config{
		Logger: zerolog.Nop(),
	}
}

// Apply applies all the given options to the config.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Store == nil {
		return errors.New("store is required - use WithMemoryStore, WithRedisStore, etc.")
	}
	return nil
}

// WithMemoryStore sets up an unbounded in-memory store.
func WithMemoryStore() Option {
	return func(cfg *Config) error {
		store, err := stores.New(types.StoreMemory, types.StoreConfig{})
		if err != nil {
			return err
		}
		cfg.Store = store
		return nil
	}
}

// WithLRUStore sets up a capacity-bounded in-memory store.
func WithLRUStore(capacity int) Option {
	return func(cfg *Config) error {
		store, err := stores.New(types.StoreLRU, types.StoreConfig{
			Capacity: capacity,
		})
		if err != nil {
			return err
		}
		cfg.Store = store
		return nil
	}
}

// WithRedisStore sets up a Redis store.
func WithRedisStore(addr string, db int) Option {
	return func(cfg *Config) error {
		store, err := stores.New(types.StoreRedis, types.StoreConfig{
			ConnectionString: addr,
			Database:         db,
		})
		if err != nil {
			return err
		}
		cfg.Store = store
		return nil
	}
}

// WithStoreConfig builds a store of the given type from a full StoreConfig.
func WithStoreConfig(storeType types.StoreType, config types.StoreConfig) Option {
	return func(cfg *Config) error {
		store, err := stores.New(storeType, config)
		if err != nil {
			return err
		}
		cfg.Store = store
		return nil
	}
}

// WithStore allows using a pre-configured store.
func WithStore(store types.Store) Option {
	return func(cfg *Config) error {
		if store == nil {
			return errors.New("store cannot be nil")
		}
		cfg.Store = store
		return nil
	}
}

// WithLogger sets the logger used to report swallowed cache failures.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *Config) error {
		cfg.Logger = logger
		return nil
	}
}
