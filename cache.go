// Package embedcache is a transparent caching layer for deterministic
// text-embedding computations. Given a piece of text it avoids recomputing
// the vector if an equivalent request has already been served.
//
// Cache keys hash only the text, never the model, so one EmbeddingsCache
// instance must be scoped to a single embedding model. Callers running
// several models against a shared backend isolate them with distinct store
// key prefixes.
package embedcache

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/embedcache/embedcache/keys"
	"github.com/embedcache/embedcache/options"
	"github.com/embedcache/embedcache/types"
)

// EmbeddingsCache combines key derivation, vector serialization, and a
// pluggable store into the lookup/update contract an embeddings caller
// wraps around its model.
//
// The cache is an optimization, never a correctness dependency: backend
// failures and corrupt entries are recovered here and reported as misses,
// observable only through the configured logger. All synchronization is
// internal to the chosen store, so Lookup and Update may be called from any
// number of goroutines.
type EmbeddingsCache struct {
	store  types.Store
	logger zerolog.Logger
}

// New creates an EmbeddingsCache with functional options.
func New(opts ...options.Option) (*EmbeddingsCache, error) {
	cfg := options.NewConfig()

	if err := cfg.Apply(opts...); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return NewEmbeddingsCache(cfg.Store, cfg.Logger)
}

// NewEmbeddingsCache creates an EmbeddingsCache over the given store.
func NewEmbeddingsCache(store types.Store, logger zerolog.Logger) (*EmbeddingsCache, error) {
	if store == nil {
		return nil, errors.New("store cannot be nil")
	}
	return &EmbeddingsCache{
		store:  store,
		logger: logger,
	}, nil
}

// Lookup returns the cached vector for text, if present. The boolean
// reports a hit; on a miss, a backend failure, or a corrupt entry it is
// false and the caller falls through to computing the embedding itself.
func (c *EmbeddingsCache) Lookup(ctx context.Context, text string) ([]float32, bool) {
	key := keys.Derive(text)

	blob, found, err := c.store.Get(ctx, key)
	if err != nil {
		c.logger.Warn().Err(err).Str("key", key.String()).Msg("cache lookup failed, treating as miss")
		return nil, false
	}
	if !found {
		return nil, false
	}

	vec, err := DecodeVector(blob)
	if err != nil {
		c.logger.Warn().Err(err).Str("key", key.String()).Msg("corrupt cache entry, treating as miss")
		return nil, false
	}
	return vec, true
}

// Update stores the vector computed for text, overwriting any prior entry.
// Caching is best effort: a failed write is logged and otherwise dropped so
// it can never fail the embedding workflow that produced the vector.
func (c *EmbeddingsCache) Update(ctx context.Context, text string, vector []float32) {
	key := keys.Derive(text)

	if err := c.store.Set(ctx, key, EncodeVector(vector)); err != nil {
		c.logger.Warn().Err(err).Str("key", key.String()).Msg("cache update failed, entry dropped")
	}
}

// Delete removes the cached vector for text, if any.
func (c *EmbeddingsCache) Delete(ctx context.Context, text string) error {
	return c.store.Delete(ctx, keys.Derive(text))
}

// Contains reports whether a vector is cached for text.
func (c *EmbeddingsCache) Contains(ctx context.Context, text string) (bool, error) {
	return c.store.Contains(ctx, keys.Derive(text))
}

// Flush clears all entries from the underlying store.
func (c *EmbeddingsCache) Flush(ctx context.Context) error {
	return c.store.Flush(ctx)
}

// Len returns the number of cached entries.
func (c *EmbeddingsCache) Len(ctx context.Context) (int, error) {
	return c.store.Len(ctx)
}

// Close closes the underlying store.
func (c *EmbeddingsCache) Close() error {
	return c.store.Close()
}
