// Package embedder wraps an embedding provider with an EmbeddingsCache.
package embedder

import (
	"context"
	"errors"
	"fmt"

	"github.com/embedcache/embedcache"
	"github.com/embedcache/embedcache/types"
)

// CachedEmbedder is an Embedder that consults the cache before computing.
// On a hit the stored vector is returned without touching the inner
// provider; on a miss the vector is computed and written back. It satisfies
// types.Embedder itself, so it drops in wherever a provider is expected.
//
// One CachedEmbedder must wrap a single model: the cache keys carry no
// model identifier.
type CachedEmbedder struct {
	inner types.Embedder
	cache *embedcache.EmbeddingsCache
}

// New wraps inner with cache.
func New(inner types.Embedder, cache *embedcache.EmbeddingsCache) (*CachedEmbedder, error) {
	if inner == nil {
		return nil, errors.New("inner embedder cannot be nil")
	}
	if cache == nil {
		return nil, errors.New("cache cannot be nil")
	}
	return &CachedEmbedder{
		inner: inner,
		cache: cache,
	}, nil
}

// EmbedText returns the embedding for text, computing it only on a cache
// miss.
func (e *CachedEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	if vec, ok := e.cache.Lookup(ctx, text); ok {
		return vec, nil
	}

	vec, err := e.inner.EmbedText(ctx, text)
	if err != nil {
		return nil, err
	}
	e.cache.Update(ctx, text, vec)
	return vec, nil
}

// EmbedTexts returns one embedding per input text in order. Only the texts
// missing from the cache are sent to the inner provider, in a single batch,
// and their vectors are written back afterwards.
func (e *CachedEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	results := make([][]float32, len(texts))

	var missed []string
	var missedIdx []int
	for i, text := range texts {
		if vec, ok := e.cache.Lookup(ctx, text); ok {
			results[i] = vec
			continue
		}
		missed = append(missed, text)
		missedIdx = append(missedIdx, i)
	}

	if len(missed) == 0 {
		return results, nil
	}

	computed, err := e.inner.EmbedTexts(ctx, missed)
	if err != nil {
		return nil, err
	}
	if len(computed) != len(missed) {
		return nil, fmt.Errorf("embedder returned %d vectors for %d texts", len(computed), len(missed))
	}

	for j, i := range missedIdx {
		results[i] = computed[j]
		e.cache.Update(ctx, texts[i], computed[j])
	}
	return results, nil
}

// Close closes the inner provider. The cache is owned by the caller and
// stays open.
func (e *CachedEmbedder) Close() {
	e.inner.Close()
}
