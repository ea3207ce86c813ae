package types

import (
	"context"
	"time"

	"github.com/embedcache/embedcache/keys"
)

// Store defines the interface for cache storage backends.
// This allows for pluggable storage systems including in-memory and Redis.
// Keys are fixed-size content hashes; values are opaque byte blobs.
type Store interface {
	// Get retrieves the blob stored at key. The boolean reports presence:
	// an absent key returns (nil, false, nil), never a default value.
	Get(ctx context.Context, key keys.Key) ([]byte, bool, error)

	// Set stores or overwrites the blob at key. Last writer wins.
	Set(ctx context.Context, key keys.Key, value []byte) error

	// Delete removes the entry at key, if any.
	Delete(ctx context.Context, key keys.Key) error

	// Contains checks if a key exists without retrieving the value.
	Contains(ctx context.Context, key keys.Key) (bool, error)

	// Flush clears all entries owned by this store.
	Flush(ctx context.Context) error

	// Len returns the number of entries in the store.
	Len(ctx context.Context) (int, error)

	// Close closes the store and releases resources.
	Close() error
}

// StoreConfig provides configuration options for stores.
type StoreConfig struct {
	// For bounded in-memory stores
	Capacity int

	// For Redis
	ConnectionString string
	Username         string
	Password         string
	Database         int

	// KeyPrefix namespaces entries in shared backends. Callers running
	// several embedding models against one backend isolate them here.
	KeyPrefix string

	// OpTimeout bounds each remote operation. Zero means no per-op bound
	// beyond the caller's context.
	OpTimeout time.Duration

	// TTL expires remote entries after the given duration. Zero means
	// entries persist until overwritten or deleted.
	TTL time.Duration
}

// StoreType represents the type of cache store.
type StoreType string

const (
	StoreMemory StoreType = "memory"
	StoreLRU    StoreType = "lru"
	StoreRedis  StoreType = "redis"
)

// Embedder defines the interface all embedding providers must satisfy.
type Embedder interface {
	// EmbedText turns a piece of text into its embedding vector.
	EmbedText(ctx context.Context, text string) ([]float32, error)
	// EmbedTexts embeds a batch of texts, one vector per input in order.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
	// Close frees any resources held by the provider.
	Close()
}

// ProviderType represents the type of embedding provider.
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
	ProviderGemini ProviderType = "gemini"
)
