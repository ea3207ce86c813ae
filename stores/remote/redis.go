package remote

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/embedcache/embedcache/keys"
	"github.com/embedcache/embedcache/types"
)

const (
	// DefaultKeyPrefix namespaces entries when no prefix is configured.
	DefaultKeyPrefix = "embedcache:"

	defaultOpTimeout = 3 * time.Second
	connectTimeout   = 5 * time.Second
)

// RedisStore implements Store against a Redis server. Key and value bytes
// pass through unchanged; Redis is treated as a flat byte store under a
// configurable key prefix. Every operation is bounded by a per-op timeout,
// and transport failures surface as ErrBackendUnavailable or ErrTimeout so
// callers can degrade to a miss.
type RedisStore struct {
	client    *redis.Client
	prefix    string
	opTimeout time.Duration
	ttl       time.Duration
}

// parseRedisURL parses a Redis connection string and returns redis.Options.
// Both redis:// / rediss:// URLs and plain host:port addresses are accepted.
func parseRedisURL(connectionString string) (*redis.Options, error) {
	if strings.HasPrefix(connectionString, "redis://") || strings.HasPrefix(connectionString, "rediss://") {
		parsedURL, err := url.Parse(connectionString)
		if err != nil {
			return nil, fmt.Errorf("invalid Redis URL: %w", err)
		}

		opts := &redis.Options{
			Addr: parsedURL.Host,
		}

		if parsedURL.Scheme == "rediss" {
			opts.TLSConfig = &tls.Config{
				MinVersion: tls.VersionTLS12,
			}
		}

		if parsedURL.User != nil {
			opts.Username = parsedURL.User.Username()
			if password, ok := parsedURL.User.Password(); ok {
				opts.Password = password
			}
		}

		if parsedURL.Path != "" && parsedURL.Path != "/" {
			dbStr := strings.TrimPrefix(parsedURL.Path, "/")
			if db, err := strconv.Atoi(dbStr); err == nil {
				opts.DB = db
			}
		}

		return opts, nil
	}

	return &redis.Options{
		Addr: connectionString,
	}, nil
}

// NewRedisStore creates a Redis-backed store and verifies connectivity.
func NewRedisStore(config types.StoreConfig) (*RedisStore, error) {
	opts, err := parseRedisURL(config.ConnectionString)
	if err != nil {
		return nil, err
	}

	// Explicit config values win over URL components.
	if config.Username != "" {
		opts.Username = config.Username
	}
	if config.Password != "" {
		opts.Password = config.Password
	}
	if config.Database != 0 {
		opts.DB = config.Database
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%w: ping %s: %v", types.ErrBackendUnavailable, opts.Addr, err)
	}

	prefix := config.KeyPrefix
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}

	opTimeout := config.OpTimeout
	if opTimeout == 0 {
		opTimeout = defaultOpTimeout
	}

	return &RedisStore{
		client:    client,
		prefix:    prefix,
		opTimeout: opTimeout,
		ttl:       config.TTL,
	}, nil
}

// keyString converts a cache key to its Redis key under the store prefix.
func (s *RedisStore) keyString(key keys.Key) string {
	return s.prefix + key.String()
}

// opCtx bounds a single operation by the configured timeout.
func (s *RedisStore) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.opTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.opTimeout)
}

// wrapErr maps transport failures onto the store error taxonomy.
func wrapErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s", types.ErrTimeout, op)
	}
	return fmt.Errorf("%w: %s: %v", types.ErrBackendUnavailable, op, err)
}

// Get retrieves the blob stored at key.
func (s *RedisStore) Get(ctx context.Context, key keys.Key) ([]byte, bool, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	val, err := s.client.Get(ctx, s.keyString(key)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, wrapErr("get", err)
	}
	return val, true, nil
}

// Set stores or overwrites the blob at key, applying the configured TTL.
func (s *RedisStore) Set(ctx context.Context, key keys.Key, value []byte) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	if err := s.client.Set(ctx, s.keyString(key), value, s.ttl).Err(); err != nil {
		return wrapErr("set", err)
	}
	return nil
}

// Delete removes the entry at key.
func (s *RedisStore) Delete(ctx context.Context, key keys.Key) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	if err := s.client.Del(ctx, s.keyString(key)).Err(); err != nil {
		return wrapErr("delete", err)
	}
	return nil
}

// Contains checks if a key exists.
func (s *RedisStore) Contains(ctx context.Context, key keys.Key) (bool, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	exists, err := s.client.Exists(ctx, s.keyString(key)).Result()
	if err != nil {
		return false, wrapErr("contains", err)
	}
	return exists > 0, nil
}

// scanKeys collects all Redis keys under the store prefix.
func (s *RedisStore) scanKeys(ctx context.Context) ([]string, error) {
	pattern := s.prefix + "*"
	var found []string
	var cursor uint64

	for {
		batch, nextCursor, err := s.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return nil, wrapErr("scan", err)
		}
		found = append(found, batch...)
		cursor = nextCursor
		if cursor == 0 {
			return found, nil
		}
	}
}

// Flush removes all entries under the store prefix. Other data in the same
// Redis database is untouched.
func (s *RedisStore) Flush(ctx context.Context) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	found, err := s.scanKeys(ctx)
	if err != nil {
		return err
	}
	if len(found) == 0 {
		return nil
	}
	if err := s.client.Del(ctx, found...).Err(); err != nil {
		return wrapErr("flush", err)
	}
	return nil
}

// Len returns the number of entries under the store prefix.
func (s *RedisStore) Len(ctx context.Context) (int, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	found, err := s.scanKeys(ctx)
	if err != nil {
		return 0, err
	}
	return len(found), nil
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
