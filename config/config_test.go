package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/embedcache/embedcache/config"
	"github.com/embedcache/embedcache/types"
)

func TestLoad(t *testing.T) {
	t.Run("should load config with defaults", func(t *testing.T) {
		os.Clearenv()

		cfg, err := config.Load()
		require.NoError(t, err)

		require.Equal(t, "memory", cfg.Backend)
		require.Equal(t, 1024, cfg.Capacity)
		require.Equal(t, "localhost:6379", cfg.Redis.URL)
		require.Equal(t, 0, cfg.Redis.DB)
		require.Equal(t, "embedcache:", cfg.Redis.KeyPrefix)
		require.Equal(t, 3*time.Second, cfg.Redis.OpTimeout)
		require.Equal(t, time.Duration(0), cfg.Redis.TTL)

		require.Equal(t, types.StoreMemory, cfg.StoreType())
	})

	t.Run("should load config from environment variables", func(t *testing.T) {
		t.Setenv("EMBEDCACHE_BACKEND", "redis")
		t.Setenv("EMBEDCACHE_CAPACITY", "64")
		t.Setenv("EMBEDCACHE_REDIS_URL", "redis://cache.internal:6380/3")
		t.Setenv("EMBEDCACHE_REDIS_USERNAME", "svc")
		t.Setenv("EMBEDCACHE_REDIS_PASSWORD", "secret")
		t.Setenv("EMBEDCACHE_REDIS_DB", "3")
		t.Setenv("EMBEDCACHE_KEY_PREFIX", "model-a:")
		t.Setenv("EMBEDCACHE_OP_TIMEOUT", "500ms")
		t.Setenv("EMBEDCACHE_TTL", "24h")

		cfg, err := config.Load()
		require.NoError(t, err)

		require.Equal(t, types.StoreRedis, cfg.StoreType())

		sc := cfg.StoreConfig()
		require.Equal(t, 64, sc.Capacity)
		require.Equal(t, "redis://cache.internal:6380/3", sc.ConnectionString)
		require.Equal(t, "svc", sc.Username)
		require.Equal(t, "secret", sc.Password)
		require.Equal(t, 3, sc.Database)
		require.Equal(t, "model-a:", sc.KeyPrefix)
		require.Equal(t, 500*time.Millisecond, sc.OpTimeout)
		require.Equal(t, 24*time.Hour, sc.TTL)
	})

	t.Run("should reject malformed values", func(t *testing.T) {
		t.Setenv("EMBEDCACHE_CAPACITY", "not-a-number")

		_, err := config.Load()
		require.Error(t, err)
	})
}
