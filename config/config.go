// Package config loads cache configuration from the environment.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/embedcache/embedcache/types"
)

// Config represents the construction-time cache configuration.
type Config struct {
	// Backend selects the store: memory, lru, or redis.
	Backend  string `env:"EMBEDCACHE_BACKEND"  envDefault:"memory"`
	Capacity int    `env:"EMBEDCACHE_CAPACITY" envDefault:"1024"`

	Redis RedisConfig
}

// RedisConfig contains remote store connection settings.
type RedisConfig struct {
	URL       string        `env:"EMBEDCACHE_REDIS_URL"      envDefault:"localhost:6379"`
	Username  string        `env:"EMBEDCACHE_REDIS_USERNAME"`
	Password  string        `env:"EMBEDCACHE_REDIS_PASSWORD"`
	DB        int           `env:"EMBEDCACHE_REDIS_DB"       envDefault:"0"`
	KeyPrefix string        `env:"EMBEDCACHE_KEY_PREFIX"     envDefault:"embedcache:"`
	OpTimeout time.Duration `env:"EMBEDCACHE_OP_TIMEOUT"     envDefault:"3s"`
	TTL       time.Duration `env:"EMBEDCACHE_TTL"            envDefault:"0"`
}

// Load reads an optional .env file and parses configuration from the
// environment.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// StoreType returns the configured store type.
func (c *Config) StoreType() types.StoreType {
	return types.StoreType(c.Backend)
}

// StoreConfig translates the configuration into store construction options.
func (c *Config) StoreConfig() types.StoreConfig {
	return types.StoreConfig{
		Capacity:         c.Capacity,
		ConnectionString: c.Redis.URL,
		Username:         c.Redis.Username,
		Password:         c.Redis.Password,
		Database:         c.Redis.DB,
		KeyPrefix:        c.Redis.KeyPrefix,
		OpTimeout:        c.Redis.OpTimeout,
		TTL:              c.Redis.TTL,
	}
}
