// Package cache provides an optional Redis-backed result cache for analysis
// and scoring output. A nil *Cache is valid and disables caching, so callers
// never branch on whether Redis is configured.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config holds Redis connection configuration.
type Config struct {
	Enabled  bool          `env:"CACHE_ENABLED"  yaml:"enabled"`
	Address  string        `env:"REDIS_ADDRESS"  yaml:"address"`
	Password string        `env:"REDIS_PASSWORD" yaml:"password"`
	DB       int           `env:"REDIS_DB"       yaml:"db"`
	TTL      time.Duration `env:"CACHE_TTL"      yaml:"ttl"`
}

// ErrEmptyAddress is returned when the Redis address is not configured.
var ErrEmptyAddress = errors.New("redis address is required")

// ErrMiss is returned by Get when the key is absent.
var ErrMiss = errors.New("cache miss")

// connectionTimeout is the timeout for verifying the Redis connection.
const connectionTimeout = 5 * time.Second

const keyPrefix = "radar:"

// Cache stores JSON-encoded analysis results with a fixed TTL.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to Redis and returns a ready cache. Returns (nil, nil) when
// the cache is disabled in config; the nil cache is safe to use.
func New(cfg Config) (*Cache, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	if cfg.Address == "" {
		return nil, ErrEmptyAddress
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), connectionTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Cache{client: client, ttl: cfg.TTL}, nil
}

// Get unmarshals the cached value for key into out. Returns ErrMiss when
// the key is absent or the cache is disabled.
func (c *Cache) Get(ctx context.Context, key string, out any) error {
	if c == nil {
		return ErrMiss
	}

	data, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrMiss
	}
	if err != nil {
		return fmt.Errorf("cache get: %w", err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("cache decode: %w", err)
	}
	return nil
}

// Set stores value under key for the configured TTL. A disabled cache
// silently accepts and drops the write.
func (c *Cache) Set(ctx context.Context, key string, value any) error {
	if c == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}

	if err := c.client.Set(ctx, keyPrefix+key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Close releases the underlying connection. Safe on a nil cache.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
