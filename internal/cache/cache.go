package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/alexpan006/blockdash-api/internal/adapter"
	"github.com/alexpan006/blockdash-api/internal/domain"
)

// ErrCacheMiss is returned when a key is absent from the cache
var ErrCacheMiss = errors.New("cache miss")

// Cache defines the response cache used in front of graph queries
//
//go:generate mockgen -source=cache.go -destination=../mocks/cache.go -package=mocks -mock_names=Cache=MockCache
type Cache interface {
	// Key derives a deterministic cache key from a prefix and request parameters
	Key(prefix string, params interface{}) (string, error)

	// Get reads a cached payload. Returns ErrCacheMiss when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set writes a payload under a key with the configured TTL
	Set(ctx context.Context, key string, payload []byte) error

	// Invalidate deletes every key under a prefix
	Invalidate(ctx context.Context, prefix string) error

	// SetLastUpdate records the wall-clock time of the latest completed sync
	SetLastUpdate(ctx context.Context, at time.Time) error

	// GetLastUpdate reads the time of the latest completed sync. Returns
	// ErrCacheMiss when no sync has completed yet.
	GetLastUpdate(ctx context.Context) (time.Time, error)
}

// redisCache implements Cache on Redis
type redisCache struct {
	client adapter.RedisClient
	json   adapter.JSON
	jcs    adapter.JCS
	ttl    time.Duration
}

// New creates a Redis-backed cache. A non-positive ttl falls back to 24h.
func New(client adapter.RedisClient, jsonAdapter adapter.JSON, jcsAdapter adapter.JCS, ttl time.Duration) Cache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &redisCache{
		client: client,
		json:   jsonAdapter,
		jcs:    jcsAdapter,
		ttl:    ttl,
	}
}

// Key derives a deterministic cache key from a prefix and request parameters.
// The parameters are serialized to JSON, canonicalized with JCS so that map
// ordering cannot produce distinct keys, and hashed.
func Key(jsonAdapter adapter.JSON, jcsAdapter adapter.JCS, prefix string, params interface{}) (string, error) {
	raw, err := jsonAdapter.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("failed to marshal cache key params: %w", err)
	}

	canonical, err := jcsAdapter.Transform(raw)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize cache key params: %w", err)
	}

	sum := sha256.Sum256(canonical)
	return prefix + hex.EncodeToString(sum[:]), nil
}

// Key derives a cache key using the cache's own codec adapters
func (c *redisCache) Key(prefix string, params interface{}) (string, error) {
	return Key(c.json, c.jcs, prefix, params)
}

func (c *redisCache) Get(ctx context.Context, key string) ([]byte, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to read cache key %s: %w", key, err)
	}
	return payload, nil
}

func (c *redisCache) Set(ctx context.Context, key string, payload []byte) error {
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache key %s: %w", key, err)
	}
	return nil
}

// Invalidate walks the keyspace with SCAN and deletes every key under the
// prefix. SCAN keeps the server responsive on large keyspaces where KEYS
// would block.
func (c *redisCache) Invalidate(ctx context.Context, prefix string) error {
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, prefix+"*", 100).Result()
		if err != nil {
			return fmt.Errorf("failed to scan cache keys under %s: %w", prefix, err)
		}

		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("failed to delete cache keys under %s: %w", prefix, err)
			}
		}

		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

func (c *redisCache) SetLastUpdate(ctx context.Context, at time.Time) error {
	// The last-update marker never expires; it survives cache invalidation
	// because it lives outside the application-cache prefix.
	if err := c.client.Set(ctx, domain.LAST_UPDATE_CACHE_KEY, at.UTC().Format(time.RFC3339), 0).Err(); err != nil {
		return fmt.Errorf("failed to write last update marker: %w", err)
	}
	return nil
}

func (c *redisCache) GetLastUpdate(ctx context.Context) (time.Time, error) {
	raw, err := c.client.Get(ctx, domain.LAST_UPDATE_CACHE_KEY).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return time.Time{}, ErrCacheMiss
		}
		return time.Time{}, fmt.Errorf("failed to read last update marker: %w", err)
	}

	at, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse last update marker: %w", err)
	}
	return at, nil
}
