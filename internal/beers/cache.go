package beers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/brewtrack/brewery-backend/pkg/logger"
	"github.com/brewtrack/brewery-backend/pkg/redis"
)

// RetrievalCache is the look-aside cache in front of catalog reads. Keys are
// built from an operation's effective arguments; eviction beyond the TTL is
// the backend's concern.
type RetrievalCache interface {
	// Get reads a previously stored value into dest, reporting whether the
	// key was present.
	Get(ctx context.Context, key string, dest any) (bool, error)
	// Put stores a fresh result under key.
	Put(ctx context.Context, key string, value any) error
	// Bypass reports whether a read requesting inventory enrichment must
	// skip the cache entirely. Inventory counts are too volatile to cache.
	Bypass(showInventory bool) bool
}

// listCacheKey builds one key per filter tuple. Filter values are escaped so
// a value containing the separator cannot alias another tuple's key.
func listCacheKey(name, style string, pageNumber, pageSize int) string {
	return fmt.Sprintf("beers:list:%s:%s:%d:%d", url.QueryEscape(name), url.QueryEscape(style), pageNumber, pageSize)
}

func idCacheKey(id int) string {
	return fmt.Sprintf("beers:id:%d", id)
}

func upcCacheKey(upc string) string {
	return "beers:upc:" + upc
}

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
	logg   *logger.Logger
}

// NewRedisCache builds a Redis-backed retrieval cache with the given TTL.
func NewRedisCache(client *redis.Client, ttl time.Duration, logg *logger.Logger) RetrievalCache {
	return &redisCache{client: client, ttl: ttl, logg: logg}
}

// Get treats backend failures as misses so a degraded Redis never takes the
// read path down with it.
func (c *redisCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.client.Get(ctx, c.client.CacheKey(key))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		c.warn(ctx, "cache get failed", err)
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		c.warn(ctx, "cache entry corrupt", err)
		return false, nil
	}
	return true, nil
}

func (c *redisCache) Put(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal cache entry: %w", err)
	}
	if err := c.client.Set(ctx, c.client.CacheKey(key), payload, c.ttl); err != nil {
		c.warn(ctx, "cache put failed", err)
	}
	return nil
}

func (c *redisCache) Bypass(showInventory bool) bool {
	return showInventory
}

func (c *redisCache) warn(ctx context.Context, msg string, err error) {
	if c.logg == nil {
		return
	}
	c.logg.Warn(c.logg.WithField(ctx, "error", err.Error()), msg)
}

type noopCache struct{}

// NewNoopCache returns a cache that never stores anything, for deployments
// that run without Redis.
func NewNoopCache() RetrievalCache {
	return noopCache{}
}

func (noopCache) Get(context.Context, string, any) (bool, error) { return false, nil }
func (noopCache) Put(context.Context, string, any) error         { return nil }
func (noopCache) Bypass(showInventory bool) bool                 { return showInventory }
