package cache

import (
	"context"
	"errors"
	"time"

	"github.com/allegro/bigcache/v3"
)

// Cache stores raw bytes; callers own serialization.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
	Close() error
}

// BigCache wraps bigcache with a hard memory ceiling.
type BigCache struct {
	cache *bigcache.BigCache
}

var _ Cache = (*BigCache)(nil)

// NewBigCache creates a cache capped at capacityMB whose entries live for expiration.
func NewBigCache(ctx context.Context, capacityMB int, expiration time.Duration) (*BigCache, error) {
	config := bigcache.DefaultConfig(expiration)
	config.HardMaxCacheSize = capacityMB
	config.MaxEntrySize = 2 * 1024 * 1024 // listing pages run a few hundred KB
	config.Verbose = false

	cache, err := bigcache.New(ctx, config)
	if err != nil {
		return nil, err
	}

	return &BigCache{cache: cache}, nil
}

func (c *BigCache) Get(key string) ([]byte, bool) {
	data, err := c.cache.Get(key)
	if err != nil {
		return nil, false
	}
	return data, true
}

func (c *BigCache) Set(key string, value []byte) error {
	return c.cache.Set(key, value)
}

func (c *BigCache) Close() error {
	return c.cache.Close()
}

// Nop never stores anything. Used when caching is disabled.
type Nop struct{}

var _ Cache = Nop{}

var errDisabled = errors.New("cache disabled")

func (Nop) Get(string) ([]byte, bool) { return nil, false }
func (Nop) Set(string, []byte) error  { return errDisabled }
func (Nop) Close() error              { return nil }
