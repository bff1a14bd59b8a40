package cache

import (
	"context"
	"time"

	c "github.com/patrickmn/go-cache"
)

// ResultCache hands conditional results from evaluation workers to the
// orchestrator. Each key is written by one job; Get reports absent for unset,
// expired or unreachable keys.
type ResultCache interface {
	Set(ctx context.Context, key string, value bool) error
	Get(ctx context.Context, key string) (bool, bool)
}

type MemoryResultCache struct {
	cache *c.Cache
	ttl   time.Duration
}

var _ ResultCache = new(MemoryResultCache)

// NewMemoryResultCache keeps results for ttl, or for the process lifetime when
// ttl is zero.
func NewMemoryResultCache(ttl time.Duration) *MemoryResultCache {
	expiration := c.NoExpiration
	if ttl > 0 {
		expiration = ttl
	}
	return &MemoryResultCache{
		cache: c.New(expiration, 10*time.Minute),
		ttl:   expiration,
	}
}

func (ch *MemoryResultCache) Set(ctx context.Context, key string, value bool) error {
	ch.cache.Set(key, value, ch.ttl)
	return nil
}

func (ch *MemoryResultCache) Get(ctx context.Context, key string) (bool, bool) {
	v, found := ch.cache.Get(key)
	if !found {
		return false, false
	}
	res, ok := v.(bool)
	return res, ok
}
