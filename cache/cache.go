package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Cache holds model answers keyed by prompt.
type Cache struct {
	cache *cache.Cache
}

// New returns a cache whose entries expire after ttl. A zero ttl gives a cache that stores nothing.
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		return &Cache{}
	}
	return &Cache{
		cache: cache.New(ttl, 2*ttl),
	}
}

func (c *Cache) Enabled() bool {
	return c != nil && c.cache != nil
}

func (c *Cache) GetString(key string) (string, bool) {
	if !c.Enabled() {
		return "", false
	}
	v, found := c.cache.Get(key)
	if !found {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func (c *Cache) SetDefault(key string, value string) {
	if !c.Enabled() {
		return
	}
	c.cache.Set(key, value, cache.DefaultExpiration)
}

func (c *Cache) ItemCount() int {
	if !c.Enabled() {
		return 0
	}
	return c.cache.ItemCount()
}
