package services

import (
	"time"

	"compass-server/models"

	gocache "github.com/patrickmn/go-cache"
)

// ChatCache is the chatbot's bounded response cache. The Redis-backed DAO is
// the primary implementation; MemoryChatCache serves when Redis is not
// configured.
type ChatCache interface {
	Get(fingerprint string) (*models.ChatCacheEntry, bool)
	Put(fingerprint string, entry models.ChatCacheEntry) error
	Size() int
}

// MemoryChatCache is an in-process ChatCache with the same TTL and size
// bound as the Redis DAO.
type MemoryChatCache struct {
	cache      *gocache.Cache
	maxEntries int
}

// NewMemoryChatCache builds an in-memory cache with the given TTL and bound.
func NewMemoryChatCache(ttl time.Duration, maxEntries int) *MemoryChatCache {
	return &MemoryChatCache{
		cache:      gocache.New(ttl, 10*time.Minute),
		maxEntries: maxEntries,
	}
}

func (c *MemoryChatCache) Get(fingerprint string) (*models.ChatCacheEntry, bool) {
	v, ok := c.cache.Get(fingerprint)
	if !ok {
		return nil, false
	}
	entry, ok := v.(models.ChatCacheEntry)
	if !ok {
		return nil, false
	}
	return &entry, true
}

func (c *MemoryChatCache) Put(fingerprint string, entry models.ChatCacheEntry) error {
	c.cache.Set(fingerprint, entry, gocache.DefaultExpiration)
	// All entries share one TTL, so the earliest expiration is the oldest
	// insert; evict those first once the bound is exceeded.
	for c.cache.ItemCount() > c.maxEntries {
		oldestKey := ""
		var oldestExp int64
		for k, item := range c.cache.Items() {
			if oldestKey == "" || item.Expiration < oldestExp {
				oldestKey = k
				oldestExp = item.Expiration
			}
		}
		if oldestKey == "" {
			break
		}
		c.cache.Delete(oldestKey)
	}
	return nil
}

func (c *MemoryChatCache) Size() int {
	return c.cache.ItemCount()
}
