package redis

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"compass-server/db"
	"compass-server/logging"
	"compass-server/models"

	"github.com/rs/zerolog"
)

const CHAT_RESPONSE_KEY_FORMAT_V1 = "chat_response_v1:%s"
const CHAT_RESPONSE_KEY_PATTERN_V1 = "chat_response_v1:*"

// RedisChatCacheDAO stores chatbot answers in Redis, keyed by the
// normalized-query fingerprint. Entries expire after the TTL and the cache is
// bounded: once it grows past maxEntries the oldest entries are evicted.
type RedisChatCacheDAO struct {
	client     db.RedisClient
	ttl        time.Duration
	maxEntries int
	logger     zerolog.Logger
}

// NewRedisChatCacheDAO initializes a RedisChatCacheDAO with the Redis client.
func NewRedisChatCacheDAO(client db.RedisClient, ttl time.Duration, maxEntries int) *RedisChatCacheDAO {
	return &RedisChatCacheDAO{
		client:     client,
		ttl:        ttl,
		maxEntries: maxEntries,
		logger:     logging.ComponentLogger("chat_cache"),
	}
}

// Get looks up a cached answer. Expiry is checked lazily in addition to the
// Redis TTL so a stale clock on the server never serves an outdated entry.
func (dao *RedisChatCacheDAO) Get(fingerprint string) (*models.ChatCacheEntry, bool) {
	key := fmt.Sprintf(CHAT_RESPONSE_KEY_FORMAT_V1, fingerprint)
	str, err := dao.client.Get(key)
	if err != nil {
		return nil, false
	}
	var entry models.ChatCacheEntry
	if err := json.Unmarshal([]byte(str), &entry); err != nil {
		dao.logger.Warn().Err(err).Str("key", key).Msg("dropping undecodable cache entry")
		_ = dao.client.Del(key)
		return nil, false
	}
	if time.Since(time.Unix(entry.Timestamp, 0)) > dao.ttl {
		_ = dao.client.Del(key)
		return nil, false
	}
	return &entry, true
}

// Put stores an answer and evicts the oldest entries beyond the size bound.
func (dao *RedisChatCacheDAO) Put(fingerprint string, entry models.ChatCacheEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal chat cache entry: %w", err)
	}
	key := fmt.Sprintf(CHAT_RESPONSE_KEY_FORMAT_V1, fingerprint)
	if err := dao.client.SetWithTTL(key, string(data), dao.ttl); err != nil {
		return fmt.Errorf("failed to set chat cache entry in redis: %w", err)
	}
	return dao.evictOldest()
}

// Size returns the number of live cache entries.
func (dao *RedisChatCacheDAO) Size() int {
	keys, err := dao.client.Keys(CHAT_RESPONSE_KEY_PATTERN_V1)
	if err != nil {
		return 0
	}
	return len(keys)
}

type agedKey struct {
	key       string
	timestamp int64
}

func (dao *RedisChatCacheDAO) evictOldest() error {
	keys, err := dao.client.Keys(CHAT_RESPONSE_KEY_PATTERN_V1)
	if err != nil {
		return fmt.Errorf("failed to list chat cache keys: %w", err)
	}
	if len(keys) <= dao.maxEntries {
		return nil
	}

	aged := make([]agedKey, 0, len(keys))
	for _, k := range keys {
		str, err := dao.client.Get(k)
		if err != nil {
			continue
		}
		var entry models.ChatCacheEntry
		if err := json.Unmarshal([]byte(str), &entry); err != nil {
			// Undecodable entries count as oldest
			aged = append(aged, agedKey{key: k, timestamp: 0})
			continue
		}
		aged = append(aged, agedKey{key: k, timestamp: entry.Timestamp})
	}
	sort.Slice(aged, func(i, j int) bool { return aged[i].timestamp < aged[j].timestamp })

	excess := len(keys) - dao.maxEntries
	for i := 0; i < excess && i < len(aged); i++ {
		if err := dao.client.Del(aged[i].key); err != nil {
			dao.logger.Warn().Err(err).
				Str("key", strings.TrimPrefix(aged[i].key, "chat_response_v1:")).
				Msg("failed to evict cache entry")
		}
	}
	return nil
}
