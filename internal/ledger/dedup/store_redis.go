package dedup

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"aidproof/pkg/platform/sentinel"
)

const keyPrefix = "aidproof:anchor:"

// RedisCache shares the fingerprint cache across process restarts and
// replicas. TTL of zero keeps entries forever; anchors never expire on the
// ledger, so expiry only bounds memory.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, fingerprint string) (string, error) {
	anchorID, err := c.client.Get(ctx, keyPrefix+fingerprint).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", sentinel.ErrNotFound
		}
		return "", fmt.Errorf("dedup: redis get: %w", err)
	}
	return anchorID, nil
}

func (c *RedisCache) Put(ctx context.Context, fingerprint, anchorID string) error {
	if err := c.client.Set(ctx, keyPrefix+fingerprint, anchorID, c.ttl).Err(); err != nil {
		return fmt.Errorf("dedup: redis set: %w", err)
	}
	return nil
}
