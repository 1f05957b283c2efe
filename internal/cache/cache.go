// In file: internal/cache/cache.go

// Package cache provides an optional Redis-backed cache for direct model
// answers. Tool-mediated answers are never cached: their payloads are
// time-sensitive (calendar contents, search results) and each one consumed a
// single-use credential.
package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const responseTTL = 1 * time.Hour

// ResponseCache wraps a Redis client. A nil *ResponseCache is a valid,
// disabled cache: Check always misses and Set is a no-op.
type ResponseCache struct {
	rdb *redis.Client
}

func NewResponseCache(rdb *redis.Client) *ResponseCache {
	return &ResponseCache{rdb: rdb}
}

// Check looks up a cached response by key. Redis errors degrade to a miss.
func (c *ResponseCache) Check(ctx context.Context, key string) (string, bool) {
	if c == nil {
		return "", false
	}
	val, err := c.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false
	} else if err != nil {
		log.Printf("Redis GET error for response cache: %v", err)
		return "", false
	}
	return val, true
}

// Set stores a response under key with the standard TTL. Failures are logged
// and otherwise ignored; caching is best-effort.
func (c *ResponseCache) Set(ctx context.Context, key, response string) {
	if c == nil {
		return
	}
	if err := c.rdb.Set(ctx, key, response, responseTTL).Err(); err != nil {
		log.Printf("Redis SET error for response cache: %v", err)
	}
}
