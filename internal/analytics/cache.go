package analytics

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache is an optional read-through cache for analytics responses. The
// underlying records are immutable, so a short TTL only bounds how long a
// freshly ingested order can be missing from a cached answer.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache creates a response cache backed by the given Redis client.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// CacheKey builds a stable key from the endpoint name, the target restaurant
// (empty for the ranking endpoint) and the raw filter criteria. Identical
// queries hit the same key. Fields are length-prefixed before hashing so two
// criteria sets can never collide by shifting text across field boundaries.
func CacheKey(endpoint, restaurantID string, c FilterCriteria) string {
	h := sha256.New()
	for _, part := range []string{
		endpoint, restaurantID,
		c.From, c.To, c.Search, c.Cuisine, c.Location,
		c.MinAmount, c.MaxAmount, c.StartHour, c.EndHour,
	} {
		fmt.Fprintf(h, "%d:%s", len(part), part)
	}
	return "analytics:" + endpoint + ":" + hex.EncodeToString(h.Sum(nil))
}

// Get returns the cached payload for key, or false on a miss. Redis being
// unreachable is treated as a miss; the caller recomputes.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

// Set stores the payload for key. Errors are ignored; a failed write only
// costs a recomputation on the next request.
func (c *Cache) Set(ctx context.Context, key string, payload []byte) {
	_ = c.client.Set(ctx, key, payload, c.ttl).Err()
}
