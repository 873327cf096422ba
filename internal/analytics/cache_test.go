package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheKeyIsStable(t *testing.T) {
	c := FilterCriteria{From: "2025-06-22", To: "2025-06-28", Cuisine: "Italian"}

	assert.Equal(t,
		CacheKey("trends", "r1", c),
		CacheKey("trends", "r1", c))
}

func TestCacheKeyDistinguishesQueries(t *testing.T) {
	c := FilterCriteria{From: "2025-06-22", To: "2025-06-28"}

	base := CacheKey("trends", "r1", c)
	assert.NotEqual(t, base, CacheKey("trends", "r2", c))
	assert.NotEqual(t, base, CacheKey("top-restaurants", "", c))

	withHour := c
	withHour.StartHour = "0"
	assert.NotEqual(t, base, CacheKey("trends", "r1", withHour))
}

func TestCacheKeyFieldBoundariesDoNotCollide(t *testing.T) {
	// The same characters split differently across adjacent fields must
	// produce different keys, or one query would be served the other's
	// cached payload.
	a := FilterCriteria{From: "2025-06-22", To: "2025-06-28", Search: "a|b", Cuisine: "c"}
	b := FilterCriteria{From: "2025-06-22", To: "2025-06-28", Search: "a", Cuisine: "b|c"}

	assert.NotEqual(t, CacheKey("trends", "r1", a), CacheKey("trends", "r1", b))

	shifted := FilterCriteria{From: "2025-06-2", To: "22025-06-28"}
	assert.NotEqual(t,
		CacheKey("trends", "r1", FilterCriteria{From: "2025-06-22", To: "2025-06-28"}),
		CacheKey("trends", "r1", shifted))
}
