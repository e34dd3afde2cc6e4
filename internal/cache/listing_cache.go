package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"emanetBack/internal/models"
)

// ListingCache keeps per-category listing snapshots in Redis so the query
// engine does not hit MySQL on every keystroke. A miss or any Redis error
// falls through to the database.
type ListingCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewListingCache(rdb *redis.Client, ttl time.Duration) *ListingCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &ListingCache{rdb: rdb, ttl: ttl}
}

func snapshotKey(category models.Category) string {
	return fmt.Sprintf("listings:snapshot:%s", category)
}

func (c *ListingCache) Get(ctx context.Context, category models.Category) ([]models.Listing, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, snapshotKey(category)).Bytes()
	if err != nil {
		return nil, false
	}
	var listings []models.Listing
	if err := json.Unmarshal(raw, &listings); err != nil {
		return nil, false
	}
	return listings, true
}

func (c *ListingCache) Set(ctx context.Context, category models.Category, listings []models.Listing) {
	if c == nil || c.rdb == nil {
		return
	}
	raw, err := json.Marshal(listings)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, snapshotKey(category), raw, c.ttl)
}

// Invalidate drops one category's snapshot after a write.
func (c *ListingCache) Invalidate(ctx context.Context, category models.Category) {
	if c == nil || c.rdb == nil {
		return
	}
	c.rdb.Del(ctx, snapshotKey(category))
}
