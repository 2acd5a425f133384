package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/devfolio/portfolio-backend/internal/projects/domain"
)

const (
	listingKey = "portfolio:projects:all" // Cached public project listing, newest first
	listingTTL = 10 * time.Minute
)

// ErrMiss is returned when the listing is not cached.
var ErrMiss = errors.New("listing not cached")

// ListingCache keeps the public project listing in Redis so the landing page
// does not hit Postgres on every read. Mutations invalidate the key, which
// guarantees the listing is recomputed on the next read after any successful
// create, edit or delete.
type ListingCache struct {
	client *redis.Client
}

// NewListingCache creates a listing cache over the given Redis client.
func NewListingCache(client *redis.Client) *ListingCache {
	return &ListingCache{client: client}
}

// Get returns the cached listing, or ErrMiss when nothing is cached.
func (c *ListingCache) Get(ctx context.Context) ([]domain.Project, error) {
	data, err := c.client.Get(ctx, listingKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMiss
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var projects []domain.Project
	if err := json.Unmarshal(data, &projects); err != nil {
		// Treat undecodable payloads as a miss so the caller falls back to
		// the repository and rewrites the key.
		return nil, ErrMiss
	}
	return projects, nil
}

// Set stores the listing with a TTL.
func (c *ListingCache) Set(ctx context.Context, projects []domain.Project) error {
	data, err := json.Marshal(projects)
	if err != nil {
		return fmt.Errorf("cache marshal: %w", err)
	}
	if err := c.client.Set(ctx, listingKey, data, listingTTL).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Invalidate drops the cached listing. Deleting a missing key is fine.
func (c *ListingCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, listingKey).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}
