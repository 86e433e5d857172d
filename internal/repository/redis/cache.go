package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

const (
	listCachePrefix = "catalog:"
	listCacheTTL    = 5 * time.Minute
)

// ListCache caches serialized catalog listing pages. Keys are scoped by
// resource so any write to a resource can invalidate all of its pages.
type ListCache struct {
	client *Client
}

// NewListCache creates a new listing cache
func NewListCache(client *Client) *ListCache {
	return &ListCache{client: client}
}

func listKey(resource string, page, perPage int) string {
	return fmt.Sprintf("%s%s:p%d:n%d", listCachePrefix, resource, page, perPage)
}

// Get retrieves a cached page into dest. Returns false on miss.
func (c *ListCache) Get(ctx context.Context, resource string, page, perPage int, dest any) (bool, error) {
	data, err := c.client.rdb.Get(ctx, listKey(resource, page, perPage)).Bytes()
	if err != nil {
		return false, nil // Cache miss
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cached page: %w", err)
	}

	return true, nil
}

// Set caches a listing page.
func (c *ListCache) Set(ctx context.Context, resource string, page, perPage int, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal page: %w", err)
	}

	return c.client.rdb.Set(ctx, listKey(resource, page, perPage), data, listCacheTTL).Err()
}

// Invalidate removes every cached page of a resource.
func (c *ListCache) Invalidate(ctx context.Context, resource string) (int64, error) {
	pattern := listCachePrefix + resource + ":*"
	var cursor uint64
	var deleted int64

	for {
		keys, nextCursor, err := c.client.rdb.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return deleted, fmt.Errorf("failed to scan keys: %w", err)
		}

		if len(keys) > 0 {
			count, err := c.client.rdb.Del(ctx, keys...).Result()
			if err != nil {
				return deleted, fmt.Errorf("failed to delete keys: %w", err)
			}
			deleted += count
		}

		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}

	return deleted, nil
}
