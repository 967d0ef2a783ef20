package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"palmcove/models"

	"github.com/go-redis/redis/v8"
)

// Cache holds a snapshot of the whole room catalog.
type Cache interface {
	// Get returns the cached rooms, or ok=false on a miss.
	Get(ctx context.Context) (rooms []models.Room, ok bool, err error)
	Set(ctx context.Context, rooms []models.Room, ttl time.Duration) error
}

// MemoryCache memoizes the catalog in process until the TTL lapses.
type MemoryCache struct {
	mu      sync.RWMutex
	rooms   []models.Room
	expires time.Time
	now     func() time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{now: time.Now}
}

func (c *MemoryCache) Get(_ context.Context) ([]models.Room, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.rooms == nil || !c.now().Before(c.expires) {
		return nil, false, nil
	}
	return cloneRooms(c.rooms), true, nil
}

func (c *MemoryCache) Set(_ context.Context, rooms []models.Room, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.rooms = cloneRooms(rooms)
	c.expires = c.now().Add(ttl)
	return nil
}

// RoomsCacheKey is the Redis key holding the JSON-encoded catalog.
const RoomsCacheKey = "catalog:rooms"

// RedisCache stores the catalog as a JSON blob with a Redis TTL.
type RedisCache struct {
	client *redis.Client
	key    string
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client, key: RoomsCacheKey}
}

func (c *RedisCache) Get(ctx context.Context) ([]models.Room, bool, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read room cache: %w", err)
	}

	var rooms []models.Room
	if err := json.Unmarshal(data, &rooms); err != nil {
		return nil, false, fmt.Errorf("failed to parse room cache: %w", err)
	}
	return rooms, true, nil
}

func (c *RedisCache) Set(ctx context.Context, rooms []models.Room, ttl time.Duration) error {
	data, err := json.Marshal(rooms)
	if err != nil {
		return fmt.Errorf("failed to marshal rooms: %w", err)
	}
	if err := c.client.Set(ctx, c.key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write room cache: %w", err)
	}
	return nil
}

func cloneRooms(rooms []models.Room) []models.Room {
	out := make([]models.Room, len(rooms))
	for i, r := range rooms {
		r.Amenities = append([]string(nil), r.Amenities...)
		out[i] = r
	}
	return out
}
