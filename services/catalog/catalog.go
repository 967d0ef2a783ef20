package catalog

import (
	"context"
	"fmt"
	"time"

	"palmcove/database/repository"
	"palmcove/models"

	"go.uber.org/zap"
)

// RoomCatalog serves the room list through a read-through cache.
// A TTL of zero disables caching.
type RoomCatalog struct {
	Store  repository.Store
	Cache  Cache
	TTL    time.Duration
	Logger *zap.Logger
}

func NewRoomCatalog(store repository.Store, cache Cache, ttl time.Duration, logger *zap.Logger) *RoomCatalog {
	return &RoomCatalog{Store: store, Cache: cache, TTL: ttl, Logger: logger}
}

// ListRooms returns the catalog. Cache failures are logged and fall through to the store.
func (rc *RoomCatalog) ListRooms(ctx context.Context) ([]models.Room, error) {
	if rc.Cache != nil && rc.TTL > 0 {
		rooms, ok, err := rc.Cache.Get(ctx)
		if err != nil {
			rc.Logger.Warn("Room cache read failed", zap.Error(err))
		} else if ok {
			return rooms, nil
		}
	}

	rooms, err := rc.Store.GetRooms(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load rooms: %w", err)
	}

	if rc.Cache != nil && rc.TTL > 0 {
		if err := rc.Cache.Set(ctx, rooms, rc.TTL); err != nil {
			rc.Logger.Warn("Room cache write failed", zap.Error(err))
		}
	}
	return rooms, nil
}

// GetRoom looks the room up in the cached catalog.
func (rc *RoomCatalog) GetRoom(ctx context.Context, id int) (*models.Room, error) {
	rooms, err := rc.ListRooms(ctx)
	if err != nil {
		return nil, err
	}
	for i := range rooms {
		if rooms[i].ID == id {
			return &rooms[i], nil
		}
	}
	return nil, fmt.Errorf("room %d: %w", id, repository.ErrNotFound)
}
