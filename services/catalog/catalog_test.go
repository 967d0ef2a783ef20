package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"palmcove/database/repository"
	memoryRepo "palmcove/database/repository/memory"
	"palmcove/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// countingStore counts room reads that reach the store.
type countingStore struct {
	repository.Store
	calls int
}

func (s *countingStore) GetRooms(ctx context.Context) ([]models.Room, error) {
	s.calls++
	return s.Store.GetRooms(ctx)
}

type brokenCache struct{}

func (brokenCache) Get(context.Context) ([]models.Room, bool, error) {
	return nil, false, errors.New("cache down")
}

func (brokenCache) Set(context.Context, []models.Room, time.Duration) error {
	return errors.New("cache down")
}

func TestListRoomsMemoizesUntilTTL(t *testing.T) {
	store := &countingStore{Store: memoryRepo.NewMemoryStore(repository.DefaultRooms())}
	cache := NewMemoryCache()
	now := time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }
	rc := NewRoomCatalog(store, cache, time.Minute, zap.NewNop())

	ctx := context.Background()
	first, err := rc.ListRooms(ctx)
	require.NoError(t, err)
	second, err := rc.ListRooms(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, store.calls)

	now = now.Add(time.Minute)
	_, err = rc.ListRooms(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, store.calls)
}

func TestListRoomsWithoutTTLAlwaysReadsStore(t *testing.T) {
	store := &countingStore{Store: memoryRepo.NewMemoryStore(repository.DefaultRooms())}
	rc := NewRoomCatalog(store, NewMemoryCache(), 0, zap.NewNop())

	for i := 0; i < 3; i++ {
		_, err := rc.ListRooms(context.Background())
		require.NoError(t, err)
	}
	assert.Equal(t, 3, store.calls)
}

func TestListRoomsFallsThroughBrokenCache(t *testing.T) {
	store := memoryRepo.NewMemoryStore(repository.DefaultRooms())
	rc := NewRoomCatalog(store, brokenCache{}, time.Minute, zap.NewNop())

	rooms, err := rc.ListRooms(context.Background())
	require.NoError(t, err)
	assert.Len(t, rooms, len(repository.DefaultRooms()))
}

func TestCachedRoomsAreIsolated(t *testing.T) {
	rc := NewRoomCatalog(memoryRepo.NewMemoryStore(repository.DefaultRooms()), NewMemoryCache(), time.Minute, zap.NewNop())
	ctx := context.Background()

	rooms, err := rc.ListRooms(ctx)
	require.NoError(t, err)
	rooms[0].Amenities[0] = "tampered"

	again, err := rc.ListRooms(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, "tampered", again[0].Amenities[0])
}

func TestGetRoom(t *testing.T) {
	rc := NewRoomCatalog(memoryRepo.NewMemoryStore(repository.DefaultRooms()), NewMemoryCache(), time.Minute, zap.NewNop())

	room, err := rc.GetRoom(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Garden Villa", room.Name)

	_, err = rc.GetRoom(context.Background(), 42)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
