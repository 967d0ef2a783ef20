package config

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, DriverMemory, cfg.StorageDriver)
	assert.Equal(t, DriverMemory, cfg.CacheDriver)
	assert.Equal(t, 5*time.Minute, cfg.RoomCacheTTL)
	assert.Equal(t, 100, cfg.MaxRequestsPerMin)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins())
}

func TestLoadFromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("STORAGE_DRIVER", "Mongo")
	t.Setenv("DATABASE_NAME", "resort_test")
	t.Setenv("ROOM_CACHE_TTL", "30s")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://palmcove.example, http://localhost:3000")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, DriverMongo, cfg.StorageDriver)
	assert.Equal(t, "resort_test", cfg.DatabaseName)
	assert.Equal(t, 30*time.Second, cfg.RoomCacheTTL)
	assert.Equal(t, []string{"https://palmcove.example", "http://localhost:3000"}, cfg.AllowedOrigins())

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("STORAGE_DRIVER", "postgres")

	_, err := Load(viper.New())
	assert.ErrorContains(t, err, "STORAGE_DRIVER")
}

func TestValidateRejectsBadTimezone(t *testing.T) {
	cfg := Config{StorageDriver: DriverMemory, CacheDriver: DriverRedis, Timezone: "Mars/Olympus"}
	assert.ErrorContains(t, cfg.Validate(), "TIMEZONE")
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
