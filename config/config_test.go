package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("APP_CORS_ALLOWED_ORIGINS", "https://desk.example.com,https://admin.example.com")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"https://desk.example.com", "https://admin.example.com"}, cfg.App.CORS.AllowedOrigins)
	assert.Equal(t, "TH", cfg.Hotel.PhoneRegion)
	assert.Equal(t, 10, cfg.Hotel.TopRooms)
	assert.True(t, cfg.Housekeeping.RolloverEnable)
	assert.Equal(t, 120, cfg.Housekeeping.ConfirmationTTLSeconds)
	assert.Equal(t, "frontdesk.booking", cfg.Kafka.Topics.Booking)
}

func TestLoad_DotenvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("HOTEL_NAME_EN=Riverside Inn\nDB_POSTGRES_WRITE_HOST=db\n"), 0o600))

	t.Cleanup(func() {
		_ = os.Unsetenv("HOTEL_NAME_EN")
		_ = os.Unsetenv("DB_POSTGRES_WRITE_HOST")
	})

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Riverside Inn", cfg.Hotel.NameEn)
	assert.Equal(t, "db", cfg.DB.Postgres.Write.Host)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("HOTEL_TOP_ROOMS_LIMIT", "many")

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestRedisNode_Addr(t *testing.T) {
	node := config.RedisNode{Host: "cache", Port: "6379"}

	assert.Equal(t, "cache:6379", node.Addr())
}
