package env

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mines_backend/internal/config"
)

func TestNewGameConfigFromYAML(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		cfg, err := NewGameConfigFromYAML(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)

		assert.Equal(t, 25, cfg.BoardSize())
		assert.EqualValues(t, 5, cfg.HazardCount())
		assert.EqualValues(t, 100, cfg.StartCredits())
		assert.EqualValues(t, 10, cfg.MineReward())
	})

	t.Run("file overrides only listed keys", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("game:\n  hazard_count: 7\n  start_credits: 250\n"), 0o600))

		cfg, err := NewGameConfigFromYAML(path)
		require.NoError(t, err)

		assert.Equal(t, 25, cfg.BoardSize())
		assert.EqualValues(t, 7, cfg.HazardCount())
		assert.EqualValues(t, 250, cfg.StartCredits())
		assert.EqualValues(t, 10, cfg.MineReward())
	})

	t.Run("hazards above board size are rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("game:\n  board_size: 4\n  hazard_count: 5\n"), 0o600))

		_, err := NewGameConfigFromYAML(path)
		assert.Error(t, err)
	})
}

func TestNewStorageConfig(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "")
	os.Unsetenv("STORAGE_DRIVER")

	cfg, err := NewStorageConfig()
	require.NoError(t, err)
	assert.Equal(t, config.DriverSQLite, cfg.Driver())

	t.Setenv("STORAGE_DRIVER", "Postgres")
	cfg, err = NewStorageConfig()
	require.NoError(t, err)
	assert.Equal(t, config.DriverPostgres, cfg.Driver())

	t.Setenv("STORAGE_DRIVER", "mongo")
	_, err = NewStorageConfig()
	assert.Error(t, err)
}

func TestNewJWTConfig(t *testing.T) {
	t.Setenv("ACCESS_TOKEN", "")
	_, err := NewJWTConfig()
	assert.Error(t, err)

	t.Setenv("ACCESS_TOKEN", "secret")
	t.Setenv("ACCESS_TOKEN_DURATION", "5m")
	t.Setenv("REFRESH_TOKEN_DURATION", "48h")
	cfg, err := NewJWTConfig()
	require.NoError(t, err)

	assert.Equal(t, []byte("secret"), cfg.AccessTokenSecretKey())
	assert.Equal(t, 5*time.Minute, cfg.AccessTokenDuration())
	assert.Equal(t, 48*time.Hour, cfg.RefreshTokenDuration())
}

func TestNewHTTPConfig(t *testing.T) {
	t.Setenv("HTTP_HOST", "127.0.0.1")
	t.Setenv("HTTP_PORT", "8081")

	cfg, err := NewHTTPConfig()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8081", cfg.Address())
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout())
	assert.False(t, cfg.SecureCookies())
}
