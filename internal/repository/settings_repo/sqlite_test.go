package settings_repo

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mines_backend/internal/model"
	"mines_backend/internal/storage/sqlite"
)

func TestSQLiteSettingsUpsert(t *testing.T) {
	ctx := context.Background()
	db, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "settings.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewSQLiteRepository(db)

	values, err := repo.GetSettings(ctx)
	require.NoError(t, err)
	assert.Empty(t, values)

	require.NoError(t, repo.SetSetting(ctx, model.SettingMineReward, 10))
	require.NoError(t, repo.SetSetting(ctx, model.SettingMineReward, 25))
	require.NoError(t, repo.SetSetting(ctx, model.SettingStartCredits, 100))

	values, err = repo.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{
		model.SettingMineReward:   25,
		model.SettingStartCredits: 100,
	}, values)
}
