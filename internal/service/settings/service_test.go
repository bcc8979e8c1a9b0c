package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mines_backend/internal/model"
	"mines_backend/internal/repository/settings_repo"
	"mines_backend/internal/testutil"
)

type gameDefaults struct{}

func (gameDefaults) BoardSize() int      { return 25 }
func (gameDefaults) HazardCount() int64  { return 5 }
func (gameDefaults) StartCredits() int64 { return 100 }
func (gameDefaults) MineReward() int64   { return 10 }

func newService(t *testing.T) *serv {
	t.Helper()

	store := testutil.NewSQLiteStore(t)
	return NewSettingsService(settings_repo.NewSQLiteRepository(store.DB), store.TxManager, gameDefaults{}).(*serv)
}

func ptr(v int64) *int64 { return &v }

func TestGetFallsBackToDefaults(t *testing.T) {
	s := newService(t)

	got, err := s.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.Settings{StartCredits: 100, MineReward: 10, HazardCount: 5}, got)
	assert.Equal(t, 25, s.BoardSize())
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	s := newService(t)

	got, err := s.Update(ctx, model.SettingsPatch{MineReward: ptr(15)})
	require.NoError(t, err)
	assert.Equal(t, model.Settings{StartCredits: 100, MineReward: 15, HazardCount: 5}, got)

	got, err = s.Update(ctx, model.SettingsPatch{StartCredits: ptr(0), HazardCount: ptr(25)})
	require.NoError(t, err)
	assert.Equal(t, model.Settings{StartCredits: 0, MineReward: 15, HazardCount: 25}, got)

	got, err = s.Get(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 15, got.MineReward)
}

func TestUpdateValidation(t *testing.T) {
	ctx := context.Background()
	s := newService(t)

	for name, patch := range map[string]model.SettingsPatch{
		"empty":            {},
		"negative reward":  {MineReward: ptr(-1)},
		"negative credits": {StartCredits: ptr(-5)},
		"too many hazards": {HazardCount: ptr(26)},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := s.Update(ctx, patch)
			assert.ErrorIs(t, err, model.ErrInvalidParameters)
		})
	}

	got, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.Settings{StartCredits: 100, MineReward: 10, HazardCount: 5}, got)
}
