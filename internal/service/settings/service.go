package settings

import (
	"context"
	"fmt"

	"github.com/avito-tech/go-transaction-manager/trm/v2"

	"mines_backend/internal/config"
	"mines_backend/internal/model"
	"mines_backend/internal/repository"
	"mines_backend/internal/service"
)

type serv struct {
	repo      repository.SettingsRepository
	txManager trm.Manager
	defaults  config.GameConfig
}

func NewSettingsService(repo repository.SettingsRepository, txManager trm.Manager, defaults config.GameConfig) service.SettingsService {
	return &serv{
		repo:      repo,
		txManager: txManager,
		defaults:  defaults,
	}
}

func (s *serv) BoardSize() int {
	return s.defaults.BoardSize()
}

// Get - значения из конфига, перекрытые сохраненными администратором
func (s *serv) Get(ctx context.Context) (model.Settings, error) {
	stored, err := s.repo.GetSettings(ctx)
	if err != nil {
		return model.Settings{}, err
	}

	result := model.Settings{
		StartCredits: s.defaults.StartCredits(),
		MineReward:   s.defaults.MineReward(),
		HazardCount:  s.defaults.HazardCount(),
	}
	if v, ok := stored[model.SettingStartCredits]; ok {
		result.StartCredits = v
	}
	if v, ok := stored[model.SettingMineReward]; ok {
		result.MineReward = v
	}
	if v, ok := stored[model.SettingHazardCount]; ok {
		result.HazardCount = v
	}

	return result, nil
}

func (s *serv) Update(ctx context.Context, patch model.SettingsPatch) (model.Settings, error) {
	values := patch.Values()
	if len(values) == 0 {
		return model.Settings{}, fmt.Errorf("%w: nothing to update", model.ErrInvalidParameters)
	}
	if err := s.validate(values); err != nil {
		return model.Settings{}, err
	}

	var result model.Settings
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		for name, value := range values {
			if err := s.repo.SetSetting(txCtx, name, value); err != nil {
				return err
			}
		}

		var err error
		result, err = s.Get(txCtx)
		return err
	})
	if err != nil {
		return model.Settings{}, err
	}

	return result, nil
}

func (s *serv) validate(values map[string]int64) error {
	for name, value := range values {
		if value < 0 {
			return fmt.Errorf("%w: %s must not be negative", model.ErrInvalidParameters, name)
		}
	}

	if v, ok := values[model.SettingHazardCount]; ok && v > int64(s.BoardSize()) {
		return fmt.Errorf("%w: %s must not exceed board size %d", model.ErrInvalidParameters, model.SettingHazardCount, s.BoardSize())
	}

	return nil
}
