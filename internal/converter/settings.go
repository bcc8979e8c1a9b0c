package converter

import (
	"mines_backend/internal/api/dto/admin"
	"mines_backend/internal/api/dto/settings"
	"mines_backend/internal/model"
)

func ToSettingsResponse(s model.Settings, boardSize int) settings.SettingsResponse {
	return settings.SettingsResponse{
		BoardSize:    boardSize,
		HazardCount:  s.HazardCount,
		MineReward:   s.MineReward,
		StartCredits: s.StartCredits,
	}
}

func ToSettingsPatch(req admin.UpdateSettingsRequest) model.SettingsPatch {
	return model.SettingsPatch{
		StartCredits: req.StartCredits,
		MineReward:   req.MineReward,
		HazardCount:  req.HazardCount,
	}
}
