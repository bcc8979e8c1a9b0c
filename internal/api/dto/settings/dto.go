package settings

type SettingsResponse struct {
	BoardSize    int   `json:"board_size"`
	HazardCount  int64 `json:"hazard_count"`
	MineReward   int64 `json:"mine_reward"`
	StartCredits int64 `json:"start_credits"`
}
