package admin

type AddCreditsRequest struct {
	Username string `json:"username"`
	Amount   int64  `json:"amount"` // Может быть отрицательным
}

type AddCreditsResponse struct {
	Username string `json:"username"`
	Balance  int64  `json:"balance"`
}

type UpdateSettingsRequest struct {
	StartCredits *int64 `json:"start_credits,omitempty"`
	MineReward   *int64 `json:"mine_reward,omitempty"`
	HazardCount  *int64 `json:"hazard_count,omitempty"`
}
