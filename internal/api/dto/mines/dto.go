package mines

type RoundResponse struct {
	BoardSize   int   `json:"board_size"`
	HazardCount int   `json:"hazard_count"`
	Hazards     []int `json:"hazards"`     // Индексы мин по возрастанию
	MineReward  int64 `json:"mine_reward"` // Награда за каждую открытую безопасную ячейку
}

type ResultRequest struct {
	Delta int64 `json:"delta"` // Итог раунда: выигрыш минус ставка
}

type BalanceResponse struct {
	Balance int64 `json:"balance"`
}
