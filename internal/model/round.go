package model

// Round - результат одной раздачи мин. Не сохраняется.
type Round struct {
	BoardSize   int
	HazardCount int
	Hazards     []int
	MineReward  int64
}

type RoundReport struct {
	AccountID int64
	Delta     int64
}
