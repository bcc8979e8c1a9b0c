package model

const (
	SettingStartCredits = "startCredits"
	SettingMineReward   = "mineReward"
	SettingHazardCount  = "hazardCount"
)

// Settings - параметры платформы, изменяемые администратором
type Settings struct {
	StartCredits int64
	MineReward   int64
	HazardCount  int64
}

// SettingsPatch - только те поля, которые администратор хочет изменить
type SettingsPatch struct {
	StartCredits *int64
	MineReward   *int64
	HazardCount  *int64
}

// Apply возвращает копию s с применёнными изменениями
func (p SettingsPatch) Apply(s Settings) Settings {
	if p.StartCredits != nil {
		s.StartCredits = *p.StartCredits
	}
	if p.MineReward != nil {
		s.MineReward = *p.MineReward
	}
	if p.HazardCount != nil {
		s.HazardCount = *p.HazardCount
	}
	return s
}

// Values раскладывает патч в пары имя/значение
func (p SettingsPatch) Values() map[string]int64 {
	values := make(map[string]int64, 3)
	if p.StartCredits != nil {
		values[SettingStartCredits] = *p.StartCredits
	}
	if p.MineReward != nil {
		values[SettingMineReward] = *p.MineReward
	}
	if p.HazardCount != nil {
		values[SettingHazardCount] = *p.HazardCount
	}
	return values
}
