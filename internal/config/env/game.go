package env

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"mines_backend/internal/config"
)

const (
	gameConfigPathEnvName = "GAME_CONFIG_PATH"
	defaultGameConfigPath = "config.yaml"

	defaultBoardSize    = 25
	defaultHazardCount  = 5
	defaultStartCredits = 100
	defaultMineReward   = 10
)

type gameFile struct {
	Game gameConfig `yaml:"game"`
}

type gameConfig struct {
	Board        int   `yaml:"board_size"`
	Hazards      int64 `yaml:"hazard_count"`
	Start        int64 `yaml:"start_credits"`
	RewardPerHit int64 `yaml:"mine_reward"`
}

// GameConfigPath - путь к yaml файлу с настройками игры
func GameConfigPath() string {
	if p := os.Getenv(gameConfigPathEnvName); p != "" {
		return p
	}
	return defaultGameConfigPath
}

// NewGameConfigFromYAML читает настройки игры из yaml.
// Если файла нет, используются значения по умолчанию.
func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	file := gameFile{Game: gameConfig{
		Board:        defaultBoardSize,
		Hazards:      defaultHazardCount,
		Start:        defaultStartCredits,
		RewardPerHit: defaultMineReward,
	}}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return &file.Game, nil
	case err != nil:
		return nil, fmt.Errorf("read game config: %w", err)
	}

	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse game config: %w", err)
	}

	if err := file.Game.validate(); err != nil {
		return nil, err
	}

	return &file.Game, nil
}

func (g *gameConfig) validate() error {
	if g.Board <= 0 {
		return fmt.Errorf("board_size must be positive, got %d", g.Board)
	}
	if g.Hazards < 0 || g.Hazards > int64(g.Board) {
		return fmt.Errorf("hazard_count must be in [0, %d], got %d", g.Board, g.Hazards)
	}
	if g.Start < 0 {
		return fmt.Errorf("start_credits must not be negative, got %d", g.Start)
	}
	if g.RewardPerHit < 0 {
		return fmt.Errorf("mine_reward must not be negative, got %d", g.RewardPerHit)
	}
	return nil
}

func (g *gameConfig) BoardSize() int {
	return g.Board
}

func (g *gameConfig) HazardCount() int64 {
	return g.Hazards
}

func (g *gameConfig) StartCredits() int64 {
	return g.Start
}

func (g *gameConfig) MineReward() int64 {
	return g.RewardPerHit
}
