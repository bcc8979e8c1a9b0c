package env

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"mines_backend/internal/config"
)

type storageConfig struct {
	DriverName string `env:"STORAGE_DRIVER" envDefault:"sqlite"`
}

func NewStorageConfig() (config.StorageConfig, error) {
	var cfg storageConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}

	cfg.DriverName = strings.ToLower(strings.TrimSpace(cfg.DriverName))
	switch cfg.DriverName {
	case config.DriverPostgres, config.DriverSQLite:
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.DriverName)
	}

	return &cfg, nil
}

func (cfg *storageConfig) Driver() string {
	return cfg.DriverName
}

type sqliteConfig struct {
	PathValue string `env:"SQLITE_PATH" envDefault:"mines.db"`
}

func NewSQLiteConfig() (config.SQLiteConfig, error) {
	var cfg sqliteConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if strings.TrimSpace(cfg.PathValue) == "" {
		return nil, fmt.Errorf("sqlite path is empty")
	}

	return &cfg, nil
}

func (cfg *sqliteConfig) Path() string {
	return cfg.PathValue
}
