package env

import (
	"log/slog"

	"github.com/caarlos0/env/v11"

	"mines_backend/internal/config"
)

type adminConfig struct {
	SecretValue string `env:"ADMIN_SECRET"`
}

// NewAdminConfig - секрет администратора. Пустой секрет не авторизует никого.
func NewAdminConfig() (config.AdminConfig, error) {
	var cfg adminConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if cfg.SecretValue == "" {
		slog.Warn("ADMIN_SECRET is empty, admin endpoints are disabled")
	}

	return &cfg, nil
}

func (cfg *adminConfig) Secret() string {
	return cfg.SecretValue
}
