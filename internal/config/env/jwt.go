package env

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"mines_backend/internal/config"
)

type jwtConfig struct {
	RefreshTokenTTL time.Duration `env:"REFRESH_TOKEN_DURATION" envDefault:"720h"`
	AccessTokenKey  string        `env:"ACCESS_TOKEN"`
	AccessTokenTTL  time.Duration `env:"ACCESS_TOKEN_DURATION" envDefault:"15m"`
}

func NewJWTConfig() (config.JWTConfig, error) {
	var cfg jwtConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("invalid jwt config: %w", err)
	}

	if len(cfg.AccessTokenKey) == 0 {
		return nil, fmt.Errorf("access token secret key not found")
	}
	if cfg.AccessTokenTTL <= 0 {
		return nil, fmt.Errorf("invalid access token duration: %s", cfg.AccessTokenTTL)
	}
	if cfg.RefreshTokenTTL <= 0 {
		return nil, fmt.Errorf("invalid refresh token duration: %s", cfg.RefreshTokenTTL)
	}

	return &cfg, nil
}

func (j *jwtConfig) AccessTokenSecretKey() []byte {
	return []byte(j.AccessTokenKey)
}

func (j *jwtConfig) RefreshTokenDuration() time.Duration {
	return j.RefreshTokenTTL
}

func (j *jwtConfig) AccessTokenDuration() time.Duration {
	return j.AccessTokenTTL
}
