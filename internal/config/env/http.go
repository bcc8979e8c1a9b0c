package env

import (
	"net"
	"time"

	"github.com/caarlos0/env/v11"

	"mines_backend/internal/config"
)

type httpConfig struct {
	Host     string        `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port     string        `env:"HTTP_PORT" envDefault:"3000"`
	Shutdown time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	Secure   bool          `env:"HTTP_SECURE_COOKIES" envDefault:"false"`
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	var cfg httpConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (cfg *httpConfig) Address() string {
	return net.JoinHostPort(cfg.Host, cfg.Port)
}

func (cfg *httpConfig) ShutdownTimeout() time.Duration {
	return cfg.Shutdown
}

func (cfg *httpConfig) SecureCookies() bool {
	return cfg.Secure
}
