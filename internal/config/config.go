package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// GameConfig - значения по умолчанию для игры и стартовых настроек платформы
type GameConfig interface {
	BoardSize() int
	HazardCount() int64
	StartCredits() int64
	MineReward() int64
}

type HTTPConfig interface {
	Address() string
	ShutdownTimeout() time.Duration
	SecureCookies() bool
}

type StorageConfig interface {
	Driver() string
}

type PGConfig interface {
	DSN() string
}

type SQLiteConfig interface {
	Path() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}

type AdminConfig interface {
	Secret() string
}
