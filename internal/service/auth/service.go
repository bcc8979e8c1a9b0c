package auth

import (
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"

	"mines_backend/internal/config"
	"mines_backend/internal/repository"
	"mines_backend/internal/service"
	"mines_backend/pkg/pass"
)

type serv struct {
	txManager  trm.Manager
	ledger     service.LedgerService
	settings   service.SettingsService
	ledgerRepo repository.LedgerRepository
	authRepo   repository.AuthRepository
	hasher     pass.Hasher
	jwtConfig  config.JWTConfig
	now        func() time.Time
}

func NewAuthService(
	txManager trm.Manager,
	ledger service.LedgerService,
	settings service.SettingsService,
	ledgerRepo repository.LedgerRepository,
	authRepo repository.AuthRepository,
	hasher pass.Hasher,
	jwtConfig config.JWTConfig,
) service.AuthService {
	return &serv{
		txManager:  txManager,
		ledger:     ledger,
		settings:   settings,
		ledgerRepo: ledgerRepo,
		authRepo:   authRepo,
		hasher:     hasher,
		jwtConfig:  jwtConfig,
		now:        time.Now,
	}
}
