package admin

import (
	"crypto/sha256"
	"crypto/subtle"

	"mines_backend/internal/service"
)

type serv struct {
	secretHash  [sha256.Size]byte
	enabled     bool
	ledger      service.LedgerService
	directory   service.AccountDirectory
	settings    service.SettingsService
	withdrawals service.WithdrawalService
}

// NewAdminService - пустой secret отключает все привилегированные операции
func NewAdminService(
	secret string,
	ledger service.LedgerService,
	directory service.AccountDirectory,
	settings service.SettingsService,
	withdrawals service.WithdrawalService,
) service.AdminService {
	return &serv{
		secretHash:  sha256.Sum256([]byte(secret)),
		enabled:     secret != "",
		ledger:      ledger,
		directory:   directory,
		settings:    settings,
		withdrawals: withdrawals,
	}
}

// Authorize сравнивает хэши, чтобы время сравнения не зависело от длины и содержимого
func (s *serv) Authorize(secret string) bool {
	if !s.enabled {
		return false
	}
	given := sha256.Sum256([]byte(secret))
	return subtle.ConstantTimeCompare(given[:], s.secretHash[:]) == 1
}
