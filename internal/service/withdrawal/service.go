package withdrawal

import (
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"

	"mines_backend/internal/repository"
	"mines_backend/internal/service"
)

type serv struct {
	ledger    service.LedgerService
	repo      repository.WithdrawalRepository
	txManager trm.Manager
	codeGen   func() (string, error)
	now       func() time.Time
}

func NewWithdrawalService(
	ledger service.LedgerService,
	repo repository.WithdrawalRepository,
	txManager trm.Manager,
) service.WithdrawalService {
	return &serv{
		ledger:    ledger,
		repo:      repo,
		txManager: txManager,
		codeGen:   NewClaimCode,
		now:       time.Now,
	}
}
