// Package ledger владеет балансами аккаунтов.
//
// Порядок блокировок: сначала блокировка аккаунта, потом транзакция.
// Код, которому нужно списание внутри своей транзакции, берет блокировку через
// WithAccountLock до txManager.Do, иначе на SQLite (одно соединение) возможна взаимная блокировка.
package ledger

import (
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"

	"mines_backend/internal/repository"
	"mines_backend/internal/service"
	"mines_backend/pkg/keylock"
)

type serv struct {
	repo      repository.LedgerRepository
	txManager trm.Manager
	locks     *keylock.Locker[int64]
	now       func() time.Time
}

func NewLedgerService(repo repository.LedgerRepository, txManager trm.Manager) service.LedgerService {
	return &serv{
		repo:      repo,
		txManager: txManager,
		locks:     keylock.New[int64](),
		now:       time.Now,
	}
}
