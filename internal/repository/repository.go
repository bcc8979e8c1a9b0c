package repository

import (
	"context"

	"mines_backend/internal/model"
)

// LedgerRepository - аккаунты и журнал изменений баланса.
// Все методы работают в транзакции из ctx, если она есть.
type LedgerRepository interface {
	CreateAccount(ctx context.Context, account *model.Account) (id int64, err error)
	GetAccountByID(ctx context.Context, id int64) (*model.Account, error)
	GetAccountByUsername(ctx context.Context, username string) (*model.Account, error)
	ListAccounts(ctx context.Context) ([]model.Account, error)

	GetBalance(ctx context.Context, id int64) (int64, error)
	// AddBalance атомарно прибавляет delta к балансу, если результат не уходит в минус.
	// Возвращает model.ErrInsufficientFunds или model.ErrAccountNotFound
	AddBalance(ctx context.Context, id int64, delta int64) (newBalance int64, err error)

	CreateEntry(ctx context.Context, entry *model.LedgerEntry) (id int64, err error)
	ListEntries(ctx context.Context, accountID int64, limit uint64) ([]model.LedgerEntry, error)
}

type WithdrawalRepository interface {
	CreateWithdrawal(ctx context.Context, w *model.Withdrawal) (id int64, err error)
	GetWithdrawal(ctx context.Context, id int64) (*model.Withdrawal, error)
	ClaimCodeExists(ctx context.Context, code string) (bool, error)
	ListByStatus(ctx context.Context, status model.WithdrawalStatus) ([]model.Withdrawal, error)
	ListByAccount(ctx context.Context, accountID int64) ([]model.Withdrawal, error)
	// UpdateStatus меняет статус только если текущий равен from. Возвращает false, если строка не изменилась
	UpdateStatus(ctx context.Context, id int64, from, to model.WithdrawalStatus) (bool, error)
}

type SettingsRepository interface {
	// GetSettings возвращает только сохраненные значения
	GetSettings(ctx context.Context) (map[string]int64, error)
	SetSetting(ctx context.Context, name string, value int64) error
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, sessionID string) (*model.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
