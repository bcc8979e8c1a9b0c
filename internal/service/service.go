package service

import (
	"context"

	"mines_backend/internal/model"
)

// LedgerService - единственная точка изменения баланса
type LedgerService interface {
	CreateAccount(ctx context.Context, username, credentialHash string, startingBalance int64) (int64, error)
	AdjustBalance(ctx context.Context, adj model.Adjustment) (newBalance int64, err error)
	GetBalance(ctx context.Context, accountID int64) (int64, error)
	GetAccount(ctx context.Context, accountID int64) (*model.Account, error)
	History(ctx context.Context, accountID int64, limit uint64) ([]model.LedgerEntry, error)
	ListAccounts(ctx context.Context) ([]model.Account, error)
	// WithAccountLock выполняет fn под блокировкой аккаунта.
	// AdjustBalance этого аккаунта внутри fn повторно не блокирует
	WithAccountLock(ctx context.Context, accountID int64, fn func(ctx context.Context) error) error
}

type WithdrawalService interface {
	RequestWithdrawal(ctx context.Context, req model.WithdrawalRequest) (*model.WithdrawalReceipt, error)
	ListPending(ctx context.Context) ([]model.Withdrawal, error)
	Approve(ctx context.Context, requestID int64) error
	Get(ctx context.Context, requestID int64) (*model.Withdrawal, error)
	ListForAccount(ctx context.Context, accountID int64) ([]model.Withdrawal, error)
}

type SettingsService interface {
	Get(ctx context.Context) (model.Settings, error)
	Update(ctx context.Context, patch model.SettingsPatch) (model.Settings, error)
	BoardSize() int
}

type GameService interface {
	StartRound(ctx context.Context) (*model.Round, error)
	ReportRound(ctx context.Context, report model.RoundReport) (newBalance int64, err error)
}

// AccountDirectory - идентификация аккаунтов
type AccountDirectory interface {
	Authenticate(ctx context.Context, username, password string) (accountID int64, err error)
	Lookup(ctx context.Context, username string) (*model.Account, error)
}

type AuthService interface {
	AccountDirectory

	Register(ctx context.Context, username, password string) (*model.AuthData, error)
	Login(ctx context.Context, username, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, sessionID, refreshToken string) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}

// AdminService - все привилегированные операции проходят через проверку секрета
type AdminService interface {
	Authorize(secret string) bool

	AdjustBalance(ctx context.Context, secret, username string, delta int64) (newBalance int64, err error)
	UpdateSettings(ctx context.Context, secret string, patch model.SettingsPatch) (model.Settings, error)
	ApproveWithdrawal(ctx context.Context, secret string, requestID int64) (*model.Withdrawal, error)
	ListPendingWithdrawals(ctx context.Context, secret string) ([]model.Withdrawal, error)
	ListAccounts(ctx context.Context, secret string) ([]model.Account, error)
}
