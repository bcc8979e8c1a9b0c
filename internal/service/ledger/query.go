package ledger

import (
	"context"

	"mines_backend/internal/model"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

func (s *serv) GetBalance(ctx context.Context, accountID int64) (int64, error) {
	return s.repo.GetBalance(ctx, accountID)
}

func (s *serv) GetAccount(ctx context.Context, accountID int64) (*model.Account, error) {
	return s.repo.GetAccountByID(ctx, accountID)
}

// History - журнал изменений баланса, новые записи первыми
func (s *serv) History(ctx context.Context, accountID int64, limit uint64) ([]model.LedgerEntry, error) {
	switch {
	case limit == 0:
		limit = defaultHistoryLimit
	case limit > maxHistoryLimit:
		limit = maxHistoryLimit
	}

	if _, err := s.repo.GetBalance(ctx, accountID); err != nil {
		return nil, err
	}

	return s.repo.ListEntries(ctx, accountID, limit)
}

func (s *serv) ListAccounts(ctx context.Context) ([]model.Account, error) {
	return s.repo.ListAccounts(ctx)
}
