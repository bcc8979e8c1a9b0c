package admin

import (
	"context"

	"mines_backend/internal/model"
)

// AdjustBalance начисляет или списывает кредиты по имени пользователя. Аккаунт не создается
func (s *serv) AdjustBalance(ctx context.Context, secret, username string, delta int64) (int64, error) {
	if !s.Authorize(secret) {
		return 0, model.ErrUnauthorized
	}

	account, err := s.directory.Lookup(ctx, username)
	if err != nil {
		return 0, err
	}

	return s.ledger.AdjustBalance(ctx, model.Adjustment{
		AccountID: account.ID,
		Delta:     delta,
		Reason:    model.ReasonAdmin,
	})
}

func (s *serv) UpdateSettings(ctx context.Context, secret string, patch model.SettingsPatch) (model.Settings, error) {
	if !s.Authorize(secret) {
		return model.Settings{}, model.ErrUnauthorized
	}
	return s.settings.Update(ctx, patch)
}

func (s *serv) ApproveWithdrawal(ctx context.Context, secret string, requestID int64) (*model.Withdrawal, error) {
	if !s.Authorize(secret) {
		return nil, model.ErrUnauthorized
	}

	if err := s.withdrawals.Approve(ctx, requestID); err != nil {
		return nil, err
	}
	return s.withdrawals.Get(ctx, requestID)
}

func (s *serv) ListPendingWithdrawals(ctx context.Context, secret string) ([]model.Withdrawal, error) {
	if !s.Authorize(secret) {
		return nil, model.ErrUnauthorized
	}
	return s.withdrawals.ListPending(ctx)
}

func (s *serv) ListAccounts(ctx context.Context, secret string) ([]model.Account, error) {
	if !s.Authorize(secret) {
		return nil, model.ErrUnauthorized
	}
	return s.ledger.ListAccounts(ctx)
}
