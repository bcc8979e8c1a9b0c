package ledger

import (
	"context"
	"fmt"

	"mines_backend/internal/model"
)

// AdjustBalance - balance += delta. Уход в минус отклоняется для любого вызывающего,
// баланс при ошибке не меняется
func (s *serv) AdjustBalance(ctx context.Context, adj model.Adjustment) (int64, error) {
	if adj.Reason == "" {
		return 0, fmt.Errorf("%w: adjustment reason is required", model.ErrInvalidParameters)
	}

	var balance int64
	err := s.WithAccountLock(ctx, adj.AccountID, func(lockCtx context.Context) error {
		return s.txManager.Do(lockCtx, func(txCtx context.Context) error {
			var err error
			// Чтение и запись одним условным UPDATE
			balance, err = s.repo.AddBalance(txCtx, adj.AccountID, adj.Delta)
			if err != nil {
				return err
			}

			if adj.Delta == 0 {
				return nil
			}

			_, err = s.repo.CreateEntry(txCtx, &model.LedgerEntry{
				AccountID:    adj.AccountID,
				Delta:        adj.Delta,
				BalanceAfter: balance,
				Reason:       adj.Reason,
				Reference:    adj.Reference,
				CreatedAt:    s.now(),
			})
			return err
		})
	})
	if err != nil {
		return 0, err
	}

	return balance, nil
}
