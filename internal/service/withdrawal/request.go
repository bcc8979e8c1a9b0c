package withdrawal

import (
	"context"
	"fmt"
	"strings"

	"mines_backend/internal/model"
)

// RequestWithdrawal - списание и заявка в одной транзакции.
// Если заявку не удалось сохранить, списание откатывается
func (s *serv) RequestWithdrawal(ctx context.Context, req model.WithdrawalRequest) (*model.WithdrawalReceipt, error) {
	req.Kind = strings.TrimSpace(req.Kind)
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", model.ErrInvalidParameters)
	}
	if req.Kind == "" {
		return nil, fmt.Errorf("%w: kind is required", model.ErrInvalidParameters)
	}

	receipt := &model.WithdrawalReceipt{}
	err := s.ledger.WithAccountLock(ctx, req.AccountID, func(lockCtx context.Context) error {
		return s.txManager.Do(lockCtx, func(txCtx context.Context) error {
			code, err := s.uniqueClaimCode(txCtx)
			if err != nil {
				return err
			}

			balance, err := s.ledger.AdjustBalance(txCtx, model.Adjustment{
				AccountID: req.AccountID,
				Delta:     -req.Amount,
				Reason:    model.ReasonWithdrawal,
				Reference: code,
			})
			if err != nil {
				return err
			}

			id, err := s.repo.CreateWithdrawal(txCtx, &model.Withdrawal{
				AccountID: req.AccountID,
				Amount:    req.Amount,
				Kind:      req.Kind,
				ClaimCode: code,
				Status:    model.WithdrawalPending,
				CreatedAt: s.now(),
			})
			if err != nil {
				return err
			}

			receipt.ID = id
			receipt.ClaimCode = code
			receipt.Balance = balance
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return receipt, nil
}
