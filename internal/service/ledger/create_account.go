package ledger

import (
	"context"
	"fmt"
	"strings"

	"mines_backend/internal/model"
)

// CreateAccount - заводит аккаунт со стартовым балансом.
// Стартовое начисление попадает в журнал в той же транзакции
func (s *serv) CreateAccount(ctx context.Context, username, credentialHash string, startingBalance int64) (int64, error) {
	username = strings.TrimSpace(username)
	if username == "" || credentialHash == "" {
		return 0, fmt.Errorf("%w: username and credential are required", model.ErrInvalidParameters)
	}
	if startingBalance < 0 {
		return 0, fmt.Errorf("%w: starting balance must not be negative", model.ErrInvalidParameters)
	}

	now := s.now()

	var id int64
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		id, err = s.repo.CreateAccount(txCtx, &model.Account{
			Username:     username,
			PasswordHash: credentialHash,
			Balance:      startingBalance,
			JoinedOn:     model.JoinedToday(now),
		})
		if err != nil {
			return err
		}

		if startingBalance == 0 {
			return nil
		}

		_, err = s.repo.CreateEntry(txCtx, &model.LedgerEntry{
			AccountID:    id,
			Delta:        startingBalance,
			BalanceAfter: startingBalance,
			Reason:       model.ReasonRegistration,
			CreatedAt:    now,
		})
		return err
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}
