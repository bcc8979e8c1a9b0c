package withdrawal

import (
	"context"
	"fmt"

	"mines_backend/internal/model"
)

// Approve переводит заявку PENDING -> COMPLETED. Повторное одобрение ничего не меняет
func (s *serv) Approve(ctx context.Context, requestID int64) error {
	updated, err := s.repo.UpdateStatus(ctx, requestID, model.WithdrawalPending, model.WithdrawalCompleted)
	if err != nil {
		return err
	}
	if updated {
		return nil
	}

	// Строка не изменилась: заявки нет или она уже не в PENDING
	w, err := s.repo.GetWithdrawal(ctx, requestID)
	if err != nil {
		return err
	}
	if w.Status == model.WithdrawalCompleted {
		return nil
	}

	return fmt.Errorf("%w: withdrawal %d is %s", model.ErrInvalidParameters, requestID, w.Status)
}
