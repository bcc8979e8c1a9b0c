package withdrawal

import (
	"context"

	"mines_backend/internal/model"
)

// ListPending - очередь на одобрение, старые заявки первыми
func (s *serv) ListPending(ctx context.Context) ([]model.Withdrawal, error) {
	return s.repo.ListByStatus(ctx, model.WithdrawalPending)
}

func (s *serv) Get(ctx context.Context, requestID int64) (*model.Withdrawal, error) {
	return s.repo.GetWithdrawal(ctx, requestID)
}

func (s *serv) ListForAccount(ctx context.Context, accountID int64) ([]model.Withdrawal, error) {
	return s.repo.ListByAccount(ctx, accountID)
}
