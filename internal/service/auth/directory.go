package auth

import (
	"context"
	"errors"

	"mines_backend/internal/model"
)

// Authenticate не различает неизвестное имя и неверный пароль
func (s *serv) Authenticate(ctx context.Context, username, password string) (int64, error) {
	account, err := s.ledgerRepo.GetAccountByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrAccountNotFound) {
			return 0, model.ErrAuthFailure
		}
		return 0, err
	}

	if !s.hasher.Verify(password, account.PasswordHash) {
		return 0, model.ErrAuthFailure
	}

	return account.ID, nil
}

func (s *serv) Lookup(ctx context.Context, username string) (*model.Account, error) {
	return s.ledgerRepo.GetAccountByUsername(ctx, username)
}
