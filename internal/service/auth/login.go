package auth

import (
	"context"

	"mines_backend/internal/model"
)

func (s *serv) Login(ctx context.Context, username, password string) (*model.AuthData, error) {
	accountID, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}

	return s.openSession(ctx, accountID)
}

func (s *serv) Logout(ctx context.Context, sessionID string) error {
	return s.authRepo.DeleteSession(ctx, sessionID)
}
