package auth

import (
	"context"

	"github.com/google/uuid"

	"mines_backend/internal/model"
	"mines_backend/pkg/token"
)

// openSession создает сессию с refresh токеном и выпускает access токен
func (s *serv) openSession(ctx context.Context, accountID int64) (*model.AuthData, error) {
	refreshToken, err := token.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}

	sessionID := uuid.NewString()
	err = s.authRepo.CreateSession(ctx, &model.Session{
		ID:           sessionID,
		AccountID:    accountID,
		RefreshToken: token.HashRefreshToken(refreshToken),
		ExpiresAt:    s.now().Add(s.jwtConfig.RefreshTokenDuration()),
	})
	if err != nil {
		return nil, err
	}

	accessToken, err := token.GenerateAccessToken(
		accountID,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
	if err != nil {
		return nil, err
	}

	return &model.AuthData{
		AccountID:    accountID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    sessionID,
	}, nil
}
