package auth

import (
	"context"

	"mines_backend/internal/model"
	"mines_backend/pkg/token"
)

func (s *serv) Refresh(ctx context.Context, sessionID, refreshToken string) (string, error) {
	// Сессия по sessionID
	session, err := s.authRepo.GetSession(ctx, sessionID)
	if err != nil {
		return "", err
	}

	// Просроченная сессия удаляется
	if !s.now().Before(session.ExpiresAt) {
		if err := s.authRepo.DeleteSession(ctx, sessionID); err != nil {
			return "", err
		}
		return "", model.ErrSessionNotFound
	}

	if !token.VerifyRefreshToken(refreshToken, session.RefreshToken) {
		return "", model.ErrAuthFailure
	}

	return token.GenerateAccessToken(
		session.AccountID,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
}
