package auth

import (
	"context"
	"fmt"
	"regexp"
	"unicode/utf8"

	"mines_backend/internal/model"
)

const minPasswordLength = 6

var usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]{3,32}$`)

func (s *serv) Register(ctx context.Context, username, password string) (*model.AuthData, error) {
	if !usernameRe.MatchString(username) {
		return nil, fmt.Errorf("%w: username must be 3-32 letters, digits or underscores", model.ErrInvalidParameters)
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", model.ErrInvalidParameters, minPasswordLength)
	}

	// Хэширование пароля до транзакции
	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	current, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	var data *model.AuthData
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Аккаунт со стартовыми кредитами
		accountID, err := s.ledger.CreateAccount(txCtx, username, passwordHash, current.StartCredits)
		if err != nil {
			return err
		}

		// 2. Сессия и токены
		data, err = s.openSession(txCtx, accountID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return data, nil
}
