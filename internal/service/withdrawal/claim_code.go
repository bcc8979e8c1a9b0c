package withdrawal

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"mines_backend/internal/model"
)

const (
	claimPrefix   = "GP-"
	claimAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	claimLength   = 7

	maxClaimAttempts = 10
)

// NewClaimCode - код вида GP-XXXXXXX из [A-Z0-9]
func NewClaimCode() (string, error) {
	buf := make([]byte, claimLength)
	limit := big.NewInt(int64(len(claimAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("generate claim code: %w", err)
		}
		buf[i] = claimAlphabet[n.Int64()]
	}
	return claimPrefix + string(buf), nil
}

// uniqueClaimCode генерирует коды, пока не найдет свободный.
// Уникальный индекс в таблице остается последней проверкой
func (s *serv) uniqueClaimCode(ctx context.Context) (string, error) {
	for range maxClaimAttempts {
		code, err := s.codeGen()
		if err != nil {
			return "", err
		}

		exists, err := s.repo.ClaimCodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}

	return "", fmt.Errorf("%w: no free code after %d attempts", model.ErrDuplicateClaimCode, maxClaimAttempts)
}
