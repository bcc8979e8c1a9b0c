package withdrawal_repo

import (
	"fmt"

	"mines_backend/internal/model"
)

const (
	table         = "withdrawals"
	colID         = "id"
	colAccountID  = "account_id"
	colAmount     = "amount"
	colKind       = "kind"
	colClaimCode  = "claim_code"
	colStatus     = "status"
	colCreatedAt  = "created_at"
	colResolvedAt = "resolved_at"
)

var columns = []string{colID, colAccountID, colAmount, colKind, colClaimCode, colStatus, colCreatedAt, colResolvedAt}

func persistence(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, model.ErrPersistence, err)
}
