package withdrawal

import "time"

type CreateRequest struct {
	Amount int64  `json:"amount"`
	Kind   string `json:"kind"` // Тип награды, свободный текст
}

type ReceiptResponse struct {
	ID        int64  `json:"id"`
	ClaimCode string `json:"claim_code"`
	Balance   int64  `json:"balance"`
}

type WithdrawalResponse struct {
	ID         int64      `json:"id"`
	AccountID  int64      `json:"account_id"`
	Amount     int64      `json:"amount"`
	Kind       string     `json:"kind"`
	ClaimCode  string     `json:"claim_code"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}
