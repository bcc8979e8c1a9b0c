package model

import "time"

type WithdrawalStatus string

const (
	WithdrawalPending   WithdrawalStatus = "PENDING"
	WithdrawalCompleted WithdrawalStatus = "COMPLETED"
	// WithdrawalRejected зарезервирован: переходов в него нет, пока не определена политика возврата
	WithdrawalRejected WithdrawalStatus = "REJECTED"
)

type Withdrawal struct {
	ID         int64
	AccountID  int64
	Amount     int64
	Kind       string
	ClaimCode  string
	Status     WithdrawalStatus
	CreatedAt  time.Time
	ResolvedAt *time.Time
}

type WithdrawalRequest struct {
	AccountID int64
	Amount    int64
	Kind      string
}

type WithdrawalReceipt struct {
	ID        int64
	ClaimCode string
	Balance   int64
}
