package model

import "time"

// EntryReason - причина изменения баланса
type EntryReason string

const (
	ReasonRegistration EntryReason = "REGISTRATION"
	ReasonRound        EntryReason = "ROUND"
	ReasonWithdrawal   EntryReason = "WITHDRAWAL"
	ReasonAdmin        EntryReason = "ADMIN"
)

// LedgerEntry - запись журнала об одном изменении баланса
type LedgerEntry struct {
	ID           int64
	AccountID    int64
	Delta        int64
	BalanceAfter int64
	Reason       EntryReason
	Reference    string
	CreatedAt    time.Time
}

// Adjustment - запрос на изменение баланса
type Adjustment struct {
	AccountID int64
	Delta     int64
	Reason    EntryReason
	Reference string
}
