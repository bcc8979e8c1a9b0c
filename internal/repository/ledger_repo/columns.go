package ledger_repo

const (
	tableAccounts   = "accounts"
	colID           = "id"
	colUsername     = "username"
	colPasswordHash = "password_hash"
	colBalance      = "balance"
	colJoinedOn     = "joined_on"

	tableEntries    = "ledger_entries"
	colAccountID    = "account_id"
	colDelta        = "delta"
	colBalanceAfter = "balance_after"
	colReason       = "reason"
	colReference    = "reference"
	colCreatedAt    = "created_at"
)

var (
	accountColumns = []string{colID, colUsername, colPasswordHash, colBalance, colJoinedOn}
	entryColumns   = []string{colID, colAccountID, colDelta, colBalanceAfter, colReason, colReference, colCreatedAt}
)
