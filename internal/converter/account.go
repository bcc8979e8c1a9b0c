package converter

import (
	"mines_backend/internal/api/dto/account"
	"mines_backend/internal/model"
)

func ToAccountResponse(acc model.Account) account.AccountResponse {
	return account.AccountResponse{
		ID:       acc.ID,
		Username: acc.Username,
		Balance:  acc.Balance,
		Joined:   acc.JoinedOn,
	}
}

func ToAccountsResponse(accounts []model.Account) []account.AccountResponse {
	result := make([]account.AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = ToAccountResponse(a)
	}
	return result
}

func ToEntriesResponse(entries []model.LedgerEntry) []account.EntryResponse {
	result := make([]account.EntryResponse, len(entries))
	for i, e := range entries {
		result[i] = account.EntryResponse{
			ID:           e.ID,
			Delta:        e.Delta,
			BalanceAfter: e.BalanceAfter,
			Reason:       string(e.Reason),
			Reference:    e.Reference,
			CreatedAt:    e.CreatedAt,
		}
	}
	return result
}
