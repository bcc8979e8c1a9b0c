package converter

import (
	"mines_backend/internal/api/dto/withdrawal"
	"mines_backend/internal/model"
)

func ToWithdrawalRequest(accountID int64, req withdrawal.CreateRequest) model.WithdrawalRequest {
	return model.WithdrawalRequest{
		AccountID: accountID,
		Amount:    req.Amount,
		Kind:      req.Kind,
	}
}

func ToReceiptResponse(r model.WithdrawalReceipt) withdrawal.ReceiptResponse {
	return withdrawal.ReceiptResponse{
		ID:        r.ID,
		ClaimCode: r.ClaimCode,
		Balance:   r.Balance,
	}
}

func ToWithdrawalResponse(w model.Withdrawal) withdrawal.WithdrawalResponse {
	return withdrawal.WithdrawalResponse{
		ID:         w.ID,
		AccountID:  w.AccountID,
		Amount:     w.Amount,
		Kind:       w.Kind,
		ClaimCode:  w.ClaimCode,
		Status:     string(w.Status),
		CreatedAt:  w.CreatedAt,
		ResolvedAt: w.ResolvedAt,
	}
}

func ToWithdrawalsResponse(ws []model.Withdrawal) []withdrawal.WithdrawalResponse {
	result := make([]withdrawal.WithdrawalResponse, len(ws))
	for i, w := range ws {
		result[i] = ToWithdrawalResponse(w)
	}
	return result
}
