package withdrawal

import (
	"net/http"

	"mines_backend/internal/api/apierr"
	dto "mines_backend/internal/api/dto/withdrawal"
	"mines_backend/internal/converter"
	"mines_backend/internal/middleware"
	"mines_backend/internal/service"
	"mines_backend/pkg/req"
	"mines_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.WithdrawalService
}

type Handler struct {
	serv service.WithdrawalService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Create списывает кредиты и возвращает код получения
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	payload, err := req.Decode[dto.CreateRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	receipt, err := h.serv.RequestWithdrawal(r.Context(), converter.ToWithdrawalRequest(accountID, payload))
	if err != nil {
		apierr.Write(w, "request withdrawal", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToReceiptResponse(*receipt))
}

// List - заявки текущего пользователя
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	ws, err := h.serv.ListForAccount(r.Context(), accountID)
	if err != nil {
		apierr.Write(w, "list withdrawals", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToWithdrawalsResponse(ws))
}
