package account

import (
	"net/http"
	"strconv"

	"mines_backend/internal/api/apierr"
	"mines_backend/internal/converter"
	"mines_backend/internal/middleware"
	"mines_backend/internal/service"
	"mines_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.LedgerService
}

type Handler struct {
	serv service.LedgerService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Me - имя, баланс и дата регистрации текущего пользователя
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	acc, err := h.serv.GetAccount(r.Context(), accountID)
	if err != nil {
		apierr.Write(w, "get account", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToAccountResponse(*acc))
}

// History - журнал изменений баланса, ?limit=N
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var limit uint64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			resp.WriteError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	entries, err := h.serv.History(r.Context(), accountID, limit)
	if err != nil {
		apierr.Write(w, "account history", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToEntriesResponse(entries))
}
