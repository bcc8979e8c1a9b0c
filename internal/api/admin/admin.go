package admin

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"mines_backend/internal/api/apierr"
	dto "mines_backend/internal/api/dto/admin"
	"mines_backend/internal/converter"
	"mines_backend/internal/service"
	"mines_backend/pkg/req"
	"mines_backend/pkg/resp"
)

// SecretHeader - заголовок с секретом администратора
const SecretHeader = "X-Admin-Secret"

type HandlerDeps struct {
	Serv      service.AdminService
	BoardSize func() int
}

type Handler struct {
	serv      service.AdminService
	boardSize func() int
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, boardSize: deps.BoardSize}
}

func secret(r *http.Request) string {
	return r.Header.Get(SecretHeader)
}

// AddCredits начисляет (или списывает при отрицательной сумме) кредиты существующему пользователю
func (h *Handler) AddCredits(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.AddCreditsRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	balance, err := h.serv.AdjustBalance(r.Context(), secret(r), payload.Username, payload.Amount)
	if err != nil {
		apierr.Write(w, "add credits", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.AddCreditsResponse{
		Username: payload.Username,
		Balance:  balance,
	})
}

func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.UpdateSettingsRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.serv.UpdateSettings(r.Context(), secret(r), converter.ToSettingsPatch(payload))
	if err != nil {
		apierr.Write(w, "update settings", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSettingsResponse(updated, h.boardSize()))
}

// PendingWithdrawals - очередь заявок, старые первыми
func (h *Handler) PendingWithdrawals(w http.ResponseWriter, r *http.Request) {
	ws, err := h.serv.ListPendingWithdrawals(r.Context(), secret(r))
	if err != nil {
		apierr.Write(w, "list pending withdrawals", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToWithdrawalsResponse(ws))
}

func (h *Handler) ApproveWithdrawal(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid withdrawal id")
		return
	}

	approved, err := h.serv.ApproveWithdrawal(r.Context(), secret(r), id)
	if err != nil {
		apierr.Write(w, "approve withdrawal", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToWithdrawalResponse(*approved))
}

func (h *Handler) Accounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.serv.ListAccounts(r.Context(), secret(r))
	if err != nil {
		apierr.Write(w, "list accounts", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToAccountsResponse(accounts))
}
