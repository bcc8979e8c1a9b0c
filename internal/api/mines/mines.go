package mines

import (
	"net/http"

	"mines_backend/internal/api/apierr"
	dto "mines_backend/internal/api/dto/mines"
	"mines_backend/internal/converter"
	"mines_backend/internal/middleware"
	"mines_backend/internal/service"
	"mines_backend/pkg/req"
	"mines_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.GameService
}

type Handler struct {
	serv service.GameService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Start раскладывает мины для нового раунда
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	round, err := h.serv.StartRound(r.Context())
	if err != nil {
		apierr.Write(w, "start round", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRoundResponse(*round))
}

// Result применяет итог раунда к балансу
func (h *Handler) Result(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	payload, err := req.Decode[dto.ResultRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	balance, err := h.serv.ReportRound(r.Context(), converter.ToRoundReport(accountID, payload))
	if err != nil {
		apierr.Write(w, "report round", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.BalanceResponse{Balance: balance})
}
