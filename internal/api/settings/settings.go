package settings

import (
	"net/http"

	"mines_backend/internal/api/apierr"
	"mines_backend/internal/converter"
	"mines_backend/internal/service"
	"mines_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.SettingsService
}

type Handler struct {
	serv service.SettingsService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	current, err := h.serv.Get(r.Context())
	if err != nil {
		apierr.Write(w, "get settings", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSettingsResponse(current, h.serv.BoardSize()))
}
