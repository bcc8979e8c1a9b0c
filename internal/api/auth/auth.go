package auth

import (
	"errors"
	"net/http"
	"time"

	"mines_backend/internal/api/apierr"
	dto "mines_backend/internal/api/dto/auth"
	"mines_backend/internal/model"
	"mines_backend/internal/service"
	"mines_backend/pkg/req"
	"mines_backend/pkg/resp"
)

const (
	sessionCookie = "session_id"
	refreshCookie = "refresh_token"
	refreshPath   = "/api/auth"
)

type HandlerDeps struct {
	Serv            service.AuthService
	RefreshTokenTTL time.Duration
	SecureCookies   bool
}

type Handler struct {
	serv       service.AuthService
	refreshTTL time.Duration
	secure     bool
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv:       deps.Serv,
		refreshTTL: deps.RefreshTokenTTL,
		secure:     deps.SecureCookies,
	}
}

// Register создаёт аккаунт со стартовыми кредитами, открывает сессию
// и возвращает access_token. session_id и refresh_token уходят в cookies
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.RegisterRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	data, err := h.serv.Register(r.Context(), requestBody.Username, requestBody.Password)
	if err != nil {
		apierr.Write(w, "register", err)
		return
	}

	h.setSessionCookies(w, data)

	resp.WriteJSONResponse(w, http.StatusCreated, dto.TokenResponse{
		AccountID:   data.AccountID,
		AccessToken: data.AccessToken,
	})
}

// Login открывает новую сессию
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	data, err := h.serv.Login(r.Context(), requestBody.Username, requestBody.Password)
	if err != nil {
		apierr.Write(w, "login", err)
		return
	}

	h.setSessionCookies(w, data)

	resp.WriteJSONResponse(w, http.StatusOK, dto.TokenResponse{
		AccountID:   data.AccountID,
		AccessToken: data.AccessToken,
	})
}

// Refresh выпускает новый access_token по session_id и refresh_token из cookies
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	session, err := r.Cookie(sessionCookie)
	if err != nil {
		resp.WriteError(w, http.StatusUnauthorized, "no session_id cookie")
		return
	}
	refresh, err := r.Cookie(refreshCookie)
	if err != nil {
		resp.WriteError(w, http.StatusUnauthorized, "no refresh_token cookie")
		return
	}

	accessToken, err := h.serv.Refresh(r.Context(), session.Value, refresh.Value)
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			h.deleteSessionCookies(w)
		}
		apierr.Write(w, "refresh", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.TokenResponse{AccessToken: accessToken})
}

// Logout закрывает сессию по session_id
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		resp.WriteError(w, http.StatusUnauthorized, "no session_id cookie")
		return
	}

	if err := h.serv.Logout(r.Context(), c.Value); err != nil {
		apierr.Write(w, "logout", err)
		return
	}

	h.deleteSessionCookies(w)

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setSessionCookies(w http.ResponseWriter, data *model.AuthData) {
	maxAge := int(h.refreshTTL.Seconds())

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    data.SessionID,
		Path:     refreshPath,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   maxAge,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookie,
		Value:    data.RefreshToken,
		Path:     refreshPath,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   maxAge,
	})
}

func (h *Handler) deleteSessionCookies(w http.ResponseWriter) {
	for _, name := range []string{sessionCookie, refreshCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     refreshPath,
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   h.secure,
			SameSite: http.SameSiteStrictMode,
		})
	}
}
