// Package apierr переводит ошибки сервисов в HTTP ответы.
package apierr

import (
	"errors"
	"log/slog"
	"net/http"

	"mines_backend/internal/model"
	"mines_backend/pkg/resp"
)

// Status - HTTP статус для ошибки сервиса
func Status(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidParameters):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrDuplicateAccount):
		return http.StatusConflict
	case errors.Is(err, model.ErrAccountNotFound), errors.Is(err, model.ErrRequestNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity
	case errors.Is(err, model.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, model.ErrAuthFailure), errors.Is(err, model.ErrSessionNotFound):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Write пишет ошибку клиенту. Внутренние ошибки логируются, их текст наружу не уходит
func Write(w http.ResponseWriter, op string, err error) {
	status := Status(err)
	if status == http.StatusInternalServerError {
		slog.Error(op, "error", err)
		resp.WriteError(w, status, "internal error")
		return
	}

	resp.WriteError(w, status, err.Error())
}
