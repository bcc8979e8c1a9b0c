package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mines_backend/internal/model"
	"mines_backend/pkg/resp"
)

func TestStatus(t *testing.T) {
	tests := map[error]int{
		model.ErrInvalidParameters: http.StatusBadRequest,
		model.ErrDuplicateAccount:  http.StatusConflict,
		model.ErrAccountNotFound:   http.StatusNotFound,
		model.ErrRequestNotFound:   http.StatusNotFound,
		model.ErrInsufficientFunds: http.StatusUnprocessableEntity,
		model.ErrUnauthorized:      http.StatusForbidden,
		model.ErrAuthFailure:       http.StatusUnauthorized,
		model.ErrSessionNotFound:   http.StatusUnauthorized,
		model.ErrPersistence:       http.StatusInternalServerError,
		errors.New("boom"):         http.StatusInternalServerError,
	}

	for err, status := range tests {
		assert.Equal(t, status, Status(fmt.Errorf("op: %w", err)), err.Error())
	}
}

func TestWriteHidesInternalErrors(t *testing.T) {
	w := httptest.NewRecorder()
	Write(w, "test", fmt.Errorf("query: %w: %w", model.ErrPersistence, errors.New("connection reset")))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body resp.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "internal error", body.Error)
}
