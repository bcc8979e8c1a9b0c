package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAdminSecret = "admin-secret"

type client struct {
	t       *testing.T
	handler http.Handler
}

func newClient(t *testing.T) *client {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(dir, "mines.db"))
	t.Setenv("GAME_CONFIG_PATH", filepath.Join(dir, "missing.yaml"))
	t.Setenv("ACCESS_TOKEN", "test-access-secret")
	t.Setenv("ADMIN_SECRET", testAdminSecret)

	sp := newServiceProvider()
	t.Cleanup(func() { _ = sp.Close() })

	return &client{t: t, handler: sp.Router(context.Background())}
}

func (c *client) do(method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}

	r := httptest.NewRequest(method, path, &buf)
	for k, v := range headers {
		r.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, r)
	return w
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

var adminHeaders = map[string]string{"X-Admin-Secret": testAdminSecret}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&v), w.Body.String())
	return v
}

func TestMinesFlow(t *testing.T) {
	c := newClient(t)

	w := c.do(http.MethodPost, "/api/auth/register", map[string]string{"username": "alice", "password": "secret1"}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	token := decode[struct {
		AccessToken string `json:"access_token"`
	}](t, w).AccessToken
	require.NotEmpty(t, token)

	w = c.do(http.MethodGet, "/api/account", nil, bearer(token))
	require.Equal(t, http.StatusOK, w.Code)
	acc := decode[struct {
		Username string `json:"username"`
		Balance  int64  `json:"balance"`
		Joined   string `json:"joined"`
	}](t, w)
	assert.Equal(t, "alice", acc.Username)
	assert.EqualValues(t, 100, acc.Balance)
	assert.Len(t, acc.Joined, len("2006-01-02"))

	w = c.do(http.MethodPost, "/api/mines/start", nil, bearer(token))
	require.Equal(t, http.StatusOK, w.Code)
	round := decode[struct {
		BoardSize int   `json:"board_size"`
		Hazards   []int `json:"hazards"`
	}](t, w)
	assert.Equal(t, 25, round.BoardSize)
	assert.Len(t, round.Hazards, 5)

	w = c.do(http.MethodPost, "/api/mines/result", map[string]int64{"delta": 50}, bearer(token))
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 150, decode[struct {
		Balance int64 `json:"balance"`
	}](t, w).Balance)

	w = c.do(http.MethodPost, "/api/withdrawals", map[string]any{"amount": 120, "kind": "gift card"}, bearer(token))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	receipt := decode[struct {
		ID        int64  `json:"id"`
		ClaimCode string `json:"claim_code"`
		Balance   int64  `json:"balance"`
	}](t, w)
	assert.Regexp(t, `^GP-[A-Z0-9]{7}$`, receipt.ClaimCode)
	assert.EqualValues(t, 30, receipt.Balance)

	w = c.do(http.MethodPost, "/api/withdrawals", map[string]any{"amount": 50, "kind": "gift card"}, bearer(token))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = c.do(http.MethodGet, "/api/admin/withdrawals", nil, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = c.do(http.MethodGet, "/api/admin/withdrawals", nil, adminHeaders)
	require.Equal(t, http.StatusOK, w.Code)
	pending := decode[[]struct {
		ID     int64  `json:"id"`
		Status string `json:"status"`
	}](t, w)
	require.Len(t, pending, 1)
	assert.Equal(t, receipt.ID, pending[0].ID)

	approvePath := "/api/admin/withdrawals/" + strconv.FormatInt(receipt.ID, 10) + "/approve"
	for range 2 {
		w = c.do(http.MethodPost, approvePath, nil, adminHeaders)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "COMPLETED", decode[struct {
			Status string `json:"status"`
		}](t, w).Status)
	}

	w = c.do(http.MethodPost, "/api/admin/withdrawals/999/approve", nil, adminHeaders)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = c.do(http.MethodGet, "/api/account", nil, bearer(token))
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 30, decode[struct {
		Balance int64 `json:"balance"`
	}](t, w).Balance)

	w = c.do(http.MethodGet, "/api/account/history", nil, bearer(token))
	require.Equal(t, http.StatusOK, w.Code)
	history := decode[[]struct {
		Reason string `json:"reason"`
	}](t, w)
	require.Len(t, history, 3)
	assert.Equal(t, "WITHDRAWAL", history[0].Reason)
}

func TestAdminEndpoints(t *testing.T) {
	c := newClient(t)

	w := c.do(http.MethodPost, "/api/auth/register", map[string]string{"username": "alice", "password": "secret1"}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = c.do(http.MethodPost, "/api/admin/add-credits", map[string]any{"username": "alice", "amount": 25}, adminHeaders)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 125, decode[struct {
		Balance int64 `json:"balance"`
	}](t, w).Balance)

	w = c.do(http.MethodPost, "/api/admin/add-credits", map[string]any{"username": "bob", "amount": 25}, adminHeaders)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = c.do(http.MethodPost, "/api/admin/add-credits", map[string]any{"username": "alice", "amount": 25}, map[string]string{"X-Admin-Secret": "nope"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = c.do(http.MethodPut, "/api/admin/settings", map[string]int64{"mine_reward": 20}, adminHeaders)
	require.Equal(t, http.StatusOK, w.Code)

	w = c.do(http.MethodGet, "/api/settings", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	current := decode[struct {
		MineReward  int64 `json:"mine_reward"`
		HazardCount int64 `json:"hazard_count"`
	}](t, w)
	assert.EqualValues(t, 20, current.MineReward)
	assert.EqualValues(t, 5, current.HazardCount)

	w = c.do(http.MethodGet, "/api/admin/accounts", nil, adminHeaders)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]any](t, w), 1)
}

func TestAuthEndpoints(t *testing.T) {
	c := newClient(t)

	w := c.do(http.MethodPost, "/api/auth/register", map[string]string{"username": "alice", "password": "secret1"}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = c.do(http.MethodPost, "/api/auth/register", map[string]string{"username": "alice", "password": "secret1"}, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = c.do(http.MethodPost, "/api/auth/register", map[string]string{"username": "alice", "pass": "x"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = c.do(http.MethodPost, "/api/auth/login", map[string]string{"username": "alice", "password": "wrong1"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = c.do(http.MethodPost, "/api/auth/login", map[string]string{"username": "alice", "password": "secret1"}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 2)

	r := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
	for _, ck := range cookies {
		r.AddCookie(ck)
	}
	rw := httptest.NewRecorder()
	c.handler.ServeHTTP(rw, r)
	require.Equal(t, http.StatusOK, rw.Code, rw.Body.String())

	w = c.do(http.MethodGet, "/api/account", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
