package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"mines_backend/internal/model"
	"mines_backend/internal/repository/auth_repo"
	"mines_backend/internal/repository/ledger_repo"
	"mines_backend/internal/repository/settings_repo"
	"mines_backend/internal/service"
	"mines_backend/internal/service/ledger"
	"mines_backend/internal/service/settings"
	"mines_backend/internal/testutil"
	"mines_backend/pkg/pass"
	"mines_backend/pkg/token"
)

var secret = []byte("test-secret")

type jwtConfig struct{}

func (jwtConfig) AccessTokenSecretKey() []byte        { return secret }
func (jwtConfig) AccessTokenDuration() time.Duration  { return time.Minute }
func (jwtConfig) RefreshTokenDuration() time.Duration { return time.Hour }

type gameDefaults struct{}

func (gameDefaults) BoardSize() int      { return 25 }
func (gameDefaults) HazardCount() int64  { return 5 }
func (gameDefaults) StartCredits() int64 { return 100 }
func (gameDefaults) MineReward() int64   { return 10 }

type fixture struct {
	ledger   service.LedgerService
	settings service.SettingsService
	serv     *serv
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := testutil.NewSQLiteStore(t)
	ledgerRepo := ledger_repo.NewSQLiteRepository(store.DB)
	l := ledger.NewLedgerService(ledgerRepo, store.TxManager)
	st := settings.NewSettingsService(settings_repo.NewSQLiteRepository(store.DB), store.TxManager, gameDefaults{})

	return &fixture{
		ledger:   l,
		settings: st,
		serv: NewAuthService(
			store.TxManager,
			l,
			st,
			ledgerRepo,
			auth_repo.NewSQLiteRepository(store.DB),
			pass.NewBcryptHasher(bcrypt.MinCost),
			jwtConfig{},
		).(*serv),
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	data, err := f.serv.Register(ctx, "alice", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, data.SessionID)
	assert.NotEmpty(t, data.RefreshToken)

	claims, err := token.VerifyToken(data.AccessToken, secret)
	require.NoError(t, err)
	id, err := token.AccountID(claims)
	require.NoError(t, err)
	assert.Equal(t, data.AccountID, id)

	balance, err := f.ledger.GetBalance(ctx, id)
	require.NoError(t, err)
	assert.EqualValues(t, 100, balance)

	_, err = f.serv.Register(ctx, "alice", "secret2")
	assert.ErrorIs(t, err, model.ErrDuplicateAccount)
}

func TestRegisterUsesCurrentStartCredits(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	credits := int64(250)
	_, err := f.settings.Update(ctx, model.SettingsPatch{StartCredits: &credits})
	require.NoError(t, err)

	data, err := f.serv.Register(ctx, "alice", "secret1")
	require.NoError(t, err)

	balance, err := f.ledger.GetBalance(ctx, data.AccountID)
	require.NoError(t, err)
	assert.EqualValues(t, 250, balance)
}

func TestRegisterValidation(t *testing.T) {
	f := newFixture(t)

	for _, tc := range []struct{ username, password string }{
		{"al", "secret1"},
		{"alice smith", "secret1"},
		{"alice", "123"},
	} {
		_, err := f.serv.Register(context.Background(), tc.username, tc.password)
		assert.ErrorIs(t, err, model.ErrInvalidParameters)
	}
}

func TestAuthenticateAndLogin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	registered, err := f.serv.Register(ctx, "alice", "secret1")
	require.NoError(t, err)

	id, err := f.serv.Authenticate(ctx, "alice", "secret1")
	require.NoError(t, err)
	assert.Equal(t, registered.AccountID, id)

	_, err = f.serv.Authenticate(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, model.ErrAuthFailure)

	_, err = f.serv.Authenticate(ctx, "bob", "secret1")
	assert.ErrorIs(t, err, model.ErrAuthFailure)

	data, err := f.serv.Login(ctx, "alice", "secret1")
	require.NoError(t, err)
	assert.NotEqual(t, registered.SessionID, data.SessionID)

	acc, err := f.serv.Lookup(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, id, acc.ID)

	_, err = f.serv.Lookup(ctx, "bob")
	assert.ErrorIs(t, err, model.ErrAccountNotFound)
}

func TestRefreshAndLogout(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	data, err := f.serv.Register(ctx, "alice", "secret1")
	require.NoError(t, err)

	access, err := f.serv.Refresh(ctx, data.SessionID, data.RefreshToken)
	require.NoError(t, err)
	_, err = token.VerifyToken(access, secret)
	require.NoError(t, err)

	_, err = f.serv.Refresh(ctx, data.SessionID, "forged")
	assert.ErrorIs(t, err, model.ErrAuthFailure)

	require.NoError(t, f.serv.Logout(ctx, data.SessionID))

	_, err = f.serv.Refresh(ctx, data.SessionID, data.RefreshToken)
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}

func TestRefreshExpiredSession(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	data, err := f.serv.Register(ctx, "alice", "secret1")
	require.NoError(t, err)

	f.serv.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	_, err = f.serv.Refresh(ctx, data.SessionID, data.RefreshToken)
	assert.ErrorIs(t, err, model.ErrSessionNotFound)

	f.serv.now = time.Now
	_, err = f.serv.Refresh(ctx, data.SessionID, data.RefreshToken)
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}
