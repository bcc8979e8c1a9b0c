package ledger_repo

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mines_backend/internal/model"
	"mines_backend/internal/storage/sqlite"
)

func newSQLiteRepo(t *testing.T) *sqliteRepo {
	t.Helper()

	db, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewSQLiteRepository(db).(*sqliteRepo)
}

func TestSQLiteAccounts(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t)

	id, err := repo.CreateAccount(ctx, &model.Account{Username: "alice", PasswordHash: "h", Balance: 100, JoinedOn: "2026-10-18"})
	require.NoError(t, err)

	_, err = repo.CreateAccount(ctx, &model.Account{Username: "alice", PasswordHash: "h2", JoinedOn: "2026-10-18"})
	assert.ErrorIs(t, err, model.ErrDuplicateAccount)

	acc, err := repo.GetAccountByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, id, acc.ID)
	assert.EqualValues(t, 100, acc.Balance)
	assert.Equal(t, "2026-10-18", acc.JoinedOn)

	_, err = repo.GetAccountByID(ctx, id+100)
	assert.ErrorIs(t, err, model.ErrAccountNotFound)

	_, err = repo.CreateAccount(ctx, &model.Account{Username: "bob", PasswordHash: "h", JoinedOn: "2026-10-18"})
	require.NoError(t, err)

	all, err := repo.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "alice", all[0].Username)
	assert.Equal(t, "bob", all[1].Username)
}

func TestSQLiteAddBalance(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t)

	id, err := repo.CreateAccount(ctx, &model.Account{Username: "alice", PasswordHash: "h", Balance: 10, JoinedOn: "2026-10-18"})
	require.NoError(t, err)

	balance, err := repo.AddBalance(ctx, id, 15)
	require.NoError(t, err)
	assert.EqualValues(t, 25, balance)

	balance, err = repo.AddBalance(ctx, id, -25)
	require.NoError(t, err)
	assert.EqualValues(t, 0, balance)

	_, err = repo.AddBalance(ctx, id, -1)
	assert.ErrorIs(t, err, model.ErrInsufficientFunds)

	_, err = repo.AddBalance(ctx, id+1, 5)
	assert.ErrorIs(t, err, model.ErrAccountNotFound)

	balance, err = repo.GetBalance(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, balance)
}

func TestSQLiteEntries(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t)

	id, err := repo.CreateAccount(ctx, &model.Account{Username: "alice", PasswordHash: "h", JoinedOn: "2026-10-18"})
	require.NoError(t, err)

	at := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	for i, delta := range []int64{100, -30, 5} {
		_, err := repo.CreateEntry(ctx, &model.LedgerEntry{
			AccountID:    id,
			Delta:        delta,
			BalanceAfter: int64(i),
			Reason:       model.ReasonRound,
			CreatedAt:    at,
		})
		require.NoError(t, err)
	}

	entries, err := repo.ListEntries(ctx, id, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.EqualValues(t, 5, entries[0].Delta)
	assert.EqualValues(t, -30, entries[1].Delta)
	assert.Equal(t, model.ReasonRound, entries[0].Reason)
	assert.True(t, at.Equal(entries[0].CreatedAt))
}
