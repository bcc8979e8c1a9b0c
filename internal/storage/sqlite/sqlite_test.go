package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAppliesSchema(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "mines.db")

	db, err := Open(ctx, path)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `INSERT INTO accounts (username, password_hash, balance, joined_on) VALUES ('a', 'h', 0, '2026-01-01')`)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `INSERT INTO accounts (username, password_hash, balance, joined_on) VALUES ('a', 'h', 0, '2026-01-01')`)
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))

	_, err = db.ExecContext(ctx, `UPDATE accounts SET balance = -1 WHERE username = 'a'`)
	assert.Error(t, err, "balance check constraint")
	require.NoError(t, db.Close())

	// повторное открытие не пытается накатить схему второй раз
	db, err = Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open(context.Background(), " ")
	assert.Error(t, err)
}
