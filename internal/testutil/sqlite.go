// Package testutil поднимает SQLite хранилище для тестов сервисов.
package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	trmsql "github.com/avito-tech/go-transaction-manager/drivers/sql/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/stretchr/testify/require"

	"mines_backend/internal/storage/sqlite"
)

type Store struct {
	DB        *sql.DB
	TxManager trm.Manager
}

func NewSQLiteStore(t testing.TB) *Store {
	t.Helper()

	db, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	m, err := manager.New(trmsql.NewDefaultFactory(db))
	require.NoError(t, err)

	return &Store{DB: db, TxManager: m}
}
