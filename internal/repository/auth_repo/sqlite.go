package auth_repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	trmsql "github.com/avito-tech/go-transaction-manager/drivers/sql/v2"

	"mines_backend/internal/model"
	"mines_backend/internal/repository"
)

type sqliteRepo struct {
	db     *sql.DB
	getter *trmsql.CtxGetter
	sb     sq.StatementBuilderType
}

func NewSQLiteRepository(db *sql.DB) repository.AuthRepository {
	return &sqliteRepo{
		db:     db,
		getter: trmsql.DefaultCtxGetter,
		sb:     sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}
}

func (r *sqliteRepo) CreateSession(ctx context.Context, session *model.Session) error {
	sqlStr, args, err := r.sb.Insert(table).
		Columns(colSessionID, colAccountID, colRefreshHash, colExpiredTime).
		Values(session.ID, session.AccountID, session.RefreshToken, session.ExpiresAt.UTC().UnixMilli()).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, sqlStr, args...); err != nil {
		return persistence("create session", err)
	}
	return nil
}

func (r *sqliteRepo) GetSession(ctx context.Context, sessionID string) (*model.Session, error) {
	sqlStr, args, err := r.sb.Select(colSessionID, colAccountID, colRefreshHash, colExpiredTime).
		From(table).
		Where(sq.Eq{colSessionID: sessionID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var (
		s         model.Session
		expiresAt int64
	)
	err = r.getter.DefaultTrOrDB(ctx, r.db).QueryRowContext(ctx, sqlStr, args...).
		Scan(&s.ID, &s.AccountID, &s.RefreshToken, &expiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrSessionNotFound
		}
		return nil, persistence("get session", err)
	}

	s.ExpiresAt = time.UnixMilli(expiresAt).UTC()
	return &s, nil
}

func (r *sqliteRepo) DeleteSession(ctx context.Context, sessionID string) error {
	sqlStr, args, err := r.sb.Delete(table).
		Where(sq.Eq{colSessionID: sessionID}).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, sqlStr, args...); err != nil {
		return persistence("delete session", err)
	}
	return nil
}
