package auth_repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mines_backend/internal/model"
	"mines_backend/internal/repository"
)

const (
	table          = "sessions"
	colSessionID   = "session_id"
	colAccountID   = "account_id"
	colRefreshHash = "refresh_hash"
	colExpiredTime = "expired_time"
)

type pgRepo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
	psql   sq.StatementBuilderType
}

func NewPGRepository(dbc *pgxpool.Pool) repository.AuthRepository {
	return &pgRepo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
		psql:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateSession - создает сессию в БД
// Принимает model.Session - (ID, AccountID, RefreshToken(хэш), ExpiresAt)
func (r *pgRepo) CreateSession(ctx context.Context, session *model.Session) error {
	// Формируем запрос
	query := r.psql.Insert(table).
		Columns(colSessionID, colAccountID, colRefreshHash, colExpiredTime).
		Values(session.ID, session.AccountID, session.RefreshToken, session.ExpiresAt.UTC())

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return persistence("create session", err)
	}

	return nil
}

// GetSession - сессия по ее ID
func (r *pgRepo) GetSession(ctx context.Context, sessionID string) (*model.Session, error) {
	// Формируем запрос
	query := r.psql.Select(colSessionID, colAccountID, colRefreshHash, colExpiredTime).
		From(table).
		Where(sq.Eq{colSessionID: sessionID})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var (
		s         model.Session
		expiresAt time.Time
	)
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&s.ID, &s.AccountID, &s.RefreshToken, &expiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrSessionNotFound
		}
		return nil, persistence("get session", err)
	}

	s.ExpiresAt = expiresAt.UTC()
	return &s, nil
}

// DeleteSession - удаляет сессию из БД.
// Принимает sessionID которую надо удалить
func (r *pgRepo) DeleteSession(ctx context.Context, sessionID string) error {
	// Формируем запрос
	query := r.psql.Delete(table).
		Where(sq.Eq{colSessionID: sessionID})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return persistence("delete session", err)
	}

	return nil
}

func persistence(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, model.ErrPersistence, err)
}
