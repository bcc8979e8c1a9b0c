package withdrawal_repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	trmsql "github.com/avito-tech/go-transaction-manager/drivers/sql/v2"

	"mines_backend/internal/model"
	"mines_backend/internal/repository"
	"mines_backend/internal/storage/sqlite"
)

type sqliteRepo struct {
	db     *sql.DB
	getter *trmsql.CtxGetter
	sb     sq.StatementBuilderType
}

func NewSQLiteRepository(db *sql.DB) repository.WithdrawalRepository {
	return &sqliteRepo{
		db:     db,
		getter: trmsql.DefaultCtxGetter,
		sb:     sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}
}

func (r *sqliteRepo) CreateWithdrawal(ctx context.Context, w *model.Withdrawal) (int64, error) {
	sqlStr, args, err := r.sb.Insert(table).
		Columns(colAccountID, colAmount, colKind, colClaimCode, colStatus, colCreatedAt).
		Values(w.AccountID, w.Amount, w.Kind, w.ClaimCode, string(w.Status), w.CreatedAt.UTC().UnixMilli()).
		ToSql()
	if err != nil {
		return 0, err
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, sqlStr, args...)
	if err != nil {
		if sqlite.IsUniqueViolation(err) {
			return 0, model.ErrDuplicateClaimCode
		}
		return 0, persistence("create withdrawal", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, persistence("create withdrawal", err)
	}
	return id, nil
}

func (r *sqliteRepo) GetWithdrawal(ctx context.Context, id int64) (*model.Withdrawal, error) {
	sqlStr, args, err := r.sb.Select(columns...).
		From(table).
		Where(sq.Eq{colID: id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	w, err := scanSQLite(r.getter.DefaultTrOrDB(ctx, r.db).QueryRowContext(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrRequestNotFound
		}
		return nil, persistence("get withdrawal", err)
	}

	return w, nil
}

func (r *sqliteRepo) ClaimCodeExists(ctx context.Context, code string) (bool, error) {
	sqlStr, args, err := r.sb.Select("1").
		From(table).
		Where(sq.Eq{colClaimCode: code}).
		ToSql()
	if err != nil {
		return false, err
	}

	var found int
	err = r.getter.DefaultTrOrDB(ctx, r.db).QueryRowContext(ctx, sqlStr, args...).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, persistence("check claim code", err)
	}
	return true, nil
}

func (r *sqliteRepo) ListByStatus(ctx context.Context, status model.WithdrawalStatus) ([]model.Withdrawal, error) {
	return r.list(ctx, sq.Eq{colStatus: string(status)})
}

func (r *sqliteRepo) ListByAccount(ctx context.Context, accountID int64) ([]model.Withdrawal, error) {
	return r.list(ctx, sq.Eq{colAccountID: accountID})
}

func (r *sqliteRepo) list(ctx context.Context, where sq.Eq) ([]model.Withdrawal, error) {
	sqlStr, args, err := r.sb.Select(columns...).
		From(table).
		Where(where).
		OrderBy(colCreatedAt, colID).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.db).QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, persistence("list withdrawals", err)
	}
	defer rows.Close()

	result := make([]model.Withdrawal, 0)
	for rows.Next() {
		w, err := scanSQLite(rows)
		if err != nil {
			return nil, persistence("scan withdrawal", err)
		}
		result = append(result, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, persistence("list withdrawals", err)
	}

	return result, nil
}

func (r *sqliteRepo) UpdateStatus(ctx context.Context, id int64, from, to model.WithdrawalStatus) (bool, error) {
	sqlStr, args, err := r.sb.Update(table).
		Set(colStatus, string(to)).
		Set(colResolvedAt, time.Now().UTC().UnixMilli()).
		Where(sq.Eq{colID: id, colStatus: string(from)}).
		ToSql()
	if err != nil {
		return false, err
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return false, persistence("update withdrawal status", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, persistence("update withdrawal status", err)
	}
	return n == 1, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSQLite(row rowScanner) (*model.Withdrawal, error) {
	var (
		w          model.Withdrawal
		status     string
		createdAt  int64
		resolvedAt sql.NullInt64
	)
	err := row.Scan(&w.ID, &w.AccountID, &w.Amount, &w.Kind, &w.ClaimCode, &status, &createdAt, &resolvedAt)
	if err != nil {
		return nil, err
	}

	w.Status = model.WithdrawalStatus(status)
	w.CreatedAt = time.UnixMilli(createdAt).UTC()
	if resolvedAt.Valid {
		t := time.UnixMilli(resolvedAt.Int64).UTC()
		w.ResolvedAt = &t
	}
	return &w, nil
}
