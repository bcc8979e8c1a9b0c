package withdrawal_repo

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mines_backend/internal/model"
	"mines_backend/internal/repository"
	"mines_backend/internal/storage/pg"
)

type pgRepo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
	psql   sq.StatementBuilderType
}

func NewPGRepository(dbc *pgxpool.Pool) repository.WithdrawalRepository {
	return &pgRepo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
		psql:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateWithdrawal - сохраняет заявку на вывод, возвращает ее ID
func (r *pgRepo) CreateWithdrawal(ctx context.Context, w *model.Withdrawal) (int64, error) {
	sqlStr, args, err := r.psql.Insert(table).
		Columns(colAccountID, colAmount, colKind, colClaimCode, colStatus, colCreatedAt).
		Values(w.AccountID, w.Amount, w.Kind, w.ClaimCode, string(w.Status), w.CreatedAt).
		Suffix("RETURNING " + colID).
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return 0, model.ErrDuplicateClaimCode
		}
		return 0, persistence("create withdrawal", err)
	}

	return id, nil
}

func (r *pgRepo) GetWithdrawal(ctx context.Context, id int64) (*model.Withdrawal, error) {
	sqlStr, args, err := r.psql.Select(columns...).
		From(table).
		Where(sq.Eq{colID: id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	w, err := scanPG(r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrRequestNotFound
		}
		return nil, persistence("get withdrawal", err)
	}

	return w, nil
}

func (r *pgRepo) ClaimCodeExists(ctx context.Context, code string) (bool, error) {
	sqlStr, args, err := r.psql.Select("1").
		From(table).
		Where(sq.Eq{colClaimCode: code}).
		ToSql()
	if err != nil {
		return false, err
	}

	var found int
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&found)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, persistence("check claim code", err)
	}
	return true, nil
}

// ListByStatus - заявки в статусе status в порядке создания (FIFO)
func (r *pgRepo) ListByStatus(ctx context.Context, status model.WithdrawalStatus) ([]model.Withdrawal, error) {
	return r.list(ctx, sq.Eq{colStatus: string(status)})
}

func (r *pgRepo) ListByAccount(ctx context.Context, accountID int64) ([]model.Withdrawal, error) {
	return r.list(ctx, sq.Eq{colAccountID: accountID})
}

func (r *pgRepo) list(ctx context.Context, where sq.Eq) ([]model.Withdrawal, error) {
	sqlStr, args, err := r.psql.Select(columns...).
		From(table).
		Where(where).
		OrderBy(colCreatedAt, colID).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, persistence("list withdrawals", err)
	}
	defer rows.Close()

	result := make([]model.Withdrawal, 0)
	for rows.Next() {
		w, err := scanPG(rows)
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

func (r *pgRepo) UpdateStatus(ctx context.Context, id int64, from, to model.WithdrawalStatus) (bool, error) {
	sqlStr, args, err := r.psql.Update(table).
		Set(colStatus, string(to)).
		Set(colResolvedAt, time.Now().UTC()).
		Where(sq.Eq{colID: id, colStatus: string(from)}).
		ToSql()
	if err != nil {
		return false, err
	}

	tag, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return false, persistence("update withdrawal status", err)
	}

	return tag.RowsAffected() == 1, nil
}

func scanPG(row pgx.Row) (*model.Withdrawal, error) {
	var (
		w          model.Withdrawal
		status     string
		resolvedAt *time.Time
	)
	err := row.Scan(&w.ID, &w.AccountID, &w.Amount, &w.Kind, &w.ClaimCode, &status, &w.CreatedAt, &resolvedAt)
	if err != nil {
		return nil, err
	}

	w.Status = model.WithdrawalStatus(status)
	w.CreatedAt = w.CreatedAt.UTC()
	if resolvedAt != nil {
		t := resolvedAt.UTC()
		w.ResolvedAt = &t
	}
	return &w, nil
}
