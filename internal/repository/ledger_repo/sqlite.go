package ledger_repo

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

func NewSQLiteRepository(db *sql.DB) repository.LedgerRepository {
	return &sqliteRepo{
		db:     db,
		getter: trmsql.DefaultCtxGetter,
		sb:     sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}
}

func (r *sqliteRepo) CreateAccount(ctx context.Context, account *model.Account) (int64, error) {
	sqlStr, args, err := r.sb.Insert(tableAccounts).
		Columns(colUsername, colPasswordHash, colBalance, colJoinedOn).
		Values(account.Username, account.PasswordHash, account.Balance, account.JoinedOn).
		ToSql()
	if err != nil {
		return 0, err
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, sqlStr, args...)
	if err != nil {
		if sqlite.IsUniqueViolation(err) {
			return 0, model.ErrDuplicateAccount
		}
		return 0, persistence("create account", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, persistence("create account", err)
	}
	return id, nil
}

func (r *sqliteRepo) GetAccountByID(ctx context.Context, id int64) (*model.Account, error) {
	return r.getAccount(ctx, sq.Eq{colID: id})
}

func (r *sqliteRepo) GetAccountByUsername(ctx context.Context, username string) (*model.Account, error) {
	return r.getAccount(ctx, sq.Eq{colUsername: username})
}

func (r *sqliteRepo) getAccount(ctx context.Context, where sq.Eq) (*model.Account, error) {
	sqlStr, args, err := r.sb.Select(accountColumns...).
		From(tableAccounts).
		Where(where).
		ToSql()
	if err != nil {
		return nil, err
	}

	var a model.Account
	err = r.getter.DefaultTrOrDB(ctx, r.db).QueryRowContext(ctx, sqlStr, args...).
		Scan(&a.ID, &a.Username, &a.PasswordHash, &a.Balance, &a.JoinedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrAccountNotFound
		}
		return nil, persistence("get account", err)
	}

	return &a, nil
}

func (r *sqliteRepo) ListAccounts(ctx context.Context) ([]model.Account, error) {
	sqlStr, args, err := r.sb.Select(accountColumns...).
		From(tableAccounts).
		OrderBy(colID).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.db).QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, persistence("list accounts", err)
	}
	defer rows.Close()

	accounts := make([]model.Account, 0)
	for rows.Next() {
		var a model.Account
		if err := rows.Scan(&a.ID, &a.Username, &a.PasswordHash, &a.Balance, &a.JoinedOn); err != nil {
			return nil, persistence("scan account", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, persistence("list accounts", err)
	}

	return accounts, nil
}

func (r *sqliteRepo) GetBalance(ctx context.Context, id int64) (int64, error) {
	sqlStr, args, err := r.sb.Select(colBalance).
		From(tableAccounts).
		Where(sq.Eq{colID: id}).
		ToSql()
	if err != nil {
		return 0, err
	}

	var balance int64
	err = r.getter.DefaultTrOrDB(ctx, r.db).QueryRowContext(ctx, sqlStr, args...).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, model.ErrAccountNotFound
		}
		return 0, persistence("get balance", err)
	}

	return balance, nil
}

// AddBalance - то же условное UPDATE, что и для postgres (RETURNING есть с sqlite 3.35)
func (r *sqliteRepo) AddBalance(ctx context.Context, id int64, delta int64) (int64, error) {
	sqlStr, args, err := r.sb.Update(tableAccounts).
		Set(colBalance, sq.Expr(colBalance+" + ?", delta)).
		Where(sq.Eq{colID: id}).
		Where(sq.Expr(colBalance+" + ? >= 0", delta)).
		Suffix("RETURNING " + colBalance).
		ToSql()
	if err != nil {
		return 0, err
	}

	var balance int64
	err = r.getter.DefaultTrOrDB(ctx, r.db).QueryRowContext(ctx, sqlStr, args...).Scan(&balance)
	if err == nil {
		return balance, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, persistence("update balance", err)
	}

	if _, err := r.GetBalance(ctx, id); err != nil {
		return 0, err
	}
	return 0, model.ErrInsufficientFunds
}

func (r *sqliteRepo) CreateEntry(ctx context.Context, entry *model.LedgerEntry) (int64, error) {
	sqlStr, args, err := r.sb.Insert(tableEntries).
		Columns(colAccountID, colDelta, colBalanceAfter, colReason, colReference, colCreatedAt).
		Values(entry.AccountID, entry.Delta, entry.BalanceAfter, string(entry.Reason), entry.Reference, toMillis(entry.CreatedAt)).
		ToSql()
	if err != nil {
		return 0, err
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return 0, persistence("create ledger entry", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, persistence("create ledger entry", err)
	}
	return id, nil
}

func (r *sqliteRepo) ListEntries(ctx context.Context, accountID int64, limit uint64) ([]model.LedgerEntry, error) {
	sqlStr, args, err := r.sb.Select(entryColumns...).
		From(tableEntries).
		Where(sq.Eq{colAccountID: accountID}).
		OrderBy(colID + " DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.db).QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, persistence("list ledger entries", err)
	}
	defer rows.Close()

	entries := make([]model.LedgerEntry, 0)
	for rows.Next() {
		var (
			e         model.LedgerEntry
			reason    string
			createdAt int64
		)
		if err := rows.Scan(&e.ID, &e.AccountID, &e.Delta, &e.BalanceAfter, &reason, &e.Reference, &createdAt); err != nil {
			return nil, persistence("scan ledger entry", err)
		}
		e.Reason = model.EntryReason(reason)
		e.CreatedAt = fromMillis(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, persistence("list ledger entries", err)
	}

	return entries, nil
}

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func fromMillis(v int64) time.Time {
	return time.UnixMilli(v).UTC()
}
