package ledger_repo

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
	"mines_backend/internal/storage/pg"
)

type pgRepo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
	psql   sq.StatementBuilderType
}

func NewPGRepository(dbc *pgxpool.Pool) repository.LedgerRepository {
	return &pgRepo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
		psql:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateAccount - создает аккаунт, возвращает его ID
func (r *pgRepo) CreateAccount(ctx context.Context, account *model.Account) (int64, error) {
	// Формируем запрос
	query := r.psql.Insert(tableAccounts).
		Columns(colUsername, colPasswordHash, colBalance, colJoinedOn).
		Values(account.Username, account.PasswordHash, account.Balance, account.JoinedOn).
		Suffix("RETURNING " + colID)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return 0, model.ErrDuplicateAccount
		}
		return 0, persistence("create account", err)
	}

	return id, nil
}

func (r *pgRepo) GetAccountByID(ctx context.Context, id int64) (*model.Account, error) {
	return r.getAccount(ctx, sq.Eq{colID: id})
}

func (r *pgRepo) GetAccountByUsername(ctx context.Context, username string) (*model.Account, error) {
	return r.getAccount(ctx, sq.Eq{colUsername: username})
}

func (r *pgRepo) getAccount(ctx context.Context, where sq.Eq) (*model.Account, error) {
	sqlStr, args, err := r.psql.Select(accountColumns...).
		From(tableAccounts).
		Where(where).
		ToSql()
	if err != nil {
		return nil, err
	}

	var a model.Account
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&a.ID, &a.Username, &a.PasswordHash, &a.Balance, &a.JoinedOn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAccountNotFound
		}
		return nil, persistence("get account", err)
	}

	return &a, nil
}

func (r *pgRepo) ListAccounts(ctx context.Context) ([]model.Account, error) {
	sqlStr, args, err := r.psql.Select(accountColumns...).
		From(tableAccounts).
		OrderBy(colID).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
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

// GetBalance - баланс аккаунта по ID
func (r *pgRepo) GetBalance(ctx context.Context, id int64) (int64, error) {
	sqlStr, args, err := r.psql.Select(colBalance).
		From(tableAccounts).
		Where(sq.Eq{colID: id}).
		ToSql()
	if err != nil {
		return 0, err
	}

	var balance int64
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, model.ErrAccountNotFound
		}
		return 0, persistence("get balance", err)
	}

	return balance, nil
}

// AddBalance - одно условное UPDATE выражение: чтение и запись не разделены,
// строка блокируется до конца транзакции
func (r *pgRepo) AddBalance(ctx context.Context, id int64, delta int64) (int64, error) {
	sqlStr, args, err := r.psql.Update(tableAccounts).
		Set(colBalance, sq.Expr(colBalance+" + ?", delta)).
		Where(sq.Eq{colID: id}).
		Where(sq.Expr(colBalance+" + ? >= 0", delta)).
		Suffix("RETURNING " + colBalance).
		ToSql()
	if err != nil {
		return 0, err
	}

	var balance int64
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&balance)
	if err == nil {
		return balance, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, persistence("update balance", err)
	}

	// Строка не обновилась: либо аккаунта нет, либо не хватает средств
	if _, err := r.GetBalance(ctx, id); err != nil {
		return 0, err
	}
	return 0, model.ErrInsufficientFunds
}

func (r *pgRepo) CreateEntry(ctx context.Context, entry *model.LedgerEntry) (int64, error) {
	sqlStr, args, err := r.psql.Insert(tableEntries).
		Columns(colAccountID, colDelta, colBalanceAfter, colReason, colReference, colCreatedAt).
		Values(entry.AccountID, entry.Delta, entry.BalanceAfter, string(entry.Reason), entry.Reference, entry.CreatedAt).
		Suffix("RETURNING " + colID).
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		return 0, persistence("create ledger entry", err)
	}

	return id, nil
}

// ListEntries - последние записи журнала аккаунта, новые первыми
func (r *pgRepo) ListEntries(ctx context.Context, accountID int64, limit uint64) ([]model.LedgerEntry, error) {
	sqlStr, args, err := r.psql.Select(entryColumns...).
		From(tableEntries).
		Where(sq.Eq{colAccountID: accountID}).
		OrderBy(colID + " DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, persistence("list ledger entries", err)
	}
	defer rows.Close()

	entries := make([]model.LedgerEntry, 0)
	for rows.Next() {
		var (
			e         model.LedgerEntry
			reason    string
			createdAt time.Time
		)
		if err := rows.Scan(&e.ID, &e.AccountID, &e.Delta, &e.BalanceAfter, &reason, &e.Reference, &createdAt); err != nil {
			return nil, persistence("scan ledger entry", err)
		}
		e.Reason = model.EntryReason(reason)
		e.CreatedAt = createdAt.UTC()
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, persistence("list ledger entries", err)
	}

	return entries, nil
}

func persistence(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, model.ErrPersistence, err)
}
