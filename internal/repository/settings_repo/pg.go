package settings_repo

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"mines_backend/internal/model"
	"mines_backend/internal/repository"
)

const (
	table    = "settings"
	colName  = "name"
	colValue = "value"

	upsertSuffix = "ON CONFLICT (" + colName + ") DO UPDATE SET " + colValue + " = EXCLUDED." + colValue
)

type pgRepo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
	psql   sq.StatementBuilderType
}

func NewPGRepository(dbc *pgxpool.Pool) repository.SettingsRepository {
	return &pgRepo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
		psql:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *pgRepo) GetSettings(ctx context.Context) (map[string]int64, error) {
	sqlStr, args, err := r.psql.Select(colName, colValue).From(table).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, persistence("get settings", err)
	}
	defer rows.Close()

	values := make(map[string]int64)
	for rows.Next() {
		var (
			name  string
			value int64
		)
		if err := rows.Scan(&name, &value); err != nil {
			return nil, persistence("scan setting", err)
		}
		values[name] = value
	}
	if err := rows.Err(); err != nil {
		return nil, persistence("get settings", err)
	}

	return values, nil
}

func (r *pgRepo) SetSetting(ctx context.Context, name string, value int64) error {
	sqlStr, args, err := r.psql.Insert(table).
		Columns(colName, colValue).
		Values(name, value).
		Suffix(upsertSuffix).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...); err != nil {
		return persistence("set setting "+name, err)
	}
	return nil
}

func persistence(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, model.ErrPersistence, err)
}
