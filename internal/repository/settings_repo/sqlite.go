package settings_repo

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	trmsql "github.com/avito-tech/go-transaction-manager/drivers/sql/v2"

	"mines_backend/internal/repository"
)

type sqliteRepo struct {
	db     *sql.DB
	getter *trmsql.CtxGetter
	sb     sq.StatementBuilderType
}

func NewSQLiteRepository(db *sql.DB) repository.SettingsRepository {
	return &sqliteRepo{
		db:     db,
		getter: trmsql.DefaultCtxGetter,
		sb:     sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}
}

func (r *sqliteRepo) GetSettings(ctx context.Context) (map[string]int64, error) {
	sqlStr, args, err := r.sb.Select(colName, colValue).From(table).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.db).QueryContext(ctx, sqlStr, args...)
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

func (r *sqliteRepo) SetSetting(ctx context.Context, name string, value int64) error {
	sqlStr, args, err := r.sb.Insert(table).
		Columns(colName, colValue).
		Values(name, value).
		Suffix(upsertSuffix).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, sqlStr, args...); err != nil {
		return persistence("set setting "+name, err)
	}
	return nil
}
