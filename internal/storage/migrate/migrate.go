// Package migrate применяет встроенные SQL миграции ровно один раз на файл.
package migrate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	migrationTable = "schema_migrations"
	colName        = "name"
	colAppliedAt   = "applied_at"

	upMarker   = "-- +migrate Up"
	downMarker = "-- +migrate Down"
)

// Apply выполняет *.sql файлы из корня fsys в лексикографическом порядке.
// ph - формат плейсхолдеров диалекта (sq.Dollar для postgres, sq.Question для sqlite)
func Apply(ctx context.Context, db *sql.DB, fsys fs.FS, ph sq.PlaceholderFormat) error {
	if db == nil {
		return errors.New("sql db is required")
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	createSQL := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (%s TEXT PRIMARY KEY, %s BIGINT NOT NULL)`,
		migrationTable, colName, colAppliedAt)
	if _, err := db.ExecContext(ctx, createSQL); err != nil {
		return fmt.Errorf("ensure migration table: %w", err)
	}

	builder := sq.StatementBuilder.PlaceholderFormat(ph)
	for _, file := range files {
		applied, err := isApplied(ctx, db, builder, file)
		if err != nil {
			return fmt.Errorf("check migration %s: %w", file, err)
		}
		if applied {
			continue
		}

		content, err := fs.ReadFile(fsys, file)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", file, err)
		}

		upSQL := ExtractUp(string(content))
		if strings.TrimSpace(upSQL) == "" {
			continue
		}

		if err := applyOne(ctx, db, builder, file, upSQL); err != nil {
			return err
		}
	}

	return nil
}

func applyOne(ctx context.Context, db *sql.DB, builder sq.StatementBuilderType, file, upSQL string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration %s: %w", file, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, upSQL); err != nil {
		return fmt.Errorf("exec migration %s: %w", file, err)
	}

	query := builder.Insert(migrationTable).
		Columns(colName, colAppliedAt).
		Values(file, time.Now().UTC().UnixMilli()).
		Suffix("ON CONFLICT DO NOTHING")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("record migration %s: %w", file, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration %s: %w", file, err)
	}
	return nil
}

// ExtractUp возвращает SQL из секции "-- +migrate Up"
func ExtractUp(content string) string {
	upIdx := strings.Index(content, upMarker)
	if upIdx == -1 {
		return content
	}
	downIdx := strings.Index(content, downMarker)
	if downIdx == -1 || downIdx < upIdx {
		return content[upIdx+len(upMarker):]
	}
	return content[upIdx+len(upMarker) : downIdx]
}

func isApplied(ctx context.Context, db *sql.DB, builder sq.StatementBuilderType, name string) (bool, error) {
	sqlStr, args, err := builder.Select("1").
		From(migrationTable).
		Where(sq.Eq{colName: name}).
		ToSql()
	if err != nil {
		return false, err
	}

	var found int
	err = db.QueryRowContext(ctx, sqlStr, args...).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
