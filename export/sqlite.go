package export

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"token-balance-reporter/core/model"

	_ "modernc.org/sqlite"
)

const SQLiteTable = "balances"

// SQLiteWriter stores the table in a fresh SQLite file, one TEXT column per
// header plus row_no to keep the row order.
type SQLiteWriter struct {
	Path string
}

func (w *SQLiteWriter) Write(ctx context.Context, table *model.Table) error {
	return writeAtomic(w.Path, func(tmp string) error {
		db, err := sql.Open("sqlite", tmp)
		if err != nil {
			return fmt.Errorf("open sqlite: %w", err)
		}
		defer db.Close()

		if err := writeSQLiteTable(ctx, db, table); err != nil {
			return err
		}
		return db.Close()
	})
}

func writeSQLiteTable(ctx context.Context, db *sql.DB, table *model.Table) error {
	cols := make([]string, 0, len(table.Headers)+1)
	cols = append(cols, "row_no INTEGER PRIMARY KEY")
	for _, h := range table.Headers {
		cols = append(cols, quoteIdent(h)+" TEXT")
	}
	if _, err := db.ExecContext(ctx, fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(SQLiteTable), strings.Join(cols, ", "))); err != nil {
		return fmt.Errorf("create table: %w", err)
	}

	names := make([]string, 0, len(table.Headers)+1)
	names = append(names, "row_no")
	for _, h := range table.Headers {
		names = append(names, quoteIdent(h))
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(names)), ", ")
	insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", quoteIdent(SQLiteTable), strings.Join(names, ", "), placeholders)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, row := range table.Rows {
		args := make([]any, 0, len(names))
		args = append(args, i+1)
		for j := range table.Headers {
			var v string
			if j < len(row) {
				v = row[j]
			}
			args = append(args, v)
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("insert row %d: %w", i+1, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
