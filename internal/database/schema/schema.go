// Package schema performs one-shot, idempotent schema operations on the
// leads database. There is no version tracking: every operation is safe to
// re-run and classifies "already done" as success.
package schema

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// ColumnResult is the outcome of EnsureColumn.
type ColumnResult int

const (
	// ColumnAdded means the ALTER TABLE statement ran and the column was created.
	ColumnAdded ColumnResult = iota
	// ColumnExists means the engine reported a duplicate column; the table
	// already has the column and nothing was changed.
	ColumnExists
)

// String returns a human-readable form of the result.
func (r ColumnResult) String() string {
	if r == ColumnExists {
		return "already exists"
	}
	return "added"
}

// EnsureColumn adds a column to an existing table if it is not already there.
// The statement runs inside a transaction and is committed before returning.
// A duplicate-column error from the engine is the expected re-run case and is
// reported as ColumnExists, not as an error. Any other engine error is
// returned to the caller with the transaction rolled back.
func EnsureColumn(ctx context.Context, db *sql.DB, table, column, typ, defaultValue string) (ColumnResult, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// DDL cannot be parameterized; identifiers are quoted instead.
	stmt := fmt.Sprintf(`ALTER TABLE %s ADD COLUMN %s %s DEFAULT %s`,
		quoteIdent(table), quoteIdent(column), typ, defaultValue)

	if _, err := tx.ExecContext(ctx, stmt); err != nil {
		if isDuplicateColumn(err) {
			return ColumnExists, nil
		}
		return 0, fmt.Errorf("failed to add column %s.%s: %w", table, column, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}
	return ColumnAdded, nil
}

// EnsureIndex creates an index if it does not already exist.
func EnsureIndex(ctx context.Context, db *sql.DB, name, table string, columns ...string) error {
	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = quoteIdent(c)
	}
	stmt := fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s ON %s (%s)`,
		quoteIdent(name), quoteIdent(table), strings.Join(quoted, ", "))
	if _, err := db.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("failed to create index %s: %w", name, err)
	}
	return nil
}

// ColumnExistsIn reports whether a table already has a column, using the
// engine's table_info pragma.
func ColumnExistsIn(ctx context.Context, db *sql.DB, table, column string) (bool, error) {
	cols, err := TableColumns(ctx, db, table)
	if err != nil {
		return false, err
	}
	for _, c := range cols {
		if c.Name == column {
			return true, nil
		}
	}
	return false, nil
}

// isDuplicateColumn checks for the engine's duplicate-column error from
// ALTER TABLE ADD COLUMN. The engine gives no typed error for this, so the
// message text is matched.
func isDuplicateColumn(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "duplicate column")
}

// quoteIdent quotes an SQL identifier.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
