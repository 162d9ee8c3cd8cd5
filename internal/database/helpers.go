package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/blogdb/internal/models"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// dbtx is the subset of *sql.DB and *sql.Tx used by the repositories
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// withTx executes a function within a database transaction.
// It automatically handles begin, rollback on error, and commit on success.
func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr("begin transaction", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return storageErr("commit transaction", err)
	}

	return nil
}

// closeRows closes a result set, logging instead of returning the error
func closeRows(rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		slog.Error("failed to close rows", "error", err)
	}
}

// storageErr tags a driver failure with models.ErrStorage
func storageErr(op string, err error) error {
	return fmt.Errorf("failed to %s: %w: %w", op, models.ErrStorage, err)
}

// classify maps SQLite constraint failures to the error taxonomy. Unique
// violations become ErrConflict, foreign key violations ErrNotFound and
// anything else ErrStorage.
func classify(op string, err error) error {
	switch {
	case isUniqueViolation(err):
		return fmt.Errorf("failed to %s: %w: %w", op, models.ErrConflict, err)
	case isForeignKeyViolation(err):
		return fmt.Errorf("failed to %s: %w: %w", op, models.ErrNotFound, err)
	default:
		return storageErr(op, err)
	}
}

func constraintCode(err error) (int, string, bool) {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return 0, "", false
	}
	return sqliteErr.Code(), sqliteErr.Error(), true
}

func isUniqueViolation(err error) bool {
	code, msg, ok := constraintCode(err)
	if !ok {
		return false
	}
	switch code {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	case sqlite3.SQLITE_CONSTRAINT:
		return strings.Contains(msg, "UNIQUE")
	}
	return false
}

func isForeignKeyViolation(err error) bool {
	code, msg, ok := constraintCode(err)
	if !ok {
		return false
	}
	switch code {
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return true
	case sqlite3.SQLITE_CONSTRAINT:
		return strings.Contains(msg, "FOREIGN KEY")
	}
	return false
}

// likeEscaper escapes LIKE wildcards so a keyword matches literally.
// Queries using it must declare ESCAPE '\'.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an unanchored LIKE pattern for keyword
func containsPattern(keyword string) string {
	return "%" + likeEscaper.Replace(keyword) + "%"
}

// notFound reports a missing row as models.ErrNotFound
func notFound(entity string, id int) error {
	return fmt.Errorf("%s %d: %w", entity, id, models.ErrNotFound)
}
