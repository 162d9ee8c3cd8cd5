// Package database handles the initialization and connection to the SQLite db
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// InMemory is the SQLite path for a private, non-persistent database
const InMemory = ":memory:"

// InitDB opens the database file at dbPath, creating its directory when needed.
func InitDB(ctx context.Context, dbPath string) (*sql.DB, error) {
	if dbPath != InMemory {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	return Open(ctx, dbPath)
}

// Open opens the database at dbPath, applies connection pragmas and runs
// migrations. The returned handle is the single long-lived connection to the
// store; the caller must Close it.
func Open(ctx context.Context, dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One connection for the lifetime of the handle. PRAGMAs are per
	// connection and an in-memory database only exists on the connection
	// that created it.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []struct {
		stmt string
		desc string
	}{
		// required for ON DELETE CASCADE
		{"PRAGMA foreign_keys = ON", "enable foreign keys"},
		{"PRAGMA journal_mode = WAL", "enable WAL mode"},
		{"PRAGMA busy_timeout = 5000", "set busy timeout"},
	}
	for _, p := range pragmas {
		if dbPath == InMemory && p.stmt == "PRAGMA journal_mode = WAL" {
			continue
		}
		if _, err := db.ExecContext(ctx, p.stmt); err != nil {
			slog.Error("failed to "+p.desc, "error", err)
			closeDB(db)
			return nil, fmt.Errorf("failed to %s: %w", p.desc, err)
		}
	}

	if err := db.PingContext(ctx); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	slog.Debug("database opened", "path", dbPath)
	return db, nil
}

func closeDB(db *sql.DB) {
	if err := db.Close(); err != nil {
		slog.Error("error closing db", "error", err)
	}
}
