package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schema is applied on every startup; every statement is idempotent
var schema = []struct {
	name string
	stmt string
}{
	{"users table", `
		CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			email TEXT UNIQUE NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`},
	{"posts table", `
		CREATE TABLE IF NOT EXISTS posts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			user_id INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
		)
	`},
	{"posts user index", `
		CREATE INDEX IF NOT EXISTS idx_posts_user
		ON posts(user_id)
	`},
	{"posts created_at index", `
		CREATE INDEX IF NOT EXISTS idx_posts_created
		ON posts(created_at)
	`},
}

// runMigrations creates the database schema if it does not exist yet
func runMigrations(ctx context.Context, db *sql.DB) error {
	for _, s := range schema {
		if _, err := db.ExecContext(ctx, s.stmt); err != nil {
			return fmt.Errorf("failed to create %s: %w", s.name, err)
		}
	}
	return nil
}
