package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/thenoetrevino/blogdb/internal/models"
)

func TestContainsPattern(t *testing.T) {
	tests := []struct {
		keyword string
		want    string
	}{
		{"iv", "%iv%"},
		{"100%", `%100\%%`},
		{"a_b", `%a\_b%`},
		{`back\slash`, `%back\\slash%`},
		{"", "%%"},
	}

	for _, tt := range tests {
		if got := containsPattern(tt.keyword); got != tt.want {
			t.Errorf("containsPattern(%q) = %q, want %q", tt.keyword, got, tt.want)
		}
	}
}

func TestClassifyNonDriverError(t *testing.T) {
	err := classify("do something", errors.New("boom"))
	if !errors.Is(err, models.ErrStorage) {
		t.Errorf("Expected ErrStorage, got %v", err)
	}
	if errors.Is(err, models.ErrConflict) || errors.Is(err, models.ErrNotFound) {
		t.Errorf("Plain errors must not be classified as constraint failures: %v", err)
	}
}

func TestClassifyDriverErrors(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	if _, err := db.ExecContext(ctx, `INSERT INTO users (name, email) VALUES ('a', 'dup@mail.ru')`); err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}

	_, err := db.ExecContext(ctx, `INSERT INTO users (name, email) VALUES ('b', 'dup@mail.ru')`)
	if !isUniqueViolation(err) {
		t.Errorf("Expected unique violation, got %v", err)
	}
	if isForeignKeyViolation(err) {
		t.Errorf("Unique violation misread as foreign key violation: %v", err)
	}

	_, err = db.ExecContext(ctx, `INSERT INTO posts (title, content, user_id) VALUES ('t', 'c', 999)`)
	if !isForeignKeyViolation(err) {
		t.Errorf("Expected foreign key violation, got %v", err)
	}
}

func TestWithTxRollsBackOnError(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	sentinel := errors.New("abort")

	err := withTx(ctx, db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO users (name, email) VALUES ('a', 'a@mail.ru')`); err != nil {
			return err
		}
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("Expected sentinel error, got %v", err)
	}

	count, err := NewRepository(db).CountUsers(ctx)
	if err != nil {
		t.Fatalf("Failed to count users: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected rollback to discard insert, got %d users", count)
	}
}
