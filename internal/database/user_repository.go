package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/blogdb/internal/models"
	"github.com/thenoetrevino/blogdb/internal/types"
)

// UserRepo handles all user-related database operations.
type UserRepo struct {
	db *sql.DB
}

const userColumns = `id, name, email, created_at`

// userOrderColumns maps sort fields to SQL. Only these strings are ever
// interpolated into ORDER BY.
var userOrderColumns = map[models.UserSortField]string{
	models.SortByID:        "id",
	models.SortByName:      "name",
	models.SortByEmail:     "email",
	models.SortByCreatedAt: "created_at",
}

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	user := &models.User{}
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.CreatedAt); err != nil {
		return nil, err
	}
	return user, nil
}

func queryUsers(ctx context.Context, q dbtx, op string, query string, args ...any) ([]*models.User, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageErr(op, err)
	}
	defer closeRows(rows)

	users := make([]*models.User, 0, 10)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, storageErr("scan user row", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate user rows", err)
	}
	return users, nil
}

// CreateUser inserts a user. A duplicate email is reported as models.ErrConflict.
func (r *UserRepo) CreateUser(ctx context.Context, name, email string) (*models.User, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO users (name, email) VALUES (?, ?)`,
		name, email,
	)
	if err != nil {
		return nil, classify(fmt.Sprintf("insert user '%s'", email), err)
	}

	userID, err := result.LastInsertId()
	if err != nil {
		return nil, storageErr("get user ID after insert", err)
	}

	slog.Debug("user created", "user_id", userID, "email", email)
	return r.GetUserByID(ctx, types.UserID(userID))
}

// GetUserByID retrieves a user by its ID
func (r *UserRepo) GetUserByID(ctx context.Context, id types.UserID) (*models.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("user", id.ToInt())
	}
	if err != nil {
		return nil, storageErr(fmt.Sprintf("get user %d", id), err)
	}
	return user, nil
}

// UserExists reports whether a user with the given ID is stored
func (r *UserRepo) UserExists(ctx context.Context, id types.UserID) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE id = ?)`, id,
	).Scan(&exists)
	if err != nil {
		return false, storageErr(fmt.Sprintf("check user %d", id), err)
	}
	return exists, nil
}

// ListUsers returns users ordered by orderBy. limit <= 0 means no limit.
func (r *UserRepo) ListUsers(ctx context.Context, orderBy models.UserSortField, descending bool, limit int) ([]*models.User, error) {
	column, ok := userOrderColumns[orderBy]
	if !ok {
		return nil, fmt.Errorf("unknown sort field %q: %w", orderBy, models.ErrValidation)
	}

	direction := "ASC"
	if descending {
		direction = "DESC"
	}
	if limit <= 0 {
		limit = -1
	}

	// id breaks ties so equal names or timestamps keep a stable order
	query := fmt.Sprintf(`SELECT %s FROM users ORDER BY %s %s, id %s LIMIT ?`,
		userColumns, column, direction, direction)
	return queryUsers(ctx, r.db, "list users", query, limit)
}

// SearchUsers returns users whose name or email contains keyword
func (r *UserRepo) SearchUsers(ctx context.Context, keyword string) ([]*models.User, error) {
	pattern := containsPattern(keyword)
	return queryUsers(ctx, r.db, fmt.Sprintf("search users for '%s'", keyword), `
		SELECT `+userColumns+`
		FROM users
		WHERE name LIKE ? ESCAPE '\' OR email LIKE ? ESCAPE '\'
		ORDER BY id
	`, pattern, pattern)
}

// CountUsers returns the number of stored users
func (r *UserRepo) CountUsers(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, storageErr("count users", err)
	}
	return count, nil
}

// UpdateUserEmail sets the email of the user with the given ID and returns
// the number of rows changed.
func (r *UserRepo) UpdateUserEmail(ctx context.Context, id types.UserID, email string) (int64, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE users SET email = ? WHERE id = ?`, email, id)
	if err != nil {
		return 0, classify(fmt.Sprintf("update email of user %d", id), err)
	}
	return rowsAffected(result)
}

// UpdateUserEmailByName sets the email of every user with the given name
func (r *UserRepo) UpdateUserEmailByName(ctx context.Context, name, email string) (int64, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE users SET email = ? WHERE name = ?`, email, name)
	if err != nil {
		return 0, classify(fmt.Sprintf("update email of user '%s'", name), err)
	}
	return rowsAffected(result)
}

// DeleteUser removes a user; its posts go with it (ON DELETE CASCADE).
// A missing ID removes nothing and is not an error.
func (r *UserRepo) DeleteUser(ctx context.Context, id types.UserID) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return 0, storageErr(fmt.Sprintf("delete user %d", id), err)
	}
	return rowsAffected(result)
}

// ImportUsers inserts users in one transaction, skipping those whose email
// is already stored. It returns how many were inserted and how many skipped.
func (r *UserRepo) ImportUsers(ctx context.Context, users []models.NewUser) (imported, duplicates int, err error) {
	err = withTx(ctx, r.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO users (name, email) VALUES (?, ?)`)
		if err != nil {
			return storageErr("prepare user import", err)
		}
		defer func() {
			if err := stmt.Close(); err != nil {
				slog.Error("failed to close statement", "error", err)
			}
		}()

		for _, u := range users {
			result, err := stmt.ExecContext(ctx, u.Name, u.Email)
			if err != nil {
				return storageErr(fmt.Sprintf("import user '%s'", u.Email), err)
			}
			n, err := rowsAffected(result)
			if err != nil {
				return err
			}
			if n == 0 {
				slog.Debug("import skipped duplicate", "email", u.Email)
				duplicates++
				continue
			}
			imported++
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return imported, duplicates, nil
}

func rowsAffected(result sql.Result) (int64, error) {
	n, err := result.RowsAffected()
	if err != nil {
		return 0, storageErr("get rows affected", err)
	}
	return n, nil
}
