package database

import (
	"context"

	"github.com/thenoetrevino/blogdb/internal/models"
	"github.com/thenoetrevino/blogdb/internal/types"
)

// UserReader defines read operations for users.
type UserReader interface {
	GetUserByID(ctx context.Context, id types.UserID) (*models.User, error)
	UserExists(ctx context.Context, id types.UserID) (bool, error)
	ListUsers(ctx context.Context, orderBy models.UserSortField, descending bool, limit int) ([]*models.User, error)
	SearchUsers(ctx context.Context, keyword string) ([]*models.User, error)
	CountUsers(ctx context.Context) (int, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	CreateUser(ctx context.Context, name, email string) (*models.User, error)
	UpdateUserEmail(ctx context.Context, id types.UserID, email string) (int64, error)
	UpdateUserEmailByName(ctx context.Context, name, email string) (int64, error)
	DeleteUser(ctx context.Context, id types.UserID) (int64, error)
	ImportUsers(ctx context.Context, users []models.NewUser) (imported, duplicates int, err error)
}

// UserRepository combines all user-related operations.
type UserRepository interface {
	UserReader
	UserWriter
}
