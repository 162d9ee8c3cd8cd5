package user

import "github.com/thenoetrevino/blogdb/internal/models"

// User-related errors
var (
	// Validation errors
	ErrEmptyName        = models.NewError(models.ErrValidation, "name cannot be empty")
	ErrEmptyEmail       = models.NewError(models.ErrValidation, "email cannot be empty")
	ErrEmptyKeyword     = models.NewError(models.ErrValidation, "search keyword cannot be empty")
	ErrInvalidUserID    = models.NewError(models.ErrValidation, "invalid user ID")
	ErrNoUserSelector   = models.NewError(models.ErrValidation, "either a user ID or a user name is required")
	ErrInvalidSortField = models.NewError(models.ErrValidation, "invalid sort field (must be: id, name, email, created_at)")
	ErrInvalidDirection = models.NewError(models.ErrValidation, "invalid sort direction (must be: asc, desc)")
	ErrNegativeLimit    = models.NewError(models.ErrValidation, "limit cannot be negative")

	// Business logic errors
	ErrEmailTaken   = models.NewError(models.ErrConflict, "a user with this email already exists")
	ErrUserNotFound = models.NewError(models.ErrNotFound, "user not found")
)
