package post

import "github.com/thenoetrevino/blogdb/internal/models"

// Post-related errors
var (
	// Validation errors
	ErrEmptyTitle    = models.NewError(models.ErrValidation, "post title cannot be empty")
	ErrEmptyContent  = models.NewError(models.ErrValidation, "post content cannot be empty")
	ErrInvalidPostID = models.NewError(models.ErrValidation, "invalid post ID")
	ErrInvalidUserID = models.NewError(models.ErrValidation, "invalid user ID")

	// Business logic errors
	ErrUserNotFound = models.NewError(models.ErrNotFound, "user not found")
	ErrPostNotFound = models.NewError(models.ErrNotFound, "post not found")
)
