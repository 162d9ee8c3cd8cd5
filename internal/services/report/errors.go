package report

import "github.com/thenoetrevino/blogdb/internal/models"

// Report-related errors
var (
	ErrNegativeLimit = models.NewError(models.ErrValidation, "limit cannot be negative")
	ErrInvalidOrder  = models.NewError(models.ErrValidation, "invalid order (must be: id, count)")
)
