package transfer

import (
	"fmt"

	"github.com/thenoetrevino/blogdb/internal/models"
)

// Transfer-related errors
var (
	ErrEmptyPath     = models.NewError(models.ErrValidation, "file path cannot be empty")
	ErrNotArray      = models.NewError(models.ErrFileIO, "JSON document must be an array of user objects")
	ErrMissingHeader = models.NewError(models.ErrFileIO, "CSV file has no header row")
)

// fileErr tags a file-level failure so the whole transfer aborts as ErrFileIO
func fileErr(op, path string, err error) error {
	return fmt.Errorf("failed to %s %s: %w: %w", op, path, models.ErrFileIO, err)
}
