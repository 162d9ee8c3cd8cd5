package cli

import (
	"errors"

	"github.com/thenoetrevino/blogdb/internal/models"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures, or any error that
	// doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, non-numeric ids, wrong argument count.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: User not found, post not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Unreadable import files, unwritable export paths.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty names or emails, bad sort fields, negative limits.
	ExitValidation = 5

	// ExitConflict indicates a unique constraint was violated.
	// Use for: Adding a user with an email that is already taken.
	ExitConflict = 6
)

// UsageError marks an error caused by how the command was invoked
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// NewUsageError wraps err as a usage error
func NewUsageError(err error) error {
	if err == nil {
		return nil
	}
	return &UsageError{Err: err}
}

// ExitCodeFor maps an error returned by a command to a process exit code
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return ExitUsage
	}

	switch models.Kind(err) {
	case models.ErrValidation:
		return ExitValidation
	case models.ErrNotFound:
		return ExitNotFound
	case models.ErrConflict:
		return ExitConflict
	case models.ErrFileIO:
		return ExitDataErr
	default:
		return ExitError
	}
}

// ErrorCode returns the machine-readable code used in JSON error output
func ErrorCode(err error) string {
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return "USAGE_ERROR"
	}

	switch models.Kind(err) {
	case models.ErrValidation:
		return "VALIDATION_ERROR"
	case models.ErrNotFound:
		return "NOT_FOUND"
	case models.ErrConflict:
		return "CONFLICT"
	case models.ErrFileIO:
		return "FILE_ERROR"
	case models.ErrStorage:
		return "STORAGE_ERROR"
	default:
		return "ERROR"
	}
}
