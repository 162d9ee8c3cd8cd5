package models

import "errors"

// Error kinds shared by every layer. Package-level sentinels wrap one of
// these so callers can classify failures with errors.Is.
var (
	// ErrValidation marks input that fails validation rules (empty required
	// field, non-positive id, unknown ordering).
	ErrValidation = errors.New("validation error")

	// ErrConflict marks a duplicate unique key
	ErrConflict = errors.New("conflict")

	// ErrNotFound marks a referenced id or name that does not exist
	ErrNotFound = errors.New("not found")

	// ErrStorage marks a backing store failure not otherwise classified
	ErrStorage = errors.New("storage error")

	// ErrFileIO marks an import/export file that cannot be read, written or parsed
	ErrFileIO = errors.New("file error")
)

// TimestampLayout is the text form of created_at used by CSV and JSON files
// and by human-readable output. It matches SQLite's CURRENT_TIMESTAMP.
const TimestampLayout = "2006-01-02 15:04:05"

// kindError is a sentinel with its own message that still matches its kind
type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

// NewError returns a sentinel error with message msg that satisfies
// errors.Is(err, kind).
func NewError(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

// Kind returns the taxonomy kind err belongs to, or nil if it has none
func Kind(err error) error {
	for _, kind := range []error{ErrValidation, ErrConflict, ErrNotFound, ErrFileIO, ErrStorage} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
