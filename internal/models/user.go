package models

import (
	"time"

	"github.com/thenoetrevino/blogdb/internal/types"
)

// User represents a row of the users table
type User struct {
	ID        types.UserID `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	CreatedAt time.Time    `json:"created_at"`
}

// GetID implements the GetID interface for quiet mode output
func (u *User) GetID() int {
	return u.ID.ToInt()
}

// UserPostCount is one row of the per-user post count report
type UserPostCount struct {
	UserID    types.UserID `json:"user_id"`
	Name      string       `json:"name"`
	PostCount int          `json:"post_count"`
}

// NewUser is the (name, email) pair inserted for a user
type NewUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserSortField names a users column that listings can be ordered by
type UserSortField string

const (
	SortByID        UserSortField = "id"
	SortByName      UserSortField = "name"
	SortByEmail     UserSortField = "email"
	SortByCreatedAt UserSortField = "created_at"
)

// UserSortFields lists the accepted sort fields in display order
var UserSortFields = []UserSortField{SortByID, SortByName, SortByEmail, SortByCreatedAt}

// Valid reports whether f is one of the accepted sort fields
func (f UserSortField) Valid() bool {
	for _, known := range UserSortFields {
		if f == known {
			return true
		}
	}
	return false
}

// ImportResult summarizes a bulk import
type ImportResult struct {
	Imported   int `json:"imported"`
	Duplicates int `json:"duplicates"`
	Malformed  int `json:"malformed"`
}
