package types

import "strconv"

// ID type aliases document what each integer represents in the domain model.

// UserID identifies a row in the users table
type UserID int

// PostID identifies a row in the posts table
type PostID int

// ToInt converts type alias back to int
func (id UserID) ToInt() int {
	return int(id)
}

func (id PostID) ToInt() int {
	return int(id)
}

func (id UserID) String() string {
	return strconv.Itoa(int(id))
}

func (id PostID) String() string {
	return strconv.Itoa(int(id))
}

// Valid reports whether the id can reference a stored row
func (id UserID) Valid() bool {
	return id > 0
}

func (id PostID) Valid() bool {
	return id > 0
}
