package models

import (
	"time"

	"github.com/thenoetrevino/blogdb/internal/types"
)

// Post represents a row of the posts table.
// Posts are owned by a user and removed with it (ON DELETE CASCADE).
type Post struct {
	ID        types.PostID `json:"id"`
	Title     string       `json:"title"`
	Content   string       `json:"content"`
	UserID    types.UserID `json:"user_id"`
	CreatedAt time.Time    `json:"created_at"`
}

// GetID implements the GetID interface for quiet mode output
func (p *Post) GetID() int {
	return p.ID.ToInt()
}

// PostWithAuthor is a post joined with the name of its author
type PostWithAuthor struct {
	ID         types.PostID `json:"id"`
	Title      string       `json:"title"`
	AuthorName string       `json:"author_name"`
	CreatedAt  time.Time    `json:"created_at"`
}

// GetID implements the GetID interface for quiet mode output
func (p *PostWithAuthor) GetID() int {
	return p.ID.ToInt()
}

// RecentPost is one row of the recent posts report
type RecentPost struct {
	Title      string    `json:"title"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
}
