package database

import (
	"context"

	"github.com/thenoetrevino/blogdb/internal/models"
	"github.com/thenoetrevino/blogdb/internal/types"
)

// PostReader defines read operations for posts.
type PostReader interface {
	GetPostByID(ctx context.Context, id types.PostID) (*models.Post, error)
	GetPostContent(ctx context.Context, id types.PostID) (string, error)
	ListPostsWithAuthors(ctx context.Context) ([]*models.PostWithAuthor, error)
	ListPostsByUser(ctx context.Context, userID types.UserID) ([]*models.Post, error)
	CountPosts(ctx context.Context) (int, error)
}

// PostWriter defines write operations for posts.
type PostWriter interface {
	CreatePost(ctx context.Context, title, content string, userID types.UserID) (*models.Post, error)
	DeletePost(ctx context.Context, id types.PostID) (int64, error)
}

// PostRepository combines all post-related operations.
type PostRepository interface {
	PostReader
	PostWriter
}
