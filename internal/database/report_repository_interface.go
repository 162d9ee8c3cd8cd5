package database

import (
	"context"

	"github.com/thenoetrevino/blogdb/internal/models"
)

// ReportRepository defines the read-only aggregate queries.
type ReportRepository interface {
	GetUserPostCounts(ctx context.Context, byCount bool) ([]*models.UserPostCount, error)
	GetRecentPosts(ctx context.Context, limit int) ([]*models.RecentPost, error)
}
