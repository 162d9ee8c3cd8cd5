package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/blogdb/internal/database"
	"github.com/thenoetrevino/blogdb/internal/models"
)

// DefaultRecentLimit is used by RecentPosts when no limit is given
const DefaultRecentLimit = 10

// CountOrder selects the row order of UserPostCounts
type CountOrder string

const (
	OrderByUserID    CountOrder = "id"
	OrderByPostCount CountOrder = "count"
)

// Service defines the read-only reporting queries
type Service interface {
	UserPostCounts(ctx context.Context, order CountOrder) ([]*models.UserPostCount, error)
	RecentPosts(ctx context.Context, limit int) ([]*models.RecentPost, error)
}

// service implements Service interface
type service struct {
	repo         database.ReportRepository
	logger       *slog.Logger
	defaultLimit int
}

// NewService creates a new report service. A non-positive defaultLimit
// falls back to DefaultRecentLimit.
func NewService(repo database.ReportRepository, logger *slog.Logger, defaultLimit int) Service {
	if logger == nil {
		logger = slog.Default()
	}
	if defaultLimit <= 0 {
		defaultLimit = DefaultRecentLimit
	}
	return &service{
		repo:         repo,
		logger:       logger.With("service", "report"),
		defaultLimit: defaultLimit,
	}
}

// UserPostCounts returns every user with the number of posts they own
func (s *service) UserPostCounts(ctx context.Context, order CountOrder) ([]*models.UserPostCount, error) {
	var byCount bool
	switch order {
	case "", OrderByUserID:
	case OrderByPostCount:
		byCount = true
	default:
		return nil, ErrInvalidOrder
	}

	counts, err := s.repo.GetUserPostCounts(ctx, byCount)
	if err != nil {
		return nil, fmt.Errorf("failed to count posts: %w", err)
	}
	return counts, nil
}

// RecentPosts returns at most limit of the newest posts. Zero means the
// configured default.
func (s *service) RecentPosts(ctx context.Context, limit int) ([]*models.RecentPost, error) {
	if limit < 0 {
		return nil, ErrNegativeLimit
	}
	if limit == 0 {
		limit = s.defaultLimit
	}

	posts, err := s.repo.GetRecentPosts(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent posts: %w", err)
	}
	s.logger.Debug("recent posts loaded", "limit", limit, "rows", len(posts))
	return posts, nil
}
