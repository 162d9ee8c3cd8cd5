package post

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/blogdb/internal/database"
	"github.com/thenoetrevino/blogdb/internal/models"
	"github.com/thenoetrevino/blogdb/internal/types"
	"github.com/thenoetrevino/blogdb/internal/validation"
)

// Service defines all post-related business operations
type Service interface {
	// Read operations
	GetPost(ctx context.Context, id types.PostID) (*models.Post, error)
	GetPostContent(ctx context.Context, id types.PostID) (string, error)
	ListPostsWithAuthors(ctx context.Context) ([]*models.PostWithAuthor, error)
	ListPostsByUser(ctx context.Context, userID types.UserID) ([]*models.Post, error)

	// Write operations
	AddPost(ctx context.Context, req AddPostRequest) (*models.Post, error)
	DeletePost(ctx context.Context, id types.PostID) (bool, error)
}

// AddPostRequest encapsulates data for creating a post
type AddPostRequest struct {
	Title   string       `validate:"required"`
	Content string       `validate:"required"`
	UserID  types.UserID `validate:"gt=0"`
}

// service implements Service interface
type service struct {
	repo   database.PostRepository
	users  database.UserReader
	logger *slog.Logger
}

// NewService creates a new post service. A nil logger falls back to slog.Default.
func NewService(repo database.PostRepository, users database.UserReader, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		repo:   repo,
		users:  users,
		logger: logger.With("service", "post"),
	}
}

// GetPost retrieves a single post
func (s *service) GetPost(ctx context.Context, id types.PostID) (*models.Post, error) {
	if !id.Valid() {
		return nil, ErrInvalidPostID
	}

	post, err := s.repo.GetPostByID(ctx, id)
	if err != nil {
		return nil, s.wrapLookup(err, id)
	}
	return post, nil
}

// GetPostContent returns the body of a post
func (s *service) GetPostContent(ctx context.Context, id types.PostID) (string, error) {
	if !id.Valid() {
		return "", ErrInvalidPostID
	}

	content, err := s.repo.GetPostContent(ctx, id)
	if err != nil {
		return "", s.wrapLookup(err, id)
	}
	return content, nil
}

// ListPostsWithAuthors returns every post joined with its author's name, by post ID
func (s *service) ListPostsWithAuthors(ctx context.Context) ([]*models.PostWithAuthor, error) {
	posts, err := s.repo.ListPostsWithAuthors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// ListPostsByUser returns the posts written by one user
func (s *service) ListPostsByUser(ctx context.Context, userID types.UserID) ([]*models.Post, error) {
	if !userID.Valid() {
		return nil, ErrInvalidUserID
	}

	exists, err := s.users.UserExists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: id %d", ErrUserNotFound, userID)
	}

	posts, err := s.repo.ListPostsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// AddPost creates a post owned by an existing user
func (s *service) AddPost(ctx context.Context, req AddPostRequest) (*models.Post, error) {
	req.Title = strings.TrimSpace(req.Title)
	if strings.TrimSpace(req.Content) == "" {
		req.Content = ""
	}
	if err := validation.Struct(req); err != nil {
		return nil, mapValidationError(err)
	}

	exists, err := s.users.UserExists(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: id %d", ErrUserNotFound, req.UserID)
	}

	post, err := s.repo.CreatePost(ctx, req.Title, req.Content, req.UserID)
	if err != nil {
		// the author may have been removed between the check and the insert
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrUserNotFound, req.UserID)
		}
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.logger.Info("post added", "post_id", post.ID, "user_id", post.UserID)
	return post, nil
}

// DeletePost removes a post. It reports whether a row was removed.
func (s *service) DeletePost(ctx context.Context, id types.PostID) (bool, error) {
	if !id.Valid() {
		return false, ErrInvalidPostID
	}

	n, err := s.repo.DeletePost(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete post: %w", err)
	}

	if n == 0 {
		s.logger.Debug("delete of missing post ignored", "post_id", id)
		return false, nil
	}
	s.logger.Info("post deleted", "post_id", id)
	return true, nil
}

func (s *service) wrapLookup(err error, id types.PostID) error {
	if errors.Is(err, models.ErrNotFound) {
		return fmt.Errorf("%w: id %d", ErrPostNotFound, id)
	}
	return fmt.Errorf("failed to get post: %w", err)
}

// mapValidationError converts a struct validation failure to this package's sentinels
func mapValidationError(err error) error {
	field, ok := validation.Field(err)
	if !ok {
		return err
	}
	switch field {
	case "Title":
		return ErrEmptyTitle
	case "Content":
		return ErrEmptyContent
	case "UserID":
		return ErrInvalidUserID
	default:
		return err
	}
}
