package user

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

// Sort directions accepted by ListUsersRequest
const (
	DirectionAsc  = "asc"
	DirectionDesc = "desc"
)

// Service defines all user-related business operations
type Service interface {
	// Read operations
	GetUser(ctx context.Context, id types.UserID) (*models.User, error)
	ListUsers(ctx context.Context, req ListUsersRequest) ([]*models.User, error)
	SearchUsers(ctx context.Context, keyword string) ([]*models.User, error)
	CountUsers(ctx context.Context) (int, error)

	// Write operations
	AddUser(ctx context.Context, req AddUserRequest) (*models.User, error)
	UpdateEmail(ctx context.Context, req UpdateEmailRequest) error
	DeleteUser(ctx context.Context, id types.UserID) (bool, error)
}

// AddUserRequest encapsulates data for creating a user
type AddUserRequest struct {
	Name  string `validate:"required"`
	Email string `validate:"required"`
}

// UpdateEmailRequest selects a user by ID or, when ID is zero, by name
type UpdateEmailRequest struct {
	ID    types.UserID `validate:"required_without=Name"`
	Name  string       `validate:"required_without=ID"`
	Email string       `validate:"required"`
}

// ListUsersRequest controls ordering and truncation of a user listing.
// Zero values list every user by ascending ID.
type ListUsersRequest struct {
	OrderBy   models.UserSortField `validate:"omitempty,oneof=id name email created_at"`
	Direction string               `validate:"omitempty,oneof=asc desc"`
	Limit     int                  `validate:"gte=0"`
}

// service implements Service interface
type service struct {
	repo   database.UserRepository
	logger *slog.Logger
}

// NewService creates a new user service. A nil logger falls back to slog.Default.
func NewService(repo database.UserRepository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		repo:   repo,
		logger: logger.With("service", "user"),
	}
}

// GetUser retrieves a single user
func (s *service) GetUser(ctx context.Context, id types.UserID) (*models.User, error) {
	if !id.Valid() {
		return nil, ErrInvalidUserID
	}

	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrUserNotFound, id)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// ListUsers returns a snapshot of users in the requested order
func (s *service) ListUsers(ctx context.Context, req ListUsersRequest) ([]*models.User, error) {
	if err := validation.Struct(req); err != nil {
		return nil, mapValidationError(err)
	}

	orderBy := req.OrderBy
	if orderBy == "" {
		orderBy = models.SortByID
	}

	users, err := s.repo.ListUsers(ctx, orderBy, req.Direction == DirectionDesc, req.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// SearchUsers returns users whose name or email contains keyword.
// The match is an unanchored substring match, case-insensitive for ASCII.
func (s *service) SearchUsers(ctx context.Context, keyword string) ([]*models.User, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, ErrEmptyKeyword
	}

	users, err := s.repo.SearchUsers(ctx, keyword)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	s.logger.Debug("search executed", "keyword", keyword, "matches", len(users))
	return users, nil
}

// CountUsers returns the number of stored users
func (s *service) CountUsers(ctx context.Context) (int, error) {
	return s.repo.CountUsers(ctx)
}

// AddUser creates a user. A duplicate email is rejected with ErrEmailTaken.
func (s *service) AddUser(ctx context.Context, req AddUserRequest) (*models.User, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if err := validation.Struct(req); err != nil {
		return nil, mapValidationError(err)
	}

	user, err := s.repo.CreateUser(ctx, req.Name, req.Email)
	if err != nil {
		if errors.Is(err, models.ErrConflict) {
			return nil, fmt.Errorf("%w: %s", ErrEmailTaken, req.Email)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user added", "user_id", user.ID, "email", user.Email)
	return user, nil
}

// UpdateEmail changes the email of the user selected by ID or name.
// Uniqueness is left to the storage layer.
func (s *service) UpdateEmail(ctx context.Context, req UpdateEmailRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.ID < 0 {
		return ErrInvalidUserID
	}
	if err := validation.Struct(req); err != nil {
		return mapValidationError(err)
	}

	var (
		n   int64
		err error
	)
	selector := fmt.Sprintf("name %q", req.Name)
	if req.ID.Valid() {
		selector = fmt.Sprintf("id %d", req.ID)
		n, err = s.repo.UpdateUserEmail(ctx, req.ID, req.Email)
	} else {
		n, err = s.repo.UpdateUserEmailByName(ctx, req.Name, req.Email)
	}
	if err != nil {
		if errors.Is(err, models.ErrConflict) {
			return fmt.Errorf("%w: %s", ErrEmailTaken, req.Email)
		}
		return fmt.Errorf("failed to update email: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrUserNotFound, selector)
	}

	s.logger.Info("user email updated", "selector", selector, "email", req.Email, "rows", n)
	return nil
}

// DeleteUser removes a user and, by cascade, its posts. It reports whether
// a row was removed; a missing user is not an error.
func (s *service) DeleteUser(ctx context.Context, id types.UserID) (bool, error) {
	if !id.Valid() {
		return false, ErrInvalidUserID
	}

	n, err := s.repo.DeleteUser(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete user: %w", err)
	}

	if n == 0 {
		s.logger.Debug("delete of missing user ignored", "user_id", id)
		return false, nil
	}
	s.logger.Info("user deleted", "user_id", id)
	return true, nil
}

// mapValidationError converts a struct validation failure to this package's sentinels
func mapValidationError(err error) error {
	field, ok := validation.Field(err)
	if !ok {
		return err
	}
	switch field {
	case "Name":
		return ErrEmptyName
	case "Email":
		return ErrEmptyEmail
	case "ID":
		return ErrNoUserSelector
	case "OrderBy":
		return ErrInvalidSortField
	case "Direction":
		return ErrInvalidDirection
	case "Limit":
		return ErrNegativeLimit
	default:
		return err
	}
}
