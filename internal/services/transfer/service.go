package transfer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/thenoetrevino/blogdb/internal/database"
	"github.com/thenoetrevino/blogdb/internal/models"
)

// Service moves the users table to and from CSV and JSON files
type Service interface {
	ExportUsersCSV(ctx context.Context, path string) (int, error)
	ExportUsersJSON(ctx context.Context, path string) (int, error)
	ImportUsersCSV(ctx context.Context, path string) (*models.ImportResult, error)
	ImportUsersJSON(ctx context.Context, path string) (*models.ImportResult, error)
}

// service implements Service interface
type service struct {
	repo   database.UserRepository
	logger *slog.Logger
}

// NewService creates a new transfer service. A nil logger falls back to slog.Default.
func NewService(repo database.UserRepository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		repo:   repo,
		logger: logger.With("service", "transfer"),
	}
}

// snapshot loads every user in id order
func (s *service) snapshot(ctx context.Context) ([]*models.User, error) {
	users, err := s.repo.ListUsers(ctx, models.SortByID, false, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	return users, nil
}

// writeFile creates or truncates path and hands it to write
func writeFile(path string, write func(f *os.File) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fileErr("create", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fileErr("close", path, cerr)
		}
	}()
	return write(f)
}

// store inserts the parsed rows and completes result
func (s *service) store(ctx context.Context, path string, rows []models.NewUser, result *models.ImportResult) (*models.ImportResult, error) {
	imported, duplicates, err := s.repo.ImportUsers(ctx, rows)
	if err != nil {
		return nil, fmt.Errorf("failed to import users: %w", err)
	}
	result.Imported = imported
	result.Duplicates = duplicates

	s.logger.Info("users imported",
		"path", path,
		"imported", result.Imported,
		"duplicates", result.Duplicates,
		"malformed", result.Malformed)
	return result, nil
}

// newUser trims a parsed pair and reports whether both values are present
func newUser(name, email string) (models.NewUser, bool) {
	u := models.NewUser{Name: strings.TrimSpace(name), Email: strings.TrimSpace(email)}
	return u, u.Name != "" && u.Email != ""
}
