package app

import (
	"database/sql"
	"log/slog"

	"github.com/thenoetrevino/blogdb/internal/database"
	postservice "github.com/thenoetrevino/blogdb/internal/services/post"
	reportservice "github.com/thenoetrevino/blogdb/internal/services/report"
	transferservice "github.com/thenoetrevino/blogdb/internal/services/transfer"
	userservice "github.com/thenoetrevino/blogdb/internal/services/user"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore
	db   *sql.DB

	logger *slog.Logger

	// Service layer (business logic)
	UserService     userservice.Service
	PostService     postservice.Service
	ReportService   reportservice.Service
	TransferService transferservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(db *sql.DB, opts ...Option) *App {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	repo := database.NewRepository(db)
	return &App{
		repo:            repo,
		db:              db,
		logger:          cfg.logger,
		UserService:     userservice.NewService(repo, cfg.logger),
		PostService:     postservice.NewService(repo, repo, cfg.logger),
		ReportService:   reportservice.NewService(repo, cfg.logger, cfg.recentLimit),
		TransferService: transferservice.NewService(repo, cfg.logger),
	}
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Logger returns the logger shared by the services
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close releases the database handle
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
