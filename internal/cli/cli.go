package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/thenoetrevino/blogdb/internal/app"
	"github.com/thenoetrevino/blogdb/internal/config"
	"github.com/thenoetrevino/blogdb/internal/database"
	"github.com/thenoetrevino/blogdb/internal/logging"
)

// ErrNotInitialized is returned when a command runs without a CLI in its context
var ErrNotInitialized = errors.New("CLI not initialized")

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config

	owned     bool // App and log file are released by Close
	logCloser io.Closer
}

type cliContextKey struct{}

// NewCLI initializes logging and the database described by cfg
func NewCLI(ctx context.Context, cfg *config.Config) (*CLI, error) {
	logCloser, err := logging.Init(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	db, err := database.InitDB(ctx, cfg.Database.Path)
	if err != nil {
		_ = logCloser.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	application := app.New(db,
		app.WithLogger(slog.Default()),
		app.WithRecentLimit(cfg.Report.RecentLimit),
	)

	return &CLI{
		App:       application,
		Config:    cfg,
		owned:     true,
		logCloser: logCloser,
	}, nil
}

// WithCLI returns a copy of ctx carrying c
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, cliContextKey{}, c)
}

// GetCLIFromContext returns the CLI set up by the root command. An App
// injected with app.NewContext (as tests do) is wrapped in a CLI that does
// not own it.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if c, ok := ctx.Value(cliContextKey{}).(*CLI); ok && c != nil {
		return c, nil
	}
	if a := app.FromContext(ctx); a != nil {
		return &CLI{App: a, Config: config.Default()}, nil
	}
	return nil, ErrNotInitialized
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	err := c.App.Close()
	if c.logCloser != nil {
		if cerr := c.logCloser.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
