package app

import (
	"log/slog"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger      *slog.Logger
	recentLimit int
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithRecentLimit sets the default row count of the recent posts report
func WithRecentLimit(limit int) Option {
	return func(cfg *appConfig) {
		cfg.recentLimit = limit
	}
}
