package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvDatabasePath overrides database.path when set
const EnvDatabasePath = "BLOGDB_DB"

// Default values used for missing configuration
const (
	DefaultLogLevel    = "info"
	DefaultRecentLimit = 10
)

// Config represents the application configuration
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Report   ReportConfig   `yaml:"report"`
	Output   OutputConfig   `yaml:"output"`
}

// DatabaseConfig locates the SQLite file
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// LogConfig controls the application log file
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`
}

// ReportConfig holds defaults for the report commands
type ReportConfig struct {
	RecentLimit int `yaml:"recent_limit"`
}

// OutputConfig controls human-readable output
type OutputConfig struct {
	Color *bool `yaml:"color,omitempty"`
}

// ColorEnabled reports whether styled output is wanted. Unset means yes.
func (o OutputConfig) ColorEnabled() bool {
	return o.Color == nil || *o.Color
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		// Return default config if we can't determine config path
		cfg := Default()
		cfg.applyEnv()
		return cfg, nil
	}
	return LoadFile(configPath)
}

// LoadFile loads config from path, falling back to defaults when the file
// doesn't exist
func LoadFile(configPath string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(configPath)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("failed to read config %s: %w", configPath, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", configPath, err)
		}
	}

	cfg.applyEnv()

	// Fill in any missing values with defaults
	cfg.applyDefaults()

	return &cfg, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}
	return c.SaveFile(configPath)
}

// SaveFile writes the config to configPath, creating parent directories
func (c *Config) SaveFile(configPath string) error {
	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the path to the config file
func Path() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "blogdb", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "blogdb", "config.yaml"), nil
}

// DataDir returns ~/.blogdb, the home of the database and log files
func DataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".blogdb"), nil
}

func (c *Config) applyEnv() {
	if path := os.Getenv(EnvDatabasePath); path != "" {
		c.Database.Path = path
	}
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	dataDir, err := DataDir()
	if err != nil {
		dataDir = "."
	}

	if c.Database.Path == "" {
		c.Database.Path = filepath.Join(dataDir, "blog.db")
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.File == "" {
		c.Log.File = filepath.Join(dataDir, "logs", "blogdb.log")
	}
	if c.Report.RecentLimit <= 0 {
		c.Report.RecentLimit = DefaultRecentLimit
	}
}
