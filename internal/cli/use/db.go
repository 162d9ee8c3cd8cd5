package use

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/blogdb/internal/cli"
	"github.com/thenoetrevino/blogdb/internal/config"
	"github.com/thenoetrevino/blogdb/internal/models"
)

// DBCmd returns the use db subcommand
func DBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db [path]",
		Short: "Set the database file for the current shell session",
		Long: `Set the database file using an environment variable.
This command outputs shell commands that should be evaluated:

  eval $(blogdb use db ./blog.db)   # Use ./blog.db
  eval $(blogdb use db --clear)     # Clear the override
  blogdb use db --show              # Show the database in use

The ` + config.EnvDatabasePath + ` environment variable will be set in your current shell
session only. The --db flag on other commands takes precedence over
this environment variable.`,
		Args: func(cmd *cobra.Command, args []string) error {
			return cli.NewUsageError(cobra.MaximumNArgs(1)(cmd, args))
		},
		RunE: runUseDB,
	}

	cmd.Flags().Bool("clear", false, "Clear the database override")
	cmd.Flags().Bool("show", false, "Show the database in use")
	cmd.Flags().Bool("dry-run", false, "Show what would be exported without outputting shell commands")

	return cmd
}

func runUseDB(cmd *cobra.Command, args []string) error {
	clearFlag, _ := cmd.Flags().GetBool("clear")
	showFlag, _ := cmd.Flags().GetBool("show")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	stderr := cmd.ErrOrStderr()

	// Handle --show flag
	if showFlag {
		return showCurrentDB()
	}

	// Handle --clear flag
	if clearFlag {
		if dryRun {
			fmt.Fprintf(stderr, "Would clear %s\n", config.EnvDatabasePath)
			return nil
		}
		fmt.Printf("unset %s\n", config.EnvDatabasePath)
		fmt.Fprintf(stderr, "Cleared database override\n")
		return nil
	}

	if len(args) == 0 {
		return cli.NewUsageError(fmt.Errorf("database path required\nUsage: eval $(blogdb use db <path>)"))
	}

	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("%w: invalid path %s: %v", models.ErrFileIO, args[0], err)
	}
	dir := filepath.Dir(path)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return fmt.Errorf("%w: directory %s does not exist", models.ErrFileIO, dir)
	}

	if dryRun {
		fmt.Fprintf(stderr, "Would set %s=%s\n", config.EnvDatabasePath, path)
		return nil
	}

	fmt.Printf("export %s=%s\n", config.EnvDatabasePath, shellQuote(path))
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintf(stderr, "Now using %s (created on first use)\n", path)
	} else {
		fmt.Fprintf(stderr, "Now using %s\n", path)
	}

	return nil
}

func showCurrentDB() error {
	if current := os.Getenv(config.EnvDatabasePath); current != "" {
		fmt.Printf("Current database: %s (from %s)\n", current, config.EnvDatabasePath)
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	fmt.Printf("Current database: %s (from config)\n", cfg.Database.Path)
	fmt.Println("Use 'eval $(blogdb use db <path>)' to override it")
	return nil
}

// shellQuote single-quotes s for POSIX shells
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
