// Package cmd wires the blogdb command tree
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/blogdb/internal/cli"
	"github.com/thenoetrevino/blogdb/internal/cli/configure"
	"github.com/thenoetrevino/blogdb/internal/cli/post"
	"github.com/thenoetrevino/blogdb/internal/cli/report"
	"github.com/thenoetrevino/blogdb/internal/cli/styles"
	"github.com/thenoetrevino/blogdb/internal/cli/transfer"
	"github.com/thenoetrevino/blogdb/internal/cli/tutorial"
	"github.com/thenoetrevino/blogdb/internal/cli/use"
	"github.com/thenoetrevino/blogdb/internal/cli/user"
	"github.com/thenoetrevino/blogdb/internal/config"
	"github.com/thenoetrevino/blogdb/internal/models"
)

// NewRootCmd builds the command tree. instance receives the CLI opened for
// the running command, if any.
func NewRootCmd(instance **cli.CLI) *cobra.Command {
	var dbPath string

	rootCmd := &cobra.Command{
		Use:   "blogdb",
		Short: "blogdb - a local blog datastore",
		Long: `blogdb keeps users and their posts in a single SQLite file.

Run 'blogdb tutorial' for a quick start.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipSetup(cmd) {
				return nil
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if dbPath != "" {
				cfg.Database.Path = dbPath
			}
			styles.Init(cfg.Output.ColorEnabled())

			c, err := cli.NewCLI(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			*instance = c
			cmd.SetContext(cli.WithCLI(cmd.Context(), c))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file (overrides "+config.EnvDatabasePath+" and the config file)")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		// A value pflag could not convert, such as --id abc
		if strings.HasPrefix(err.Error(), "invalid argument") {
			return fmt.Errorf("%w: %w", models.ErrValidation, err)
		}
		return cli.NewUsageError(err)
	})

	rootCmd.AddCommand(user.UserCmd())
	rootCmd.AddCommand(post.PostCmd())
	rootCmd.AddCommand(report.ReportCmd())
	rootCmd.AddCommand(transfer.ExportCmd())
	rootCmd.AddCommand(transfer.ImportCmd())
	rootCmd.AddCommand(use.UseCmd())
	rootCmd.AddCommand(configure.ConfigCmd())
	rootCmd.AddCommand(tutorial.TutorialCmd())

	return rootCmd
}

// Execute runs blogdb with the process arguments and returns the exit code
func Execute() int {
	return ExecuteArgs(context.Background(), os.Args[1:])
}

// ExecuteArgs runs blogdb with args and returns the exit code
func ExecuteArgs(ctx context.Context, args []string) int {
	var instance *cli.CLI
	rootCmd := NewRootCmd(&instance)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)

	if instance != nil {
		if cerr := instance.Close(); cerr != nil {
			slog.Error("failed to close", "error", cerr)
		}
	}

	if err == nil {
		return cli.ExitSuccess
	}

	err = classify(err)
	if !cli.IsReported(err) {
		// Flag parsing stops at the first bad value, so --json is read from args
		formatter := &cli.OutputFormatter{JSON: hasFlag(args, "--json")}
		err = formatter.Fail(err)
	}
	return cli.ExitCodeFor(err)
}

// hasFlag reports whether the boolean flag name was set on the command line
func hasFlag(args []string, name string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}
		if arg == name || arg == name+"=true" {
			return true
		}
	}
	return false
}

// skipSetup reports whether cmd runs without opening the database
func skipSetup(cmd *cobra.Command) bool {
	if cmd.Name() == "help" || !cli.NeedsInit(cmd) {
		return true
	}
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "completion" {
			return true
		}
	}
	return false
}

// classify marks cobra's untyped invocation errors as usage errors
func classify(err error) error {
	var usageErr *cli.UsageError
	if errors.As(err, &usageErr) {
		return err
	}
	msg := err.Error()
	for _, prefix := range []string{"required flag", "unknown command", "if any flags in the group"} {
		if strings.HasPrefix(msg, prefix) {
			return cli.NewUsageError(err)
		}
	}
	return err
}
