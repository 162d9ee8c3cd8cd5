// Package configure holds the commands that manage the config file
// e.g., blogdb config ...
package configure

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/blogdb/internal/cli"
	"github.com/thenoetrevino/blogdb/internal/config"
	"github.com/thenoetrevino/blogdb/internal/models"
	"gopkg.in/yaml.v3"
)

// ConfigCmd returns the config parent command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the blogdb config file",
	}

	cmd.AddCommand(InitCmd())
	cmd.AddCommand(ShowCmd())

	return cli.SkipInit(cmd)
}

// InitCmd returns the config init subcommand
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Long: `Write the default configuration to the config file
($XDG_CONFIG_HOME/blogdb/config.yaml or ~/.config/blogdb/config.yaml).

Examples:
  blogdb config init
  blogdb config init --force   # overwrite an existing file
`,
		Args: cli.ExactArgs(0),
		RunE: runInit,
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing config file")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	path, err := config.Path()
	if err != nil {
		return fmt.Errorf("failed to locate config file: %w", err)
	}

	if _, err := os.Stat(path); err == nil && !force {
		return cli.NewUsageError(fmt.Errorf("config file %s already exists (use --force to overwrite)", path))
	}

	if err := config.Default().SaveFile(path); err != nil {
		return fmt.Errorf("%w: failed to write %s: %w", models.ErrFileIO, path, err)
	}

	fmt.Println(path)
	return nil
}

// ShowCmd returns the config show subcommand
func ShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Print the configuration after the config file, the ` + config.EnvDatabasePath + `
environment variable and the defaults have been applied.`,
		Args: cli.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return errors.Join(errors.New("failed to encode config"), err)
			}
			fmt.Print(string(data))
			return nil
		},
	}
}
