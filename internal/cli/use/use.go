// Package use holds all cli commands related to setting contextual information
// e.g., blogdb use ...
package use

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/blogdb/internal/cli"
)

// UseCmd returns the use parent command
func UseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "use",
		Short: "Manage contextual settings for the current shell",
		Long: `Set and manage contextual information for the current shell session.

The 'use' command sets context that applies to subsequent commands,
eliminating the need to repeatedly pass --db.

Examples:
  eval $(blogdb use db ./blog.db)   # Use ./blog.db in this shell
  eval $(blogdb use db --clear)     # Back to the configured database
  blogdb use db --show              # Show the database in use`,
	}

	cmd.AddCommand(DBCmd())

	return cli.SkipInit(cmd)
}
