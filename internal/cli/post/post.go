// Package post holds all cli commands related to posts
// e.g., blogdb post ...
package post

import (
	"github.com/spf13/cobra"
)

// PostCmd returns the post parent command
func PostCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "post",
		Short: "Manage posts",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}
