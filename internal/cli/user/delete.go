package user

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/blogdb/internal/cli"
	"github.com/thenoetrevino/blogdb/internal/cli/handler"
	"github.com/thenoetrevino/blogdb/internal/models"
	"github.com/thenoetrevino/blogdb/internal/types"
)

// DeleteCmd returns the user delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a user and all of their posts",
		Long: `Delete a user by ID (requires confirmation unless --force or --quiet).
The user's posts are deleted with them. Deleting a missing user is not an error.

Examples:
  # Delete with confirmation
  blogdb user delete --id=1

  # Skip confirmation
  blogdb user delete --id=1 --force
`,
		Args: cli.ExactArgs(0),
		RunE: runDelete,
	}

	// Required flags
	cmd.Flags().Int("id", 0, "User ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	// Optional flags
	cmd.Flags().Bool("force", false, "Skip confirmation")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	parser := handler.NewFlagParser(cmd)

	userID, err := parser.ParseUserID("id")
	if err != nil {
		return formatter.Fail(err)
	}
	force, _ := parser.ParseBool("force")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	users := cliInstance.App.UserService

	// Ask for confirmation unless force or quiet mode
	if !force && !formatter.Quiet {
		user, err := users.GetUser(ctx, userID)
		switch {
		case errors.Is(err, models.ErrNotFound):
			return printDeleted(formatter, userID, false)
		case err != nil:
			return formatter.Fail(err)
		}

		prompt := fmt.Sprintf("Delete user #%d '%s' and all of their posts?", user.ID, user.Name)
		if !cli.Confirm(cmd, prompt) {
			fmt.Println("Cancelled")
			return nil
		}
	}

	deleted, err := users.DeleteUser(ctx, userID)
	if err != nil {
		return formatter.Fail(err)
	}

	return printDeleted(formatter, userID, deleted)
}

func printDeleted(formatter *cli.OutputFormatter, userID types.UserID, deleted bool) error {
	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return formatter.JSONResult("data", map[string]interface{}{
			"user_id": userID,
			"deleted": deleted,
		})
	}

	if !deleted {
		fmt.Printf("User %s not found, nothing to delete\n", userID)
		return nil
	}
	formatter.Done("User %s deleted", userID)
	return nil
}
