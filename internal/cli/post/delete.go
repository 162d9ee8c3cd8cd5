package post

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

// DeleteCmd returns the post delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a post",
		Long: `Delete a post by ID (requires confirmation unless --force or --quiet).
Deleting a missing post is not an error.

Examples:
  blogdb post delete --id=1
  blogdb post delete --id=1 --force
`,
		Args: cli.ExactArgs(0),
		RunE: runDelete,
	}

	// Required flags
	cmd.Flags().Int("id", 0, "Post ID (required)")
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

	postID, err := parser.ParsePostID("id")
	if err != nil {
		return formatter.Fail(err)
	}
	force, _ := parser.ParseBool("force")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	posts := cliInstance.App.PostService

	// Ask for confirmation unless force or quiet mode
	if !force && !formatter.Quiet {
		post, err := posts.GetPost(ctx, postID)
		switch {
		case errors.Is(err, models.ErrNotFound):
			return printDeleted(formatter, postID, false)
		case err != nil:
			return formatter.Fail(err)
		}

		if !cli.Confirm(cmd, fmt.Sprintf("Delete post #%d '%s'?", post.ID, post.Title)) {
			fmt.Println("Cancelled")
			return nil
		}
	}

	deleted, err := posts.DeletePost(ctx, postID)
	if err != nil {
		return formatter.Fail(err)
	}

	return printDeleted(formatter, postID, deleted)
}

func printDeleted(formatter *cli.OutputFormatter, postID types.PostID, deleted bool) error {
	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return formatter.JSONResult("data", map[string]interface{}{
			"post_id": postID,
			"deleted": deleted,
		})
	}

	if !deleted {
		fmt.Printf("Post %d not found, nothing to delete\n", postID)
		return nil
	}
	formatter.Done("Post %d deleted", postID)
	return nil
}
