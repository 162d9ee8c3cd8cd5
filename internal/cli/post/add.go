package post

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/blogdb/internal/cli"
	"github.com/thenoetrevino/blogdb/internal/cli/handler"
	"github.com/thenoetrevino/blogdb/internal/cli/styles"
	"github.com/thenoetrevino/blogdb/internal/models"
	postservice "github.com/thenoetrevino/blogdb/internal/services/post"
	"github.com/thenoetrevino/blogdb/internal/types"
)

// AddCmd returns the post add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a post for an existing user",
		Long: `Add a post owned by an existing user. Content is plain text or markdown.

Examples:
  # Inline content
  blogdb post add --user=1 --title="Hello" --content="First post"

  # Content from a markdown file
  blogdb post add --user=1 --title="Notes" --content-file=notes.md

  # Quiet mode for bash capture
  POST_ID=$(blogdb post add --user=1 --title="Hello" --content="x" --quiet)
`,
		RunE: handler.Command(&addHandler{}, parseAddFlags),
	}

	// Required flags
	cmd.Flags().String("title", "", "Post title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	cmd.Flags().Int("user", 0, "Author user ID (required)")
	if err := cmd.MarkFlagRequired("user"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	// One of these is required
	cmd.Flags().String("content", "", "Post content")
	cmd.Flags().String("content-file", "", "Read post content from a file")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

// addHandler implements handler.Handler for post creation
type addHandler struct{}

// Execute implements the Handler interface
func (h *addHandler) Execute(ctx context.Context, args *handler.Arguments) (interface{}, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}

	content := args.GetString("content", "")
	if path := args.GetString("content-file", ""); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, cli.NewUsageError(fmt.Errorf("failed to read content file: %w", err))
		}
		content = string(data)
	}

	post, err := cliInstance.App.PostService.AddPost(ctx, postservice.AddPostRequest{
		Title:   args.GetString("title", ""),
		Content: content,
		UserID:  types.UserID(args.GetInt("user", 0)),
	})
	if err != nil {
		return nil, err
	}

	return &postResult{Post: post}, nil
}

// postResult is a created post as printed by the add command
type postResult struct {
	*models.Post
}

// String renders the human-readable confirmation
func (r *postResult) String() string {
	return styles.SuccessStyle.Render("✓") + fmt.Sprintf(" Post %d created: %s (user %d)", r.ID, r.Title, r.UserID)
}

func parseAddFlags(cmd *cobra.Command) error {
	parser := handler.NewFlagParser(cmd)
	if _, err := parser.ParseString("title"); err != nil {
		return err
	}
	if _, err := parser.ParseUserID("user"); err != nil {
		return err
	}

	switch {
	case parser.Changed("content") && parser.Changed("content-file"):
		return cli.NewUsageError(errors.New("use either --content or --content-file, not both"))
	case parser.Changed("content-file"):
		_, err := parser.ParseString("content-file")
		return err
	case parser.Changed("content"):
		return nil
	default:
		return cli.NewUsageError(errors.New("either --content or --content-file is required"))
	}
}
