package post

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/blogdb/internal/cli"
	"github.com/thenoetrevino/blogdb/internal/cli/handler"
	"github.com/thenoetrevino/blogdb/internal/cli/styles"
	"github.com/thenoetrevino/blogdb/internal/models"
)

// ShowCmd returns the post show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a single post",
		Long: `Show a post with its content rendered as markdown.

Examples:
  blogdb post show --id=1
  blogdb post show --id=1 --raw > post.md
`,
		Args: cli.ExactArgs(0),
		RunE: runShow,
	}

	// Required flags
	cmd.Flags().Int("id", 0, "Post ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	cmd.Flags().Bool("raw", false, "Print the stored content only, without rendering")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	parser := handler.NewFlagParser(cmd)

	postID, err := parser.ParsePostID("id")
	if err != nil {
		return formatter.Fail(err)
	}
	raw, _ := parser.ParseBool("raw")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	posts := cliInstance.App.PostService

	if raw {
		content, err := posts.GetPostContent(ctx, postID)
		if err != nil {
			return formatter.Fail(err)
		}
		fmt.Print(content)
		return nil
	}

	post, err := posts.GetPost(ctx, postID)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		fmt.Printf("%d\n", post.ID)
		return nil
	}
	if formatter.JSON {
		return formatter.JSONResult("data", post)
	}

	author := post.UserID.String()
	if user, err := cliInstance.App.UserService.GetUser(ctx, post.UserID); err == nil {
		author = fmt.Sprintf("%s (#%d)", user.Name, user.ID)
	}

	fmt.Println(renderPost(post, author))
	return nil
}

// renderPost renders a post card followed by its markdown content
func renderPost(post *models.Post, author string) string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(post.Title))
	b.WriteString("\n")
	b.WriteString(styles.RenderField("ID", post.ID.String()))
	b.WriteString("\n")
	b.WriteString(styles.RenderField("Author", author))
	b.WriteString("\n")
	b.WriteString(styles.RenderField("Created", post.CreatedAt.Format(models.TimestampLayout)))

	return styles.RenderCard(b.String()) + "\n\n" + styles.RenderMarkdown(post.Content)
}
