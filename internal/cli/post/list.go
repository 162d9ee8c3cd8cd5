package post

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/blogdb/internal/cli"
	"github.com/thenoetrevino/blogdb/internal/cli/handler"
	"github.com/thenoetrevino/blogdb/internal/cli/styles"
	"github.com/thenoetrevino/blogdb/internal/models"
)

// ListCmd returns the post list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List posts with their authors",
		Long: `List every post with its author, or only the posts of one user.

Examples:
  blogdb post list
  blogdb post list --user=1
  blogdb post list --json
`,
		Args: cli.ExactArgs(0),
		RunE: runList,
	}

	cmd.Flags().Int("user", 0, "Only list posts of this user ID")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	parser := handler.NewFlagParser(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	if parser.Changed("user") {
		userID, err := parser.ParseUserID("user")
		if err != nil {
			return formatter.Fail(err)
		}
		posts, err := cliInstance.App.PostService.ListPostsByUser(ctx, userID)
		if err != nil {
			return formatter.Fail(err)
		}
		return printUserPosts(formatter, posts)
	}

	posts, err := cliInstance.App.PostService.ListPostsWithAuthors(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		for _, p := range posts {
			fmt.Printf("%d\n", p.ID)
		}
		return nil
	}
	if formatter.JSON {
		if posts == nil {
			posts = []*models.PostWithAuthor{}
		}
		return formatter.JSONResult("posts", posts)
	}
	if len(posts) == 0 {
		fmt.Println("No posts found")
		return nil
	}

	rows := make([][]string, 0, len(posts))
	for _, p := range posts {
		rows = append(rows, []string{p.ID.String(), p.Title, p.AuthorName, p.CreatedAt.Format(models.TimestampLayout)})
	}
	fmt.Printf("Found %d posts:\n\n", len(posts))
	fmt.Println(styles.RenderTable([]string{"ID", "Title", "Author", "Created At"}, rows))
	return nil
}

func printUserPosts(formatter *cli.OutputFormatter, posts []*models.Post) error {
	if formatter.Quiet {
		for _, p := range posts {
			fmt.Printf("%d\n", p.ID)
		}
		return nil
	}
	if formatter.JSON {
		if posts == nil {
			posts = []*models.Post{}
		}
		return formatter.JSONResult("posts", posts)
	}
	if len(posts) == 0 {
		fmt.Println("No posts found")
		return nil
	}

	rows := make([][]string, 0, len(posts))
	for _, p := range posts {
		rows = append(rows, []string{p.ID.String(), p.Title, p.CreatedAt.Format(models.TimestampLayout)})
	}
	fmt.Printf("Found %d posts:\n\n", len(posts))
	fmt.Println(styles.RenderTable([]string{"ID", "Title", "Created At"}, rows))
	return nil
}
