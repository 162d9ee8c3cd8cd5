// Package report holds the read-only reporting commands
// e.g., blogdb report ...
package report

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/blogdb/internal/cli"
	"github.com/thenoetrevino/blogdb/internal/cli/handler"
	"github.com/thenoetrevino/blogdb/internal/cli/styles"
	"github.com/thenoetrevino/blogdb/internal/models"
	reportservice "github.com/thenoetrevino/blogdb/internal/services/report"
)

// ReportCmd returns the report parent command
func ReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Read-only reports over users and posts",
	}

	cmd.AddCommand(CountsCmd())
	cmd.AddCommand(RecentCmd())

	return cmd
}

// CountsCmd returns the report counts subcommand
func CountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "counts",
		Short: "Number of posts per user",
		Long: `List every user with the number of posts they own, including users with none.

Examples:
  blogdb report counts
  blogdb report counts --by-count
`,
		Args: cli.ExactArgs(0),
		RunE: runCounts,
	}

	cmd.Flags().Bool("by-count", false, "Order by post count, highest first")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCounts(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	parser := handler.NewFlagParser(cmd)

	order := reportservice.OrderByUserID
	if byCount, _ := parser.ParseBool("by-count"); byCount {
		order = reportservice.OrderByPostCount
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	counts, err := cliInstance.App.ReportService.UserPostCounts(ctx, order)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		for _, c := range counts {
			fmt.Printf("%d\n", c.UserID)
		}
		return nil
	}
	if formatter.JSON {
		if counts == nil {
			counts = []*models.UserPostCount{}
		}
		return formatter.JSONResult("counts", counts)
	}
	if len(counts) == 0 {
		fmt.Println("No users found")
		return nil
	}

	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{c.UserID.String(), c.Name, strconv.Itoa(c.PostCount)})
	}
	fmt.Println(styles.RenderTable([]string{"User ID", "Name", "Posts"}, rows))
	return nil
}

// RecentCmd returns the report recent subcommand
func RecentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Newest posts with their authors",
		Long: `List the newest posts, newest first.
Without --limit the configured report.recent_limit is used.

Examples:
  blogdb report recent
  blogdb report recent --limit=3 --json
`,
		Args: cli.ExactArgs(0),
		RunE: runRecent,
	}

	cmd.Flags().Int("limit", 0, "Maximum number of posts (0 = configured default)")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runRecent(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	parser := handler.NewFlagParser(cmd)

	limit, err := parser.ParseIntOptional("limit")
	if err != nil {
		return formatter.Fail(err)
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	posts, err := cliInstance.App.ReportService.RecentPosts(ctx, limit)
	if err != nil {
		return formatter.Fail(err)
	}

	// Recent posts carry no id, so quiet mode prints titles
	if formatter.Quiet {
		for _, p := range posts {
			fmt.Println(p.Title)
		}
		return nil
	}
	if formatter.JSON {
		if posts == nil {
			posts = []*models.RecentPost{}
		}
		return formatter.JSONResult("posts", posts)
	}
	if len(posts) == 0 {
		fmt.Println("No posts found")
		return nil
	}

	rows := make([][]string, 0, len(posts))
	for _, p := range posts {
		rows = append(rows, []string{p.Title, p.AuthorName, p.CreatedAt.Format(models.TimestampLayout)})
	}
	fmt.Println(styles.RenderTable([]string{"Title", "Author", "Created At"}, rows))
	return nil
}
