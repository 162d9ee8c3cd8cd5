package user

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/blogdb/internal/cli"
	"github.com/thenoetrevino/blogdb/internal/cli/handler"
	"github.com/thenoetrevino/blogdb/internal/models"
	userservice "github.com/thenoetrevino/blogdb/internal/services/user"
)

// ListCmd returns the user list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		Long: `List all users, ordered by ID unless told otherwise.

Examples:
  blogdb user list
  blogdb user list --order-by=name
  blogdb user list --order-by=created_at --desc --limit=5
`,
		Args: cli.ExactArgs(0),
		RunE: runList,
	}

	cmd.Flags().String("order-by", string(models.SortByID), "Sort field: id, name, email, created_at")
	cmd.Flags().Bool("desc", false, "Sort in descending order")
	cmd.Flags().Int("limit", 0, "Maximum number of users (0 = all)")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	parser := handler.NewFlagParser(cmd)

	orderBy, err := parser.ParseStringOptional("order-by")
	if err != nil {
		return formatter.Fail(err)
	}
	desc, err := parser.ParseBool("desc")
	if err != nil {
		return formatter.Fail(err)
	}
	limit, err := parser.ParseIntOptional("limit")
	if err != nil {
		return formatter.Fail(err)
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	req := userservice.ListUsersRequest{
		OrderBy:   models.UserSortField(orderBy),
		Direction: userservice.DirectionAsc,
		Limit:     limit,
	}
	if desc {
		req.Direction = userservice.DirectionDesc
	}

	users, err := cliInstance.App.UserService.ListUsers(ctx, req)
	if err != nil {
		return formatter.Fail(err)
	}

	return printUsers(formatter, users, "No users found")
}
