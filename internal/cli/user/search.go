package user

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/blogdb/internal/cli"
)

// SearchCmd returns the user search subcommand
func SearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <keyword>",
		Short: "Search users by name or email",
		Long: `Find users whose name or email contains the keyword.
The match is a plain substring match, case-insensitive for ASCII letters.

Examples:
  blogdb user search ivan
  blogdb user search mail.ru --json
`,
		Args: cli.ExactArgs(1),
		RunE: runSearch,
	}

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	users, err := cliInstance.App.UserService.SearchUsers(ctx, args[0])
	if err != nil {
		return formatter.Fail(err)
	}

	return printUsers(formatter, users, "No users match '"+args[0]+"'")
}
