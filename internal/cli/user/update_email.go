package user

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/blogdb/internal/cli"
	"github.com/thenoetrevino/blogdb/internal/cli/handler"
	userservice "github.com/thenoetrevino/blogdb/internal/services/user"
	"github.com/thenoetrevino/blogdb/internal/types"
)

// UpdateEmailCmd returns the user update-email subcommand
func UpdateEmailCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-email",
		Short: "Change a user's email",
		Long: `Change the email of the user selected by --id or by --name.

Examples:
  blogdb user update-email --id=1 --email="ivan@new.ru"
  blogdb user update-email --name="Ivan" --email="ivan@new.ru"
`,
		Args: cli.ExactArgs(0),
		RunE: runUpdateEmail,
	}

	cmd.Flags().Int("id", 0, "User ID")
	cmd.Flags().String("name", "", "User name (used when --id is not given)")
	cmd.Flags().String("email", "", "New email (required)")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdateEmail(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	parser := handler.NewFlagParser(cmd)

	req := userservice.UpdateEmailRequest{}

	switch {
	case parser.Changed("id") && parser.Changed("name"):
		return formatter.Fail(cli.NewUsageError(errors.New("use either --id or --name, not both")))
	case parser.Changed("id"):
		id, err := parser.ParseUserID("id")
		if err != nil {
			return formatter.Fail(err)
		}
		req.ID = id
	case parser.Changed("name"):
		name, err := parser.ParseString("name")
		if err != nil {
			return formatter.Fail(err)
		}
		req.Name = name
	default:
		return formatter.Fail(cli.NewUsageError(errors.New("either --id or --name is required")))
	}

	email, err := parser.ParseString("email")
	if err != nil {
		return formatter.Fail(err)
	}
	req.Email = email

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	if err := cliInstance.App.UserService.UpdateEmail(ctx, req); err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.JSONResult("data", map[string]interface{}{
			"user_id": req.ID,
			"name":    req.Name,
			"email":   req.Email,
		})
	}

	formatter.Done("Email of %s changed to %s", selector(req.ID, req.Name), req.Email)
	return nil
}

func selector(id types.UserID, name string) string {
	if id.Valid() {
		return fmt.Sprintf("user %d", id)
	}
	return fmt.Sprintf("user '%s'", name)
}
