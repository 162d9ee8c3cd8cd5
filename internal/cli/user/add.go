// Package user holds all cli commands related to users
// e.g., blogdb user ...
package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/blogdb/internal/cli"
	"github.com/thenoetrevino/blogdb/internal/cli/handler"
	"github.com/thenoetrevino/blogdb/internal/cli/styles"
	"github.com/thenoetrevino/blogdb/internal/models"
	userservice "github.com/thenoetrevino/blogdb/internal/services/user"
)

// AddCmd returns the user add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new user",
		Long: `Add a new user with a name and a unique email.

Examples:
  # Add user (human-readable output)
  blogdb user add --name="Ivan" --email="ivan@mail.ru"

  # JSON output for scripts
  blogdb user add --name="Ivan" --email="ivan@mail.ru" --json

  # Quiet mode for bash capture
  USER_ID=$(blogdb user add --name="Ivan" --email="ivan@mail.ru" --quiet)
`,
		RunE: handler.Command(&addHandler{}, parseAddFlags),
	}

	// Required flags
	cmd.Flags().String("name", "", "User name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	cmd.Flags().String("email", "", "User email, must be unique (required)")
	if err := cmd.MarkFlagRequired("email"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

// addHandler implements handler.Handler for user creation
type addHandler struct{}

// Execute implements the Handler interface
func (h *addHandler) Execute(ctx context.Context, args *handler.Arguments) (interface{}, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}

	user, err := cliInstance.App.UserService.AddUser(ctx, userservice.AddUserRequest{
		Name:  args.GetString("name", ""),
		Email: args.GetString("email", ""),
	})
	if err != nil {
		return nil, err
	}

	return &userResult{User: user}, nil
}

// userResult is a created user as printed by the add command
type userResult struct {
	*models.User
}

// String renders the human-readable confirmation
func (r *userResult) String() string {
	return styles.SuccessStyle.Render("✓") + fmt.Sprintf(" User %d created: %s <%s>", r.ID, r.Name, r.Email)
}

func parseAddFlags(cmd *cobra.Command) error {
	parser := handler.NewFlagParser(cmd)
	if _, err := parser.ParseString("name"); err != nil {
		return err
	}
	_, err := parser.ParseString("email")
	return err
}
