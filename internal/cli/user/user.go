package user

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/blogdb/internal/cli"
	"github.com/thenoetrevino/blogdb/internal/cli/styles"
	"github.com/thenoetrevino/blogdb/internal/models"
)

// UserCmd returns the user parent command
func UserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(UpdateEmailCmd())
	cmd.AddCommand(SearchCmd())

	return cmd
}

// renderUsers renders users as a table for human-readable output
func renderUsers(users []*models.User) string {
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			u.ID.String(),
			u.Name,
			u.Email,
			u.CreatedAt.Format(models.TimestampLayout),
		})
	}
	return styles.RenderTable([]string{"ID", "Name", "Email", "Created At"}, rows)
}

// printUsers writes users in the formatter's mode under the "users" key
func printUsers(formatter *cli.OutputFormatter, users []*models.User, emptyMsg string) error {
	if formatter.Quiet {
		var b strings.Builder
		for _, u := range users {
			fmt.Fprintf(&b, "%d\n", u.ID)
		}
		fmt.Print(b.String())
		return nil
	}

	if formatter.JSON {
		if users == nil {
			users = []*models.User{}
		}
		return formatter.JSONResult("users", users)
	}

	if len(users) == 0 {
		fmt.Println(emptyMsg)
		return nil
	}

	fmt.Printf("Found %d users:\n\n", len(users))
	fmt.Println(renderUsers(users))
	return nil
}
