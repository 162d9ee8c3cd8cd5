// Package transfer holds the user import and export commands
// e.g., blogdb export csv users.csv
package transfer

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/blogdb/internal/cli"
	"github.com/thenoetrevino/blogdb/internal/models"
)

type exportFunc func(ctx context.Context, path string) (int, error)

type importFunc func(ctx context.Context, path string) (*models.ImportResult, error)

// ExportCmd returns the export parent command
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all users to a file",
	}

	cmd.AddCommand(ExportCSVCmd())
	cmd.AddCommand(ExportJSONCmd())

	return cmd
}

// ImportCmd returns the import parent command
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import users from a file",
	}

	cmd.AddCommand(ImportCSVCmd())
	cmd.AddCommand(ImportJSONCmd())

	return cmd
}

// ExportCSVCmd returns the export csv subcommand
func ExportCSVCmd() *cobra.Command {
	return exportCmd("csv", "Export users as CSV with a header row",
		func(c *cli.CLI) exportFunc { return c.App.TransferService.ExportUsersCSV })
}

// ExportJSONCmd returns the export json subcommand
func ExportJSONCmd() *cobra.Command {
	return exportCmd("json", "Export users as an indented JSON array",
		func(c *cli.CLI) exportFunc { return c.App.TransferService.ExportUsersJSON })
}

// ImportCSVCmd returns the import csv subcommand
func ImportCSVCmd() *cobra.Command {
	return importCmd("csv", "Import users from CSV (ID,Name,Email,... with a header row)",
		func(c *cli.CLI) importFunc { return c.App.TransferService.ImportUsersCSV })
}

// ImportJSONCmd returns the import json subcommand
func ImportJSONCmd() *cobra.Command {
	return importCmd("json", "Import users from a JSON array of {name, email} objects",
		func(c *cli.CLI) importFunc { return c.App.TransferService.ImportUsersJSON })
}

func exportCmd(format, short string, pick func(*cli.CLI) exportFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   format + " <path>",
		Short: short,
		Long: fmt.Sprintf(`%s.
An existing file at <path> is overwritten.

Examples:
  blogdb export %s users.%s
`, short, format, format),
		Args: cli.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			formatter := cli.NewFormatter(cmd)

			cliInstance, err := cli.GetCLIFromContext(ctx)
			if err != nil {
				return formatter.Fail(err)
			}

			n, err := pick(cliInstance)(ctx, args[0])
			if err != nil {
				return formatter.Fail(err)
			}

			if formatter.Quiet {
				fmt.Println(n)
				return nil
			}
			if formatter.JSON {
				return formatter.JSONResult("data", map[string]interface{}{
					"path":     args[0],
					"format":   format,
					"exported": n,
				})
			}
			formatter.Done("Exported %d users to %s", n, args[0])
			return nil
		},
	}

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func importCmd(format, short string, pick func(*cli.CLI) importFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   format + " <path>",
		Short: short,
		Long: fmt.Sprintf(`%s.
Rows whose email already exists are skipped, malformed rows are counted and skipped.
The import runs in a single transaction.

Examples:
  blogdb import %s users.%s
`, short, format, format),
		Args: cli.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			formatter := cli.NewFormatter(cmd)

			cliInstance, err := cli.GetCLIFromContext(ctx)
			if err != nil {
				return formatter.Fail(err)
			}

			result, err := pick(cliInstance)(ctx, args[0])
			if err != nil {
				return formatter.Fail(err)
			}

			if formatter.Quiet {
				fmt.Println(result.Imported)
				return nil
			}
			if formatter.JSON {
				return formatter.JSONResult("data", result)
			}
			formatter.Done("Imported %d users from %s", result.Imported, args[0])
			if result.Duplicates > 0 {
				fmt.Printf("  %d skipped (email already exists)\n", result.Duplicates)
			}
			if result.Malformed > 0 {
				fmt.Printf("  %d skipped (malformed)\n", result.Malformed)
			}
			return nil
		},
	}

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}
