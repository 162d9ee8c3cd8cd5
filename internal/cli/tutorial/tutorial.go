// Package tutorial prints the blogdb quick start guide
package tutorial

import (
	_ "embed"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/blogdb/internal/cli"
	"github.com/thenoetrevino/blogdb/internal/cli/styles"
)

//go:embed tutorial.md
var tutorialContent string

// TutorialCmd returns the tutorial command
func TutorialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tutorial",
		Short: "Show a quick start guide",
		Long: `Show a quick start guide covering users, posts, reports and
import/export. Use --raw for the markdown source.`,
		Args: cli.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			raw, _ := cmd.Flags().GetBool("raw")
			outputTutorial(raw)
		},
	}

	cmd.Flags().Bool("raw", false, "Print the markdown source without rendering")

	return cli.SkipInit(cmd)
}

func outputTutorial(raw bool) {
	if raw {
		fmt.Print(tutorialContent)
		return
	}
	fmt.Println(styles.RenderMarkdown(tutorialContent))
}
