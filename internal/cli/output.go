package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/blogdb/internal/cli/styles"
	"github.com/thenoetrevino/blogdb/internal/models"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// NewFormatter reads the --json and --quiet flags of cmd
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Quiet {
		// Extract ID if possible
		if idGetter, ok := data.(interface{ GetID() int }); ok {
			fmt.Printf("%d\n", idGetter.GetID())
			return nil
		}
	}

	if f.JSON {
		return f.JSONResult("data", data)
	}

	if f.Quiet {
		return nil
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// JSONResult writes {"success": true, key: data} to stdout
func (f *OutputFormatter) JSONResult(key string, data interface{}) error {
	return writeJSON(os.Stdout, map[string]interface{}{
		"success": true,
		key:       data,
	})
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]interface{}{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return writeJSON(os.Stdout, map[string]interface{}{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("Error")+" "+message)
	if suggestion != "" {
		fmt.Fprintln(os.Stderr, styles.SubtitleStyle.Render("Suggestion: "+suggestion))
	}
	return nil
}

// Fail renders err and returns it marked as reported, so the root command
// only has to pick the exit code
func (f *OutputFormatter) Fail(err error) error {
	if err == nil || IsReported(err) {
		return err
	}
	if fmtErr := f.ErrorWithSuggestion(ErrorCode(err), err.Error(), suggestionFor(err)); fmtErr != nil {
		return fmt.Errorf("%w (formatting error: %v)", err, fmtErr)
	}
	return &reportedError{err: err}
}

// Done prints a success line in human-readable mode
func (f *OutputFormatter) Done(format string, args ...any) {
	if f.JSON || f.Quiet {
		return
	}
	fmt.Println(styles.SuccessStyle.Render("✓") + " " + fmt.Sprintf(format, args...))
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data interface{}) error {
	if s, ok := data.(fmt.Stringer); ok {
		fmt.Println(s.String())
		return nil
	}
	fmt.Printf("%+v\n", data)
	return nil
}

type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

// IsReported reports whether err was already shown to the user by Fail
func IsReported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}

func suggestionFor(err error) string {
	switch models.Kind(err) {
	case models.ErrConflict:
		return "Use a different email, or change the existing user with: blogdb user update-email"
	case models.ErrNotFound:
		return "List existing rows with: blogdb user list / blogdb post list"
	case models.ErrFileIO:
		return "Check that the path exists and is readable/writable"
	}
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return "Run the command with --help for usage"
	}
	return ""
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
