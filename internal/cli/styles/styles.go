package styles

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Palette of the default purple theme
const (
	colorAccent  = "#874BFD"
	colorTitle   = "#D75FD7"
	colorSubtle  = "#585858"
	colorNormal  = "#D0D0D0"
	colorInfoFg  = "#00AFFF"
	colorErrorFg = "#FF0000"
	colorErrorBg = "#5F0000"
	colorWarnFg  = "#FFD700"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Author:", "Created:"
	ValueStyle    lipgloss.Style // For field values
	HeaderStyle   lipgloss.Style // For table headers

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style

	colorEnabled = true
)

func init() {
	Init(true)
}

// Init initializes all CLI styles. With color disabled every style renders
// plain text and borders.
func Init(color bool) {
	colorEnabled = color

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(CardWidth)
	if color {
		CardStyle = CardStyle.BorderForeground(lipgloss.Color(colorAccent))
	}

	TitleStyle = fg(lipgloss.NewStyle().Bold(true), colorTitle)
	SubtitleStyle = fg(lipgloss.NewStyle(), colorSubtle)
	LabelStyle = fg(lipgloss.NewStyle().Bold(true), colorAccent)
	ValueStyle = fg(lipgloss.NewStyle(), colorNormal)
	HeaderStyle = fg(lipgloss.NewStyle().Bold(true).Padding(0, 1), colorAccent)

	SuccessStyle = fg(lipgloss.NewStyle().Bold(true), colorInfoFg)
	WarningStyle = fg(lipgloss.NewStyle().Bold(true), colorWarnFg)

	ErrorStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	if color {
		ErrorStyle = ErrorStyle.
			Foreground(lipgloss.Color(colorErrorFg)).
			Background(lipgloss.Color(colorErrorBg))
	}
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// RenderTable renders rows under headers with a rounded border
func RenderTable(headers []string, rows [][]string) string {
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(fg(lipgloss.NewStyle(), colorSubtle)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return HeaderStyle
			}
			return cell
		})

	return t.Render()
}

// RenderField renders "Label: value"
func RenderField(label, value string) string {
	return LabelStyle.Render(label+":") + " " + ValueStyle.Render(value)
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}

// RenderMarkdown renders markdown for the terminal, wrapped to the card width.
// On renderer failure the source is returned unchanged.
func RenderMarkdown(source string) string {
	style := "auto"
	if !colorEnabled {
		style = "notty"
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(CardWidth-4),
	)
	if err != nil {
		return source
	}

	out, err := r.Render(source)
	if err != nil {
		return source
	}
	return strings.TrimRight(out, "\n")
}

func fg(s lipgloss.Style, hex string) lipgloss.Style {
	if !colorEnabled {
		return s
	}
	return s.Foreground(lipgloss.Color(hex))
}
