// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/yaklabco/gomdedit/pkg/config"
	"github.com/yaklabco/gomdedit/pkg/style"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	spans map[style.Style]lipgloss.Style

	// Chrome around highlighted text
	Gutter    lipgloss.Style
	Separator lipgloss.Style
	Header    lipgloss.Style

	// Messages
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

func fg(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	heading := fg("12").Bold(true)
	return &Styles{
		spans: map[style.Style]lipgloss.Style{
			style.Text:            lipgloss.NewStyle(),
			style.Heading(1):      heading.Underline(true),
			style.Heading(2):      heading,
			style.Heading(3):      heading,
			style.Heading(4):      fg("12"),
			style.Heading(5):      fg("12"),
			style.Heading(6):      fg("12"),
			style.Blockquote:      fg("8").Italic(true),
			style.HR:              fg("8"),
			style.ListMarker:      fg("11").Bold(true),
			style.Table:           fg("14"),
			style.Bold:            lipgloss.NewStyle().Bold(true),
			style.Italic:          lipgloss.NewStyle().Italic(true),
			style.InlineCode:      fg("10"),
			style.Link:            fg("14").Underline(true),
			style.CodeFence:       fg("8"),
			style.CodeBlock:       fg("7"),
			style.CodeComment:     fg("8").Italic(true),
			style.CodeString:      fg("10"),
			style.CodeNumber:      fg("13"),
			style.CodeKeyword:     fg("5").Bold(true),
			style.CodeType:        fg("6"),
			style.CodeBuiltin:     fg("3"),
			style.CodeBracket:     fg("7"),
			style.CodeOperator:    fg("9"),
			style.CodePunctuation: fg("8"),
			style.CodeProperty:    fg("4"),
		},

		Gutter:    fg("8"),
		Separator: fg("8"),
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),

		Error:   fg("9").Bold(true),
		Warning: fg("11").Bold(true),
		Success: fg("10").Bold(true),

		Dim:  fg("8"),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no formatting at all.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		spans:     map[style.Style]lipgloss.Style{},
		Gutter:    plain,
		Separator: plain,
		Header:    plain,
		Error:     plain,
		Warning:   plain,
		Success:   plain,
		Dim:       plain,
		Bold:      plain,
	}
}

// Span returns the renderer for a span style. Unknown styles render plain.
func (s *Styles) Span(st style.Style) lipgloss.Style {
	if ls, ok := s.spans[st]; ok {
		return ls
	}
	return lipgloss.NewStyle()
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode config.ColorMode, writer io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		// https://no-color.org/
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
