package pretty

import (
	"strconv"
	"strings"

	"github.com/yaklabco/gomdedit/pkg/preview"
	"github.com/yaklabco/gomdedit/pkg/style"
)

// FormatOutline renders headings as an indented list with their line numbers.
func (s *Styles) FormatOutline(headings []preview.Heading) string {
	var builder strings.Builder
	for _, h := range headings {
		level := max(1, min(h.Level, style.MaxHeadingLevel))
		builder.WriteString(strings.Repeat("  ", level-1))
		builder.WriteString(s.Span(style.Heading(level)).Render(h.Text))
		builder.WriteString(s.Dim.Render(" :" + strconv.Itoa(h.Line)))
		builder.WriteString("\n")
	}
	return builder.String()
}

// FormatWarning prefixes msg with a styled "warning:" label.
func (s *Styles) FormatWarning(msg string) string {
	return s.Warning.Render("warning:") + " " + msg
}

// FormatError prefixes msg with a styled "error:" label.
func (s *Styles) FormatError(msg string) string {
	return s.Error.Render("error:") + " " + msg
}
