package pretty

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/yaklabco/gomdedit/pkg/highlight"
	"github.com/yaklabco/gomdedit/pkg/style"
)

const (
	gutterSeparator = " │ "
	ellipsis        = "…"
	defaultTabWidth = 4
)

// LineFormatter renders highlighted lines for a terminal.
type LineFormatter struct {
	styles   *Styles
	width    int
	tabWidth int
	gutter   bool
}

// LineOption configures a LineFormatter.
type LineOption func(*LineFormatter)

// WithWidth truncates rendered lines to width columns. Zero disables
// truncation.
func WithWidth(width int) LineOption {
	return func(f *LineFormatter) {
		f.width = max(width, 0)
	}
}

// WithTabWidth sets the tab stop used when expanding tabs.
func WithTabWidth(n int) LineOption {
	return func(f *LineFormatter) {
		if n > 0 {
			f.tabWidth = n
		}
	}
}

// WithGutter toggles the line number gutter.
func WithGutter(enabled bool) LineOption {
	return func(f *LineFormatter) {
		f.gutter = enabled
	}
}

// NewLineFormatter creates a formatter with a gutter and no width limit.
func NewLineFormatter(styles *Styles, opts ...LineOption) *LineFormatter {
	f := &LineFormatter{
		styles:   styles,
		tabWidth: defaultTabWidth,
		gutter:   true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format renders lines, one per output line.
func (f *LineFormatter) Format(lines []highlight.Line) string {
	if len(lines) == 0 {
		return ""
	}

	numWidth := 0
	for _, line := range lines {
		numWidth = max(numWidth, len(strconv.Itoa(line.Num)))
	}

	var builder strings.Builder
	for _, line := range lines {
		budget := f.width
		if f.gutter {
			num := strconv.Itoa(line.Num)
			builder.WriteString(f.styles.Gutter.Render(strings.Repeat(" ", numWidth-len(num)) + num))
			builder.WriteString(f.styles.Separator.Render(gutterSeparator))
			budget -= numWidth + runewidth.StringWidth(gutterSeparator)
		}
		if f.width > 0 && budget <= 0 {
			builder.WriteString("\n")
			continue
		}
		builder.WriteString(f.formatSpans(line.Spans, budget))
		builder.WriteString("\n")
	}
	return builder.String()
}

// formatSpans renders spans within budget columns; budget <= 0 means no limit.
func (f *LineFormatter) formatSpans(spans []style.Span, budget int) string {
	expanded := make([]style.Span, 0, len(spans))
	col := 0
	for _, sp := range spans {
		text := f.expandTabs(sp.Text, &col)
		expanded = append(expanded, style.Span{Text: text, Style: sp.Style})
	}

	truncate := f.width > 0 && col > budget
	limit := budget
	if truncate {
		limit = budget - runewidth.StringWidth(ellipsis)
	}

	var builder strings.Builder
	used := 0
	for _, sp := range expanded {
		text := sp.Text
		if truncate {
			if used >= limit {
				break
			}
			text = runewidth.Truncate(text, limit-used, "")
		}
		used += runewidth.StringWidth(text)
		builder.WriteString(f.styles.Span(sp.Style).Render(text))
	}
	if truncate {
		builder.WriteString(f.styles.Dim.Render(ellipsis))
	}
	return builder.String()
}

// expandTabs replaces tabs with spaces up to the next tab stop. col carries
// the display column across spans.
func (f *LineFormatter) expandTabs(text string, col *int) string {
	if !strings.ContainsRune(text, '\t') {
		*col += runewidth.StringWidth(text)
		return text
	}

	var builder strings.Builder
	for _, r := range text {
		if r == '\t' {
			pad := f.tabWidth - *col%f.tabWidth
			builder.WriteString(strings.Repeat(" ", pad))
			*col += pad
			continue
		}
		builder.WriteRune(r)
		*col += runewidth.RuneWidth(r)
	}
	return builder.String()
}
