package pretty

import (
	"cmp"
	"slices"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/yaklabco/gomdedit/pkg/codelang"
)

// Table formatting constants.
const (
	tablePadding     = 2
	minAliasWidth    = 10
	heavySeparator   = "="
	lightSeparator   = "-"
	defaultTermWidth = 100
	kindStructural   = "structural"
	kindDescriptor   = "keywords"
)

// TableFormatter formats registry listings as aligned tables.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:    styles,
		termWidth: termWidth,
	}
}

type languageRow struct {
	name    string
	kind    string
	aliases string
}

// FormatLanguages lists languages with their kind and aliases.
func (t *TableFormatter) FormatLanguages(langs []codelang.Language) string {
	if len(langs) == 0 {
		return ""
	}

	rows := make([]languageRow, 0, len(langs))
	nameWidth, kindWidth := len("LANGUAGE"), len("KIND")
	for _, lang := range langs {
		row := languageRow{name: lang.Name, kind: kindDescriptor, aliases: strings.Join(lang.Aliases, ", ")}
		if lang.Structural {
			row.kind = kindStructural
		}
		nameWidth = max(nameWidth, runewidth.StringWidth(row.name))
		kindWidth = max(kindWidth, runewidth.StringWidth(row.kind))
		rows = append(rows, row)
	}
	// Keyword-driven languages first, then the structural ones.
	slices.SortStableFunc(rows, func(a, b languageRow) int { return cmp.Compare(a.kind, b.kind) })
	aliasWidth := max(minAliasWidth, t.termWidth-nameWidth-kindWidth-2*tablePadding)
	total := nameWidth + kindWidth + aliasWidth + 2*tablePadding

	var builder strings.Builder
	builder.WriteString(t.styles.Header.Render(
		padRight("LANGUAGE", nameWidth+tablePadding) + padRight("KIND", kindWidth+tablePadding) + "ALIASES"))
	builder.WriteString("\n")
	builder.WriteString(t.styles.Separator.Render(strings.Repeat(heavySeparator, total)))
	builder.WriteString("\n")

	for i, row := range rows {
		if i > 0 && rows[i-1].kind != row.kind {
			builder.WriteString(t.styles.Separator.Render(strings.Repeat(lightSeparator, total)))
			builder.WriteString("\n")
		}
		builder.WriteString(t.styles.Bold.Render(padRight(row.name, nameWidth+tablePadding)))
		builder.WriteString(t.styles.Dim.Render(padRight(row.kind, kindWidth+tablePadding)))
		builder.WriteString(truncateString(row.aliases, aliasWidth))
		builder.WriteString("\n")
	}

	builder.WriteString(t.styles.Separator.Render(strings.Repeat(heavySeparator, total)))
	builder.WriteString("\n")
	return builder.String()
}

// padRight pads str with spaces to width display columns.
func padRight(str string, width int) string {
	return runewidth.FillRight(str, width)
}

// truncateString shortens str to maxLen display columns, marking the cut.
func truncateString(str string, maxLen int) string {
	return runewidth.Truncate(str, maxLen, ellipsis)
}
