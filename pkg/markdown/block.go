// Package markdown classifies single Markdown lines and splits them into
// styled spans. It looks at one line at a time and never builds a tree;
// fenced code state is tracked by the caller (see package highlight).
package markdown

import (
	"strings"
	"unicode"

	"github.com/yaklabco/gomdedit/pkg/style"
)

// Kind identifies the block construct a line opens or continues.
type Kind int

const (
	KindParagraph Kind = iota
	KindEmpty
	KindFence
	KindHeading
	KindBlockquote
	KindThematicBreak
	KindBulletItem
	KindOrderedItem
	KindTable
)

var kindNames = [...]string{
	KindParagraph:     "paragraph",
	KindEmpty:         "empty",
	KindFence:         "fence",
	KindHeading:       "heading",
	KindBlockquote:    "blockquote",
	KindThematicBreak: "thematic-break",
	KindBulletItem:    "bullet-item",
	KindOrderedItem:   "ordered-item",
	KindTable:         "table",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// fenceMarker opens and closes fenced code blocks.
const fenceMarker = "```"

// Block is the classification of one line outside a code block.
//
// For list items Indent, Marker and Body partition the line: Indent is the
// leading whitespace, Marker the bullet or number including its trailing
// space, and Body the remainder. Level is set for headings only.
type Block struct {
	Kind   Kind
	Level  int
	Indent string
	Marker string
	Body   string
}

// Classify determines the block kind of line. Checks run in a fixed order and
// the first match wins: fence, heading, blockquote, thematic break, bullet
// item, ordered item, table row, paragraph.
func Classify(line string) Block {
	if line == "" {
		return Block{Kind: KindEmpty}
	}
	if IsFence(line) {
		return Block{Kind: KindFence}
	}
	if level := headingLevel(line); level > 0 {
		return Block{Kind: KindHeading, Level: level}
	}
	if line[0] == '>' {
		return Block{Kind: KindBlockquote}
	}
	switch strings.TrimSpace(line) {
	case "---", "***", "___":
		return Block{Kind: KindThematicBreak}
	}

	rest := strings.TrimLeftFunc(line, unicode.IsSpace)
	indent := line[:len(line)-len(rest)]

	if len(rest) >= 2 && rest[1] == ' ' && strings.IndexByte("-*+", rest[0]) >= 0 {
		return Block{Kind: KindBulletItem, Indent: indent, Marker: rest[:2], Body: rest[2:]}
	}
	if n := orderedMarkerLen(rest); n > 0 {
		return Block{Kind: KindOrderedItem, Indent: indent, Marker: rest[:n], Body: rest[n:]}
	}
	if strings.Contains(line, "|") {
		return Block{Kind: KindTable}
	}
	return Block{Kind: KindParagraph}
}

// IsFence reports whether line opens or closes a fenced code block.
func IsFence(line string) bool {
	return strings.HasPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), fenceMarker)
}

// FenceInfo returns the trimmed info string after the opening backticks, or
// "" when line is not a fence.
func FenceInfo(line string) string {
	rest, ok := strings.CutPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), fenceMarker)
	if !ok {
		return ""
	}
	return strings.TrimSpace(rest)
}

// FenceLanguage returns the lowercased first word of the fence info string.
func FenceLanguage(line string) string {
	fields := strings.Fields(FenceInfo(line))
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}

// Highlight splits a line outside any code block into spans. The span texts
// concatenate back to line.
func Highlight(line string) []style.Span {
	block := Classify(line)
	switch block.Kind {
	case KindEmpty:
		return []style.Span{{Text: "", Style: style.Text}}
	case KindFence:
		return []style.Span{{Text: line, Style: style.CodeFence}}
	case KindHeading:
		return []style.Span{{Text: line, Style: style.Heading(block.Level)}}
	case KindBlockquote:
		return []style.Span{{Text: line, Style: style.Blockquote}}
	case KindThematicBreak:
		return []style.Span{{Text: line, Style: style.HR}}
	case KindTable:
		return []style.Span{{Text: line, Style: style.Table}}
	case KindBulletItem, KindOrderedItem:
		spans := make([]style.Span, 0, 4)
		if block.Indent != "" {
			spans = append(spans, style.Span{Text: block.Indent, Style: style.Text})
		}
		spans = append(spans, style.Span{Text: block.Marker, Style: style.ListMarker})
		return append(spans, Inline(block.Body)...)
	default:
		return Inline(line)
	}
}

// headingLevel returns 1-6 when line starts with that many '#' followed by a
// space, and 0 otherwise.
func headingLevel(line string) int {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > style.MaxHeadingLevel || level >= len(line) || line[level] != ' ' {
		return 0
	}
	return level
}

// orderedMarkerLen returns the byte length of a "123. " marker at the start
// of s, or 0 if there is none.
func orderedMarkerLen(s string) int {
	dot := strings.Index(s, ". ")
	if dot <= 0 {
		return 0
	}
	for i := range dot {
		if s[i] < '0' || s[i] > '9' {
			return 0
		}
	}
	return dot + 2
}
