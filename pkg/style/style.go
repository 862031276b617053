// Package style defines the closed vocabulary of style tags attached to
// highlighted text, and the Span type every highlighter produces.
//
// Hosts map each tag to a fixed visual treatment; no other tags are ever emitted.
package style

import "strconv"

// Style is a style tag from the closed vocabulary below.
type Style string

// Markdown block and inline styles.
const (
	Text       Style = "text"
	H1         Style = "heading h1"
	H2         Style = "heading h2"
	H3         Style = "heading h3"
	H4         Style = "heading h4"
	H5         Style = "heading h5"
	H6         Style = "heading h6"
	Blockquote Style = "blockquote"
	HR         Style = "hr"
	ListMarker Style = "list-marker"
	Table      Style = "table"
	Bold       Style = "bold"
	Italic     Style = "italic"
	InlineCode Style = "inline-code"
	Link       Style = "link"
)

// Code block styles.
const (
	CodeFence       Style = "code-fence"
	CodeBlock       Style = "code-block"
	CodeComment     Style = "code-comment"
	CodeString      Style = "code-string"
	CodeNumber      Style = "code-number"
	CodeKeyword     Style = "code-keyword"
	CodeType        Style = "code-type"
	CodeBuiltin     Style = "code-builtin"
	CodeBracket     Style = "code-bracket"
	CodeOperator    Style = "code-operator"
	CodePunctuation Style = "code-punctuation"
	CodeProperty    Style = "code-property"
)

// MaxHeadingLevel is the deepest ATX heading level.
const MaxHeadingLevel = 6

//nolint:gochecknoglobals // Read-only vocabulary table.
var all = []Style{
	Text, H1, H2, H3, H4, H5, H6, Blockquote, HR, ListMarker, Table,
	Bold, Italic, InlineCode, Link,
	CodeFence, CodeBlock, CodeComment, CodeString, CodeNumber, CodeKeyword,
	CodeType, CodeBuiltin, CodeBracket, CodeOperator, CodePunctuation, CodeProperty,
}

// All returns every style in the vocabulary, in a stable order.
func All() []Style {
	out := make([]Style, len(all))
	copy(out, all)
	return out
}

// Heading returns the heading style for level, clamped to 1..6.
func Heading(level int) Style {
	if level < 1 {
		level = 1
	}
	if level > MaxHeadingLevel {
		level = MaxHeadingLevel
	}
	return Style("heading h" + strconv.Itoa(level))
}

// IsValid reports whether s belongs to the vocabulary.
func (s Style) IsValid() bool {
	for _, known := range all {
		if s == known {
			return true
		}
	}
	return false
}

// IsCode reports whether s is one of the code-* styles.
func (s Style) IsCode() bool {
	return len(s) > 5 && s[:5] == "code-"
}

func (s Style) String() string {
	return string(s)
}

// Span is a contiguous run of text tagged with exactly one style.
type Span struct {
	Text  string `json:"text"`
	Style Style  `json:"style"`
}

// Join returns the concatenated text of spans.
func Join(spans []Span) string {
	n := 0
	for _, sp := range spans {
		n += len(sp.Text)
	}
	buf := make([]byte, 0, n)
	for _, sp := range spans {
		buf = append(buf, sp.Text...)
	}
	return string(buf)
}

// Coalesce merges adjacent spans that share a style and drops empty spans.
// A slice that would become empty keeps its first span so a blank line still
// carries a style.
func Coalesce(spans []Span) []Span {
	if len(spans) <= 1 {
		return spans
	}

	out := make([]Span, 0, len(spans))
	for _, sp := range spans {
		if sp.Text == "" {
			continue
		}
		if last := len(out) - 1; last >= 0 && out[last].Style == sp.Style {
			out[last].Text += sp.Text
			continue
		}
		out = append(out, sp)
	}

	if len(out) == 0 {
		return spans[:1]
	}
	return out
}
