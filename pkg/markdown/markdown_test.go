package markdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/yaklabco/gomdedit/pkg/markdown"
	"github.com/yaklabco/gomdedit/pkg/style"
)

func span(text string, st style.Style) style.Span {
	return style.Span{Text: text, Style: st}
}

func TestHighlight_Blocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		line     string
		expected []style.Span
	}{
		{"empty line", "", []style.Span{span("", style.Text)}},
		{"h1", "# Title", []style.Span{span("# Title", style.H1)}},
		{"h3", "### Sub", []style.Span{span("### Sub", style.H3)}},
		{"h6", "###### Deep", []style.Span{span("###### Deep", style.H6)}},
		{"seven hashes is text", "####### x", []style.Span{span("####### x", style.Text)}},
		{"no space is text", "#NoSpace", []style.Span{span("#NoSpace", style.Text)}},
		{"indented fence", "  ```go", []style.Span{span("  ```go", style.CodeFence)}},
		{"blockquote", "> quoted *x*", []style.Span{span("> quoted *x*", style.Blockquote)}},
		{"hr dashes", "---", []style.Span{span("---", style.HR)}},
		{"hr padded", "  *** ", []style.Span{span("  *** ", style.HR)}},
		{"hr underscores", "___", []style.Span{span("___", style.HR)}},
		{"table", "| a | b |", []style.Span{span("| a | b |", style.Table)}},
		{
			"bullet",
			"- item",
			[]style.Span{span("- ", style.ListMarker), span("item", style.Text)},
		},
		{
			"indented bullet keeps tabs",
			"\t+ **b**",
			[]style.Span{span("\t", style.Text), span("+ ", style.ListMarker), span("**b**", style.Bold)},
		},
		{
			"ordered",
			"  12. step",
			[]style.Span{span("  ", style.Text), span("12. ", style.ListMarker), span("step", style.Text)},
		},
		{"dot without digits", ". not a list", []style.Span{span(". not a list", style.Text)}},
		{"letters before dot", "a. not a list", []style.Span{span("a. not a list", style.Text)}},
		{"marker with empty body", "- ", []style.Span{span("- ", style.ListMarker)}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.expected, markdown.Highlight(testCase.line))
		})
	}
}

func TestInline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		expected []style.Span
	}{
		{"plain", "hello", []style.Span{span("hello", style.Text)}},
		{
			"code",
			"use `go test` now",
			[]style.Span{span("use ", style.Text), span("`go test`", style.InlineCode), span(" now", style.Text)},
		},
		{"unclosed code", "a `b c", []style.Span{span("a `b c", style.Text)}},
		{
			"unclosed code then bold",
			"` **x**",
			[]style.Span{span("` ", style.Text), span("**x**", style.Bold)},
		},
		{
			"bold and italic",
			"**b** and *i* and _u_",
			[]style.Span{
				span("**b**", style.Bold),
				span(" and ", style.Text),
				span("*i*", style.Italic),
				span(" and ", style.Text),
				span("_u_", style.Italic),
			},
		},
		{"unclosed bold", "**open", []style.Span{span("**open", style.Text)}},
		{"empty italic", "__", []style.Span{span("__", style.Text)}},
		{
			"link",
			"see [docs](https://x.y) here",
			[]style.Span{span("see ", style.Text), span("[docs](https://x.y)", style.Link), span(" here", style.Text)},
		},
		{"malformed link", "[abc(no closing", []style.Span{span("[abc(no closing", style.Text)}},
		{
			"malformed link then link",
			"[x] [y](z)",
			[]style.Span{span("[x] ", style.Text), span("[y](z)", style.Link)},
		},
		{"link without url close", "[a](b", []style.Span{span("[a](b", style.Text)}},
		{"multibyte", "ü `ß` ✓", []style.Span{span("ü ", style.Text), span("`ß`", style.InlineCode), span(" ✓", style.Text)}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.expected, markdown.Inline(testCase.text))
		})
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	block := markdown.Classify("## Section")
	assert.Equal(t, markdown.KindHeading, block.Kind)
	assert.Equal(t, 2, block.Level)

	block = markdown.Classify("   7. seven")
	assert.Equal(t, markdown.KindOrderedItem, block.Kind)
	assert.Equal(t, "   ", block.Indent)
	assert.Equal(t, "7. ", block.Marker)
	assert.Equal(t, "seven", block.Body)

	assert.Equal(t, "thematic-break", markdown.Classify("___").Kind.String())
	assert.Equal(t, "unknown", markdown.Kind(99).String())
}

func TestFenceLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line     string
		expected string
	}{
		{"```", ""},
		{"```Go", "go"},
		{"  ```python title=x.py", "python"},
		{"``` rust ", "rust"},
		{"not a fence", ""},
	}

	for _, testCase := range tests {
		assert.Equal(t, testCase.expected, markdown.FenceLanguage(testCase.line), testCase.line)
	}
	assert.Equal(t, "python title=x.py", markdown.FenceInfo("  ```python title=x.py"))
}

func TestHighlight_ReproducesLine(t *testing.T) {
	t.Parallel()

	alphabet := []rune{'a', ' ', '\t', '#', '>', '-', '*', '_', '+', '`', '[', ']', '(', ')', '|', '.', '1', 'é'}
	rapid.Check(t, func(t *rapid.T) {
		line := rapid.StringOf(rapid.SampledFrom(alphabet)).Draw(t, "line")
		spans := markdown.Highlight(line)
		if got := style.Join(spans); got != line {
			t.Fatalf("spans %v join to %q, want %q", spans, got, line)
		}
		for i, sp := range spans {
			if !sp.Style.IsValid() {
				t.Fatalf("span %d has unknown style %q", i, sp.Style)
			}
			if i > 0 && sp.Style == style.Text && spans[i-1].Style == style.Text {
				t.Fatalf("adjacent text spans at %d in %v", i, spans)
			}
		}
	})
}
