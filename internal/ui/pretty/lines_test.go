package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gomdedit/internal/ui/pretty"
	"github.com/yaklabco/gomdedit/pkg/highlight"
	"github.com/yaklabco/gomdedit/pkg/style"
)

func plainLine(num int, spans ...style.Span) highlight.Line {
	return highlight.Line{Num: num, Spans: spans}
}

func TestLineFormatter_Format(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		opts  []pretty.LineOption
		lines []highlight.Line
		want  string
	}{
		{
			name:  "empty",
			lines: nil,
			want:  "",
		},
		{
			name: "gutter aligns numbers",
			lines: []highlight.Line{
				plainLine(9, style.Span{Text: "# Title", Style: style.H1}),
				plainLine(10, style.Span{Text: "body", Style: style.Text}),
			},
			want: " 9 │ # Title\n10 │ body\n",
		},
		{
			name:  "no gutter",
			opts:  []pretty.LineOption{pretty.WithGutter(false)},
			lines: []highlight.Line{plainLine(1, style.Span{Text: "abc", Style: style.Text})},
			want:  "abc\n",
		},
		{
			name: "tabs expand across spans",
			opts: []pretty.LineOption{pretty.WithGutter(false)},
			lines: []highlight.Line{plainLine(1,
				style.Span{Text: "ab", Style: style.Text},
				style.Span{Text: "\tc", Style: style.Bold},
			)},
			want: "ab  c\n",
		},
		{
			name: "custom tab width",
			opts: []pretty.LineOption{pretty.WithGutter(false), pretty.WithTabWidth(8)},
			lines: []highlight.Line{
				plainLine(1, style.Span{Text: "\tx", Style: style.CodeBlock}),
			},
			want: "        x\n",
		},
		{
			name: "truncates to width",
			opts: []pretty.LineOption{pretty.WithWidth(12)},
			lines: []highlight.Line{plainLine(1,
				style.Span{Text: "hello ", Style: style.Text},
				style.Span{Text: "world!!", Style: style.Bold},
			)},
			want: "1 │ hello w…\n",
		},
		{
			name:  "fits exactly",
			opts:  []pretty.LineOption{pretty.WithWidth(7)},
			lines: []highlight.Line{plainLine(1, style.Span{Text: "abc", Style: style.Text})},
			want:  "1 │ abc\n",
		},
		{
			name: "wide runes",
			opts: []pretty.LineOption{pretty.WithGutter(false), pretty.WithWidth(10)},
			lines: []highlight.Line{
				plainLine(1, style.Span{Text: "日本語テキスト", Style: style.Text}),
			},
			want: "日本語テ…\n",
		},
		{
			name:  "width narrower than gutter",
			opts:  []pretty.LineOption{pretty.WithWidth(3)},
			lines: []highlight.Line{plainLine(1, style.Span{Text: "abc", Style: style.Text})},
			want:  "1 │ \n",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			formatter := pretty.NewLineFormatter(pretty.NewStyles(false), testCase.opts...)
			assert.Equal(t, testCase.want, formatter.Format(testCase.lines))
		})
	}
}

func TestLineFormatter_HighlightedDocument(t *testing.T) {
	t.Parallel()

	doc := highlight.Lines{"# Title", "", "```go", "func main() {}", "```"}
	lines := highlight.New().Lines(doc, 0, len(doc))

	out := pretty.NewLineFormatter(pretty.NewStyles(false)).Format(lines)
	assert.Equal(t, "1 │ # Title\n2 │ \n3 │ ```go\n4 │ func main() {}\n5 │ ```\n", out)
}
