package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gomdedit/pkg/style"
)

func TestHeading(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level    int
		expected style.Style
	}{
		{0, style.H1},
		{1, style.H1},
		{3, style.H3},
		{6, style.H6},
		{9, style.H6},
	}

	for _, testCase := range tests {
		assert.Equal(t, testCase.expected, style.Heading(testCase.level))
	}
}

func TestIsValid(t *testing.T) {
	t.Parallel()

	for _, s := range style.All() {
		assert.True(t, s.IsValid(), "style %q", s)
	}
	assert.False(t, style.Style("heading h7").IsValid())
	assert.False(t, style.Style("").IsValid())
	assert.Len(t, style.All(), 27)
}

func TestIsCode(t *testing.T) {
	t.Parallel()

	assert.True(t, style.CodeKeyword.IsCode())
	assert.True(t, style.CodeFence.IsCode())
	assert.False(t, style.Text.IsCode())
	assert.False(t, style.InlineCode.IsCode())
}

func TestCoalesce(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    []style.Span
		expected []style.Span
	}{
		{
			name:     "nil",
			input:    nil,
			expected: nil,
		},
		{
			name: "merges neighbours",
			input: []style.Span{
				{Text: "a", Style: style.Text},
				{Text: "b", Style: style.Text},
				{Text: "*", Style: style.Bold},
				{Text: "c", Style: style.Text},
			},
			expected: []style.Span{
				{Text: "ab", Style: style.Text},
				{Text: "*", Style: style.Bold},
				{Text: "c", Style: style.Text},
			},
		},
		{
			name: "drops empties between equal styles",
			input: []style.Span{
				{Text: "x", Style: style.CodeBlock},
				{Text: "", Style: style.CodeString},
				{Text: "y", Style: style.CodeBlock},
			},
			expected: []style.Span{{Text: "xy", Style: style.CodeBlock}},
		},
		{
			name: "all empty keeps first",
			input: []style.Span{
				{Text: "", Style: style.CodeBlock},
				{Text: "", Style: style.Text},
			},
			expected: []style.Span{{Text: "", Style: style.CodeBlock}},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.expected, style.Coalesce(testCase.input))
		})
	}
}

func TestJoin(t *testing.T) {
	t.Parallel()

	spans := []style.Span{{Text: "- ", Style: style.ListMarker}, {Text: "item", Style: style.Text}}
	assert.Equal(t, "- item", style.Join(spans))
	assert.Empty(t, style.Join(nil))
}
