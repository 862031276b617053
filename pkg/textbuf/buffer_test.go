package textbuf_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdedit/pkg/textbuf"
)

func TestBuffer_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"single line", "hello"},
		{"multi line", "line1\nline2\nline3"},
		{"trailing newline", "a\nb\n"},
		{"crlf", "a\r\nb\r\n"},
		{"multibyte", "héllo wörld ✓ 日本語"},
		{"large", strings.Repeat("0123456789abcdef\n", 500)},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			buf := textbuf.New("")
			buf.SetContent(testCase.content)
			assert.Equal(t, testCase.content, buf.String())
			assert.Equal(t, len([]rune(testCase.content)), buf.CharCount())
			assert.Equal(t, strings.Count(testCase.content, "\n")+1, buf.LineCount())
		})
	}
}

func TestBuffer_InsertAtClamps(t *testing.T) {
	t.Parallel()

	buf := textbuf.New("abc")
	buf.InsertAt(1_000_000, "x")
	assert.Equal(t, "abcx", buf.String())

	buf.InsertAt(-5, "<")
	assert.Equal(t, "<abcx", buf.String())

	buf.InsertAt(2, "日本")
	assert.Equal(t, "<a日本bcx", buf.String())
	assert.Equal(t, 7, buf.CharCount())
}

func TestBuffer_DeleteRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		start, end int
		expected   string
	}{
		{"middle", 1, 3, "ado"},
		{"reversed is no-op", 5, 2, "abcdo"},
		{"empty is no-op", 2, 2, "abcdo"},
		{"end clamped", 3, 99, "abc"},
		{"negative start", -3, 2, "cdo"},
		{"past end is no-op", 10, 20, "abcdo"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			buf := textbuf.New("abcdo")
			buf.DeleteRange(testCase.start, testCase.end)
			assert.Equal(t, testCase.expected, buf.String())
		})
	}
}

func TestBuffer_ReplaceRange(t *testing.T) {
	t.Parallel()

	buf := textbuf.New("hello world")
	cursor := buf.ReplaceRange(6, 11, "wörld!")
	assert.Equal(t, "hello wörld!", buf.String())
	assert.Equal(t, 12, cursor)

	cursor = buf.ReplaceRange(50, 60, "?")
	assert.Equal(t, "hello wörld!?", buf.String())
	assert.Equal(t, 13, cursor)

	cursor = buf.ReplaceRange(0, 5, "")
	assert.Equal(t, " wörld!?", buf.String())
	assert.Equal(t, 0, cursor)
}

func TestBuffer_Line(t *testing.T) {
	t.Parallel()

	buf := textbuf.New("one\ntwo\r\n\nlast")

	assert.Equal(t, 4, buf.LineCount())
	assert.Equal(t, "one\n", buf.Line(0))
	assert.Equal(t, "two\r\n", buf.Line(1))
	assert.Equal(t, "\n", buf.Line(2))
	assert.Equal(t, "last", buf.Line(3))
	assert.Empty(t, buf.Line(4))
	assert.Empty(t, buf.Line(-1))

	assert.Equal(t, "two", buf.LineContent(1))
	assert.Equal(t, "", buf.LineContent(2))
	assert.Equal(t, "last", buf.LineContent(3))
}

func TestBuffer_VersionBumpsOnMutation(t *testing.T) {
	t.Parallel()

	buf := textbuf.New("abc")
	v := buf.Version()

	buf.DeleteRange(2, 1)
	assert.Equal(t, v, buf.Version(), "no-op delete must not bump version")

	buf.InsertAt(0, "x")
	assert.Greater(t, buf.Version(), v)
}

func TestBuffer_ManySmallEdits(t *testing.T) {
	t.Parallel()

	buf := textbuf.New("")
	var model []rune
	for i := range 5000 {
		ch := rune('a' + i%26)
		if i%50 == 49 {
			ch = '\n'
		}
		pos := (i * 7919) % (len(model) + 1)
		buf.InsertAt(pos, string(ch))
		model = append(model[:pos], append([]rune{ch}, model[pos:]...)...)
	}
	require.Equal(t, string(model), buf.String())

	for i := range 2000 {
		if len(model) == 0 {
			break
		}
		start := (i * 104729) % len(model)
		end := min(start+3, len(model))
		buf.DeleteRange(start, end)
		model = append(model[:start], model[end:]...)
	}
	require.Equal(t, string(model), buf.String())
	assert.Equal(t, strings.Count(string(model), "\n")+1, buf.LineCount())
}

func BenchmarkBuffer_InsertMiddle(b *testing.B) {
	buf := textbuf.New(strings.Repeat("lorem ipsum dolor sit amet\n", 20000))
	b.ResetTimer()
	for range b.N {
		buf.InsertAt(buf.CharCount()/2, "x")
	}
}
