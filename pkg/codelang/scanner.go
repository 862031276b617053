package codelang

import (
	"unicode"

	"github.com/yaklabco/gomdedit/pkg/style"
)

// lineScanner is the cursor shared by all tokenizers. Emitted spans cover
// runes[0:pos] exactly; adjacent spans of the same style are merged.
type lineScanner struct {
	runes []rune
	pos   int
	spans []style.Span
}

func newLineScanner(line string) *lineScanner {
	return &lineScanner{runes: []rune(line)}
}

func (s *lineScanner) done() bool { return s.pos >= len(s.runes) }

func (s *lineScanner) cur() rune { return s.at(s.pos) }

// at returns the rune at i, or 0 outside the line.
func (s *lineScanner) at(i int) rune {
	if i < 0 || i >= len(s.runes) {
		return 0
	}
	return s.runes[i]
}

// hasPrefixAt reports whether the runes starting at i spell prefix.
func (s *lineScanner) hasPrefixAt(i int, prefix string) bool {
	for _, r := range prefix {
		if s.at(i) != r || i >= len(s.runes) {
			return false
		}
		i++
	}
	return true
}

// index returns the first position >= from where sub starts, or -1.
func (s *lineScanner) index(from int, sub string) int {
	for i := max(from, 0); i < len(s.runes); i++ {
		if s.hasPrefixAt(i, sub) {
			return i
		}
	}
	return -1
}

// emit consumes runes up to end as one span of st.
func (s *lineScanner) emit(end int, st style.Style) {
	end = min(end, len(s.runes))
	if end <= s.pos {
		return
	}
	text := string(s.runes[s.pos:end])
	s.pos = end
	if n := len(s.spans); n > 0 && s.spans[n-1].Style == st {
		s.spans[n-1].Text += text
		return
	}
	s.spans = append(s.spans, style.Span{Text: text, Style: st})
}

func (s *lineScanner) emitRest(st style.Style) { s.emit(len(s.runes), st) }

// emitSpace consumes a run of whitespace as code-block.
func (s *lineScanner) emitSpace() {
	end := s.pos
	for end < len(s.runes) && unicode.IsSpace(s.runes[end]) {
		end++
	}
	s.emit(end, style.CodeBlock)
}

// result returns the spans, substituting one empty code-block span for an
// empty line.
func (s *lineScanner) result() []style.Span {
	if len(s.spans) == 0 {
		return []style.Span{{Text: "", Style: style.CodeBlock}}
	}
	return s.spans
}

// stringEnd returns the end of the quoted string opening at pos. A backslash
// escapes the next rune. Unterminated strings run to the end of the line.
func (s *lineScanner) stringEnd() int {
	quote := s.cur()
	for i := s.pos + 1; i < len(s.runes); i++ {
		switch s.runes[i] {
		case '\\':
			i++
		case quote:
			return i + 1
		}
	}
	return len(s.runes)
}

// numberEnd returns the end of the numeric literal at pos: hex after "0x",
// otherwise digits and dots.
func (s *lineScanner) numberEnd() int {
	i := s.pos
	if s.at(i) == '0' && (s.at(i+1) == 'x' || s.at(i+1) == 'X') {
		i += 2
		for i < len(s.runes) && isHexDigit(s.runes[i]) {
			i++
		}
		return i
	}
	for i < len(s.runes) && (isDigit(s.runes[i]) || s.runes[i] == '.') {
		i++
	}
	return i
}

// wordEnd returns the end of the word run starting at pos.
func (s *lineScanner) wordEnd() int {
	i := s.pos
	for i < len(s.runes) && isWordRune(s.runes[i]) {
		i++
	}
	return i
}

// runEnd returns the first position >= pos where stop matches, or the end.
func (s *lineScanner) runEnd(stop func(rune) bool) int {
	i := s.pos
	for i < len(s.runes) && !stop(s.runes[i]) {
		i++
	}
	return i
}

// nextNonSpace returns the first non-space rune at or after i, or 0.
func (s *lineScanner) nextNonSpace(i int) rune {
	for ; i < len(s.runes); i++ {
		if !unicode.IsSpace(s.runes[i]) {
			return s.runes[i]
		}
	}
	return 0
}

// startsNumber reports whether a numeric literal begins at pos: a digit not
// glued to a preceding word.
func (s *lineScanner) startsNumber() bool {
	return isDigit(s.cur()) && (s.pos == 0 || !isWordRune(s.runes[s.pos-1]))
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isWordRune(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// punctStyle buckets a single non-word rune.
func punctStyle(r rune) style.Style {
	switch r {
	case '(', ')', '[', ']', '{', '}':
		return style.CodeBracket
	case '+', '-', '*', '/', '%', '=', '<', '>', '!', '&', '|', '^', '~', '?':
		return style.CodeOperator
	case '.', ',', ';', ':':
		return style.CodePunctuation
	default:
		return style.CodeBlock
	}
}
