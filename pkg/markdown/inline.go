package markdown

import (
	"strings"

	"github.com/yaklabco/gomdedit/pkg/style"
)

// inlineScanner walks a line rune by rune, collecting plain text until a
// delimiter starts a recognised construct.
type inlineScanner struct {
	runes []rune
	pos   int
	text  strings.Builder
	spans []style.Span
}

// Inline splits text into text, inline-code, bold, italic and link spans.
// A delimiter without a matching closer is emitted as literal text and
// scanning resumes right after it.
func Inline(text string) []style.Span {
	if text == "" {
		return nil
	}

	sc := &inlineScanner{runes: []rune(text)}
	for sc.pos < len(sc.runes) {
		sc.step()
	}
	sc.flush()
	return sc.spans
}

func (s *inlineScanner) step() {
	switch r := s.runes[s.pos]; {
	case r == '`':
		if s.tryEnclosed("`", style.InlineCode, false) {
			return
		}
		s.literal(1)
	case r == '*' && s.peek(1) == '*':
		if s.tryEnclosed("**", style.Bold, false) {
			return
		}
		s.literal(2)
	case r == '*' || r == '_':
		if s.tryEnclosed(string(r), style.Italic, true) {
			return
		}
		s.literal(1)
	case r == '[':
		if s.tryLink() {
			return
		}
		s.literal(1)
	default:
		s.literal(1)
	}
}

// tryEnclosed looks for delim at pos and a matching closing delim later on
// the line. On success it emits the whole delimited run as one span.
func (s *inlineScanner) tryEnclosed(delim string, st style.Style, requireBody bool) bool {
	d := []rune(delim)
	bodyStart := s.pos + len(d)
	closeAt := s.index(bodyStart, d)
	if closeAt < 0 || (requireBody && closeAt == bodyStart) {
		return false
	}
	end := closeAt + len(d)
	s.emit(string(s.runes[s.pos:end]), st)
	s.pos = end
	return true
}

// tryLink matches [text](url). The label may not contain ']'.
func (s *inlineScanner) tryLink() bool {
	closeLabel := s.index(s.pos+1, []rune("]"))
	if closeLabel < 0 || closeLabel+1 >= len(s.runes) || s.runes[closeLabel+1] != '(' {
		return false
	}
	closeURL := s.index(closeLabel+2, []rune(")"))
	if closeURL < 0 {
		return false
	}
	end := closeURL + 1
	s.emit(string(s.runes[s.pos:end]), style.Link)
	s.pos = end
	return true
}

// index returns the first position >= from where delim occurs, or -1.
func (s *inlineScanner) index(from int, delim []rune) int {
	for i := from; i+len(delim) <= len(s.runes); i++ {
		match := true
		for j, r := range delim {
			if s.runes[i+j] != r {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

func (s *inlineScanner) peek(offset int) rune {
	if i := s.pos + offset; i < len(s.runes) {
		return s.runes[i]
	}
	return 0
}

// literal moves n runes into the pending text.
func (s *inlineScanner) literal(n int) {
	end := min(s.pos+n, len(s.runes))
	for _, r := range s.runes[s.pos:end] {
		s.text.WriteRune(r)
	}
	s.pos = end
}

func (s *inlineScanner) emit(text string, st style.Style) {
	s.flush()
	s.spans = append(s.spans, style.Span{Text: text, Style: st})
}

func (s *inlineScanner) flush() {
	if s.text.Len() == 0 {
		return
	}
	s.spans = append(s.spans, style.Span{Text: s.text.String(), Style: style.Text})
	s.text.Reset()
}
