package codelang

import (
	"unicode"

	"github.com/yaklabco/gomdedit/pkg/style"
)

// tokenizeMarkup handles HTML and XML: comments, tags with their attributes,
// character entities, and text between tags. A tag left open at the end of
// the line is not continued on the next one.
func tokenizeMarkup(line string) []style.Span {
	sc := newLineScanner(line)
	for !sc.done() {
		switch r := sc.cur(); {
		case sc.hasPrefixAt(sc.pos, "<!--"):
			end := sc.index(sc.pos+4, "-->")
			if end < 0 {
				sc.emitRest(style.CodeComment)
				continue
			}
			sc.emit(end+3, style.CodeComment)
		case r == '<' && isTagStart(sc.at(sc.pos+1)):
			sc.markupTag()
		case r == '&' && sc.entityEnd() > sc.pos+1:
			sc.emit(sc.entityEnd(), style.CodeBuiltin)
		default:
			end := sc.runEnd(func(r rune) bool { return r == '<' || r == '&' })
			if end == sc.pos {
				end++
			}
			sc.emit(end, style.CodeBlock)
		}
	}
	return sc.result()
}

func isTagStart(r rune) bool {
	return r == '/' || r == '!' || r == '?' || unicode.IsLetter(r)
}

// markupTag consumes one tag starting at '<'.
func (s *lineScanner) markupTag() {
	open := s.pos + 1
	if s.at(open) == '/' || s.at(open) == '!' || s.at(open) == '?' {
		open++
	}
	s.emit(open, style.CodeBracket)
	s.emit(s.runEnd(isTagNameEnd), style.CodeKeyword)

	for !s.done() {
		switch r := s.cur(); {
		case r == '>':
			s.emit(s.pos+1, style.CodeBracket)
			return
		case (r == '/' || r == '?') && s.at(s.pos+1) == '>':
			s.emit(s.pos+2, style.CodeBracket)
			return
		case unicode.IsSpace(r):
			s.emitSpace()
		case r == '"' || r == '\'':
			s.emit(s.stringEnd(), style.CodeString)
		case r == '=':
			s.emit(s.pos+1, style.CodeOperator)
		default:
			end := s.runEnd(isTagNameEnd)
			if end == s.pos {
				end++
			}
			s.emit(end, style.CodeProperty)
		}
	}
}

func isTagNameEnd(r rune) bool {
	return unicode.IsSpace(r) || r == '>' || r == '/' || r == '=' || r == '"' || r == '\'' || r == '?'
}

// entityEnd returns the end of a "&name;" entity at pos, or pos+1 when the
// ampersand does not start one.
func (s *lineScanner) entityEnd() int {
	for i := s.pos + 1; i < len(s.runes) && i-s.pos <= 32; i++ {
		r := s.runes[i]
		if r == ';' {
			if i == s.pos+1 {
				break
			}
			return i + 1
		}
		if !isWordRune(r) && r != '#' {
			break
		}
	}
	return s.pos + 1
}
