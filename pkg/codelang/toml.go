package codelang

import (
	"strings"
	"unicode"

	"github.com/yaklabco/gomdedit/pkg/style"
)

// tokenizeTOML recognises table headers, key = value pairs and comments.
// Multi-line strings and arrays are only highlighted on their first line.
func tokenizeTOML(line string) []style.Span {
	sc := newLineScanner(line)
	sc.emitSpace()

	switch {
	case sc.cur() == '#':
		sc.emitRest(style.CodeComment)
		return sc.result()
	case sc.cur() == '[':
		sc.tomlTableHeader()
	default:
		if eq := sc.tomlKeyEnd(); eq >= 0 {
			sc.tomlKey(eq)
			sc.emit(eq+1, style.CodeOperator)
		}
	}
	sc.tomlValue()
	return sc.result()
}

func (s *lineScanner) tomlTableHeader() {
	open := s.pos + 1
	if s.at(open) == '[' {
		open++
	}
	s.emit(open, style.CodeBracket)
	s.emit(s.runEnd(func(r rune) bool { return r == ']' }), style.CodeType)
	end := s.pos
	for s.at(end) == ']' {
		end++
	}
	s.emit(end, style.CodeBracket)
}

// tomlKeyEnd returns the position of the '=' after a key at pos, or -1.
func (s *lineScanner) tomlKeyEnd() int {
	for i := s.pos; i < len(s.runes); i++ {
		switch s.runes[i] {
		case '=':
			if i == s.pos {
				return -1
			}
			return i
		case '"', '\'':
			saved := s.pos
			s.pos = i
			i = s.stringEnd() - 1
			s.pos = saved
		case '#':
			return -1
		}
	}
	return -1
}

// tomlKey consumes a possibly dotted or quoted key ending before eq.
func (s *lineScanner) tomlKey(eq int) {
	for s.pos < eq {
		switch r := s.cur(); {
		case unicode.IsSpace(r):
			end := s.pos
			for end < eq && unicode.IsSpace(s.runes[end]) {
				end++
			}
			s.emit(end, style.CodeBlock)
		case r == '.':
			s.emit(s.pos+1, style.CodePunctuation)
		case r == '"' || r == '\'':
			s.emit(min(s.stringEnd(), eq), style.CodeProperty)
		default:
			end := s.pos
			for end < eq && !unicode.IsSpace(s.runes[end]) && s.runes[end] != '.' {
				end++
			}
			s.emit(end, style.CodeProperty)
		}
	}
}

func (s *lineScanner) tomlValue() {
	for !s.done() {
		switch r := s.cur(); {
		case unicode.IsSpace(r):
			s.emitSpace()
		case r == '#':
			s.emitRest(style.CodeComment)
		case r == '"' || r == '\'':
			s.emit(s.tomlStringEnd(), style.CodeString)
		case isDigit(r) || ((r == '+' || r == '-') && isDigit(s.at(s.pos+1))):
			s.emit(s.runEnd(func(r rune) bool { return !isTOMLNumberRune(r) }), style.CodeNumber)
		case isWordRune(r):
			end := s.wordEnd()
			st := style.CodeBlock
			switch string(s.runes[s.pos:end]) {
			case "true", "false":
				st = style.CodeKeyword
			case "inf", "nan":
				st = style.CodeNumber
			}
			s.emit(end, st)
		default:
			s.emit(s.pos+1, punctStyle(r))
		}
	}
}

// tomlStringEnd handles basic, literal and triple-quoted strings. Literal
// strings ('...') have no escapes.
func (s *lineScanner) tomlStringEnd() int {
	quote := s.cur()
	delim := strings.Repeat(string(quote), 3)
	if s.hasPrefixAt(s.pos, delim) {
		if end := s.index(s.pos+3, delim); end >= 0 {
			return end + 3
		}
		return len(s.runes)
	}
	if quote == '"' {
		return s.stringEnd()
	}
	if end := s.index(s.pos+1, "'"); end >= 0 {
		return end + 1
	}
	return len(s.runes)
}

func isTOMLNumberRune(r rune) bool {
	return isHexDigit(r) || r == '.' || r == '_' || r == '-' || r == '+' || r == ':' ||
		r == 'x' || r == 'o' || r == 'T' || r == 'Z'
}
