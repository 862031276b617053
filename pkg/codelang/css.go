package codelang

import (
	"strings"
	"unicode"

	"github.com/yaklabco/gomdedit/pkg/style"
)

// tokenizeCSS treats text before '{' as a selector list and text after it as
// declarations. A line with no brace is a declaration when it looks like one
// ("prop: value;"), otherwise a selector.
func tokenizeCSS(line string) []style.Span {
	sc := newLineScanner(line)
	inBlock := !strings.Contains(line, "{") && looksLikeDeclaration(line)
	afterColon := false

	for !sc.done() {
		switch r := sc.cur(); {
		case sc.hasPrefixAt(sc.pos, "/*"):
			end := sc.index(sc.pos+2, "*/")
			if end < 0 {
				sc.emitRest(style.CodeComment)
				continue
			}
			sc.emit(end+2, style.CodeComment)
		case unicode.IsSpace(r):
			sc.emitSpace()
		case r == '{':
			inBlock, afterColon = true, false
			sc.emit(sc.pos+1, style.CodeBracket)
		case r == '}':
			inBlock, afterColon = false, false
			sc.emit(sc.pos+1, style.CodeBracket)
		case r == '"' || r == '\'':
			sc.emit(sc.stringEnd(), style.CodeString)
		case r == '@':
			sc.pos++
			end := sc.runEnd(isCSSNameEnd)
			sc.pos--
			sc.emit(end, style.CodeKeyword)
		case !inBlock:
			sc.cssSelector()
		case r == ':' && !afterColon:
			afterColon = true
			sc.emit(sc.pos+1, style.CodePunctuation)
		case r == ';':
			afterColon = false
			sc.emit(sc.pos+1, style.CodePunctuation)
		case !afterColon && !isCSSNameEnd(r):
			sc.emit(sc.runEnd(isCSSNameEnd), style.CodeProperty)
		case !afterColon:
			sc.emit(sc.pos+1, punctStyle(r))
		default:
			sc.cssValue()
		}
	}
	return sc.result()
}

func looksLikeDeclaration(line string) bool {
	trimmed := strings.TrimSpace(line)
	colon := strings.IndexByte(trimmed, ':')
	if colon <= 0 {
		return false
	}
	return strings.HasSuffix(trimmed, ";") || strings.HasSuffix(trimmed, "}") ||
		strings.HasPrefix(trimmed[colon+1:], " ")
}

func isCSSNameEnd(r rune) bool {
	return !(isWordRune(r) || r == '-')
}

// cssSelector consumes one selector token.
func (s *lineScanner) cssSelector() {
	switch r := s.cur(); {
	case r == '.' || r == '#' || r == ':':
		end := s.pos + 1
		for end < len(s.runes) && s.runes[end] == ':' {
			end++
		}
		s.emit(end, style.CodePunctuation)
		s.emit(s.runEnd(isCSSNameEnd), style.CodeType)
	case r == '*' || r == '>' || r == '+' || r == '~':
		s.emit(s.pos+1, style.CodeOperator)
	case isWordRune(r) || r == '-':
		s.emit(s.runEnd(isCSSNameEnd), style.CodeType)
	default:
		s.emit(s.pos+1, punctStyle(r))
	}
}

// cssValue consumes one token of a declaration value.
func (s *lineScanner) cssValue() {
	switch r := s.cur(); {
	case r == '#' && isHexDigit(s.at(s.pos+1)):
		s.pos++
		end := s.runEnd(func(r rune) bool { return !isHexDigit(r) })
		s.pos--
		s.emit(end, style.CodeNumber)
	case isDigit(r) || (r == '.' || r == '-') && isDigit(s.at(s.pos+1)):
		s.emit(s.runEnd(func(r rune) bool { return !(isDigit(r) || r == '.' || r == '-' || r == '%' || unicode.IsLetter(r)) }), style.CodeNumber)
	case r == '!':
		s.emit(s.runEnd(func(r rune) bool { return r != '!' && !unicode.IsLetter(r) }), style.CodeKeyword)
	case isWordRune(r) || r == '-':
		end := s.runEnd(isCSSNameEnd)
		if s.at(end) == '(' {
			s.emit(end, style.CodeBuiltin)
			return
		}
		s.emit(end, style.CodeBlock)
	default:
		s.emit(s.pos+1, punctStyle(r))
	}
}
