package codelang

import (
	"strings"
	"unicode"

	"github.com/yaklabco/gomdedit/pkg/style"
)

// tokenizeYAML splits a YAML line into indentation, sequence markers, an
// optional mapping key and a value.
func tokenizeYAML(line string) []style.Span {
	sc := newLineScanner(line)
	sc.emitSpace()

	switch rest := strings.TrimSpace(line); {
	case strings.HasPrefix(rest, "#"):
		sc.emitRest(style.CodeComment)
		return sc.result()
	case rest == "---" || rest == "...":
		sc.emitRest(style.CodeKeyword)
		return sc.result()
	}

	for sc.cur() == '-' && (unicode.IsSpace(sc.at(sc.pos+1)) || sc.pos+1 == len(sc.runes)) {
		sc.emit(sc.pos+1, style.CodePunctuation)
		sc.emitSpace()
	}

	if colon := sc.yamlKeyEnd(); colon > sc.pos {
		sc.emit(colon, style.CodeProperty)
		sc.emit(colon+1, style.CodePunctuation)
	}
	sc.yamlValue()
	return sc.result()
}

// yamlKeyEnd returns the position of the ':' ending a mapping key at pos, or
// -1 when there is none.
func (s *lineScanner) yamlKeyEnd() int {
	i := s.pos
	if q := s.cur(); q == '"' || q == '\'' {
		i = s.stringEnd()
		if s.at(i) == ':' {
			return i
		}
		return -1
	}
	for ; i < len(s.runes); i++ {
		switch r := s.runes[i]; {
		case r == ':' && (i+1 == len(s.runes) || unicode.IsSpace(s.runes[i+1])):
			return i
		case r == '#' && i > s.pos && unicode.IsSpace(s.runes[i-1]):
			return -1
		case r == '{' || r == '[' || r == '"' || r == '\'':
			return -1
		}
	}
	return -1
}

// yamlValue consumes the value part of a line up to an optional trailing
// comment.
func (s *lineScanner) yamlValue() {
	for !s.done() {
		switch r := s.cur(); {
		case unicode.IsSpace(r):
			s.emitSpace()
		case r == '#' && (s.pos == 0 || unicode.IsSpace(s.runes[s.pos-1])):
			s.emitRest(style.CodeComment)
		case r == '"' || r == '\'':
			s.emit(s.stringEnd(), style.CodeString)
		case r == '&' || r == '*' || r == '!':
			s.emit(s.runEnd(unicode.IsSpace), style.CodeType)
		case r == '|' || r == '>':
			s.emit(s.pos+1, style.CodeOperator)
		case strings.ContainsRune("{}[],", r):
			s.emit(s.pos+1, punctStyle(r))
		default:
			end := s.runEnd(isYAMLScalarEnd)
			if end == s.pos {
				end++
			}
			s.emit(end, yamlScalarStyle(string(s.runes[s.pos:end])))
		}
	}
}

func isYAMLScalarEnd(r rune) bool {
	return r == '#' || r == ',' || r == '{' || r == '}' || r == '[' || r == ']'
}

func yamlScalarStyle(scalar string) style.Style {
	trimmed := strings.TrimSpace(scalar)
	switch strings.ToLower(trimmed) {
	case "true", "false", "yes", "no", "on", "off", "null", "~":
		return style.CodeKeyword
	}
	if isNumeric(trimmed) {
		return style.CodeNumber
	}
	return style.CodeString
}

// isNumeric reports whether s is a plain decimal, float or hex literal.
func isNumeric(s string) bool {
	s = strings.TrimLeft(s, "+-")
	if s == "" {
		return false
	}
	if rest, ok := strings.CutPrefix(strings.ToLower(s), "0x"); ok {
		return rest != "" && strings.IndexFunc(rest, func(r rune) bool { return !isHexDigit(r) }) < 0
	}
	digits := false
	for _, r := range s {
		switch {
		case isDigit(r):
			digits = true
		case r == '.' || r == '_' || r == 'e' || r == 'E' || r == '+' || r == '-':
		default:
			return false
		}
	}
	return digits
}
