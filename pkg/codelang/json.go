package codelang

import (
	"unicode"

	"github.com/yaklabco/gomdedit/pkg/style"
)

// tokenizeJSON separates object keys (strings followed by ':') from string
// values, and marks numbers and the true/false/null literals.
func tokenizeJSON(line string) []style.Span {
	sc := newLineScanner(line)
	for !sc.done() {
		switch r := sc.cur(); {
		case unicode.IsSpace(r):
			sc.emitSpace()
		case r == '"':
			end := sc.stringEnd()
			st := style.CodeString
			if sc.nextNonSpace(end) == ':' {
				st = style.CodeProperty
			}
			sc.emit(end, st)
		case r == '-' && isDigit(sc.at(sc.pos+1)), isDigit(r):
			sc.emit(sc.runEnd(func(r rune) bool { return !isJSONNumberRune(r) }), style.CodeNumber)
		case isWordRune(r):
			end := sc.wordEnd()
			st := style.CodeBlock
			switch string(sc.runes[sc.pos:end]) {
			case "true", "false", "null":
				st = style.CodeKeyword
			}
			sc.emit(end, st)
		default:
			sc.emit(sc.pos+1, punctStyle(r))
		}
	}
	return sc.result()
}

func isJSONNumberRune(r rune) bool {
	return isDigit(r) || r == '.' || r == '-' || r == '+' || r == 'e' || r == 'E'
}
