package codelang

import (
	"strings"
	"unicode"

	"github.com/yaklabco/gomdedit/pkg/style"
)

// Descriptor is the lexical description of a language handled by the
// generic tokenizer. Word sets are matched case-insensitively.
type Descriptor struct {
	Name               string
	Aliases            []string
	Keywords           []string
	Types              []string
	Builtins           []string
	CommentPrefix      string
	SingleQuoteStrings bool
}

// Tokenizer compiles the descriptor into a Tokenizer.
func (d Descriptor) Tokenizer() Tokenizer {
	words := make(map[string]style.Style, len(d.Keywords)+len(d.Types)+len(d.Builtins))
	// Keywords beat types, types beat builtins.
	for _, set := range []struct {
		words []string
		style style.Style
	}{
		{d.Builtins, style.CodeBuiltin},
		{d.Types, style.CodeType},
		{d.Keywords, style.CodeKeyword},
	} {
		for _, w := range set.words {
			words[strings.ToLower(w)] = set.style
		}
	}
	return &genericTokenizer{
		words:         words,
		commentPrefix: d.CommentPrefix,
		singleQuote:   d.SingleQuoteStrings,
	}
}

type genericTokenizer struct {
	words         map[string]style.Style
	commentPrefix string
	singleQuote   bool
}

func (t *genericTokenizer) TokenizeLine(line string) []style.Span {
	if t.commentPrefix != "" && strings.HasPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), t.commentPrefix) {
		return []style.Span{{Text: line, Style: style.CodeComment}}
	}

	sc := newLineScanner(line)
	for !sc.done() {
		switch r := sc.cur(); {
		case r == '"' || (r == '\'' && t.singleQuote):
			sc.emit(sc.stringEnd(), style.CodeString)
		case sc.startsNumber():
			sc.emit(sc.numberEnd(), style.CodeNumber)
		case isWordRune(r):
			end := sc.wordEnd()
			sc.emit(end, t.classify(string(sc.runes[sc.pos:end])))
		default:
			sc.emit(sc.pos+1, punctStyle(r))
		}
	}
	return sc.result()
}

func (t *genericTokenizer) classify(word string) style.Style {
	if st, ok := t.words[strings.ToLower(word)]; ok {
		return st
	}
	return style.CodeBlock
}
