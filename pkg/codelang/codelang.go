// Package codelang tokenizes single lines of fenced code into styled spans.
//
// Most languages are described by a Descriptor (keyword, type and builtin
// word sets plus comment and quoting rules) that drives one shared tokenizer.
// JSON, HTML/XML, CSS, YAML and TOML use structural tokenizers instead. Every
// tokenizer sees exactly one line and keeps no state between lines.
package codelang

import "github.com/yaklabco/gomdedit/pkg/style"

// Tokenizer splits one line of code into spans whose texts concatenate back
// to the line. An empty line yields a single empty code-block span.
type Tokenizer interface {
	TokenizeLine(line string) []style.Span
}

// TokenizerFunc adapts an ordinary function to the Tokenizer interface.
type TokenizerFunc func(line string) []style.Span

// TokenizeLine calls f(line).
func (f TokenizerFunc) TokenizeLine(line string) []style.Span { return f(line) }

// Plain emits the whole line as one code-block span. It is used for fences
// with no language or an unknown one.
var Plain Tokenizer = TokenizerFunc(func(line string) []style.Span {
	return []style.Span{{Text: line, Style: style.CodeBlock}}
})
