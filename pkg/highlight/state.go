package highlight

import "github.com/yaklabco/gomdedit/pkg/markdown"

// State is the fence state at the start of a line.
type State struct {
	InCodeBlock bool   `json:"in_code_block"`
	Language    string `json:"language,omitempty"`
}

// Next returns the state at the start of the line after line. Any fence line
// closes an open block; outside a block it opens one tagged with the fence
// language.
func (s State) Next(line string) State {
	if !markdown.IsFence(line) {
		return s
	}
	if s.InCodeBlock {
		return State{}
	}
	return State{InCodeBlock: true, Language: markdown.FenceLanguage(line)}
}

// Source is the line-oriented view of a document the highlighter reads.
// LineContent must return lines without their terminator.
type Source interface {
	LineCount() int
	LineContent(idx int) string
}

// Lines adapts a slice of lines to Source.
type Lines []string

func (l Lines) LineCount() int { return len(l) }

func (l Lines) LineContent(idx int) string {
	if idx < 0 || idx >= len(l) {
		return ""
	}
	return l[idx]
}
