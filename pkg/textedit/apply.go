package textedit

import "strings"

// Apply returns text with prepared edits applied. Edits must come from
// Prepare or MergeOverlaps against text.
func Apply(text string, edits []Edit) string {
	if len(edits) == 0 {
		return text
	}

	runes := []rune(text)
	var out strings.Builder
	out.Grow(len(text))

	cursor := 0
	for _, edit := range edits {
		out.WriteString(string(runes[cursor:edit.Start]))
		out.WriteString(edit.Text)
		cursor = edit.End
	}
	out.WriteString(string(runes[cursor:]))

	return out.String()
}

// Replacer performs a single range replacement. *textbuf.Buffer satisfies it.
type Replacer interface {
	ReplaceRange(start, end int, text string) int
}

// ApplyTo applies prepared edits to dst from the last to the first, so each
// edit's offsets still refer to the original document.
func ApplyTo(dst Replacer, edits []Edit) {
	for i := len(edits) - 1; i >= 0; i-- {
		dst.ReplaceRange(edits[i].Start, edits[i].End, edits[i].Text)
	}
}
