// Package textedit describes batches of replacements made against one
// version of a document and applies them together.
//
// Offsets count characters (runes), matching the session buffer.
package textedit

// Edit replaces the characters in [Start, End) with Text.
type Edit struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text"`
}

// Insert returns an edit inserting text at offset.
func Insert(offset int, text string) Edit {
	return Edit{Start: offset, End: offset, Text: text}
}

// Delete returns an edit removing [start, end).
func Delete(start, end int) Edit {
	return Edit{Start: start, End: end}
}

// Replace returns an edit replacing [start, end) with text.
func Replace(start, end int, text string) Edit {
	return Edit{Start: start, End: end, Text: text}
}

// Builder accumulates edits.
type Builder struct {
	edits []Edit
}

// Replace adds an edit that replaces [start, end) with text.
func (b *Builder) Replace(start, end int, text string) *Builder {
	b.edits = append(b.edits, Replace(start, end, text))
	return b
}

// Insert adds an edit that inserts text at offset.
func (b *Builder) Insert(offset int, text string) *Builder {
	return b.Replace(offset, offset, text)
}

// Delete adds an edit that deletes [start, end).
func (b *Builder) Delete(start, end int) *Builder {
	return b.Replace(start, end, "")
}

// Edits returns a copy of the accumulated edits.
func (b *Builder) Edits() []Edit {
	out := make([]Edit, len(b.edits))
	copy(out, b.edits)
	return out
}

// Len returns the number of accumulated edits.
func (b *Builder) Len() int { return len(b.edits) }
