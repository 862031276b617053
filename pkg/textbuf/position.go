package textbuf

// Position is a 0-based line and column plus the linear offset it maps to.
// Column counts runes from the start of the line.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"col"`
	Offset int `json:"offset"`
}

// LineStart returns the offset of the first rune of line, or CharCount() when
// line is past the end of the buffer.
func (b *Buffer) LineStart(line int) int {
	if line >= b.LineCount() {
		return b.CharCount()
	}
	if line <= 0 {
		return 0
	}
	return b.root.offsetAfterLine(line)
}

// LineEnd returns the offset of the '\n' ending line, or the end of the
// buffer for the last line. Out-of-range lines yield CharCount().
func (b *Buffer) LineEnd(line int) int {
	if line < 0 || line >= b.LineCount() {
		return b.CharCount()
	}
	limit := b.lineLimit(line)
	if limit > b.LineStart(line) && b.root.runeAt(limit-1) == '\n' {
		return limit - 1
	}
	return limit
}

// LineLen returns the rune length of line excluding its '\n'.
func (b *Buffer) LineLen(line int) int {
	if line < 0 || line >= b.LineCount() {
		return 0
	}
	return b.LineEnd(line) - b.LineStart(line)
}

// OffsetToLine returns the line containing offset, after clamping offset.
func (b *Buffer) OffsetToLine(offset int) int {
	return b.root.linesBefore(b.clamp(offset))
}

// OffsetToPosition converts offset (clamped) into a Position.
func (b *Buffer) OffsetToPosition(offset int) Position {
	offset = b.clamp(offset)
	line := b.root.linesBefore(offset)
	return Position{
		Line:   line,
		Column: offset - b.LineStart(line),
		Offset: offset,
	}
}

// PositionToOffset converts (line, column) to an offset. Lines past the end
// map to CharCount(). Columns are clamped to the line length excluding the
// '\n', so a column past the end lands exactly on the terminator.
func (b *Buffer) PositionToOffset(line, column int) int {
	if line >= b.LineCount() {
		return b.CharCount()
	}
	if line < 0 {
		line = 0
	}
	column = max(0, min(column, b.LineLen(line)))
	return b.LineStart(line) + column
}
