// Package textbuf implements the character-indexed document buffer and the
// position model that maps between linear offsets and (line, column).
//
// All offsets count Unicode code points (runes), never bytes. Every positional
// argument is clamped into the valid range before use, so no method fails or
// panics on out-of-range input.
//
// A Buffer is not safe for concurrent use.
package textbuf

import (
	"strings"
	"unicode/utf8"
)

// Buffer is a mutable text document stored as a balanced rope.
type Buffer struct {
	root    *node
	version uint64
}

// New returns a buffer holding text.
func New(text string) *Buffer {
	return &Buffer{root: build([]rune(text))}
}

// SetContent replaces the whole buffer with text.
func (b *Buffer) SetContent(text string) {
	b.root = build([]rune(text))
	b.version++
}

// String returns the full buffer content.
func (b *Buffer) String() string {
	return b.Slice(0, b.CharCount())
}

// Version is bumped by every mutation.
func (b *Buffer) Version() uint64 { return b.version }

// CharCount returns the number of runes in the buffer.
func (b *Buffer) CharCount() int { return length(b.root) }

// LineCount returns the number of lines. An empty buffer has one line, and a
// trailing '\n' starts a final empty line.
func (b *Buffer) LineCount() int { return lineBreaks(b.root) + 1 }

// InsertAt inserts text at pos, clamped to [0, CharCount()].
func (b *Buffer) InsertAt(pos int, text string) {
	if text == "" {
		return
	}
	b.root = insert(b.root, b.clamp(pos), []rune(text))
	b.version++
}

// DeleteRange removes [start, end). Both bounds are clamped; the call is a
// no-op when start >= end after clamping.
func (b *Buffer) DeleteRange(start, end int) {
	start, end = b.clamp(start), b.clamp(end)
	if start >= end {
		return
	}
	b.root = remove(b.root, start, end)
	b.version++
}

// ReplaceRange deletes [start, end) and inserts text at start. It returns the
// offset just past the inserted text.
func (b *Buffer) ReplaceRange(start, end int, text string) int {
	start = b.clamp(start)
	b.DeleteRange(start, end)
	b.InsertAt(start, text)
	return start + utf8.RuneCountInString(text)
}

// Slice returns the runes in [start, end), clamped.
func (b *Buffer) Slice(start, end int) string {
	start, end = b.clamp(start), b.clamp(end)
	if start >= end {
		return ""
	}
	var sb strings.Builder
	sb.Grow(end - start)
	b.root.appendRange(&sb, start, end)
	return sb.String()
}

// Line returns line idx including its terminator, or "" when idx is out of range.
func (b *Buffer) Line(idx int) string {
	if idx < 0 || idx >= b.LineCount() {
		return ""
	}
	return b.Slice(b.LineStart(idx), b.lineLimit(idx))
}

// LineContent returns line idx without its terminator. A "\r\n" terminator is
// stripped whole. Out-of-range lines yield "".
func (b *Buffer) LineContent(idx int) string {
	return TrimTerminator(b.Line(idx))
}

// TrimTerminator strips one trailing "\n" or "\r\n" from line.
func TrimTerminator(line string) string {
	if trimmed, ok := strings.CutSuffix(line, "\n"); ok {
		return strings.TrimSuffix(trimmed, "\r")
	}
	return line
}

// lineLimit returns the offset where the line after idx starts, or the buffer
// length for the last line.
func (b *Buffer) lineLimit(idx int) int {
	if idx+1 >= b.LineCount() {
		return b.CharCount()
	}
	return b.LineStart(idx + 1)
}

func (b *Buffer) clamp(pos int) int {
	if pos < 0 {
		return 0
	}
	if n := b.CharCount(); pos > n {
		return n
	}
	return pos
}
