// Package session is the editing handle a host UI drives: one Session owns a
// document buffer together with its cursor, selection, undo history and
// highlighting cache.
//
// Every method is synchronous and clamps out-of-range arguments instead of
// failing. A Session is not safe for concurrent use; the host serializes calls.
package session

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/gomdedit/pkg/codelang"
	"github.com/yaklabco/gomdedit/pkg/config"
	"github.com/yaklabco/gomdedit/pkg/highlight"
	"github.com/yaklabco/gomdedit/pkg/history"
	"github.com/yaklabco/gomdedit/pkg/preview"
	"github.com/yaklabco/gomdedit/pkg/textbuf"
	"github.com/yaklabco/gomdedit/pkg/textedit"
)

// Selection is a normalized range with Start <= End.
type Selection struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// VisibleLine is a plain line for display. Num is 1-based and Content has no
// terminator.
type VisibleLine struct {
	Num     int    `json:"num"`
	Content string `json:"content"`
}

// Session is one open document.
type Session struct {
	cfg      *config.Config
	logger   *log.Logger
	registry *codelang.Registry

	buf         *textbuf.Buffer
	cursor      int
	selection   Selection
	selected    bool
	history     *history.Stack
	highlighter *highlight.Highlighter
	renderer    *preview.Renderer
}

// Option configures a Session.
type Option func(*Session)

// WithConfig applies history, highlighting and preview settings.
func WithConfig(cfg *config.Config) Option {
	return func(s *Session) {
		if cfg != nil {
			s.cfg = cfg
		}
	}
}

// WithLogger sets the logger for debug output.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRegistry replaces the language registry. Configured language aliases
// are ignored when a registry is supplied.
func WithRegistry(reg *codelang.Registry) Option {
	return func(s *Session) {
		if reg != nil {
			s.registry = reg
		}
	}
}

// New returns a session holding an empty document.
func New(opts ...Option) *Session {
	s := &Session{
		cfg:    config.NewConfig(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = codelang.NewRegistry(codelang.WithAliases(s.cfg.Highlight.LanguageAliases))
	}

	s.buf = textbuf.New("")
	s.history = history.New(s.cfg.History.Limit)
	s.highlighter = highlight.New(
		highlight.WithRegistry(s.registry),
		highlight.WithLogger(s.logger),
		highlight.WithCheckpointInterval(s.cfg.Highlight.CheckpointInterval),
		highlight.WithFenceDetection(s.cfg.Highlight.DetectUntaggedFences),
	)
	s.renderer = preview.New(s.cfg.Preview.Flavor)
	return s
}

// SetContent replaces the whole document. Cursor and selection are kept and
// clamped on use; the undo history is left alone.
func (s *Session) SetContent(text string) {
	s.buf.SetContent(text)
	s.highlighter.Reset()
	s.clampCursor()
	s.logger.Debug("content replaced", "chars", s.buf.CharCount(), "lines", s.buf.LineCount())
}

// Content returns the full document.
func (s *Session) Content() string { return s.buf.String() }

// InsertAt inserts text at pos, clamped to the document.
func (s *Session) InsertAt(pos int, text string) {
	line := s.buf.OffsetToLine(pos)
	s.buf.InsertAt(pos, text)
	s.edited(line)
}

// DeleteRange removes [start, end). It is a no-op when start >= end after
// clamping.
func (s *Session) DeleteRange(start, end int) {
	line := s.buf.OffsetToLine(start)
	s.buf.DeleteRange(start, end)
	s.edited(line)
}

// ReplaceRange deletes [start, end), inserts text at start and returns the
// offset just past the inserted text.
func (s *Session) ReplaceRange(start, end int, text string) int {
	line := s.buf.OffsetToLine(start)
	next := s.buf.ReplaceRange(start, end, text)
	s.edited(line)
	return next
}

// ApplyEdits applies a batch of edits, all expressed against the current
// content, as a single change. Offsets are clamped to the document. A
// reversed range yields a *textedit.RangeError and overlapping ranges a
// *textedit.ConflictError; in both cases the document is left untouched.
func (s *Session) ApplyEdits(edits []textedit.Edit) error {
	sorted, err := textedit.Prepare(textedit.Clamp(edits, s.buf.CharCount()), s.buf.CharCount())
	if err != nil {
		return err
	}
	if len(sorted) == 0 {
		return nil
	}

	line := s.buf.OffsetToLine(sorted[0].Start)
	textedit.ApplyTo(s.buf, sorted)
	s.edited(line)
	s.logger.Debug("edits applied", "count", len(sorted))
	return nil
}

// LineCount returns the number of lines.
func (s *Session) LineCount() int { return s.buf.LineCount() }

// CharCount returns the number of characters.
func (s *Session) CharCount() int { return s.buf.CharCount() }

// Line returns line idx with its terminator, or "" when out of range.
func (s *Session) Line(idx int) string { return s.buf.Line(idx) }

// Version changes whenever the document changes.
func (s *Session) Version() uint64 { return s.buf.Version() }

// VisibleLines returns up to count plain lines starting at start.
func (s *Session) VisibleLines(start, count int) []VisibleLine {
	total := s.buf.LineCount()
	start = max(0, min(start, total))
	end := start + max(count, 0)
	if end > total || end < start {
		end = total
	}

	lines := make([]VisibleLine, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, VisibleLine{Num: i + 1, Content: s.buf.LineContent(i)})
	}
	return lines
}

// HighlightedLines returns up to count styled lines starting at start.
func (s *Session) HighlightedLines(start, count int) []highlight.Line {
	return s.highlighter.Lines(s.buf, start, count)
}

// ResetHighlightingState drops all cached fence state.
func (s *Session) ResetHighlightingState() { s.highlighter.Reset() }

// SetCursor moves the cursor to pos, clamped to [0, CharCount()].
func (s *Session) SetCursor(pos int) {
	s.cursor = max(0, min(pos, s.buf.CharCount()))
}

// Cursor returns the cursor offset.
func (s *Session) Cursor() int { return s.cursor }

// CursorPosition returns the cursor as line, column and offset.
func (s *Session) CursorPosition() textbuf.Position {
	return s.buf.OffsetToPosition(s.cursor)
}

// SetSelection selects the range between a and b in either order.
func (s *Session) SetSelection(a, b int) {
	n := s.buf.CharCount()
	a = max(0, min(a, n))
	b = max(0, min(b, n))
	s.selection = Selection{Start: min(a, b), End: max(a, b)}
	s.selected = true
}

// Selection returns the stored selection and whether one is set.
func (s *Session) Selection() (Selection, bool) {
	return s.selection, s.selected
}

// ClearSelection removes the selection.
func (s *Session) ClearSelection() {
	s.selection = Selection{}
	s.selected = false
}

// SelectedText returns the selected text. The range is clamped again, since
// the document may have shrunk after the selection was made.
func (s *Session) SelectedText() (string, bool) {
	if !s.selected {
		return "", false
	}
	return s.buf.Slice(s.selection.Start, s.selection.End), true
}

// LineColToOffset converts a 0-based line and column to an offset.
func (s *Session) LineColToOffset(line, col int) int {
	return s.buf.PositionToOffset(line, col)
}

// OffsetToPosition converts an offset to line, column and offset.
func (s *Session) OffsetToPosition(offset int) textbuf.Position {
	return s.buf.OffsetToPosition(offset)
}

// LineStart returns the offset where line starts.
func (s *Session) LineStart(line int) int { return s.buf.LineStart(line) }

// LineEnd returns the offset where line's content ends.
func (s *Session) LineEnd(line int) int { return s.buf.LineEnd(line) }

// RenderHTML renders the document with the configured Markdown flavor.
func (s *Session) RenderHTML() (string, error) {
	return s.renderer.Render([]byte(s.buf.String()))
}

// Outline lists the document's headings.
func (s *Session) Outline() []preview.Heading {
	return s.renderer.Outline([]byte(s.buf.String()))
}

// edited records a mutation that started on line.
func (s *Session) edited(line int) {
	s.highlighter.Invalidate(line)
	s.clampCursor()
}

func (s *Session) clampCursor() {
	s.cursor = min(s.cursor, s.buf.CharCount())
}
