package session

import "github.com/yaklabco/gomdedit/pkg/history"

// SaveUndoState records the current content and cursor as an undo point and
// discards any redo history.
func (s *Session) SaveUndoState() {
	s.history.Save(s.snapshot())
}

// Undo restores the newest undo point. It reports false when there is none.
func (s *Session) Undo() bool {
	prev, ok := s.history.Undo(s.snapshot())
	if !ok {
		return false
	}
	s.restore(prev)
	s.logger.Debug("undo", "depth", s.history.UndoDepth())
	return true
}

// Redo reapplies the newest undone state. It reports false when there is none.
func (s *Session) Redo() bool {
	next, ok := s.history.Redo(s.snapshot())
	if !ok {
		return false
	}
	s.restore(next)
	s.logger.Debug("redo", "depth", s.history.RedoDepth())
	return true
}

// CanUndo reports whether Undo would succeed.
func (s *Session) CanUndo() bool { return s.history.CanUndo() }

// CanRedo reports whether Redo would succeed.
func (s *Session) CanRedo() bool { return s.history.CanRedo() }

// ClearUndoRedo empties both stacks.
func (s *Session) ClearUndoRedo() { s.history.Clear() }

func (s *Session) snapshot() history.Snapshot {
	return history.Snapshot{Content: s.buf.String(), Cursor: s.cursor}
}

func (s *Session) restore(snap history.Snapshot) {
	s.buf.SetContent(snap.Content)
	s.highlighter.Reset()
	s.SetCursor(snap.Cursor)
}
