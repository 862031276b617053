// Package history provides the bounded undo/redo stack used by editing
// sessions. Snapshots are whole-document copies; the stack never records
// anything on its own, callers decide when a snapshot is taken.
package history

// DefaultLimit is the number of snapshots kept on each stack when no limit
// is configured.
const DefaultLimit = 100

// Snapshot is an immutable copy of the document and cursor at one point.
type Snapshot struct {
	Content string
	Cursor  int
}

// Stack holds undo and redo snapshots. The zero value is not usable; call New.
type Stack struct {
	limit int
	undo  []Snapshot
	redo  []Snapshot
}

// New returns an empty stack keeping at most limit snapshots per direction.
// A limit <= 0 selects DefaultLimit.
func New(limit int) *Stack {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Stack{limit: limit}
}

// Limit reports the per-stack capacity.
func (s *Stack) Limit() int { return s.limit }

// Save records cur as an undo point. Nothing is pushed when cur.Content equals
// the most recent undo snapshot, but the redo stack is cleared either way.
func (s *Stack) Save(cur Snapshot) {
	s.redo = nil
	if n := len(s.undo); n > 0 && s.undo[n-1].Content == cur.Content {
		return
	}
	s.undo = s.push(s.undo, cur)
}

// Undo pops the newest undo snapshot and returns it for the caller to
// restore. cur is moved to the redo stack. It reports false when there is
// nothing to undo.
func (s *Stack) Undo(cur Snapshot) (Snapshot, bool) {
	prev, ok := pop(&s.undo)
	if !ok {
		return Snapshot{}, false
	}
	s.redo = s.push(s.redo, cur)
	return prev, true
}

// Redo is the mirror of Undo.
func (s *Stack) Redo(cur Snapshot) (Snapshot, bool) {
	next, ok := pop(&s.redo)
	if !ok {
		return Snapshot{}, false
	}
	s.undo = s.push(s.undo, cur)
	return next, true
}

func (s *Stack) CanUndo() bool { return len(s.undo) > 0 }

func (s *Stack) CanRedo() bool { return len(s.redo) > 0 }

// UndoDepth returns the number of undo snapshots held.
func (s *Stack) UndoDepth() int { return len(s.undo) }

// RedoDepth returns the number of redo snapshots held.
func (s *Stack) RedoDepth() int { return len(s.redo) }

// Clear drops both stacks.
func (s *Stack) Clear() {
	s.undo = nil
	s.redo = nil
}

// push appends snap and evicts the oldest entries beyond the limit.
func (s *Stack) push(stack []Snapshot, snap Snapshot) []Snapshot {
	stack = append(stack, snap)
	if over := len(stack) - s.limit; over > 0 {
		stack = append(stack[:0:0], stack[over:]...)
	}
	return stack
}

func pop(stack *[]Snapshot) (Snapshot, bool) {
	n := len(*stack)
	if n == 0 {
		return Snapshot{}, false
	}
	top := (*stack)[n-1]
	*stack = (*stack)[:n-1]
	return top, true
}
