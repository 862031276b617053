package textedit

import (
	"cmp"
	"fmt"
	"slices"
)

// RangeError describes an edit whose range is reversed or outside the
// document.
type RangeError struct {
	Edit    Edit
	Message string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid edit [%d:%d]: %s", e.Edit.Start, e.Edit.End, e.Message)
}

// ConflictError describes overlapping edits.
type ConflictError struct {
	First  Edit
	Second Edit
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("overlapping edits: [%d:%d] and [%d:%d]",
		e.First.Start, e.First.End, e.Second.Start, e.Second.End)
}

// Validate checks every edit against a document of length characters and
// returns the first problem found.
func Validate(edits []Edit, length int) error {
	for _, edit := range edits {
		switch {
		case edit.Start < 0:
			return &RangeError{Edit: edit, Message: "start offset is negative"}
		case edit.End < edit.Start:
			return &RangeError{Edit: edit, Message: "end offset is before start offset"}
		case edit.End > length:
			return &RangeError{
				Edit:    edit,
				Message: fmt.Sprintf("end offset %d exceeds document length %d", edit.End, length),
			}
		}
	}
	return nil
}

// Clamp returns a copy of edits with both offsets pulled into [0, length].
// Reversed ranges stay reversed.
func Clamp(edits []Edit, length int) []Edit {
	out := make([]Edit, len(edits))
	for i, edit := range edits {
		edit.Start = max(0, min(edit.Start, length))
		edit.End = max(0, min(edit.End, length))
		out[i] = edit
	}
	return out
}

// Sort orders edits by start, then end. Edits with equal ranges keep their
// relative order, so several inserts at one offset land in input order.
func Sort(edits []Edit) {
	slices.SortStableFunc(edits, func(a, b Edit) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		return cmp.Compare(a.End, b.End)
	})
}

// DetectConflicts reports the first overlap in sorted edits. Touching
// ranges and inserts at the same offset do not overlap.
func DetectConflicts(sorted []Edit) error {
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Start < sorted[i-1].End {
			return &ConflictError{First: sorted[i-1], Second: sorted[i]}
		}
	}
	return nil
}

// Prepare validates, sorts and conflict-checks a copy of edits.
func Prepare(edits []Edit, length int) ([]Edit, error) {
	if len(edits) == 0 {
		return nil, nil
	}
	if err := Validate(edits, length); err != nil {
		return nil, err
	}

	sorted := slices.Clone(edits)
	Sort(sorted)

	if err := DetectConflicts(sorted); err != nil {
		return nil, err
	}
	return sorted, nil
}

// MergeOverlaps resolves overlaps in sorted edits instead of failing.
// Overlapping deletions merge into one deletion covering both; any other
// edit overlapping an earlier one is skipped. It returns the edits to apply,
// the skipped ones and the number of merges.
func MergeOverlaps(sorted []Edit) (accepted, skipped []Edit, merged int) {
	if len(sorted) == 0 {
		return nil, nil, 0
	}

	accepted = make([]Edit, 0, len(sorted))
	current := sorted[0]
	for _, edit := range sorted[1:] {
		switch {
		case edit.Start >= current.End:
			accepted = append(accepted, current)
			current = edit
		case current.Text == "" && edit.Text == "":
			current.End = max(current.End, edit.End)
			merged++
		default:
			skipped = append(skipped, edit)
		}
	}
	accepted = append(accepted, current)

	return accepted, skipped, merged
}
