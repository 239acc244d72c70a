package history

import "github.com/verso-editor/verso/internal/engine/buffer"

// History is an append-only log of edit records with a pointer into it.
// The pointer sits between records: entries below it are applied, entries
// at or above it are the redo tail. Pushing while the pointer is below the
// end discards the tail first, so redo is only reachable until the next
// fresh edit.
type History struct {
	changes   []Change
	current   int
	lastSaved int
}

// New returns an empty history whose state is considered saved.
func New() *History {
	return &History{}
}

// Push discards any redo tail, appends the record, and advances the pointer.
// If the discarded tail contained the saved position the buffer can no
// longer return to a clean state by undo alone.
func (h *History) Push(c Change) {
	if h.current < len(h.changes) {
		h.changes = h.changes[:h.current]
		if h.lastSaved > h.current {
			h.lastSaved = -1
		}
	}
	h.changes = append(h.changes, c)
	h.current++
}

// Undo reverts the record below the pointer against b and steps the pointer
// back. It returns the char index the cursor should move to. The second
// return is false when there is nothing to undo.
func (h *History) Undo(b *buffer.Buffer) (CharOffset, bool) {
	if !h.CanUndo() {
		return 0, false
	}
	h.current--
	return h.changes[h.current].revert(b), true
}

// Redo re-applies the record at the pointer against b and steps the pointer
// forward. It returns the char index the cursor should move to. The second
// return is false when there is nothing to redo.
func (h *History) Redo(b *buffer.Buffer) (CharOffset, bool) {
	if !h.CanRedo() {
		return 0, false
	}
	idx := h.changes[h.current].apply(b)
	h.current++
	return idx, true
}

// CanUndo reports whether at least one record precedes the pointer.
func (h *History) CanUndo() bool {
	return h.current > 0
}

// CanRedo reports whether a redo tail exists.
func (h *History) CanRedo() bool {
	return h.current < len(h.changes)
}

// Len returns the number of records in the log.
func (h *History) Len() int {
	return len(h.changes)
}

// Current returns the pointer position.
func (h *History) Current() int {
	return h.current
}

// IsEdited reports whether the pointer has moved since the last MarkSaved.
// Undoing back to the exact saved position makes the buffer clean again.
func (h *History) IsEdited() bool {
	return h.current != h.lastSaved
}

// MarkSaved records the current pointer position as the saved state.
func (h *History) MarkSaved() {
	h.lastSaved = h.current
}

// Clear drops all records and marks the empty history as saved.
func (h *History) Clear() {
	h.changes = h.changes[:0]
	h.current = 0
	h.lastSaved = 0
}
