package cursor

import "fmt"

// Selection represents a range of selected text.
// Anchor is where the selection started; Head is the position it was
// extended to (where the cursor sits). The pair is not normalized in
// storage: Anchor > Head is a backward selection.
// Selection is an immutable value type.
type Selection struct {
	Anchor CharOffset
	Head   CharOffset
}

// NewSelection creates a selection from anchor to head.
func NewSelection(anchor, head CharOffset) Selection {
	return Selection{Anchor: anchor, Head: head}
}

// IsEmpty returns true if the selection has no extent.
func (s Selection) IsEmpty() bool {
	return s.Anchor == s.Head
}

// Extend returns a new selection with the head moved to pos.
// The anchor stays fixed.
func (s Selection) Extend(pos CharOffset) Selection {
	return Selection{Anchor: s.Anchor, Head: pos}
}

// Range returns the normalized (min, max) bounds of the selection.
func (s Selection) Range() (start, end CharOffset) {
	if s.Anchor <= s.Head {
		return s.Anchor, s.Head
	}
	return s.Head, s.Anchor
}

// IsBackward returns true if the head sits before the anchor.
func (s Selection) IsBackward() bool {
	return s.Head < s.Anchor
}

// Clamp returns a selection with both ends clamped to [0, max].
func (s Selection) Clamp(max CharOffset) Selection {
	clamp := func(v CharOffset) CharOffset {
		if v < 0 {
			return 0
		}
		if v > max {
			return max
		}
		return v
	}
	return Selection{Anchor: clamp(s.Anchor), Head: clamp(s.Head)}
}

// String returns a string representation of the selection.
func (s Selection) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("Cursor(%d)", s.Head)
	}
	return fmt.Sprintf("Selection(%d..%d)", s.Anchor, s.Head)
}
