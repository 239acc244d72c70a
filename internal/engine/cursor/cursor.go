package cursor

import (
	"fmt"

	"github.com/verso-editor/verso/internal/engine/buffer"
)

// CharOffset is an alias for buffer.CharOffset for convenience.
type CharOffset = buffer.CharOffset

// Point is an alias for buffer.Point for convenience.
type Point = buffer.Point

// Cursor represents an insertion point in the buffer.
// Cursor is an immutable value type.
type Cursor struct {
	pos CharOffset
}

// New creates a cursor at the given char index.
func New(pos CharOffset) Cursor {
	if pos < 0 {
		pos = 0
	}
	return Cursor{pos: pos}
}

// Pos returns the cursor's char index.
func (c Cursor) Pos() CharOffset {
	return c.pos
}

// MoveTo returns a new cursor at the given char index.
func (c Cursor) MoveTo(pos CharOffset) Cursor {
	return New(pos)
}

// MoveBy returns a new cursor shifted by delta chars.
func (c Cursor) MoveBy(delta CharOffset) Cursor {
	return New(c.pos + delta)
}

// Clamp returns a cursor clamped to the valid range [0, max].
func (c Cursor) Clamp(max CharOffset) Cursor {
	if c.pos > max {
		return Cursor{pos: max}
	}
	return c
}

// Point returns the cursor's line/column position in the given buffer.
func (c Cursor) Point(b *buffer.Buffer) Point {
	return b.CharToPoint(c.pos)
}

// Equals returns true if two cursors are at the same position.
func (c Cursor) Equals(other Cursor) bool {
	return c.pos == other.pos
}

// String returns a string representation of the cursor.
func (c Cursor) String() string {
	return fmt.Sprintf("Cursor(%d)", c.pos)
}

// FromClick returns the cursor for a raw (column, row) candidate reported by
// the layout engine. The column is clamped to the target line's char length
// so the cursor never lands past end-of-line.
func FromClick(b *buffer.Buffer, row, col int) Cursor {
	return Cursor{pos: b.PointToChar(Point{Line: row, Column: col})}
}
