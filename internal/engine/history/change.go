package history

import (
	"fmt"

	"github.com/verso-editor/verso/internal/engine/buffer"
)

// CharOffset is an alias for buffer.CharOffset for convenience.
type CharOffset = buffer.CharOffset

// Change is a single reversible edit record.
// A record is pushed after its edit has been applied to the buffer; apply
// re-runs the edit (redo) and revert undoes it. Both return the char index
// the cursor should move to afterwards.
type Change interface {
	apply(b *buffer.Buffer) CharOffset
	revert(b *buffer.Buffer) CharOffset

	// String describes the record for debugging.
	String() string
}

// InsertChar records the insertion of a single char.
type InsertChar struct {
	Idx CharOffset
	Ch  rune
}

func (c InsertChar) apply(b *buffer.Buffer) CharOffset {
	return c.Idx + b.InsertChar(c.Ch, c.Idx)
}

func (c InsertChar) revert(b *buffer.Buffer) CharOffset {
	b.Remove(c.Idx, c.Idx+1)
	return c.Idx
}

func (c InsertChar) String() string {
	return fmt.Sprintf("InsertChar(%q at %d)", c.Ch, c.Idx)
}

// InsertText records the insertion of a text run.
type InsertText struct {
	Idx  CharOffset
	Text string
}

func (c InsertText) apply(b *buffer.Buffer) CharOffset {
	return c.Idx + b.Insert(c.Text, c.Idx)
}

func (c InsertText) revert(b *buffer.Buffer) CharOffset {
	b.Remove(c.Idx, c.Idx+len([]rune(c.Text)))
	return c.Idx
}

func (c InsertText) String() string {
	return fmt.Sprintf("InsertText(%q at %d)", c.Text, c.Idx)
}

// Remove records the removal of a text run.
// Text carries the removed content so the record can be reverted.
type Remove struct {
	Idx  CharOffset
	Text string
}

func (c Remove) apply(b *buffer.Buffer) CharOffset {
	b.Remove(c.Idx, c.Idx+len([]rune(c.Text)))
	return c.Idx
}

func (c Remove) revert(b *buffer.Buffer) CharOffset {
	return c.Idx + b.Insert(c.Text, c.Idx)
}

func (c Remove) String() string {
	return fmt.Sprintf("Remove(%q at %d)", c.Text, c.Idx)
}
