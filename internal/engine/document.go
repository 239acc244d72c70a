package engine

import (
	"github.com/google/uuid"

	"github.com/verso-editor/verso/internal/engine/buffer"
	"github.com/verso-editor/verso/internal/engine/history"
	"github.com/verso-editor/verso/internal/storage"
	"github.com/verso-editor/verso/internal/syntax"
)

// Document bundles the mutable state of one open file: text buffer, edit
// history and the syntax blocks derived from the text. Buffer, history
// and document are created together and live until the document closes.
type Document struct {
	id   uuid.UUID
	path string

	buf    *buffer.Buffer
	hist   *history.History
	blocks syntax.SyntaxBlocks

	// longestLine is the char length of the widest line, maintained for
	// horizontal scroll sizing.
	longestLine int

	onChange []func()
}

// NewDocument creates a document holding text. Path may be empty for a
// scratch document.
func NewDocument(text, path string) *Document {
	d := &Document{
		id:   uuid.New(),
		path: path,
		buf:  buffer.FromString(text),
		hist: history.New(),
	}
	d.refresh()
	return d
}

// Open loads the file at path into a new document.
func Open(path string) (*Document, error) {
	text, err := storage.ReadAll(path)
	if err != nil {
		return nil, err
	}
	return NewDocument(text, path), nil
}

// ID returns the document's unique identity.
func (d *Document) ID() uuid.UUID {
	return d.id
}

// Path returns the file path, empty for scratch documents.
func (d *Document) Path() string {
	return d.path
}

// SetPath sets the file path for subsequent saves.
func (d *Document) SetPath(path string) {
	d.path = path
}

// Buffer returns the live text buffer.
func (d *Document) Buffer() *buffer.Buffer {
	return d.buf
}

// Blocks returns the syntax blocks for the current text, one line per
// buffer line.
func (d *Document) Blocks() syntax.SyntaxBlocks {
	return d.blocks
}

// LongestLine returns the char length of the widest line.
func (d *Document) LongestLine() int {
	return d.longestLine
}

// Subscribe registers fn to run after every text change, including undo
// and redo.
func (d *Document) Subscribe(fn func()) {
	d.onChange = append(d.onChange, fn)
}

// InsertChar inserts ch at idx, recording the edit.
func (d *Document) InsertChar(ch rune, idx buffer.CharOffset) {
	d.buf.InsertChar(ch, idx)
	d.hist.Push(history.InsertChar{Idx: idx, Ch: ch})
	d.refresh()
	d.notify()
}

// Insert inserts text at idx, recording the edit. It returns the number
// of chars inserted.
func (d *Document) Insert(text string, idx buffer.CharOffset) int {
	n := d.buf.Insert(text, idx)
	// Record what the buffer stored, not the raw input: the buffer may
	// have normalized line endings, and revert counts the stored runes.
	d.hist.Push(history.InsertText{Idx: idx, Text: d.buf.Slice(idx, idx+n)})
	d.refresh()
	d.notify()
	return n
}

// Remove deletes [start, end), recording the edit.
func (d *Document) Remove(start, end buffer.CharOffset) {
	removed := d.buf.Slice(start, end)
	d.buf.Remove(start, end)
	d.hist.Push(history.Remove{Idx: start, Text: removed})
	d.refresh()
	d.notify()
}

// Undo reverts the latest edit. It returns the char offset the cursor
// should move to; false means there was nothing to undo.
func (d *Document) Undo() (buffer.CharOffset, bool) {
	pos, ok := d.hist.Undo(d.buf)
	if ok {
		d.refresh()
		d.notify()
	}
	return pos, ok
}

// Redo re-applies the latest undone edit. It returns the char offset the
// cursor should move to; false means there was nothing to redo.
func (d *Document) Redo() (buffer.CharOffset, bool) {
	pos, ok := d.hist.Redo(d.buf)
	if ok {
		d.refresh()
		d.notify()
	}
	return pos, ok
}

// CanUndo reports whether an edit can be undone.
func (d *Document) CanUndo() bool {
	return d.hist.CanUndo()
}

// CanRedo reports whether an undone edit can be re-applied.
func (d *Document) CanRedo() bool {
	return d.hist.CanRedo()
}

// IsEdited reports whether the text differs from the last saved state.
func (d *Document) IsEdited() bool {
	return d.hist.IsEdited()
}

// Save writes the full text to the document's path and marks the current
// state as saved. The text is snapshotted before the write so the caller
// may keep editing while a save is in flight elsewhere.
func (d *Document) Save() error {
	if d.path == "" {
		return ErrNoPath
	}
	snap := d.buf.Snapshot()
	if err := storage.WriteAll(d.path, snap.Text()); err != nil {
		return err
	}
	d.hist.MarkSaved()
	return nil
}

// refresh recomputes everything derived from the text.
func (d *Document) refresh() {
	d.blocks = syntax.Parse(d.buf)
	longest := 0
	for i := 0; i < d.buf.LineCount(); i++ {
		if n := d.buf.LineLenChars(i); n > longest {
			longest = n
		}
	}
	d.longestLine = longest
}

func (d *Document) notify() {
	for _, fn := range d.onChange {
		fn()
	}
}
