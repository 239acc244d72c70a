package engine

import (
	"github.com/verso-editor/verso/internal/clipboard"
	"github.com/verso-editor/verso/internal/config"
	"github.com/verso-editor/verso/internal/engine/buffer"
	"github.com/verso-editor/verso/internal/engine/cursor"
	"github.com/verso-editor/verso/internal/input"
	"github.com/verso-editor/verso/internal/measure"
	"github.com/verso-editor/verso/internal/viewport"
)

// State is the engine's input-handling state.
type State uint8

const (
	// StateIdle means no interaction is in progress.
	StateIdle State = iota

	// StateMouseSelecting means a mouse drag is extending the selection.
	StateMouseSelecting

	// StateKeyEditing means a key press is mutating the text.
	StateKeyEditing
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateMouseSelecting:
		return "mouse-selecting"
	case StateKeyEditing:
		return "key-editing"
	default:
		return "idle"
	}
}

// Engine drives one document from discrete input events. All methods must
// be called from the goroutine that owns the document.
type Engine struct {
	doc *Document

	cur    cursor.Cursor
	sel    cursor.Selection
	hasSel bool
	state  State

	clip clipboard.Clipboard
	meas measure.Measurer
	cfg  *config.Config

	winX     *viewport.Window
	winY     *viewport.Window
	scroller *viewport.Scroller
}

// New creates an engine over doc.
func New(doc *Document, opts ...Option) *Engine {
	e := &Engine{
		doc:  doc,
		clip: clipboard.NewMemory(),
		meas: measure.NewMonospace(),
		cfg:  config.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.winY = viewport.NewWindow(doc.Buffer().LineCount(), e.lineHeight(), 0)
	e.winX = viewport.NewWindow(doc.LongestLine(), e.cellWidth(), 0)
	e.scroller = viewport.NewScroller(e.winX, e.winY)
	e.scroller.SpeedFactor = e.cfg.Scroll.SpeedFactor

	doc.Subscribe(e.onTextChanged)
	return e
}

// SetConfig applies a new configuration to a running engine, resizing the
// viewport metrics it derives.
func (e *Engine) SetConfig(cfg *config.Config) {
	e.cfg = cfg
	e.scroller.SpeedFactor = cfg.Scroll.SpeedFactor
	e.winY.SetItemSize(e.lineHeight())
	e.winX.SetItemSize(e.cellWidth())
}

// Document returns the engine's document.
func (e *Engine) Document() *Document {
	return e.doc
}

// State returns the current input-handling state.
func (e *Engine) State() State {
	return e.state
}

// Cursor returns the current cursor.
func (e *Engine) Cursor() cursor.Cursor {
	return e.cur
}

// Selection returns the active selection. The second return is false
// when no selection exists.
func (e *Engine) Selection() (cursor.Selection, bool) {
	return e.sel, e.hasSel
}

// VerticalWindow returns the line-axis viewport window.
func (e *Engine) VerticalWindow() *viewport.Window {
	return e.winY
}

// HorizontalWindow returns the column-axis viewport window.
func (e *Engine) HorizontalWindow() *viewport.Window {
	return e.winX
}

// SetViewport sets the visible area size in pixels.
func (e *Engine) SetViewport(width, height float64) {
	e.winX.SetViewportSize(width)
	e.winY.SetViewportSize(height)
}

// Wheel applies a wheel delta. Alt speeds up scrolling, shift swaps the
// axes.
func (e *Engine) Wheel(deltaX, deltaY float64, mods input.Modifiers) {
	e.scroller.Wheel(deltaX, deltaY, viewport.WheelModifiers{
		Speed:    mods.Has(input.ModAlt),
		SwapAxis: mods.Has(input.ModShift),
	})
}

// ProcessEvent handles one input event synchronously.
func (e *Engine) ProcessEvent(ev input.Event) {
	switch ev := ev.(type) {
	case input.MouseDown:
		off := e.offsetAt(ev.Line, ev.Pos.X)
		e.cur = e.cur.MoveTo(off)
		e.sel = cursor.NewSelection(off, off)
		e.hasSel = true
		e.state = StateMouseSelecting

	case input.MouseMove:
		if e.state != StateMouseSelecting {
			return
		}
		off := e.offsetAt(ev.Line, ev.Pos.X)
		e.sel = e.sel.Extend(off)
		e.cur = e.cur.MoveTo(off)

	case input.Click:
		e.state = StateIdle

	case input.KeyDown:
		e.handleKey(ev)

	case input.KeyUp:
		if e.state == StateKeyEditing {
			e.state = StateIdle
		}

	case input.Blur:
		// Selection is retained so focus flips don't lose it.
		e.state = StateIdle
	}
}

func (e *Engine) handleKey(ev input.KeyDown) {
	if ev.Mods.Has(input.ModCtrl) && ev.Key == input.KeyRune {
		switch ev.Rune {
		case 'c':
			e.Copy()
		case 'x':
			e.Cut()
		case 'v':
			e.Paste()
		case 'z':
			e.Undo()
		case 'y':
			e.Redo()
		}
		return
	}

	switch ev.Key {
	case input.KeyRune:
		e.insertRune(ev.Rune)
	case input.KeyEnter:
		e.insertRune('\n')
	case input.KeyTab:
		e.insertRune('\t')
	case input.KeyBackspace:
		e.backspace()
	case input.KeyDelete:
		e.deleteForward()
	case input.KeyArrowLeft:
		e.moveTo(e.clampOffset(e.cur.Pos()-1), ev.Mods.Has(input.ModShift))
	case input.KeyArrowRight:
		e.moveTo(e.clampOffset(e.cur.Pos()+1), ev.Mods.Has(input.ModShift))
	case input.KeyArrowUp:
		e.moveVertical(-1, ev.Mods.Has(input.ModShift))
	case input.KeyArrowDown:
		e.moveVertical(1, ev.Mods.Has(input.ModShift))
	case input.KeyHome:
		b := e.doc.Buffer()
		e.moveTo(b.LineToChar(b.CharToLine(e.cur.Pos())), ev.Mods.Has(input.ModShift))
	case input.KeyEnd:
		b := e.doc.Buffer()
		line := b.CharToLine(e.cur.Pos())
		e.moveTo(b.LineToChar(line)+b.LineLenChars(line), ev.Mods.Has(input.ModShift))
	case input.KeyEscape:
		e.state = StateIdle
	}
}

// Copy puts the selected text on the clipboard.
func (e *Engine) Copy() error {
	if !e.hasSel || e.sel.IsEmpty() {
		return nil
	}
	from, to := e.sel.Range()
	return e.clip.SetText(e.doc.Buffer().Slice(from, to))
}

// Cut copies the selected text and deletes it.
func (e *Engine) Cut() error {
	if !e.hasSel || e.sel.IsEmpty() {
		return nil
	}
	if err := e.Copy(); err != nil {
		return err
	}
	from, to := e.sel.Range()
	e.doc.Remove(from, to)
	e.clearSelection()
	e.cur = cursor.New(from)
	e.state = StateKeyEditing
	return nil
}

// Paste inserts the clipboard text at the cursor, replacing any
// selection. An empty clipboard is a no-op.
func (e *Engine) Paste() {
	text, ok := e.clip.GetText()
	if !ok || text == "" {
		return
	}
	e.insertText(text)
}

// Undo reverts the latest edit and moves the cursor to its anchor.
func (e *Engine) Undo() {
	if pos, ok := e.doc.Undo(); ok {
		e.clearSelection()
		e.cur = cursor.New(pos)
	}
}

// Redo re-applies the latest undone edit.
func (e *Engine) Redo() {
	if pos, ok := e.doc.Redo(); ok {
		e.clearSelection()
		e.cur = cursor.New(pos)
	}
}

func (e *Engine) insertRune(ch rune) {
	pos := e.deleteSelection()
	e.doc.InsertChar(ch, pos)
	e.cur = cursor.New(pos + 1)
	e.state = StateKeyEditing
}

func (e *Engine) insertText(text string) {
	pos := e.deleteSelection()
	n := e.doc.Insert(text, pos)
	e.cur = cursor.New(pos + n)
	e.state = StateKeyEditing
}

// deleteSelection removes the selected text, if any, and returns the
// offset where an insertion should happen.
func (e *Engine) deleteSelection() buffer.CharOffset {
	pos := e.cur.Pos()
	if e.hasSel && !e.sel.IsEmpty() {
		from, to := e.sel.Range()
		e.doc.Remove(from, to)
		pos = from
	}
	e.clearSelection()
	return pos
}

func (e *Engine) backspace() {
	e.state = StateKeyEditing
	if e.hasSel && !e.sel.IsEmpty() {
		from, to := e.sel.Range()
		e.doc.Remove(from, to)
		e.clearSelection()
		e.cur = cursor.New(from)
		return
	}
	pos := e.cur.Pos()
	if pos == 0 {
		return
	}
	e.doc.Remove(pos-1, pos)
	e.cur = cursor.New(pos - 1)
}

func (e *Engine) deleteForward() {
	e.state = StateKeyEditing
	if e.hasSel && !e.sel.IsEmpty() {
		from, to := e.sel.Range()
		e.doc.Remove(from, to)
		e.clearSelection()
		e.cur = cursor.New(from)
		return
	}
	pos := e.cur.Pos()
	if pos >= e.doc.Buffer().LenChars() {
		return
	}
	e.doc.Remove(pos, pos+1)
}

// moveTo moves the cursor to target. With extend a selection grows from
// the previous cursor position; without it any selection collapses.
func (e *Engine) moveTo(target buffer.CharOffset, extend bool) {
	if extend {
		if !e.hasSel {
			e.sel = cursor.NewSelection(e.cur.Pos(), e.cur.Pos())
			e.hasSel = true
		}
		e.sel = e.sel.Extend(target)
	} else {
		e.clearSelection()
	}
	e.cur = e.cur.MoveTo(target)
}

// moveVertical moves the cursor dy lines, keeping its column where the
// target line is long enough.
func (e *Engine) moveVertical(dy int, extend bool) {
	b := e.doc.Buffer()
	pt := e.cur.Point(b)
	line := pt.Line + dy
	if line < 0 {
		line = 0
	}
	if line >= b.LineCount() {
		line = b.LineCount() - 1
	}
	e.moveTo(b.PointToChar(buffer.Point{Line: line, Column: pt.Column}), extend)
}

func (e *Engine) clearSelection() {
	e.sel = cursor.Selection{}
	e.hasSel = false
}

func (e *Engine) clampOffset(off buffer.CharOffset) buffer.CharOffset {
	if off < 0 {
		return 0
	}
	if max := e.doc.Buffer().LenChars(); off > max {
		return max
	}
	return off
}

// offsetAt maps a layout position on a line to a char offset, clamping
// the line index into range and the column to the line's length.
func (e *Engine) offsetAt(line int, x float64) buffer.CharOffset {
	b := e.doc.Buffer()
	if line < 0 {
		line = 0
	}
	if line >= b.LineCount() {
		line = b.LineCount() - 1
	}
	col := e.meas.GlyphAt(b.Line(line), x, 0, e.cfg.Editor.FontSize)
	return b.LineToChar(line) + col
}

// onTextChanged resizes the viewport windows after every text change.
func (e *Engine) onTextChanged() {
	e.winY.SetItemCount(e.doc.Buffer().LineCount())
	e.winX.SetItemCount(e.doc.LongestLine())
	e.cur = e.cur.Clamp(e.doc.Buffer().LenChars())
}

func (e *Engine) lineHeight() float64 {
	return e.cfg.Editor.FontSize * e.cfg.Editor.LineHeight
}

func (e *Engine) cellWidth() float64 {
	return e.meas.Measure("0", e.cfg.Editor.FontSize)
}
