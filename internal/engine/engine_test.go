package engine

import (
	"testing"

	"github.com/verso-editor/verso/internal/clipboard"
	"github.com/verso-editor/verso/internal/input"
)

func newTestEngine(text string) *Engine {
	return New(NewDocument(text, ""))
}

func text(e *Engine) string {
	return e.Document().Buffer().Text()
}

func press(e *Engine, key input.Key, mods input.Modifiers) {
	e.ProcessEvent(input.KeyDown{Key: key, Mods: mods})
}

func typeRune(e *Engine, ch rune) {
	e.ProcessEvent(input.KeyDown{Key: input.KeyRune, Rune: ch})
}

func TestMouseSelectionStateMachine(t *testing.T) {
	e := newTestEngine("hello\nworld")

	e.ProcessEvent(input.MouseDown{Pos: input.Point{X: 0}, Line: 0})
	if e.State() != StateMouseSelecting {
		t.Fatalf("expected mouse-selecting, got %v", e.State())
	}
	if e.Cursor().Pos() != 0 {
		t.Errorf("expected cursor at 0, got %d", e.Cursor().Pos())
	}

	e.ProcessEvent(input.MouseMove{Pos: input.Point{X: 0}, Line: 1})
	sel, ok := e.Selection()
	if !ok {
		t.Fatal("expected an active selection")
	}
	if sel.Anchor != 0 || sel.Head != 6 {
		t.Errorf("expected selection (0, 6), got (%d, %d)", sel.Anchor, sel.Head)
	}
	if e.Cursor().Pos() != 6 {
		t.Errorf("expected cursor at 6, got %d", e.Cursor().Pos())
	}

	e.ProcessEvent(input.Click{})
	if e.State() != StateIdle {
		t.Errorf("expected idle after click, got %v", e.State())
	}
	if _, ok := e.Selection(); !ok {
		t.Error("selection should survive the click")
	}
}

func TestMouseDownClearsPreviousSelection(t *testing.T) {
	e := newTestEngine("hello")
	e.ProcessEvent(input.MouseDown{Pos: input.Point{X: 0}, Line: 0})
	e.ProcessEvent(input.MouseMove{Pos: input.Point{X: 1000}, Line: 0})
	e.ProcessEvent(input.Click{})

	e.ProcessEvent(input.MouseDown{Pos: input.Point{X: 0}, Line: 0})
	sel, ok := e.Selection()
	if !ok || !sel.IsEmpty() {
		t.Errorf("expected fresh empty selection, got %+v (ok=%v)", sel, ok)
	}
}

func TestMouseDownMapsPointerToColumn(t *testing.T) {
	e := newTestEngine("hello")
	// Default metrics: cell width 17 * 0.6 = 10.2, glyph 2 spans [20.4, 30.6).
	e.ProcessEvent(input.MouseDown{Pos: input.Point{X: 25}, Line: 0})
	if e.Cursor().Pos() != 2 {
		t.Errorf("expected cursor at 2, got %d", e.Cursor().Pos())
	}
}

func TestMouseEventsClampLine(t *testing.T) {
	e := newTestEngine("ab\ncd")
	e.ProcessEvent(input.MouseDown{Pos: input.Point{X: 0}, Line: 99})
	if e.Cursor().Pos() != 3 {
		t.Errorf("expected cursor clamped to last line start, got %d", e.Cursor().Pos())
	}
}

func TestMouseMoveIgnoredWhenIdle(t *testing.T) {
	e := newTestEngine("hello")
	e.ProcessEvent(input.MouseMove{Pos: input.Point{X: 1000}, Line: 0})
	if _, ok := e.Selection(); ok {
		t.Error("expected no selection from a stray move")
	}
}

func TestTypingInsertsAtCursor(t *testing.T) {
	e := newTestEngine("abc")
	press(e, input.KeyArrowRight, 0)
	typeRune(e, 'X')

	if text(e) != "aXbc" {
		t.Errorf("expected 'aXbc', got %q", text(e))
	}
	if e.Cursor().Pos() != 2 {
		t.Errorf("expected cursor at 2, got %d", e.Cursor().Pos())
	}
	if e.State() != StateKeyEditing {
		t.Errorf("expected key-editing, got %v", e.State())
	}

	e.ProcessEvent(input.KeyUp{Key: input.KeyRune, Rune: 'X'})
	if e.State() != StateIdle {
		t.Errorf("expected idle after key release, got %v", e.State())
	}
}

func TestTypingReplacesSelection(t *testing.T) {
	e := newTestEngine("hello world")
	e.ProcessEvent(input.MouseDown{Pos: input.Point{X: 0}, Line: 0})
	e.ProcessEvent(input.MouseMove{Pos: input.Point{X: 52}, Line: 0}) // through "hello"
	typeRune(e, 'X')

	if text(e) != "X world" {
		t.Errorf("expected 'X world', got %q", text(e))
	}
	if _, ok := e.Selection(); ok {
		t.Error("expected selection cleared by the edit")
	}
}

func TestEnterAndTab(t *testing.T) {
	e := newTestEngine("ab")
	press(e, input.KeyArrowRight, 0)
	press(e, input.KeyEnter, 0)
	press(e, input.KeyTab, 0)

	if text(e) != "a\n\tb" {
		t.Errorf("expected 'a\\n\\tb', got %q", text(e))
	}
}

func TestBackspace(t *testing.T) {
	e := newTestEngine("abc")
	press(e, input.KeyArrowRight, 0)
	press(e, input.KeyBackspace, 0)

	if text(e) != "bc" {
		t.Errorf("expected 'bc', got %q", text(e))
	}
	if e.Cursor().Pos() != 0 {
		t.Errorf("expected cursor at 0, got %d", e.Cursor().Pos())
	}

	// At the start of the buffer backspace is a no-op.
	press(e, input.KeyBackspace, 0)
	if text(e) != "bc" {
		t.Errorf("expected 'bc' unchanged, got %q", text(e))
	}
}

func TestDeleteForward(t *testing.T) {
	e := newTestEngine("abc")
	press(e, input.KeyDelete, 0)
	if text(e) != "bc" {
		t.Errorf("expected 'bc', got %q", text(e))
	}

	press(e, input.KeyEnd, 0)
	press(e, input.KeyDelete, 0)
	if text(e) != "bc" {
		t.Errorf("expected delete at end to be a no-op, got %q", text(e))
	}
}

func TestArrowMovement(t *testing.T) {
	e := newTestEngine("ab\ncd")

	press(e, input.KeyArrowRight, 0)
	if e.Cursor().Pos() != 1 {
		t.Errorf("expected cursor at 1, got %d", e.Cursor().Pos())
	}

	press(e, input.KeyArrowDown, 0)
	if e.Cursor().Pos() != 4 {
		t.Errorf("expected cursor at 4, got %d", e.Cursor().Pos())
	}

	press(e, input.KeyArrowUp, 0)
	if e.Cursor().Pos() != 1 {
		t.Errorf("expected cursor back at 1, got %d", e.Cursor().Pos())
	}

	press(e, input.KeyArrowLeft, 0)
	press(e, input.KeyArrowLeft, 0)
	if e.Cursor().Pos() != 0 {
		t.Errorf("expected cursor clamped at 0, got %d", e.Cursor().Pos())
	}
}

func TestVerticalMovementClampsColumn(t *testing.T) {
	e := newTestEngine("long line\nab")
	press(e, input.KeyEnd, 0) // column 9
	press(e, input.KeyArrowDown, 0)
	if e.Cursor().Pos() != 12 {
		t.Errorf("expected cursor at end of short line, got %d", e.Cursor().Pos())
	}
}

func TestShiftArrowsExtendSelection(t *testing.T) {
	e := newTestEngine("abc")
	press(e, input.KeyArrowRight, input.ModShift)
	press(e, input.KeyArrowRight, input.ModShift)

	sel, ok := e.Selection()
	if !ok || sel.Anchor != 0 || sel.Head != 2 {
		t.Errorf("expected selection (0, 2), got %+v (ok=%v)", sel, ok)
	}

	// A plain arrow collapses it.
	press(e, input.KeyArrowLeft, 0)
	if _, ok := e.Selection(); ok {
		t.Error("expected selection collapsed")
	}
}

func TestHomeEnd(t *testing.T) {
	e := newTestEngine("hello\nworld")
	press(e, input.KeyArrowDown, 0)
	press(e, input.KeyEnd, 0)
	if e.Cursor().Pos() != 11 {
		t.Errorf("expected cursor at 11, got %d", e.Cursor().Pos())
	}
	press(e, input.KeyHome, 0)
	if e.Cursor().Pos() != 6 {
		t.Errorf("expected cursor at 6, got %d", e.Cursor().Pos())
	}
}

func TestEscapeRetainsSelection(t *testing.T) {
	e := newTestEngine("abc")
	press(e, input.KeyArrowRight, input.ModShift)
	press(e, input.KeyEscape, 0)

	if e.State() != StateIdle {
		t.Errorf("expected idle, got %v", e.State())
	}
	if _, ok := e.Selection(); !ok {
		t.Error("expected selection retained after escape")
	}
}

func TestBlurGoesIdle(t *testing.T) {
	e := newTestEngine("abc")
	e.ProcessEvent(input.MouseDown{Pos: input.Point{X: 0}, Line: 0})
	e.ProcessEvent(input.Blur{})
	if e.State() != StateIdle {
		t.Errorf("expected idle after blur, got %v", e.State())
	}
}

func TestPlainRuneDoesNotCopy(t *testing.T) {
	clip := clipboard.NewMemory()
	e := New(NewDocument("hello", ""), WithClipboard(clip))

	press(e, input.KeyArrowRight, input.ModShift)
	typeRune(e, 'c')

	if _, ok := clip.GetText(); ok {
		t.Error("plain 'c' must not reach the clipboard")
	}
	if text(e) != "cello" {
		t.Errorf("expected 'cello', got %q", text(e))
	}
}

func TestCopyCutPaste(t *testing.T) {
	clip := clipboard.NewMemory()
	e := New(NewDocument("hello world", ""), WithClipboard(clip))

	for i := 0; i < 5; i++ {
		press(e, input.KeyArrowRight, input.ModShift)
	}
	e.ProcessEvent(input.KeyDown{Key: input.KeyRune, Rune: 'c', Mods: input.ModCtrl})
	if got, _ := clip.GetText(); got != "hello" {
		t.Errorf("expected clipboard 'hello', got %q", got)
	}

	e.ProcessEvent(input.KeyDown{Key: input.KeyRune, Rune: 'x', Mods: input.ModCtrl})
	if text(e) != " world" {
		t.Errorf("expected ' world' after cut, got %q", text(e))
	}

	press(e, input.KeyEnd, 0)
	e.ProcessEvent(input.KeyDown{Key: input.KeyRune, Rune: 'v', Mods: input.ModCtrl})
	if text(e) != " worldhello" {
		t.Errorf("expected ' worldhello' after paste, got %q", text(e))
	}
}

func TestUndoRedoShortcuts(t *testing.T) {
	e := newTestEngine("abc")
	press(e, input.KeyArrowRight, 0)
	typeRune(e, 'X')

	e.ProcessEvent(input.KeyDown{Key: input.KeyRune, Rune: 'z', Mods: input.ModCtrl})
	if text(e) != "abc" || e.Cursor().Pos() != 1 {
		t.Errorf("expected 'abc' cursor 1, got %q cursor %d", text(e), e.Cursor().Pos())
	}

	e.ProcessEvent(input.KeyDown{Key: input.KeyRune, Rune: 'y', Mods: input.ModCtrl})
	if text(e) != "aXbc" || e.Cursor().Pos() != 2 {
		t.Errorf("expected 'aXbc' cursor 2, got %q cursor %d", text(e), e.Cursor().Pos())
	}
}

func TestEditResizesViewportWindows(t *testing.T) {
	e := newTestEngine("a")
	if e.VerticalWindow().ItemCount() != 1 {
		t.Fatalf("expected 1 line, got %d", e.VerticalWindow().ItemCount())
	}

	press(e, input.KeyEnd, 0)
	press(e, input.KeyEnter, 0)
	if e.VerticalWindow().ItemCount() != 2 {
		t.Errorf("expected 2 lines after enter, got %d", e.VerticalWindow().ItemCount())
	}

	typeRune(e, 'x')
	typeRune(e, 'y')
	if e.HorizontalWindow().ItemCount() != 2 {
		t.Errorf("expected longest line 2, got %d", e.HorizontalWindow().ItemCount())
	}
}

func TestWheelModifiers(t *testing.T) {
	e := newTestEngine("a\nb\nc\nd\ne\nf\ng\nh\ni\nj")
	e.SetViewport(100, 100)

	e.Wheel(0, -30, 0)
	if got := e.VerticalWindow().Offset(); got != -60 {
		t.Errorf("expected offset -60, got %v", got)
	}

	e.Wheel(0, -10, input.ModAlt)
	if got := e.VerticalWindow().Offset(); got != -140 {
		t.Errorf("expected offset -140 with speed modifier, got %v", got)
	}
}

func TestFrame(t *testing.T) {
	e := newTestEngine("line1\nline2\nline3")
	e.SetViewport(200, 200)

	// Select from offset 2 into line 2 so line 1 is fully enclosed.
	e.ProcessEvent(input.MouseDown{Pos: input.Point{X: 25}, Line: 0})
	e.ProcessEvent(input.MouseMove{Pos: input.Point{X: 25}, Line: 2})

	f := e.Frame()
	if f.Start != 0 || f.End != 3 {
		t.Fatalf("expected range [0, 3), got [%d, %d)", f.Start, f.End)
	}
	if len(f.Lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(f.Lines))
	}

	middle := f.Lines[1]
	if middle.Text != "line2" {
		t.Errorf("expected line text 'line2', got %q", middle.Text)
	}
	if !middle.HasHighlight || middle.Highlight.From != 0 || middle.Highlight.To != 5 {
		t.Errorf("expected full-line highlight (0, 5), got %+v", middle.Highlight)
	}
	if len(middle.Spans) == 0 {
		t.Error("expected syntax spans on the middle line")
	}

	last := f.Lines[2]
	if !last.IsCursorLine || last.CursorColumn != 2 {
		t.Errorf("expected cursor on line 2 column 2, got %+v", last)
	}
	if f.Lines[0].IsCursorLine {
		t.Error("line 0 should not be the cursor line")
	}
	if f.Lines[0].CursorColumn != -1 {
		t.Errorf("expected cursor column -1 off the cursor line, got %d", f.Lines[0].CursorColumn)
	}

	if f.Vertical.ThumbSize <= 0 {
		t.Error("expected positive vertical thumb size")
	}
	if f.FontSize != 17 {
		t.Errorf("expected font size 17, got %v", f.FontSize)
	}
}
