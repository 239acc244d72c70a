package engine

import (
	"github.com/verso-editor/verso/internal/engine/cursor"
	"github.com/verso-editor/verso/internal/syntax"
)

// LineRender is one visible line prepared for the host renderer.
type LineRender struct {
	// Index is the document line index.
	Index int

	// Text is the line content without its line break.
	Text string

	// Spans are the ordered syntax spans covering the line.
	Spans syntax.SyntaxLine

	// IsCursorLine reports whether the cursor sits on this line.
	IsCursorLine bool

	// CursorColumn is the cursor's column when IsCursorLine, -1 otherwise.
	CursorColumn int

	// Highlight is the selection range on this line; HasHighlight is
	// false when the selection does not touch it.
	Highlight    cursor.Highlight
	HasHighlight bool
}

// Scrollbar is the thumb geometry for one axis.
type Scrollbar struct {
	ThumbSize   float64
	ThumbOffset float64
}

// Frame is everything the host renderer needs to draw the current
// viewport: the visible line slice plus global scroll metrics.
type Frame struct {
	// Lines are the visible lines, in document order.
	Lines []LineRender

	// Start and End bound the visible line range [Start, End).
	Start int
	End   int

	FontSize   float64
	LineHeight float64

	ScrollX float64
	ScrollY float64

	Horizontal Scrollbar
	Vertical   Scrollbar
}

// Frame assembles the render surface for the current viewport and
// cursor/selection state.
func (e *Engine) Frame() Frame {
	b := e.doc.Buffer()
	blocks := e.doc.Blocks()
	cursorPt := e.cur.Point(b)

	start, end := e.winY.VisibleRange()
	if end > b.LineCount() {
		end = b.LineCount()
	}

	f := Frame{
		Lines:      make([]LineRender, 0, end-start),
		Start:      start,
		End:        end,
		FontSize:   e.cfg.Editor.FontSize,
		LineHeight: e.lineHeight(),
		ScrollX:    e.winX.Offset(),
		ScrollY:    e.winY.Offset(),
		Horizontal: Scrollbar{ThumbSize: e.winX.ThumbSize(), ThumbOffset: e.winX.ThumbOffset()},
		Vertical:   Scrollbar{ThumbSize: e.winY.ThumbSize(), ThumbOffset: e.winY.ThumbOffset()},
	}

	for i := start; i < end; i++ {
		lr := LineRender{
			Index:        i,
			Text:         b.Line(i),
			CursorColumn: -1,
		}
		if i < len(blocks) {
			lr.Spans = blocks[i]
		}
		if i == cursorPt.Line {
			lr.IsCursorLine = true
			lr.CursorColumn = cursorPt.Column
		}
		if e.hasSel {
			if hl, ok := cursor.LineHighlight(b, e.sel, i); ok {
				lr.Highlight = hl
				lr.HasHighlight = true
			}
		}
		f.Lines = append(f.Lines, lr)
	}
	return f
}
