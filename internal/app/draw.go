package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/verso-editor/verso/internal/engine"
	"github.com/verso-editor/verso/internal/syntax"
)

func (a *App) draw() {
	a.screen.Clear()
	a.screen.HideCursor()

	f := a.eng.Frame()
	width, height := a.screen.Size()
	textRows := height - 1

	for _, lr := range f.Lines {
		row := lr.Index + int(f.ScrollY)
		if row < 0 || row >= textRows {
			continue
		}
		a.drawLine(row, width, lr, f)
	}

	a.drawStatus(textRows, width)
	a.screen.Show()
}

func (a *App) drawLine(row, width int, lr engine.LineRender, f engine.Frame) {
	scrollX := int(f.ScrollX)
	col := 0
	for _, r := range lr.Text {
		x := col + scrollX
		if x >= 0 && x < width {
			a.screen.SetContent(x, row, r, nil, a.styleAt(lr, col))
		}
		col++
	}
	// Selection can extend past the last glyph on fully covered lines.
	if lr.HasHighlight && lr.Highlight.To >= col && lr.Highlight.From <= col {
		x := col + scrollX
		if x >= 0 && x < width {
			a.screen.SetContent(x, row, ' ', nil, tcell.StyleDefault.Reverse(true))
		}
	}
	if lr.IsCursorLine {
		a.screen.ShowCursor(lr.CursorColumn+scrollX, row)
	}
}

func (a *App) styleAt(lr engine.LineRender, col int) tcell.Style {
	style := tcell.StyleDefault
	if span, ok := lr.Spans.SpanAt(col); ok {
		style = style.Foreground(themeColor(a.theme, span.Type))
	}
	if lr.HasHighlight && col >= lr.Highlight.From && col < lr.Highlight.To {
		style = style.Reverse(true)
	}
	return style
}

func themeColor(t *syntax.Theme, st syntax.SyntaxType) tcell.Color {
	c := t.ColorFor(st)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (a *App) drawStatus(row, width int) {
	name := a.doc.Path()
	if name == "" {
		name = "[scratch]"
	}
	dirty := ""
	if a.doc.IsEdited() {
		dirty = " *"
	}
	pt := a.eng.Cursor().Point(a.doc.Buffer())
	left := fmt.Sprintf(" %s%s  %d:%d  %s", name, dirty, pt.Line+1, pt.Column+1, a.eng.State())
	if a.status != "" {
		left += "  " + a.status
	}

	style := tcell.StyleDefault.Reverse(true)
	col := 0
	for _, r := range left {
		if col >= width {
			break
		}
		a.screen.SetContent(col, row, r, nil, style)
		col++
	}
	for ; col < width; col++ {
		a.screen.SetContent(col, row, ' ', nil, style)
	}
}
