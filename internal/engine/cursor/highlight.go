package cursor

import "github.com/verso-editor/verso/internal/engine/buffer"

// Highlight is the highlighted column range a selection contributes to one
// rendered line. Columns are char offsets within the line; From is
// inclusive, To exclusive.
type Highlight struct {
	From int
	To   int
}

// LineHighlight computes the highlight the selection contributes to the
// given line, or false if the line is outside the selection.
//
// Lines fully enclosed between the selection's end rows are highlighted in
// full. The rows holding the selection ends are highlighted from the end's
// column toward the selection interior, which depends on the selection
// direction. A selection confined to one line highlights its normalized
// column range.
func LineHighlight(b *buffer.Buffer, sel Selection, line int) (Highlight, bool) {
	if sel.IsEmpty() {
		return Highlight{}, false
	}

	fromRow := b.CharToLine(sel.Anchor)
	toRow := b.CharToLine(sel.Head)
	fromCol := sel.Anchor - b.LineToChar(fromRow)
	toCol := sel.Head - b.LineToChar(toRow)

	// Fully enclosed middle line.
	if (fromRow < line && line < toRow) || (toRow < line && line < fromRow) {
		return Highlight{From: 0, To: b.LineLenChars(line)}, true
	}

	switch {
	case fromRow == toRow && line == fromRow:
		if fromCol <= toCol {
			return Highlight{From: fromCol, To: toCol}, true
		}
		return Highlight{From: toCol, To: fromCol}, true

	case line == fromRow:
		if fromRow > toRow {
			// Backward selection: the anchor row is the lower edge.
			return Highlight{From: 0, To: fromCol}, true
		}
		return Highlight{From: fromCol, To: b.LineLenChars(line)}, true

	case line == toRow:
		if fromRow > toRow {
			return Highlight{From: toCol, To: b.LineLenChars(line)}, true
		}
		return Highlight{From: 0, To: toCol}, true
	}

	return Highlight{}, false
}
