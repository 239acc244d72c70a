// Package measure provides monospace text measurement. The engine uses it
// to size the horizontal scroll area and to map pointer positions back to
// char offsets.
package measure

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Measurer measures rendered text.
type Measurer interface {
	// Measure returns the pixel width of text at the given font size.
	Measure(text string, fontSize float64) float64

	// GlyphAt maps a pointer position within a paragraph's layout box to
	// the char offset of the glyph under it.
	GlyphAt(paragraph string, x, y, fontSize float64) int
}

// Monospace measures text on a fixed-cell grid. Wide characters occupy
// two cells, combining marks none.
type Monospace struct {
	// Aspect is the cell width as a fraction of the font size.
	Aspect float64

	// LineHeight is the line height as a fraction of the font size.
	LineHeight float64
}

// NewMonospace returns a Monospace with typical terminal-font metrics.
func NewMonospace() *Monospace {
	return &Monospace{Aspect: 0.6, LineHeight: 1.3}
}

func (m *Monospace) cellWidth(fontSize float64) float64 {
	return fontSize * m.Aspect
}

// Measure returns the pixel width of text at fontSize.
func (m *Monospace) Measure(text string, fontSize float64) float64 {
	return float64(runewidth.StringWidth(text)) * m.cellWidth(fontSize)
}

// GlyphAt returns the char offset within paragraph of the glyph at (x, y).
// Positions past the end of a line map to the line's last offset; y is
// clamped to the paragraph's line range.
func (m *Monospace) GlyphAt(paragraph string, x, y, fontSize float64) int {
	lines := strings.Split(paragraph, "\n")
	row := int(y / (fontSize * m.LineHeight))
	if row < 0 {
		row = 0
	}
	if row >= len(lines) {
		row = len(lines) - 1
	}

	offset := 0
	for i := 0; i < row; i++ {
		offset += len([]rune(lines[i])) + 1
	}

	cell := m.cellWidth(fontSize)
	pos := 0.0
	g := uniseg.NewGraphemes(lines[row])
	for g.Next() {
		cluster := g.Str()
		w := float64(runewidth.StringWidth(cluster)) * cell
		if x < pos+w/2 {
			return offset
		}
		pos += w
		offset += len(g.Runes())
	}
	return offset
}
