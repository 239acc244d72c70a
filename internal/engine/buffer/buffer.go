package buffer

import (
	"fmt"
	"sort"
	"strings"
)

// Buffer is the mutable text storage backing a document.
// It maintains a line-start index and UTF-16 prefix counts so conversions
// between the three index spaces stay cheap between edits.
//
// The buffer performs no locking; it belongs to the goroutine that owns the
// document. See the package documentation for the concurrency contract.
type Buffer struct {
	runes []rune

	// lineStarts[i] is the char offset of the first char of line i.
	// lineStarts[0] is always 0; a line break at char c starts a new line
	// at c+1, so a buffer ending in "\n" has a trailing empty line.
	lineStarts []CharOffset

	// utf16Starts[i] is the number of UTF-16 code units preceding line i.
	utf16Starts []int

	// lenUTF16 is the total UTF-16 code-unit length.
	lenUTF16 int
}

// New creates an empty buffer.
func New() *Buffer {
	b := &Buffer{}
	b.reindex()
	return b
}

// FromString creates a buffer with initial content.
// Line endings are normalized to LF.
func FromString(s string) *Buffer {
	b := &Buffer{runes: []rune(normalizeLineEndings(s))}
	b.reindex()
	return b
}

// normalizeLineEndings converts CRLF and bare CR to LF so that line math
// only ever deals with a single line-break rune.
func normalizeLineEndings(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// reindex rebuilds the line-start and UTF-16 prefix indexes.
// It runs after every edit; like the full re-tokenization pass, its cost is
// linear in the document size.
func (b *Buffer) reindex() {
	b.lineStarts = b.lineStarts[:0]
	b.utf16Starts = b.utf16Starts[:0]
	b.lineStarts = append(b.lineStarts, 0)
	b.utf16Starts = append(b.utf16Starts, 0)

	u16 := 0
	for i, r := range b.runes {
		u16 += utf16Len(r)
		if r == '\n' {
			b.lineStarts = append(b.lineStarts, i+1)
			b.utf16Starts = append(b.utf16Starts, u16)
		}
	}
	b.lenUTF16 = u16
}

// Read Operations

// Text returns the full buffer content.
func (b *Buffer) Text() string {
	return string(b.runes)
}

// Slice returns the text in the char range [start, end).
func (b *Buffer) Slice(start, end CharOffset) string {
	b.checkRange(start, end)
	return string(b.runes[start:end])
}

// LenChars returns the total length in chars.
func (b *Buffer) LenChars() int {
	return len(b.runes)
}

// LenUTF16 returns the total length in UTF-16 code units.
func (b *Buffer) LenUTF16() int {
	return b.lenUTF16
}

// LineCount returns the number of lines.
// A buffer always has one more line than it has line breaks; the empty
// buffer has exactly one (empty) line.
func (b *Buffer) LineCount() int {
	return len(b.lineStarts)
}

// IsEmpty returns true if the buffer holds no text.
func (b *Buffer) IsEmpty() bool {
	return len(b.runes) == 0
}

// Line returns the text of a line without its trailing line break.
func (b *Buffer) Line(line int) string {
	start, end := b.lineBounds(line)
	return string(b.runes[start:end])
}

// LineLenChars returns the char length of a line, excluding the line break.
func (b *Buffer) LineLenChars(line int) int {
	start, end := b.lineBounds(line)
	return end - start
}

// LineLenUTF16 returns the UTF-16 length of a line, excluding the line break.
func (b *Buffer) LineLenUTF16(line int) int {
	start, end := b.lineBounds(line)
	n := 0
	for _, r := range b.runes[start:end] {
		n += utf16Len(r)
	}
	return n
}

// lineBounds returns the char range of a line's content (line break excluded).
func (b *Buffer) lineBounds(line int) (start, end CharOffset) {
	b.checkLine(line)
	start = b.lineStarts[line]
	if line+1 < len(b.lineStarts) {
		end = b.lineStarts[line+1] - 1 // drop the '\n'
	} else {
		end = len(b.runes)
	}
	return start, end
}

// Coordinate Conversion

// CharToLine returns the line containing the given char index.
// The end-of-buffer index maps to the last line.
func (b *Buffer) CharToLine(idx CharOffset) int {
	b.checkOffset(idx)
	// Greatest line whose start is <= idx.
	return sort.Search(len(b.lineStarts), func(i int) bool {
		return b.lineStarts[i] > idx
	}) - 1
}

// LineToChar returns the char index of the first char of a line.
func (b *Buffer) LineToChar(line int) CharOffset {
	b.checkLine(line)
	return b.lineStarts[line]
}

// CharToPoint converts a char index to a line/column position.
func (b *Buffer) CharToPoint(idx CharOffset) Point {
	line := b.CharToLine(idx)
	return Point{Line: line, Column: idx - b.lineStarts[line]}
}

// PointToChar converts a line/column position to a char index.
// The column is clamped to the line's char length, so a column reported
// past end-of-line by a layout engine lands on the line's last position.
func (b *Buffer) PointToChar(p Point) CharOffset {
	start, end := b.lineBounds(p.Line)
	col := p.Column
	if col < 0 {
		col = 0
	}
	if col > end-start {
		col = end - start
	}
	return start + col
}

// CharToUTF16 converts a char index to a UTF-16 code-unit index.
func (b *Buffer) CharToUTF16(idx CharOffset) int {
	line := b.CharToLine(idx)
	u16 := b.utf16Starts[line]
	for _, r := range b.runes[b.lineStarts[line]:idx] {
		u16 += utf16Len(r)
	}
	return u16
}

// UTF16ToChar converts a UTF-16 code-unit index to a char index.
func (b *Buffer) UTF16ToChar(idx int) CharOffset {
	if idx < 0 || idx > b.lenUTF16 {
		panic(fmt.Sprintf("buffer: utf16 index %d out of range [0, %d]", idx, b.lenUTF16))
	}
	line := sort.Search(len(b.utf16Starts), func(i int) bool {
		return b.utf16Starts[i] > idx
	}) - 1

	u16 := b.utf16Starts[line]
	char := b.lineStarts[line]
	for _, r := range b.runes[char:] {
		if u16 >= idx {
			break
		}
		u16 += utf16Len(r)
		char++
	}
	return char
}

// Write Operations

// InsertChar inserts a single char at the given index.
// Returns the inserted length in chars (always 1).
func (b *Buffer) InsertChar(ch rune, idx CharOffset) int {
	b.checkOffset(idx)
	b.runes = append(b.runes, 0)
	copy(b.runes[idx+1:], b.runes[idx:])
	b.runes[idx] = ch
	b.reindex()
	return 1
}

// Insert inserts text at the given index.
// Line endings in the text are normalized to LF.
// Returns the inserted length in chars.
func (b *Buffer) Insert(text string, idx CharOffset) int {
	b.checkOffset(idx)
	ins := []rune(normalizeLineEndings(text))
	if len(ins) == 0 {
		return 0
	}
	b.runes = append(b.runes, ins...) // grow
	copy(b.runes[idx+len(ins):], b.runes[idx:len(b.runes)-len(ins)])
	copy(b.runes[idx:], ins)
	b.reindex()
	return len(ins)
}

// Remove deletes the char range [start, end).
// Returns the removed length in chars.
func (b *Buffer) Remove(start, end CharOffset) int {
	b.checkRange(start, end)
	n := end - start
	if n == 0 {
		return 0
	}
	b.runes = append(b.runes[:start], b.runes[end:]...)
	b.reindex()
	return n
}

// SetText replaces the entire content.
func (b *Buffer) SetText(text string) {
	b.runes = []rune(normalizeLineEndings(text))
	b.reindex()
}

// Validation

// checkOffset panics if idx is outside [0, LenChars].
func (b *Buffer) checkOffset(idx CharOffset) {
	if idx < 0 || idx > len(b.runes) {
		panic(fmt.Sprintf("buffer: char index %d out of range [0, %d]", idx, len(b.runes)))
	}
}

// checkRange panics if [start, end) is not a valid char range.
func (b *Buffer) checkRange(start, end CharOffset) {
	if start < 0 || start > end || end > len(b.runes) {
		panic(fmt.Sprintf("buffer: char range [%d, %d) invalid for length %d", start, end, len(b.runes)))
	}
}

// checkLine panics if line is outside [0, LineCount).
func (b *Buffer) checkLine(line int) {
	if line < 0 || line >= len(b.lineStarts) {
		panic(fmt.Sprintf("buffer: line index %d out of range [0, %d)", line, len(b.lineStarts)))
	}
}
