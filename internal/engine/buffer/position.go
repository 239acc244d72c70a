package buffer

import "fmt"

// CharOffset represents a position counted in Unicode scalar values.
// This is the fundamental position type for cursors, selections and edits.
type CharOffset = int

// Point represents a line and column position.
// Both Line and Column are 0-indexed; Column is counted in chars from the
// start of the line.
type Point struct {
	Line   int
	Column int
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Column)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Point) Compare(other Point) int {
	if p.Line != other.Line {
		if p.Line < other.Line {
			return -1
		}
		return 1
	}
	if p.Column != other.Column {
		if p.Column < other.Column {
			return -1
		}
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Point) Before(other Point) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Point) After(other Point) bool {
	return p.Compare(other) > 0
}

// utf16Len returns the number of UTF-16 code units needed to encode r.
func utf16Len(r rune) int {
	if r >= 0x10000 {
		// Surrogate pair (characters outside the BMP).
		return 2
	}
	return 1
}
