// Package cursor provides the cursor and selection model for a document.
//
// A Cursor is a single char-index position; its line and column are derived
// through the buffer's index conversions. A Selection is an (anchor, head)
// pair of char indices. The pair is stored unnormalized, so the anchor may
// sit after the head and a selection can extend in either direction.
// Consumers that need a visible range normalize to (min, max) first.
//
// LineHighlight computes the highlighted column range a single rendered line
// contributes to a multi-line selection.
package cursor
