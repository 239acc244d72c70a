// Package buffer provides the mutable text storage backing a document.
//
// A Buffer is a sequence of Unicode scalar values addressable through three
// index spaces that are kept mutually consistent:
//
//   - Char index: position counted in runes. This is the primary space; the
//     cursor, selections and edit history all speak char indices.
//   - Line index: 0-based line number. A buffer always has one more line than
//     it has line breaks, so a buffer ending in "\n" has a trailing empty line.
//   - UTF-16 code-unit index: needed by text-layout collaborators that
//     measure and hit-test in UTF-16.
//
// Conversions between the spaces are total functions over their valid ranges
// ([0, LenChars] for char indices, [0, LineCount) for lines). Indices are
// validated by the caller; passing an out-of-range index is a programmer
// error and panics rather than returning a recoverable error.
//
// The buffer is owned by a single document on a single goroutine and performs
// no internal locking. Background readers (for example a save serializing the
// content) must take a Snapshot before leaving the owning goroutine.
package buffer
