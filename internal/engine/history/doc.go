// Package history provides the reversible edit log for a document.
//
// Edits are appended to an ordered log of change records; an integer pointer
// tracks how many of them are currently applied to the buffer. Undo moves
// the pointer back and reverts the record it steps over, redo reapplies the
// record at the pointer and advances. Pushing a new change while the pointer
// sits behind the log end discards the forward (redo) tail before appending.
//
// Dirty state is derived rather than stored: a document is edited exactly
// when the pointer differs from the value it had at the last save.
package history
