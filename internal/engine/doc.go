// Package engine orchestrates a document's buffer, cursor, selection,
// history, syntax blocks and viewport into one editing surface driven by
// discrete input events.
//
// Everything in this package runs on the goroutine that owns the
// document. Background work (saving, language tooling) must operate on a
// buffer snapshot taken synchronously, never on the live buffer.
package engine
