package engine

import "errors"

// Errors returned by document persistence.
var (
	// ErrNoPath is returned when saving a document that has no file path.
	ErrNoPath = errors.New("engine: document has no path")
)
