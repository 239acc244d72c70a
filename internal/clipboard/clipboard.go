// Package clipboard abstracts the system clipboard behind a narrow
// interface so the engine can copy and paste without caring whether a
// real clipboard exists.
package clipboard

import "github.com/atotto/clipboard"

// Clipboard reads and writes text.
type Clipboard interface {
	// GetText returns the clipboard content. The second return is false
	// when the clipboard is empty or unavailable.
	GetText() (string, bool)

	// SetText replaces the clipboard content.
	SetText(text string) error
}

// System is the platform clipboard.
type System struct{}

// NewSystem returns the platform clipboard.
func NewSystem() *System {
	return &System{}
}

// GetText reads the system clipboard.
func (s *System) GetText() (string, bool) {
	text, err := clipboard.ReadAll()
	if err != nil || text == "" {
		return "", false
	}
	return text, true
}

// SetText writes the system clipboard.
func (s *System) SetText(text string) error {
	return clipboard.WriteAll(text)
}

// Memory is an in-process clipboard, used in tests and as a fallback when
// no system clipboard is reachable.
type Memory struct {
	text string
	set  bool
}

// NewMemory returns an empty in-process clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// GetText returns the stored text.
func (m *Memory) GetText() (string, bool) {
	return m.text, m.set
}

// SetText stores text.
func (m *Memory) SetText(text string) error {
	m.text = text
	m.set = true
	return nil
}
