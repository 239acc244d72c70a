// Package input defines the event surface delivered synchronously to the
// editing engine by the host UI. The event set is a closed union: the
// engine switches over the concrete types and ignores anything it does
// not recognize.
package input

import "fmt"

// Modifiers is a bit set of modifier keys held during an event.
type Modifiers uint8

const (
	// ModShift is the shift key.
	ModShift Modifiers = 1 << iota
	// ModCtrl is the control key.
	ModCtrl
	// ModAlt is the alt/option key.
	ModAlt
	// ModMeta is the command/windows key.
	ModMeta
)

// Has reports whether all the given modifiers are held.
func (m Modifiers) Has(mod Modifiers) bool {
	return m&mod == mod
}

// Key identifies a non-printable key.
type Key uint8

// Keys the engine reacts to. Printable input arrives as KeyRune with the
// character in the event's Rune field.
const (
	KeyNone Key = iota
	KeyRune
	KeyEscape
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyTab
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyHome
	KeyEnd
)

// String returns the key name.
func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "none"
}

var keyNames = []string{
	KeyNone:       "none",
	KeyRune:       "rune",
	KeyEscape:     "escape",
	KeyEnter:      "enter",
	KeyBackspace:  "backspace",
	KeyDelete:     "delete",
	KeyTab:        "tab",
	KeyArrowLeft:  "left",
	KeyArrowRight: "right",
	KeyArrowUp:    "up",
	KeyArrowDown:  "down",
	KeyHome:       "home",
	KeyEnd:        "end",
}

// Point is a position in layout coordinates.
type Point struct {
	X float64
	Y float64
}

// Event is a discrete input event.
type Event interface {
	event()
}

// MouseDown is a primary-button press over a document line.
type MouseDown struct {
	// Pos is the pointer position within the line's layout box.
	Pos Point

	// Line is the document line index under the pointer.
	Line int
}

// MouseMove is pointer movement over a document line.
type MouseMove struct {
	Pos  Point
	Line int
}

// Click is the release that ends a press, delivered after any MouseMove
// sequence.
type Click struct{}

// KeyDown is a key press, printable or not.
type KeyDown struct {
	// Key is the pressed key; KeyRune for printable input.
	Key Key

	// Rune is the printable character when Key is KeyRune.
	Rune rune

	// Mods are the modifiers held during the press.
	Mods Modifiers
}

// KeyUp is a key release.
type KeyUp struct {
	Key  Key
	Rune rune
	Mods Modifiers
}

// Blur reports that the editor lost focus.
type Blur struct{}

func (MouseDown) event() {}
func (MouseMove) event() {}
func (Click) event()     {}
func (KeyDown) event()   {}
func (KeyUp) event()     {}
func (Blur) event()      {}

// String returns a compact description of the event for logging.
func (e KeyDown) String() string {
	if e.Key == KeyRune {
		return fmt.Sprintf("key-down %q", e.Rune)
	}
	return "key-down " + e.Key.String()
}
