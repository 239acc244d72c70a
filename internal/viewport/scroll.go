package viewport

// wheelBaseFactor converts raw wheel deltas into offset units.
const wheelBaseFactor = 2.0

// DefaultSpeedFactor is the extra multiplier applied while the speed
// modifier is held.
const DefaultSpeedFactor = 4.0

// WheelModifiers carries the modifier keys that alter wheel handling.
type WheelModifiers struct {
	// Speed multiplies the delta by the scroller's speed factor.
	Speed bool

	// SwapAxis routes vertical deltas to the horizontal axis and back,
	// so a plain wheel can scroll sideways.
	SwapAxis bool
}

// Scroller routes wheel input to a pair of axis windows.
type Scroller struct {
	X *Window
	Y *Window

	// SpeedFactor is the multiplier applied while the speed modifier is
	// held.
	SpeedFactor float64
}

// NewScroller creates a scroller over a horizontal and vertical window.
func NewScroller(x, y *Window) *Scroller {
	return &Scroller{X: x, Y: y, SpeedFactor: DefaultSpeedFactor}
}

// Wheel applies a raw wheel delta pair. Each axis clamps independently;
// an axis whose content fits its viewport ignores the input.
func (s *Scroller) Wheel(deltaX, deltaY float64, mods WheelModifiers) {
	factor := wheelBaseFactor
	if mods.Speed {
		factor *= s.SpeedFactor
	}
	dx := deltaX * factor
	dy := deltaY * factor
	if mods.SwapAxis {
		dx, dy = dy, dx
	}
	s.X.ScrollBy(dx)
	s.Y.ScrollBy(dy)
}

// ThumbDrag tracks an in-progress scrollbar drag on one axis. The drag
// converts pointer displacement from its start point back into an offset
// through the inverse thumb formula, so the thumb follows the pointer.
type ThumbDrag struct {
	win         *Window
	startCursor float64
	startThumb  float64
}

// StartThumbDrag begins a drag with the pointer at cursor.
func StartThumbDrag(w *Window, cursor float64) *ThumbDrag {
	return &ThumbDrag{
		win:         w,
		startCursor: cursor,
		startThumb:  w.ThumbOffset(),
	}
}

// Move updates the window for the pointer now being at cursor. Moves are
// idempotent: each computes the offset purely from the drag start and the
// current pointer, so repeated or re-ordered events cannot drift.
func (d *ThumbDrag) Move(cursor float64) {
	d.win.DragThumb(d.startThumb + (cursor - d.startCursor))
}
