// Package viewport implements virtualized windowing over a list of
// uniformly sized items. Only the visible slice of the list is rendered;
// scrollbar geometry is derived from the same state so thumb and content
// never disagree. One Window handles one axis.
package viewport

import "math"

// Window tracks the scroll state of a single axis.
// The scroll offset is zero or negative: 0 means scrolled to the start,
// and it grows negative as content moves off the leading edge.
type Window struct {
	itemCount    int
	itemSize     float64
	viewportSize float64
	offset       float64
}

// NewWindow creates a window over itemCount items of itemSize each,
// viewed through viewportSize.
func NewWindow(itemCount int, itemSize, viewportSize float64) *Window {
	return &Window{
		itemCount:    itemCount,
		itemSize:     itemSize,
		viewportSize: viewportSize,
	}
}

// ItemCount returns the number of items.
func (w *Window) ItemCount() int {
	return w.itemCount
}

// ItemSize returns the size of one item.
func (w *Window) ItemSize() float64 {
	return w.itemSize
}

// ViewportSize returns the size of the visible area.
func (w *Window) ViewportSize() float64 {
	return w.viewportSize
}

// Offset returns the current scroll offset (always <= 0).
func (w *Window) Offset() float64 {
	return w.offset
}

// ContentSize returns the total scrollable size. One extra leading item
// unit is reserved so the first item never sits flush with the edge.
func (w *Window) ContentSize() float64 {
	return w.itemSize + w.itemSize*float64(w.itemCount)
}

// SetItemCount updates the item count and re-clamps the offset.
func (w *Window) SetItemCount(n int) {
	w.itemCount = n
	w.offset = w.clamp(w.offset)
}

// SetItemSize updates the item size and re-clamps the offset.
func (w *Window) SetItemSize(size float64) {
	w.itemSize = size
	w.offset = w.clamp(w.offset)
}

// SetViewportSize updates the visible area size and re-clamps the offset.
func (w *Window) SetViewportSize(size float64) {
	w.viewportSize = size
	w.offset = w.clamp(w.offset)
}

// SetOffset sets the scroll offset, clamped into valid bounds.
func (w *Window) SetOffset(offset float64) {
	w.offset = w.clamp(offset)
}

// ScrollBy shifts the offset by delta and clamps. When the whole content
// fits in the viewport this is a no-op and the offset stays pinned to 0.
func (w *Window) ScrollBy(delta float64) {
	if w.viewportSize >= w.ContentSize() {
		w.offset = 0
		return
	}
	w.offset = w.clamp(w.offset + delta)
}

// clamp bounds a candidate offset to [-(contentSize - viewportSize), 0],
// or forces 0 when everything fits.
func (w *Window) clamp(offset float64) float64 {
	content := w.ContentSize()
	if content <= w.viewportSize {
		return 0
	}
	if min := -(content - w.viewportSize); offset < min {
		return min
	}
	if offset > 0 {
		return 0
	}
	return offset
}

// VisibleRange returns the half-open item range [start, end) that must be
// rendered for the current offset. One extra item is included beyond what
// strictly fits so partial-item overscroll never shows a blank row.
// A degenerate window (no items, or non-positive item size) yields [0, 0).
func (w *Window) VisibleRange() (start, end int) {
	if w.itemSize <= 0 || w.itemCount == 0 {
		return 0, 0
	}
	start = int(math.Floor(-w.offset / w.itemSize))
	count := int(math.Ceil(w.viewportSize/w.itemSize)) + 1
	end = start + count
	if end > w.itemCount {
		end = w.itemCount
	}
	if start > end {
		start = end
	}
	return start, end
}

// ThumbSize returns the scrollbar thumb length for this axis.
func (w *Window) ThumbSize() float64 {
	content := w.ContentSize()
	if content <= 0 {
		return w.viewportSize
	}
	ratio := w.viewportSize / content
	if ratio > 1 {
		ratio = 1
	}
	return w.viewportSize * ratio
}

// ThumbOffset returns the scrollbar thumb position for this axis.
func (w *Window) ThumbOffset() float64 {
	content := w.ContentSize()
	if content <= 0 {
		return 0
	}
	return (-w.offset / content) * w.viewportSize
}

// DragThumb scrolls so the thumb's leading edge sits at thumbPos within
// the viewport, the inverse of ThumbOffset. The result is clamped like
// any other offset.
func (w *Window) DragThumb(thumbPos float64) {
	if w.viewportSize <= 0 {
		return
	}
	w.SetOffset(-(thumbPos / w.viewportSize) * w.ContentSize())
}
