package motion

import (
	"math"
	"sync"
)

// NavScrollOffset is the scroll distance after which the navigation bar
// switches to its blurred style.
const NavScrollOffset = 100

// Rect is the part of an element's bounding rectangle the timeline needs,
// in viewport coordinates.
type Rect struct {
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// Progress returns how far the viewport has travelled through rect, as a
// percentage clamped to [0,100].
func Progress(rect Rect, viewportHeight float64) float64 {
	span := viewportHeight + rect.Height
	if span <= 0 {
		return 0
	}
	return clamp((viewportHeight-rect.Top)/span*100, 0, 100)
}

// Intersects reports whether any part of rect is inside the viewport.
func Intersects(rect Rect, viewportHeight float64) bool {
	return rect.Top < viewportHeight && rect.Top+rect.Height > 0
}

// NavScrolled reports whether the navigation bar should use its scrolled style.
func NavScrolled(scrollY float64) bool {
	return scrollY > NavScrollOffset
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return max(lo, min(hi, v))
}

// Timeline tracks the experience progress line. The value is recomputed
// from scratch while the section is on screen and held otherwise.
type Timeline struct {
	mu       sync.Mutex
	progress float64
}

// Update recomputes the progress when the section intersects the viewport
// and returns the current value.
func (t *Timeline) Update(rect Rect, viewportHeight float64) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	if Intersects(rect, viewportHeight) {
		t.progress = Progress(rect, viewportHeight)
	}
	return t.progress
}

func (t *Timeline) Progress() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.progress
}
