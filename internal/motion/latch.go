package motion

import "sync/atomic"

// Entrance thresholds, as a fraction of the element inside the viewport.
const (
	SectionThreshold = 0.2
	ItemThreshold    = 0.3
)

// Latch is a one-way visibility flag. It flips to visible on the first
// observation at or above its threshold and never flips back.
type Latch struct {
	threshold float64
	visible   atomic.Bool
}

// NewLatch creates a latch. A threshold of 0 triggers on any intersection.
func NewLatch(threshold float64) *Latch {
	return &Latch{threshold: threshold}
}

// Observe records an intersection ratio and returns true only for the
// observation that made the latch visible.
func (l *Latch) Observe(ratio float64) bool {
	if ratio <= 0 || ratio < l.threshold {
		return false
	}
	return l.visible.CompareAndSwap(false, true)
}

func (l *Latch) Visible() bool {
	return l.visible.Load()
}
