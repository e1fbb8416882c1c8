package kinetic

import "math"

// ============================================================================
// Scroll Bounds
// ============================================================================

// Bounds defines the valid content-offset range for a scroller. Offsets are
// signed 1-D positions of content relative to its frame: 0 is top-aligned,
// negative is scrolled down. The in-range interval is [Lowest, 0].
type Bounds struct {
	Lowest float64
}

// NewBounds computes the range for the given frame and content sizes.
// Content smaller than the frame cannot scroll, so Lowest floors at 0.
func NewBounds(frameSize, contentSize float64) Bounds {
	low := frameSize - contentSize
	if low > 0 {
		low = 0
	}
	return Bounds{Lowest: low}
}

// OutOfBounds reports whether offset lies outside [Lowest, 0].
func (b Bounds) OutOfBounds(offset float64) bool {
	return offset > 0 || offset < b.Lowest
}

// Clamp returns offset restricted to [Lowest, 0].
func (b Bounds) Clamp(offset float64) float64 {
	if offset > 0 {
		return 0
	}
	if offset < b.Lowest {
		return b.Lowest
	}
	return offset
}

// Nearest returns the bound an out-of-range offset should return to.
func (b Bounds) Nearest(offset float64) float64 {
	if offset > 0 {
		return 0
	}
	return b.Lowest
}

// DampDelta applies rubber-band resistance to a drag delta measured from the
// drag start: delta / exp(|delta|/factor). Resistance grows with overshoot
// distance and vanishes as the delta approaches zero. Damping the start
// delta rather than the running offset resets the resistance each drag.
func DampDelta(delta, factor float64) float64 {
	if delta == 0 || factor == 0 {
		return delta
	}
	return delta / math.Exp(math.Abs(delta)/factor)
}
