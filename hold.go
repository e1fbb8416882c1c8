package kinetic

import (
	"math"
	"sync"
	"time"
)

// ============================================================================
// Touch-Hold Watchdog
// ============================================================================

// HoldDetector watches a touch sequence for press-and-hold gestures. It is
// a TouchListener, so it can register on the same TouchSource as a
// Scroller. The detector arms on touch-start, disarms when the finger moves
// beyond the slop radius or lifts, and fires OnHoldStart from Tick once the
// threshold elapses. OnHoldEnd fires on release of an active hold. Both
// callbacks receive the coordinates of the initiating touch.
type HoldDetector struct {
	// Threshold is the press duration before a hold fires. Default 500ms.
	Threshold time.Duration

	// Slop is the movement radius that cancels an armed hold. Default 5px.
	Slop float64

	OnHoldStart func(x, y float64)
	OnHoldEnd   func(x, y float64)

	mu      sync.Mutex
	armed   bool
	holding bool
	origin  TouchPoint
}

// TouchStart arms the watchdog at the touch point.
func (h *HoldDetector) TouchStart(e TouchEvent) {
	pt, ok := e.First()
	if !ok {
		return
	}
	h.mu.Lock()
	h.armed = true
	h.holding = false
	h.origin = pt
	h.mu.Unlock()
}

// TouchMove disarms the watchdog once the finger leaves the slop radius.
func (h *HoldDetector) TouchMove(e TouchEvent) {
	pt, ok := e.First()
	if !ok {
		return
	}
	h.mu.Lock()
	if !h.armed && !h.holding {
		h.mu.Unlock()
		return
	}

	dx := pt.X - h.origin.X
	dy := pt.Y - h.origin.Y
	if math.Hypot(dx, dy) <= h.slop() {
		h.mu.Unlock()
		return
	}

	wasHolding := h.holding
	origin := h.origin
	end := h.OnHoldEnd
	h.armed = false
	h.holding = false
	h.mu.Unlock()

	if wasHolding && end != nil {
		end(origin.X, origin.Y)
	}
}

// TouchEnd disarms the watchdog and finishes an active hold.
func (h *HoldDetector) TouchEnd(e TouchEvent) {
	h.mu.Lock()
	wasHolding := h.holding
	origin := h.origin
	h.armed = false
	h.holding = false
	end := h.OnHoldEnd
	h.mu.Unlock()

	if wasHolding && end != nil {
		end(origin.X, origin.Y)
	}
}

// Tick fires the hold once the threshold has elapsed since touch-start.
// Call it from the host frame loop with the current time.
func (h *HoldDetector) Tick(now time.Time) {
	h.mu.Lock()
	if !h.armed || h.holding {
		h.mu.Unlock()
		return
	}
	if now.Sub(h.origin.Time) < h.threshold() {
		h.mu.Unlock()
		return
	}
	h.holding = true
	h.armed = false
	start := h.OnHoldStart
	origin := h.origin
	h.mu.Unlock()

	if start != nil {
		start(origin.X, origin.Y)
	}
}

func (h *HoldDetector) threshold() time.Duration {
	if h.Threshold == 0 {
		return 500 * time.Millisecond
	}
	return h.Threshold
}

func (h *HoldDetector) slop() float64 {
	if h.Slop == 0 {
		return 5
	}
	return h.Slop
}
