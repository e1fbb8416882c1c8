package kinetic

import (
	"sync"
	"time"
)

// ============================================================================
// Touch Input
// ============================================================================

// TouchPoint is one finger position with its sample time.
type TouchPoint struct {
	X, Y float64
	Time time.Time
}

// TouchEvent carries the touch points of a gesture update and the element
// the gesture started on. Events with no points are malformed and ignored
// by all listeners in this package.
type TouchEvent struct {
	Points []TouchPoint
	Target any
}

// First returns the first touch point, or false for a malformed event.
func (e TouchEvent) First() (TouchPoint, bool) {
	if len(e.Points) == 0 {
		return TouchPoint{}, false
	}
	return e.Points[0], true
}

// TouchListener handles the raw touch sequence of a gesture.
type TouchListener interface {
	TouchStart(e TouchEvent)
	TouchMove(e TouchEvent)
	TouchEnd(e TouchEvent)
}

// TouchSource is implemented by input layers that fan touch events out to
// listeners. Scrollers register on attach and deregister on detach, so a
// listener's lifetime never outlives the attachment that acquired it.
type TouchSource interface {
	AddTouchListener(l TouchListener)
	RemoveTouchListener(l TouchListener)
}

// Focusable is implemented by touch targets that accept input focus. A tap
// on a focusable target moves focus to it as an accessibility affordance.
type Focusable interface {
	Focus()
}

// Tappable is implemented by touch targets that respond to synthesized
// clicks.
type Tappable interface {
	Tap(x, y float64)
}

// ============================================================================
// Touch Dispatcher
// ============================================================================

// TouchDispatcher is a minimal TouchSource for hosts that translate raw
// pointer input themselves. It fans each event out to every registered
// listener in registration order.
type TouchDispatcher struct {
	mu        sync.Mutex
	listeners []TouchListener
}

// AddTouchListener registers a listener.
func (d *TouchDispatcher) AddTouchListener(l TouchListener) {
	d.mu.Lock()
	d.listeners = append(d.listeners, l)
	d.mu.Unlock()
}

// RemoveTouchListener removes a previously registered listener.
func (d *TouchDispatcher) RemoveTouchListener(l TouchListener) {
	d.mu.Lock()
	for i, reg := range d.listeners {
		if reg == l {
			d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
			break
		}
	}
	d.mu.Unlock()
}

func (d *TouchDispatcher) snapshot() []TouchListener {
	d.mu.Lock()
	ls := make([]TouchListener, len(d.listeners))
	copy(ls, d.listeners)
	d.mu.Unlock()
	return ls
}

// TouchStart delivers a touch-start event to all listeners.
func (d *TouchDispatcher) TouchStart(e TouchEvent) {
	for _, l := range d.snapshot() {
		l.TouchStart(e)
	}
}

// TouchMove delivers a touch-move event to all listeners.
func (d *TouchDispatcher) TouchMove(e TouchEvent) {
	for _, l := range d.snapshot() {
		l.TouchMove(e)
	}
}

// TouchEnd delivers a touch-end event to all listeners.
func (d *TouchDispatcher) TouchEnd(e TouchEvent) {
	for _, l := range d.snapshot() {
		l.TouchEnd(e)
	}
}
