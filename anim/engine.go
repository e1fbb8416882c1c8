// Package anim provides a tick-driven reference implementation of the
// kinetic.Renderer contract: per-view offsets, sizes and opacity, timed
// bezier-eased transitions, and transition-finished fan-out to listeners.
// Hosts call Tick from their frame loop.
package anim

import (
	"sync"
	"time"

	"github.com/agiangrant/kinetic"
	"github.com/agiangrant/kinetic/motion"
)

// Engine animates view properties over wall-clock time. The zero value is
// not usable; call NewEngine.
type Engine struct {
	mu        sync.Mutex
	views     map[kinetic.View]*viewState
	listeners []kinetic.TransitionListener
	lastTick  time.Time
}

type viewState struct {
	offset  float64
	size    float64
	opacity float64

	// spec is the transition applied by subsequent SetOffset calls.
	spec *kinetic.Transition

	offsetAnim  *tween
	opacityAnim *tween
}

// tween is one in-flight property animation. start stays zero until the
// first tick after scheduling, so stepping is driven entirely by Tick times.
type tween struct {
	from, to float64
	start    time.Time
	delay    time.Duration
	duration time.Duration
	curve    motion.Bezier
}

// value evaluates the tween at now. done reports completion.
func (tw *tween) value(now time.Time) (v float64, done bool) {
	if tw.start.IsZero() {
		return tw.from, false
	}
	elapsed := now.Sub(tw.start) - tw.delay
	if elapsed < 0 {
		return tw.from, false
	}
	if elapsed >= tw.duration {
		return tw.to, true
	}
	p := tw.curve.Solve(float64(elapsed) / float64(tw.duration))
	return tw.from + (tw.to-tw.from)*p, false
}

// NewEngine creates an empty animation engine.
func NewEngine() *Engine {
	return &Engine{views: make(map[kinetic.View]*viewState)}
}

func (e *Engine) view(v kinetic.View) *viewState {
	st, ok := e.views[v]
	if !ok {
		st = &viewState{opacity: 1}
		e.views[v] = st
	}
	return st
}

// SetOffset moves the view to px. With an active transition spec the move is
// scheduled as a tween from the current rendered value; otherwise it is
// immediate.
func (e *Engine) SetOffset(v kinetic.View, px float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := e.view(v)
	if st.spec == nil {
		st.offset = px
		st.offsetAnim = nil
		return
	}

	from := st.offset
	if st.offsetAnim != nil {
		from, _ = st.offsetAnim.value(e.lastTick)
	}
	st.offsetAnim = &tween{
		from:     from,
		to:       px,
		delay:    st.spec.Delay,
		duration: st.spec.Duration,
		curve:    st.spec.Curve,
	}
}

// SetSize sets the view's length along the scroll axis immediately.
func (e *Engine) SetSize(v kinetic.View, px float64) {
	e.mu.Lock()
	e.view(v).size = px
	e.mu.Unlock()
}

// SetTransition installs the spec for subsequent SetOffset calls. A nil
// spec cancels in-flight animations, freezing the view at its current
// rendered values.
func (e *Engine) SetTransition(v kinetic.View, t *kinetic.Transition) {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := e.view(v)
	if t == nil {
		if st.offsetAnim != nil {
			st.offset, _ = st.offsetAnim.value(e.lastTick)
			st.offsetAnim = nil
		}
		if st.opacityAnim != nil {
			st.opacity, _ = st.opacityAnim.value(e.lastTick)
			st.opacityAnim = nil
		}
		st.spec = nil
		return
	}
	spec := *t
	st.spec = &spec
}

// CurrentOffset reports the view's rendered offset as of the last tick,
// including mid-flight interpolated values.
func (e *Engine) CurrentOffset(v kinetic.View) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := e.view(v)
	if st.offsetAnim != nil {
		val, _ := st.offsetAnim.value(e.lastTick)
		return val
	}
	return st.offset
}

// SetOpacity fades the view per the supplied spec (nil = immediate).
func (e *Engine) SetOpacity(v kinetic.View, alpha float64, t *kinetic.Transition) {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := e.view(v)
	if t == nil {
		st.opacity = alpha
		st.opacityAnim = nil
		return
	}

	from := st.opacity
	if st.opacityAnim != nil {
		from, _ = st.opacityAnim.value(e.lastTick)
	}
	st.opacityAnim = &tween{
		from:     from,
		to:       alpha,
		delay:    t.Delay,
		duration: t.Duration,
		curve:    t.Curve,
	}
}

// AddTransitionListener subscribes to finish signals.
func (e *Engine) AddTransitionListener(l kinetic.TransitionListener) {
	e.mu.Lock()
	e.listeners = append(e.listeners, l)
	e.mu.Unlock()
}

// RemoveTransitionListener unsubscribes.
func (e *Engine) RemoveTransitionListener(l kinetic.TransitionListener) {
	e.mu.Lock()
	for i, reg := range e.listeners {
		if reg == l {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			break
		}
	}
	e.mu.Unlock()
}

// Offset returns the rendered offset of a view (same as CurrentOffset).
func (e *Engine) Offset(v kinetic.View) float64 {
	return e.CurrentOffset(v)
}

// Size returns the rendered size of a view.
func (e *Engine) Size(v kinetic.View) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.view(v).size
}

// Opacity returns the rendered opacity of a view.
func (e *Engine) Opacity(v kinetic.View) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := e.view(v)
	if st.opacityAnim != nil {
		val, _ := st.opacityAnim.value(e.lastTick)
		return val
	}
	return st.opacity
}

// Tick advances all animations to now and fires finish signals for
// completed transitions. Listener callbacks run outside the engine lock.
// Returns true while any animation is still in flight.
func (e *Engine) Tick(now time.Time) bool {
	e.mu.Lock()
	e.lastTick = now

	var finished []kinetic.View
	active := false

	for v, st := range e.views {
		completed := false
		if st.offsetAnim != nil {
			if st.offsetAnim.start.IsZero() {
				st.offsetAnim.start = now
			}
			if val, done := st.offsetAnim.value(now); done {
				st.offset = val
				st.offsetAnim = nil
				completed = true
			} else {
				active = true
			}
		}
		if st.opacityAnim != nil {
			if st.opacityAnim.start.IsZero() {
				st.opacityAnim.start = now
			}
			if val, done := st.opacityAnim.value(now); done {
				st.opacity = val
				st.opacityAnim = nil
				completed = true
			} else {
				active = true
			}
		}
		// One signal per view per tick, even when both properties land.
		if completed {
			finished = append(finished, v)
		}
	}

	listeners := make([]kinetic.TransitionListener, len(e.listeners))
	copy(listeners, e.listeners)
	e.mu.Unlock()

	for _, v := range finished {
		for _, l := range listeners {
			l.TransitionFinished(v)
		}
	}

	return active
}
