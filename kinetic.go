// Package kinetic decorates a scrollable 1-D region with physically
// plausible touch scrolling: drag tracking, inertial deceleration after
// release, elastic rubber-band drag past the edges, and a staged bounce-back
// sequence, with a scrollbar indicator kept in sync with content position.
//
// The engine is headless: all visual mutation goes through the Renderer
// interface, and motion advances on transition-finished signals delivered
// back from the renderer. The anim subpackage provides a tick-driven
// reference renderer.
package kinetic

import (
	"math"
	"sync"

	"github.com/agiangrant/kinetic/motion"
)

// ============================================================================
// Scroller
// ============================================================================

// Region describes an attached scrollable area. The host constructs the
// views, measures the sizes, and optionally supplies the touch source the
// scroller should listen on. Views must be comparable values: the engine
// filters transition signals by identity.
type Region struct {
	Content   View
	Indicator View

	FrameSize   float64
	ContentSize float64

	// Source, when set, has the scroller registered as a touch listener for
	// the lifetime of the attachment.
	Source TouchSource
}

// Scroller owns the per-region scrolling state and drives the motion engine.
// All methods are safe for use from a single host loop; internal locking
// only allows a renderer tick to deliver finish signals concurrently.
type Scroller struct {
	params   Params
	renderer Renderer

	mu       sync.Mutex
	attached bool
	region   Region
	bounds   Bounds

	// contentOffset: 0 = top-aligned, negative = scrolled down. Terminal
	// states always lie in [bounds.Lowest, 0]; mid-drag and bounce-out
	// positions may not.
	offset float64

	tracking     bool
	dragging     bool
	decelerating bool

	stage              Stage
	pendingEndVelocity float64

	dragStartY      float64
	dragStartOffset float64
	prevSample      motion.Sample
	currSample      motion.Sample
	dragTarget      any

	onTap func(x, y float64)
}

// New creates a scroller rendering through r. Zero fields of p take their
// defaults.
func New(r Renderer, p Params) *Scroller {
	return &Scroller{
		params:   p.withDefaults(),
		renderer: r,
	}
}

// Attach binds the scroller to a region: listeners are installed, the
// indicator is rendered, and the process-wide instance count is bumped
// (the first instance installs shared indicator styling). A remembered
// offset from a previous attachment is clamped into the new bounds.
func (s *Scroller) Attach(region Region) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.attached {
		s.detachLocked()
	}
	s.attachLocked(region)
}

// Detach releases the region: listeners are removed, the indicator hidden,
// and the instance count dropped (the last instance removes the shared
// styling). The content offset is remembered for Resume. Detaching an
// already-detached scroller is a no-op.
func (s *Scroller) Detach() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detachLocked()
}

// Reset is detach plus re-attach with the position memory dropped.
func (s *Scroller) Reset(region Region) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detachLocked()
	s.offset = 0
	s.attachLocked(region)
}

// Suspend detaches while preserving the content offset.
func (s *Scroller) Suspend() {
	s.Detach()
}

// Resume re-attaches and re-renders at the remembered offset.
func (s *Scroller) Resume(region Region) {
	s.Attach(region)
}

// ScrollTop returns the scroll position with DOM semantics: the distance
// scrolled from the top, non-negative. Rubber-banded overscroll above the
// top reads as 0.
func (s *Scroller) ScrollTop() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.offset >= 0 {
		return 0
	}
	return -s.offset
}

// SetScrollTop sets the scroll position with DOM semantics. NaN normalizes
// to 0 and negative values are read as sign-inverted content offsets; the
// result is clamped into range and rendered without animation.
func (s *Scroller) SetScrollTop(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.attached {
		return
	}

	if math.IsNaN(v) {
		v = 0
	}
	if v < 0 {
		v = -v
	}

	s.interruptLocked()
	s.offset = s.bounds.Clamp(-v)
	s.renderer.SetTransition(s.region.Content, nil)
	s.renderer.SetOffset(s.region.Content, s.offset)
	s.renderIndicatorLocked(nil)
}

// ContentOffset returns the signed internal offset (0 top, negative down).
func (s *Scroller) ContentOffset() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offset
}

// TransitionStage returns the active phase of the bounce sequence.
func (s *Scroller) TransitionStage() Stage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stage
}

// Decelerating reports whether post-release motion is in flight.
func (s *Scroller) Decelerating() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.decelerating
}

// OnTap registers a callback invoked with the release coordinates whenever
// a touch sequence ends below the drag threshold.
func (s *Scroller) OnTap(fn func(x, y float64)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onTap = fn
}

// SnapToBounds clamps the content to the nearer bound with a fixed-duration
// eased transition. A no-op movement from an in-bounds position still runs
// the transition so state settles through the usual finish signal.
func (s *Scroller) SnapToBounds() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.attached {
		return
	}
	s.snapToBoundsLocked()
}

// attachLocked binds the region and renders the initial state.
func (s *Scroller) attachLocked(region Region) {
	s.region = region
	s.bounds = NewBounds(region.FrameSize, region.ContentSize)
	s.offset = s.bounds.Clamp(s.offset)
	s.attached = true
	s.tracking = false
	s.dragging = false
	s.decelerating = false
	s.stage = StageNone
	s.pendingEndVelocity = 0

	s.renderer.AddTransitionListener(s)
	if region.Source != nil {
		region.Source.AddTouchListener(s)
	}
	acquireSharedStyle(s.renderer)

	s.renderer.SetTransition(region.Content, nil)
	s.renderer.SetOffset(region.Content, s.offset)
	s.renderIndicatorLocked(nil)
	s.renderer.SetOpacity(region.Indicator, 0, nil)
}

// detachLocked releases listeners and the shared style refcount.
func (s *Scroller) detachLocked() {
	if !s.attached {
		return
	}
	if s.region.Source != nil {
		s.region.Source.RemoveTouchListener(s)
	}
	s.renderer.RemoveTransitionListener(s)
	releaseSharedStyle(s.renderer)

	s.attached = false
	s.tracking = false
	s.dragging = false
	s.decelerating = false
	s.stage = StageNone
	s.pendingEndVelocity = 0
}
