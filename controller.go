package kinetic

import (
	"math"

	"github.com/agiangrant/kinetic/motion"
)

// ============================================================================
// Touch Handling
// ============================================================================
//
// The controller is the TouchListener for its region. Each gesture runs
// start → move* → end; a drag begins once the displacement from the start
// point exceeds the drag threshold, otherwise the gesture ends as a tap.

// TouchStart begins tracking a gesture. Any in-flight deceleration or bounce
// is cancelled first: the renderer's live offset is read back before state
// is overwritten, so the visual position never jumps.
func (s *Scroller) TouchStart(e TouchEvent) {
	pt, ok := e.First()
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.attached {
		return
	}

	s.interruptLocked()

	s.tracking = true
	s.dragging = false
	s.dragTarget = e.Target
	s.dragStartY = pt.Y
	s.dragStartOffset = s.offset
	s.prevSample = motion.Sample{Pos: pt.Y, Time: pt.Time}
	s.currSample = s.prevSample
}

// TouchMove updates the rolling two-sample window and, once the drag
// threshold is exceeded, renders the bounds-aware offset. Out-of-bounds
// displacement is damped against the delta from drag start.
func (s *Scroller) TouchMove(e TouchEvent) {
	pt, ok := e.First()
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.attached || !s.tracking {
		return
	}

	s.prevSample = s.currSample
	s.currSample = motion.Sample{Pos: pt.Y, Time: pt.Time}

	delta := pt.Y - s.dragStartY
	if !s.dragging {
		if math.Abs(delta) < s.params.DragThreshold {
			return
		}
		s.dragging = true
		s.renderer.SetOpacity(s.region.Indicator, 1, nil)
	}

	offset := s.dragStartOffset + delta
	if s.bounds.OutOfBounds(offset) {
		offset = s.dragStartOffset + DampDelta(delta, s.params.DampingFactor)
	}

	s.offset = offset
	s.renderer.SetTransition(s.region.Content, nil)
	s.renderer.SetOffset(s.region.Content, offset)
	s.renderIndicatorLocked(nil)
}

// TouchEnd finishes the gesture. A drag decides between snap-to-bounds,
// momentum, and the staged bounce sequence; anything below the drag
// threshold is a tap, which synthesizes a click at the release point and
// focuses focusable targets.
func (s *Scroller) TouchEnd(e TouchEvent) {
	pt, ok := e.First()
	if !ok {
		return
	}

	s.mu.Lock()
	if !s.attached || !s.tracking {
		s.mu.Unlock()
		return
	}

	s.tracking = false
	wasDragging := s.dragging
	s.dragging = false

	if !wasDragging {
		// A tap that interrupted motion may have read back an out-of-bounds
		// offset; it still has to settle into range.
		if s.bounds.OutOfBounds(s.offset) {
			s.snapToBoundsLocked()
		}
		target := s.dragTarget
		onTap := s.onTap
		s.dragTarget = nil
		s.mu.Unlock()

		// Tap: synthesized click plus focus affordance, outside the lock.
		if t, isTap := target.(Tappable); isTap {
			t.Tap(pt.X, pt.Y)
		}
		if f, isFocusable := target.(Focusable); isFocusable {
			f.Focus()
		}
		if onTap != nil {
			onTap(pt.X, pt.Y)
		}
		return
	}
	defer s.mu.Unlock()
	s.dragTarget = nil

	if s.bounds.OutOfBounds(s.offset) {
		// Elastic drag released past an edge: no momentum, only snap.
		s.snapToBoundsLocked()
		return
	}

	v := motion.Velocity(s.prevSample, s.currSample, s.params.MaxVelocity)
	if v == 0 {
		s.hideIndicatorLocked()
		return
	}

	a := motion.Accel(v, s.params.SlideAccel)
	rest := s.offset + motion.StopDistance(v, a)
	if s.bounds.OutOfBounds(rest) {
		s.startBoundSequenceLocked(v, rest)
		return
	}

	plan := motion.DecelPlan(v, s.params.SlideAccel)
	s.decelerating = true
	s.animateLocked(plan.Target(s.offset), &Transition{
		Duration: plan.Duration,
		Curve:    plan.Curve,
	})
}

// interruptLocked collapses any in-flight motion back to an idle state,
// capturing the renderer's live offset first so nothing jumps.
func (s *Scroller) interruptLocked() {
	if !s.decelerating && s.stage == StageNone {
		return
	}

	live := s.renderer.CurrentOffset(s.region.Content)
	s.renderer.SetTransition(s.region.Content, nil)
	s.renderer.SetTransition(s.region.Indicator, nil)
	s.offset = live
	s.stage = StageNone
	s.decelerating = false
	s.pendingEndVelocity = 0
	s.renderIndicatorLocked(nil)
}

// snapToBoundsLocked clamps the content to the nearer bound with a fixed
// eased transition. Always marks deceleration so the finish signal performs
// the indicator cleanup.
func (s *Scroller) snapToBoundsLocked() {
	target := s.bounds.Clamp(s.offset)
	s.decelerating = true
	s.animateLocked(target, &Transition{
		Duration: s.params.SnapDuration,
		Curve:    motion.EaseInOut,
	})
}

// animateLocked issues an animated move of the content (and the matching
// indicator motion) and records target as the authoritative offset. The
// live renderer position catches up asynchronously.
func (s *Scroller) animateLocked(target float64, t *Transition) {
	s.offset = target
	s.renderer.SetTransition(s.region.Content, t)
	s.renderer.SetOffset(s.region.Content, target)
	s.renderIndicatorLocked(t)
}

// renderIndicatorLocked recomputes the indicator geometry from the current
// offset and applies it, optionally animated.
func (s *Scroller) renderIndicatorLocked(t *Transition) {
	length, pos := indicatorGeometry(
		s.offset, s.region.FrameSize, s.region.ContentSize,
		s.params.MinIndicatorLength,
	)
	s.renderer.SetTransition(s.region.Indicator, t)
	s.renderer.SetSize(s.region.Indicator, length)
	s.renderer.SetOffset(s.region.Indicator, pos)
}

// hideIndicatorLocked fades the indicator out after the configured delay.
func (s *Scroller) hideIndicatorLocked() {
	s.renderer.SetOpacity(s.region.Indicator, 0, &Transition{
		Duration: s.params.IndicatorFadeDuration,
		Delay:    s.params.IndicatorFadeDelay,
		Curve:    motion.EaseOut,
	})
}
