package kinetic

import (
	"github.com/agiangrant/kinetic/motion"
)

// ============================================================================
// Bounce Transition Sequence
// ============================================================================
//
// When released momentum would cross a bound, the controller runs a staged
// sequence: decelerate to the bound, overshoot past it, and ease back. Each
// edge is triggered by the renderer's transition-finished signal for the
// content view. At most one sequence is in flight per scroller; a new
// touch-start collapses it to StageNone unconditionally.

// Stage identifies the active phase of a bounce sequence.
type Stage uint8

const (
	// StageNone - no sequence active; also the terminal state.
	StageNone Stage = iota

	// StageToBounds - decelerating from the release point to the bound.
	StageToBounds

	// StageBouncedOut - overshooting past the bound on residual velocity.
	StageBouncedOut

	// StageBouncedBack - easing back from the overshoot to rest on the bound.
	StageBouncedBack
)

// String returns the stage name for diagnostics.
func (s Stage) String() string {
	switch s {
	case StageNone:
		return "none"
	case StageToBounds:
		return "to-bounds"
	case StageBouncedOut:
		return "bounced-out"
	case StageBouncedBack:
		return "bounced-back"
	default:
		return "unknown"
	}
}

// startBoundSequenceLocked enters StageToBounds: the content animates from
// the current offset exactly to the violated bound, and the residual
// crossing velocity is recorded for the bounce-out leg.
func (s *Scroller) startBoundSequenceLocked(v, rest float64) {
	bound := s.bounds.Nearest(rest)
	plan := motion.BoundPlan(v, s.params.SlideAccel, bound-s.offset)

	s.pendingEndVelocity = plan.EndVelocity
	s.stage = StageToBounds
	s.decelerating = true
	s.animateLocked(bound, &Transition{
		Duration: plan.Duration,
		Curve:    plan.Curve,
	})
}

// TransitionFinished advances the bounce sequence on the renderer's
// completion signal. Signals for views other than the tracked content are
// ignored, as are signals arriving in StageNone with no deceleration active
// (late signals for superseded transitions count as completed cleanup).
func (s *Scroller) TransitionFinished(v View) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached || v != s.region.Content {
		return
	}

	switch s.stage {
	case StageToBounds:
		plan := motion.BouncePlan(
			s.pendingEndVelocity, s.params.SlideAccel,
			s.params.BounceAccelCoeff, s.params.OutOfBoundsMax,
		)
		s.pendingEndVelocity = 0
		s.stage = StageBouncedOut
		s.animateLocked(s.offset+plan.Displacement, &Transition{
			Duration: plan.Duration,
			Curve:    plan.Curve,
		})

	case StageBouncedOut:
		s.stage = StageBouncedBack
		s.animateLocked(s.bounds.Clamp(s.offset), &Transition{
			Duration: s.params.BounceBackDuration,
			Curve:    motion.EaseInOut,
		})

	case StageBouncedBack:
		s.stage = StageNone
		s.decelerating = false
		s.hideIndicatorLocked()

	case StageNone:
		// Direct deceleration or snap finished.
		if s.decelerating {
			s.decelerating = false
			s.hideIndicatorLocked()
		}
	}
}
