package motion

import (
	"math"
	"time"
)

// ============================================================================
// Constant-Acceleration Kinematics
// ============================================================================
//
// Velocities are px/ms, accelerations px/ms². The planner always selects an
// acceleration that opposes the current velocity, so free motion decays to
// rest and bound-crossing motion loses speed on the way.

// Plan describes one leg of animated motion: how far to move, how long the
// transition should take, the velocity remaining at the end of the leg, and
// the timing curve the renderer should use.
type Plan struct {
	Displacement float64
	Duration     time.Duration
	EndVelocity  float64
	Curve        Bezier
}

// Target returns the resting position for a leg starting at offset.
func (p Plan) Target(offset float64) float64 {
	return offset + p.Displacement
}

// Accel returns the deceleration opposing velocity v.
func Accel(v, slide float64) float64 {
	if v < 0 {
		return slide
	}
	return -slide
}

// StopDistance returns the displacement travelled before motion with start
// velocity v and opposing acceleration a comes to rest: -v²/2a.
func StopDistance(v, a float64) float64 {
	if a == 0 {
		return 0
	}
	return -(v * v) / (2 * a)
}

// StopTime returns the time in ms until motion with start velocity v and
// opposing acceleration a comes to rest: -v/a.
func StopTime(v, a float64) float64 {
	if a == 0 {
		return 0
	}
	return -v / a
}

// CrossingVelocity returns the velocity remaining after displacement d under
// acceleration a, with the sign of the start velocity preserved:
// sign(v)·sqrt(v²+2ad). A negative radicand (the motion would have stopped
// before covering d) yields 0.
func CrossingVelocity(v, a, d float64) float64 {
	s := v*v + 2*a*d
	if s <= 0 {
		return 0
	}
	r := math.Sqrt(s)
	if v < 0 {
		return -r
	}
	return r
}

// ShiftedCurve returns the deceleration timing curve adjusted for residual
// velocity at the end of the leg. ratio is vEnd/v; its magnitude shifts the
// ease-out control points toward the diagonal (X1 += s, Y2 -= s with
// s = min(1,|ratio|)/3) so a leg that barely slows down eases almost
// linearly instead of braking abruptly at the bound. A ratio of 0 is the
// plain ease-out curve; a ratio of 1 degenerates to exactly Linear.
func ShiftedCurve(ratio float64) Bezier {
	f := math.Abs(ratio)
	if math.IsNaN(f) {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	s := f / 3
	return Bezier{X1: s, Y1: 1.0 / 3, X2: 2.0 / 3, Y2: 1 - s}
}

// DecelPlan plans free deceleration from velocity v to rest under the slide
// acceleration. Used when the projected resting position stays in bounds.
func DecelPlan(v, slide float64) Plan {
	a := Accel(v, slide)
	return Plan{
		Displacement: StopDistance(v, a),
		Duration:     durationMS(StopTime(v, a)),
		EndVelocity:  0,
		Curve:        ShiftedCurve(0),
	}
}

// BoundPlan plans the leg from the current position to a bound d away, for
// motion that would cross it. EndVelocity carries the residual crossing
// velocity into the bounce-out leg.
func BoundPlan(v, slide, d float64) Plan {
	a := Accel(v, slide)
	vEnd := CrossingVelocity(v, a, d)

	var t float64
	if a != 0 {
		t = (vEnd - v) / a
	}

	ratio := 0.0
	if v != 0 {
		ratio = vEnd / v
	}

	return Plan{
		Displacement: d,
		Duration:     durationMS(t),
		EndVelocity:  vEnd,
		Curve:        ShiftedCurve(ratio),
	}
}

// BouncePlan plans the overshoot leg past a bound. The slide acceleration is
// scaled by coeff for a faster return, and the overshoot displacement is
// clamped to ±maxOvershoot. When clamping shortens the leg, the duration
// shrinks by the square root of the ratio, which is the stop time over the
// shorter distance at the same end condition.
func BouncePlan(v, slide, coeff, maxOvershoot float64) Plan {
	a := Accel(v, slide*coeff)
	d := StopDistance(v, a)
	t := StopTime(v, a)

	if max := math.Abs(maxOvershoot); math.Abs(d) > max {
		scale := 0.0
		if d != 0 {
			scale = math.Sqrt(max / math.Abs(d))
		}
		t *= scale
		if d < 0 {
			d = -max
		} else {
			d = max
		}
	}

	return Plan{
		Displacement: d,
		Duration:     durationMS(t),
		EndVelocity:  0,
		Curve:        ShiftedCurve(0),
	}
}

// durationMS converts a millisecond count to a time.Duration. Negative or
// NaN counts floor at zero.
func durationMS(ms float64) time.Duration {
	if ms <= 0 || math.IsNaN(ms) {
		return 0
	}
	return time.Duration(ms * float64(time.Millisecond))
}
