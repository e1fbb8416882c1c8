package motion

// ============================================================================
// Cubic Bezier Timing Curves
// ============================================================================

// Bezier is a cubic bezier timing curve anchored at (0,0) and (1,1) with
// control points (X1,Y1) and (X2,Y2), the CSS cubic-bezier() form. X is time
// progress, Y is value progress.
type Bezier struct {
	X1, Y1, X2, Y2 float64
}

// Common curves
var (
	// Linear - control points on the diagonal, constant speed
	Linear = Bezier{1.0 / 3, 1.0 / 3, 2.0 / 3, 2.0 / 3}

	// EaseOut - fast start, smooth deceleration (default for momentum)
	EaseOut = Bezier{0, 1.0 / 3, 2.0 / 3, 1}

	// EaseInOut - accelerate then decelerate (snap-back motion)
	EaseInOut = Bezier{0.42, 0, 0.58, 1}
)

// bezierAxis evaluates one axis of the curve at parameter t, given the two
// control coordinates for that axis.
func bezierAxis(c1, c2, t float64) float64 {
	u := 1 - t
	return 3*u*u*t*c1 + 3*u*t*t*c2 + t*t*t
}

// bezierAxisDeriv is the derivative of bezierAxis with respect to t.
func bezierAxisDeriv(c1, c2, t float64) float64 {
	u := 1 - t
	return 3*u*u*c1 + 6*u*t*(c2-c1) + 3*t*t*(1-c2)
}

// tForX finds the curve parameter whose X coordinate equals x.
// Newton-Raphson with a bisection fallback for flat regions.
func (b Bezier) tForX(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}

	t := x
	for i := 0; i < 8; i++ {
		xErr := bezierAxis(b.X1, b.X2, t) - x
		if xErr < 1e-6 && xErr > -1e-6 {
			return t
		}
		d := bezierAxisDeriv(b.X1, b.X2, t)
		if d < 1e-6 && d > -1e-6 {
			break
		}
		t -= xErr / d
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}

	// Bisection fallback
	lo, hi := 0.0, 1.0
	t = x
	for hi-lo > 1e-6 {
		if bezierAxis(b.X1, b.X2, t) < x {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return t
}

// Solve returns the value progress (Y) for the given time progress x in [0,1].
func (b Bezier) Solve(x float64) float64 {
	return bezierAxis(b.Y1, b.Y2, b.tForX(x))
}
