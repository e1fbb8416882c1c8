package motion

import (
	"math"
	"testing"
	"time"
)

const slide = 0.005 // px/ms², stock tuning

func TestAccelOpposesMotion(t *testing.T) {
	if a := Accel(2, slide); a != -slide {
		t.Errorf("Accel(2) = %v, want %v", a, -slide)
	}
	if a := Accel(-2, slide); a != slide {
		t.Errorf("Accel(-2) = %v, want %v", a, slide)
	}
}

func TestStopDistanceAndTime(t *testing.T) {
	tests := []struct {
		name     string
		v        float64
		wantDist float64
		wantTime float64
	}{
		{"upward release", 2, 400, 400},
		{"downward release", -2, -400, 400},
		{"fast downward release", -3, -900, 600},
		{"at rest", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Accel(tt.v, slide)
			if d := StopDistance(tt.v, a); math.Abs(d-tt.wantDist) > 1e-9 {
				t.Errorf("StopDistance = %v, want %v", d, tt.wantDist)
			}
			if ms := StopTime(tt.v, a); math.Abs(ms-tt.wantTime) > 1e-9 {
				t.Errorf("StopTime = %v, want %v", ms, tt.wantTime)
			}
		})
	}

	if d := StopDistance(2, 0); d != 0 {
		t.Errorf("StopDistance with zero accel = %v, want 0", d)
	}
}

func TestCrossingVelocity(t *testing.T) {
	// v=-3 crossing d=-470 under a=+0.005: sqrt(9 - 4.7) toward negative.
	got := CrossingVelocity(-3, slide, -470)
	want := -math.Sqrt(4.3)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("CrossingVelocity = %v, want %v", got, want)
	}

	// Motion that stops before covering d yields 0, not NaN.
	if got := CrossingVelocity(1, -slide, 500); got != 0 {
		t.Errorf("CrossingVelocity past stop = %v, want 0", got)
	}
}

func TestShiftedCurve(t *testing.T) {
	if c := ShiftedCurve(0); c != EaseOut {
		t.Errorf("ShiftedCurve(0) = %+v, want EaseOut", c)
	}

	// No velocity decay degenerates to exactly linear.
	c := ShiftedCurve(1)
	if math.Abs(c.X1-Linear.X1) > 1e-9 || math.Abs(c.Y2-Linear.Y2) > 1e-9 {
		t.Errorf("ShiftedCurve(1) = %+v, want Linear %+v", c, Linear)
	}

	// Ratios beyond 1 and NaN stay in range.
	if c := ShiftedCurve(5); c.X1 > 1.0/3+1e-9 {
		t.Errorf("ShiftedCurve(5) X1 = %v, exceeds linear shift", c.X1)
	}
	if c := ShiftedCurve(math.NaN()); c != EaseOut {
		t.Errorf("ShiftedCurve(NaN) = %+v, want EaseOut", c)
	}
}

func TestDecelPlan(t *testing.T) {
	plan := DecelPlan(-2, slide)
	if math.Abs(plan.Displacement+400) > 1e-9 {
		t.Errorf("Displacement = %v, want -400", plan.Displacement)
	}
	if plan.Duration != 400*time.Millisecond {
		t.Errorf("Duration = %v, want 400ms", plan.Duration)
	}
	if plan.EndVelocity != 0 {
		t.Errorf("EndVelocity = %v, want 0", plan.EndVelocity)
	}
	if got := plan.Target(-120); math.Abs(got+520) > 1e-9 {
		t.Errorf("Target(-120) = %v, want -520", got)
	}
}

func TestBoundPlan(t *testing.T) {
	// Release at -130 heading for a -600 bound: leg displacement -470.
	plan := BoundPlan(-3, slide, -470)

	wantEnd := -math.Sqrt(4.3)
	if math.Abs(plan.EndVelocity-wantEnd) > 1e-9 {
		t.Errorf("EndVelocity = %v, want %v", plan.EndVelocity, wantEnd)
	}

	wantMS := (wantEnd - (-3)) / slide
	if got := plan.Duration; math.Abs(float64(got)/float64(time.Millisecond)-wantMS) > 1e-6 {
		t.Errorf("Duration = %v, want %vms", got, wantMS)
	}

	// Residual velocity shifts the curve toward linear.
	if plan.Curve == EaseOut {
		t.Error("expected a shifted curve for a leg with residual velocity")
	}
}

func TestBouncePlanClampsOvershoot(t *testing.T) {
	tests := []struct {
		name    string
		v       float64
		coeff   float64
		maxOver float64
		wantAbs float64
	}{
		{"inside cap", -3, 10, 100, 90},
		{"clamped", -3, 1, 100, 100},
		{"positive direction clamped", 3, 1, 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := BouncePlan(tt.v, slide, tt.coeff, tt.maxOver)
			if got := math.Abs(plan.Displacement); math.Abs(got-tt.wantAbs) > 1e-9 {
				t.Errorf("|Displacement| = %v, want %v", got, tt.wantAbs)
			}
			if tt.v < 0 && plan.Displacement > 0 || tt.v > 0 && plan.Displacement < 0 {
				t.Errorf("Displacement = %v, sign mismatch with v = %v", plan.Displacement, tt.v)
			}
			if plan.Duration <= 0 {
				t.Errorf("Duration = %v, want > 0", plan.Duration)
			}
		})
	}
}

func TestBouncePlanOvershootAlwaysCapped(t *testing.T) {
	for v := -6.0; v <= 6.0; v += 0.25 {
		if v == 0 {
			continue
		}
		plan := BouncePlan(v, slide, 10, 100)
		if math.Abs(plan.Displacement) > 100+1e-9 {
			t.Fatalf("BouncePlan(v=%v) overshoot %v exceeds cap", v, plan.Displacement)
		}
	}
}
