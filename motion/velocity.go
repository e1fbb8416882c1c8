package motion

import (
	"math"
	"time"
)

// ============================================================================
// Velocity Estimation
// ============================================================================

// Sample is one timestamped pointer position.
type Sample struct {
	Pos  float64
	Time time.Time
}

// Velocity estimates the signed release velocity in px/ms from two samples.
// The sign is taken from the displacement, never from the time delta, so
// clock noise cannot flip the direction. A zero interval or a NaN result
// yields 0 (no momentum). The magnitude is clamped to maxSpeed with the
// sign preserved.
func Velocity(prev, curr Sample, maxSpeed float64) float64 {
	dt := float64(curr.Time.Sub(prev.Time)) / float64(time.Millisecond)
	dp := curr.Pos - prev.Pos
	if dt == 0 || dp == 0 {
		return 0
	}

	speed := math.Abs(dp / dt)
	if math.IsNaN(speed) {
		return 0
	}
	if speed > maxSpeed {
		speed = maxSpeed
	}

	if dp < 0 {
		return -speed
	}
	return speed
}
