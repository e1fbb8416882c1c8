package kinetic

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// ============================================================================
// Tuning Parameters
// ============================================================================

// Params holds the tuning constants of the motion engine. Zero fields fall
// back to the defaults when passed to New.
type Params struct {
	// MaxVelocity caps the estimated release velocity, px/ms.
	MaxVelocity float64

	// SlideAccel is the constant deceleration of free momentum, px/ms².
	SlideAccel float64

	// BounceAccelCoeff scales SlideAccel for the bounce-out leg, producing
	// a faster return than free deceleration.
	BounceAccelCoeff float64

	// OutOfBoundsMax caps the overshoot displacement past a bound, px.
	OutOfBoundsMax float64

	// DampingFactor is the K in the rubber-band function delta/exp(|delta|/K).
	DampingFactor float64

	// DragThreshold is the minimum displacement before a touch sequence is
	// treated as a drag instead of a tap, px.
	DragThreshold float64

	// MinIndicatorLength floors the indicator thumb length regardless of
	// the content/frame ratio, px.
	MinIndicatorLength float64

	// SnapDuration is the fixed duration of snap-to-bounds motion.
	SnapDuration time.Duration

	// BounceBackDuration is the fixed duration of the bounce-back leg.
	BounceBackDuration time.Duration

	// IndicatorFadeDelay postpones the indicator fade-out after motion ends.
	IndicatorFadeDelay time.Duration

	// IndicatorFadeDuration is the length of the indicator fade-out.
	IndicatorFadeDuration time.Duration
}

// DefaultParams returns the tuning constants of the stock engine.
func DefaultParams() Params {
	return Params{
		MaxVelocity:           3,
		SlideAccel:            0.005,
		BounceAccelCoeff:      10,
		OutOfBoundsMax:        100,
		DampingFactor:         550,
		DragThreshold:         5,
		MinIndicatorLength:    10,
		SnapDuration:          400 * time.Millisecond,
		BounceBackDuration:    400 * time.Millisecond,
		IndicatorFadeDelay:    100 * time.Millisecond,
		IndicatorFadeDuration: 250 * time.Millisecond,
	}
}

// withDefaults fills zero fields from DefaultParams.
func (p Params) withDefaults() Params {
	d := DefaultParams()
	if p.MaxVelocity == 0 {
		p.MaxVelocity = d.MaxVelocity
	}
	if p.SlideAccel == 0 {
		p.SlideAccel = d.SlideAccel
	}
	if p.BounceAccelCoeff == 0 {
		p.BounceAccelCoeff = d.BounceAccelCoeff
	}
	if p.OutOfBoundsMax == 0 {
		p.OutOfBoundsMax = d.OutOfBoundsMax
	}
	if p.DampingFactor == 0 {
		p.DampingFactor = d.DampingFactor
	}
	if p.DragThreshold == 0 {
		p.DragThreshold = d.DragThreshold
	}
	if p.MinIndicatorLength == 0 {
		p.MinIndicatorLength = d.MinIndicatorLength
	}
	if p.SnapDuration == 0 {
		p.SnapDuration = d.SnapDuration
	}
	if p.BounceBackDuration == 0 {
		p.BounceBackDuration = d.BounceBackDuration
	}
	if p.IndicatorFadeDelay == 0 {
		p.IndicatorFadeDelay = d.IndicatorFadeDelay
	}
	if p.IndicatorFadeDuration == 0 {
		p.IndicatorFadeDuration = d.IndicatorFadeDuration
	}
	return p
}

// tomlParams is the on-disk form of Params. Durations are millisecond
// counts so config files stay plain numbers.
type tomlParams struct {
	MaxVelocity          float64 `toml:"max_velocity"`
	SlideAccel           float64 `toml:"slide_accel"`
	BounceAccelCoeff     float64 `toml:"bounce_accel_coeff"`
	OutOfBoundsMax       float64 `toml:"out_of_bounds_max"`
	DampingFactor        float64 `toml:"damping_factor"`
	DragThreshold        float64 `toml:"drag_threshold"`
	MinIndicatorLength   float64 `toml:"min_indicator_length"`
	SnapDurationMS       int64   `toml:"snap_duration_ms"`
	BounceBackDurationMS int64   `toml:"bounce_back_duration_ms"`
	IndicatorFadeDelayMS int64   `toml:"indicator_fade_delay_ms"`
	IndicatorFadeDurMS   int64   `toml:"indicator_fade_duration_ms"`
}

// LoadParams reads tuning constants from a TOML file. Keys absent from the
// file keep their defaults.
func LoadParams(path string) (Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("read params: %w", err)
	}

	var file tomlParams
	if err := toml.Unmarshal(data, &file); err != nil {
		return Params{}, fmt.Errorf("parse params: %w", err)
	}

	p := Params{
		MaxVelocity:           file.MaxVelocity,
		SlideAccel:            file.SlideAccel,
		BounceAccelCoeff:      file.BounceAccelCoeff,
		OutOfBoundsMax:        file.OutOfBoundsMax,
		DampingFactor:         file.DampingFactor,
		DragThreshold:         file.DragThreshold,
		MinIndicatorLength:    file.MinIndicatorLength,
		SnapDuration:          time.Duration(file.SnapDurationMS) * time.Millisecond,
		BounceBackDuration:    time.Duration(file.BounceBackDurationMS) * time.Millisecond,
		IndicatorFadeDelay:    time.Duration(file.IndicatorFadeDelayMS) * time.Millisecond,
		IndicatorFadeDuration: time.Duration(file.IndicatorFadeDurMS) * time.Millisecond,
	}
	return p.withDefaults(), nil
}
