package kinetic

import (
	"time"

	"github.com/agiangrant/kinetic/motion"
)

// ============================================================================
// Renderer Seam
// ============================================================================
//
// All visual mutation goes through the Renderer interface so the physics and
// state machine core carries no dependency on a concrete backend. Tests drive
// the core with a fake renderer that reports offsets synchronously and fires
// finish signals on demand; the anim package provides a tick-driven
// reference implementation.

// View identifies a visual element managed by a Renderer. The engine treats
// it as an opaque handle and compares it only for identity.
type View any

// Transition describes how the renderer should animate the next offset or
// opacity change for a view. A nil *Transition means apply immediately.
type Transition struct {
	Duration time.Duration
	Delay    time.Duration
	Curve    motion.Bezier
}

// TransitionListener receives completion signals for animated changes. The
// view argument is the element whose transition finished; signals are not
// scoped to one subsystem, so listeners must filter by source.
type TransitionListener interface {
	TransitionFinished(v View)
}

// Renderer applies one-dimensional offsets and sizes to views and reports a
// view's current rendered offset, which may be mid-flight.
type Renderer interface {
	// SetOffset moves the view to px, animated per the view's active
	// transition spec.
	SetOffset(v View, px float64)

	// SetSize sets the view's length along the scroll axis (used for the
	// indicator thumb).
	SetSize(v View, px float64)

	// SetTransition installs the transition spec applied by subsequent
	// SetOffset/SetSize calls. A nil spec cancels any in-flight animation,
	// freezing the view at its current rendered position.
	SetTransition(v View, t *Transition)

	// CurrentOffset reports the view's live rendered offset. During an
	// animation this is the interpolated mid-flight value.
	CurrentOffset(v View) float64

	// SetOpacity fades the view, animated per spec (nil = immediate).
	SetOpacity(v View, alpha float64, t *Transition)

	// AddTransitionListener subscribes to finish signals for all views.
	AddTransitionListener(l TransitionListener)

	// RemoveTransitionListener unsubscribes.
	RemoveTransitionListener(l TransitionListener)
}

// StyleInstaller is optionally implemented by renderers that carry shared
// indicator styling. The first attached scroller in the process installs it
// and the last detach removes it.
type StyleInstaller interface {
	InstallIndicatorStyle()
	RemoveIndicatorStyle()
}
