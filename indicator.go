package kinetic

import (
	"math"
	"sync"
)

// ============================================================================
// Scroll Indicator
// ============================================================================
//
// The indicator is derived state: its thumb length and position are always
// recomputed from the content offset and bounds, never stored as truth.

// indicatorGeometry computes the thumb length and track position for the
// given content offset. The thumb length is proportional to the visible
// share of the content and floors at minLength; while the content is
// dragged past an edge the thumb shrinks by the overshoot and pins to the
// nearer end of the track.
func indicatorGeometry(offset, frameSize, contentSize, minLength float64) (length, position float64) {
	if contentSize <= 0 || frameSize <= 0 {
		return minLength, 0
	}

	length = frameSize * frameSize / contentSize
	if length > frameSize {
		length = frameSize
	}

	low := frameSize - contentSize
	if low > 0 {
		low = 0
	}

	// Overshoot shrinks the thumb.
	var overshoot float64
	if offset > 0 {
		overshoot = offset
	} else if offset < low {
		overshoot = low - offset
	}
	length -= overshoot
	if length < minLength {
		length = minLength
	}

	travel := frameSize - length
	if travel <= 0 || low == 0 {
		return length, 0
	}

	ratio := offset / low
	if ratio < 0 {
		ratio = 0
	} else if ratio > 1 {
		ratio = 1
	}
	position = ratio * travel
	if math.IsNaN(position) {
		position = 0
	}
	return length, position
}

// ============================================================================
// Shared Indicator Style
// ============================================================================
//
// Process-wide refcount over all attached scrollers. The first attach
// installs the shared indicator style on renderers that carry one; the last
// detach removes it. The count never goes negative: detaching below zero is
// clamped, not an error.

var sharedStyle struct {
	mu    sync.Mutex
	count int
}

// acquireSharedStyle increments the live-instance count, installing the
// shared style on the 0→1 transition.
func acquireSharedStyle(r Renderer) {
	sharedStyle.mu.Lock()
	defer sharedStyle.mu.Unlock()

	sharedStyle.count++
	if sharedStyle.count == 1 {
		if si, ok := r.(StyleInstaller); ok {
			si.InstallIndicatorStyle()
		}
	}
}

// releaseSharedStyle decrements the count, removing the shared style on the
// 1→0 transition. Underflow clamps at zero.
func releaseSharedStyle(r Renderer) {
	sharedStyle.mu.Lock()
	defer sharedStyle.mu.Unlock()

	if sharedStyle.count == 0 {
		return
	}
	sharedStyle.count--
	if sharedStyle.count == 0 {
		if si, ok := r.(StyleInstaller); ok {
			si.RemoveIndicatorStyle()
		}
	}
}

// attachedInstances reports the current live-instance count.
func attachedInstances() int {
	sharedStyle.mu.Lock()
	defer sharedStyle.mu.Unlock()
	return sharedStyle.count
}
