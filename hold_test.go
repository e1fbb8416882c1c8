package kinetic

import (
	"testing"
	"time"
)

// holdRecorder wires a HoldDetector with recording callbacks.
func holdRecorder() (*HoldDetector, *[]string) {
	var events []string
	h := &HoldDetector{
		OnHoldStart: func(x, y float64) { events = append(events, "start") },
		OnHoldEnd:   func(x, y float64) { events = append(events, "end") },
	}
	return h, &events
}

func TestHoldFiresAfterThreshold(t *testing.T) {
	h, events := holdRecorder()
	t0 := time.Unix(0, 0)

	h.TouchStart(touchAt(100, t0))

	h.Tick(t0.Add(100 * time.Millisecond))
	if len(*events) != 0 {
		t.Fatalf("events = %v, hold must not fire before the threshold", *events)
	}

	h.Tick(t0.Add(500 * time.Millisecond))
	if len(*events) != 1 || (*events)[0] != "start" {
		t.Fatalf("events = %v, want [start]", *events)
	}

	// Further ticks do not refire.
	h.Tick(t0.Add(time.Second))
	if len(*events) != 1 {
		t.Errorf("events = %v, hold fired twice", *events)
	}

	h.TouchEnd(touchAt(100, t0.Add(2*time.Second)))
	if len(*events) != 2 || (*events)[1] != "end" {
		t.Errorf("events = %v, want [start end]", *events)
	}
}

func TestHoldCancelledBySlop(t *testing.T) {
	h, events := holdRecorder()
	t0 := time.Unix(0, 0)

	h.TouchStart(touchAt(100, t0))
	h.TouchMove(touchAt(110, t0.Add(50*time.Millisecond)))

	h.Tick(t0.Add(time.Second))
	if len(*events) != 0 {
		t.Errorf("events = %v, moved touch must not become a hold", *events)
	}

	h.TouchEnd(touchAt(110, t0.Add(time.Second)))
	if len(*events) != 0 {
		t.Errorf("events = %v, no end without a start", *events)
	}
}

func TestHoldSurvivesMovementWithinSlop(t *testing.T) {
	h, events := holdRecorder()
	t0 := time.Unix(0, 0)

	h.TouchStart(touchAt(100, t0))
	h.TouchMove(touchAt(103, t0.Add(50*time.Millisecond)))

	h.Tick(t0.Add(600 * time.Millisecond))
	if len(*events) != 1 || (*events)[0] != "start" {
		t.Errorf("events = %v, jitter within the slop must not cancel", *events)
	}
}

func TestHoldEndsWhenMovedAfterFiring(t *testing.T) {
	h, events := holdRecorder()
	t0 := time.Unix(0, 0)

	h.TouchStart(touchAt(100, t0))
	h.Tick(t0.Add(600 * time.Millisecond))
	h.TouchMove(touchAt(200, t0.Add(700*time.Millisecond)))

	want := []string{"start", "end"}
	if len(*events) != 2 || (*events)[0] != want[0] || (*events)[1] != want[1] {
		t.Errorf("events = %v, want %v", *events, want)
	}

	// The sequence is spent: no refire, no second end.
	h.Tick(t0.Add(2 * time.Second))
	h.TouchEnd(touchAt(200, t0.Add(2*time.Second)))
	if len(*events) != 2 {
		t.Errorf("events = %v, spent sequence must stay spent", *events)
	}
}

func TestHoldCustomThresholdAndSlop(t *testing.T) {
	h, events := holdRecorder()
	h.Threshold = 100 * time.Millisecond
	h.Slop = 50
	t0 := time.Unix(0, 0)

	h.TouchStart(touchAt(100, t0))
	h.TouchMove(touchAt(140, t0.Add(20*time.Millisecond)))
	h.Tick(t0.Add(100 * time.Millisecond))

	if len(*events) != 1 {
		t.Errorf("events = %v, want a hold under the widened slop", *events)
	}
}

func TestHoldReportsOriginCoordinates(t *testing.T) {
	var x, y float64
	h := &HoldDetector{
		OnHoldStart: func(hx, hy float64) { x, y = hx, hy },
	}
	t0 := time.Unix(0, 0)

	h.TouchStart(touchAt(240, t0))
	h.Tick(t0.Add(time.Second))

	if x != 10 || y != 240 {
		t.Errorf("hold at (%v, %v), want the touch origin (10, 240)", x, y)
	}
}

func TestHoldIgnoresEmptyEvents(t *testing.T) {
	h, events := holdRecorder()
	t0 := time.Unix(0, 0)

	h.TouchStart(TouchEvent{})
	h.Tick(t0.Add(time.Second))
	if len(*events) != 0 {
		t.Errorf("events = %v, empty start must not arm", *events)
	}

	h.TouchStart(touchAt(100, t0))
	h.TouchMove(TouchEvent{})
	h.Tick(t0.Add(time.Second))
	if len(*events) != 1 {
		t.Errorf("events = %v, empty move must not cancel", *events)
	}
}
