// Package gesture implements press-and-hold detection for transport
// controls. The detector is a small synchronous state machine, kept apart
// from any UI toolkit so both pointer and keyboard hosts can feed it raw
// press/release instants.
package gesture

import "time"

// DefaultHoldThreshold is how long a press must be held to count as a hold.
const DefaultHoldThreshold = time.Second

// Result classifies a completed press.
type Result string

const (
	// ResultNone means nothing completed (release without press, or a
	// press that is still in flight).
	ResultNone Result = "none"

	// ResultTap is a press released before the hold threshold.
	ResultTap Result = "tap"

	// ResultHold is a press held at or beyond the threshold.
	ResultHold Result = "hold"
)

// Phase is the detector's current state.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhasePressed Phase = "pressed"
)

// PressDetector distinguishes a short press (tap) from a press-and-hold.
// The play button routes taps to play/pause and holds to the step-delay
// settings.
type PressDetector struct {
	threshold time.Duration
	phase     Phase
	pressedAt time.Time
}

// NewPressDetector creates a detector. A non-positive threshold falls back
// to DefaultHoldThreshold.
func NewPressDetector(threshold time.Duration) *PressDetector {
	if threshold <= 0 {
		threshold = DefaultHoldThreshold
	}
	return &PressDetector{threshold: threshold, phase: PhaseIdle}
}

// Phase returns the detector's current phase.
func (d *PressDetector) Phase() Phase {
	return d.phase
}

// Press records the start of a press. A second press while one is in
// flight is ignored.
func (d *PressDetector) Press(at time.Time) {
	if d.phase == PhasePressed {
		return
	}
	d.phase = PhasePressed
	d.pressedAt = at
}

// Release completes the press and classifies it. Releasing without a
// preceding press yields ResultNone.
func (d *PressDetector) Release(at time.Time) Result {
	if d.phase != PhasePressed {
		return ResultNone
	}
	d.phase = PhaseIdle

	if at.Sub(d.pressedAt) >= d.threshold {
		return ResultHold
	}
	return ResultTap
}

// HeldFor reports how long the current press has been held as of now, and
// whether a press is in flight. Hosts that want to reveal the settings
// while the button is still down poll this.
func (d *PressDetector) HeldFor(now time.Time) (time.Duration, bool) {
	if d.phase != PhasePressed {
		return 0, false
	}
	return now.Sub(d.pressedAt), true
}

// Cancel abandons an in-flight press without classifying it.
func (d *PressDetector) Cancel() {
	d.phase = PhaseIdle
}
