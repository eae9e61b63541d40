package models

// SequencerPhase describes the sequencer control's lifecycle state.
type SequencerPhase string

const (
	// PhaseIdle means the control is visible and not playing.
	PhaseIdle SequencerPhase = "idle"

	// PhasePlaying means the auto-advance timer is running.
	PhasePlaying SequencerPhase = "playing"

	// PhaseHidden means the container is not visible. Entering this phase
	// stops playback as a side effect.
	PhaseHidden SequencerPhase = "hidden"

	// PhaseDisabled means the sequence holds at most one waypoint and the
	// control is permanently inert.
	PhaseDisabled SequencerPhase = "disabled"
)

// ButtonID identifies one transport button.
type ButtonID string

const (
	ButtonSkipFirst ButtonID = "skip-first"
	ButtonSkipPrev  ButtonID = "skip-previous"
	ButtonSkipNext  ButtonID = "skip-next"
	ButtonSkipLast  ButtonID = "skip-last"
	ButtonPlay      ButtonID = "play"
)

// TransportButtons lists the buttons in display order.
var TransportButtons = []ButtonID{
	ButtonSkipFirst,
	ButtonSkipPrev,
	ButtonSkipNext,
	ButtonSkipLast,
	ButtonPlay,
}

// DisableReason says why a transport button is disabled, and selects which
// tooltip variant the UI shows.
type DisableReason string

const (
	// ReasonNone means the button is enabled.
	ReasonNone DisableReason = "none"

	// ReasonBoundary means the position is already at the boundary the
	// button would move toward.
	ReasonBoundary DisableReason = "boundary"

	// ReasonPlaying means playback is active and the button is parked.
	ReasonPlaying DisableReason = "playing"

	// ReasonInert means the sequence is too short to step through.
	ReasonInert DisableReason = "inert"
)

// SequencerState is the sequencer's whole mutable state. It is owned
// exclusively by the sequencer engine; everyone else gets copies.
type SequencerState struct {
	// CurrentIndex is the zero-based position within the sequence.
	CurrentIndex int `json:"current_index"`

	// Playing reports whether the auto-advance timer is running.
	Playing bool `json:"playing"`

	// StepDelaySeconds is the whole-second interval between automatic
	// advances, in the range 1..20.
	StepDelaySeconds int `json:"step_delay_seconds"`

	// MinIndex and MaxIndex bound CurrentIndex while waypoints exist.
	MinIndex int `json:"min_index"`
	MaxIndex int `json:"max_index"`
}

// Degenerate reports whether the sequence has nothing to step through
// (zero or one waypoint).
func (s SequencerState) Degenerate() bool {
	return s.MaxIndex <= s.MinIndex
}

// AtFirst reports whether the position is at the lower boundary.
func (s SequencerState) AtFirst() bool {
	return s.CurrentIndex <= s.MinIndex
}

// AtLast reports whether the position is at the upper boundary.
func (s SequencerState) AtLast() bool {
	return s.CurrentIndex >= s.MaxIndex
}

// Clamp returns index forced into [MinIndex, MaxIndex].
func (s SequencerState) Clamp(index int) int {
	if index < s.MinIndex {
		return s.MinIndex
	}
	if index > s.MaxIndex {
		return s.MaxIndex
	}
	return index
}
