package sequencer

import "github.com/placeways/waymark/internal/models"

// ButtonAffordance is one transport button's derived presentation: whether
// it accepts gestures and which text variant the UI shows as tooltip and
// accessible label.
type ButtonAffordance struct {
	ID      models.ButtonID
	Enabled bool
	Reason  models.DisableReason
	Tooltip string
}

// labelKey selects a tooltip variant. Keying by (button, reason) keeps the
// text table stable when the button set changes, instead of indexing into
// positional label arrays.
type labelKey struct {
	button models.ButtonID
	reason models.DisableReason
}

var buttonLabels = map[labelKey]string{
	{models.ButtonSkipFirst, models.ReasonNone}:     "Go to the first waypoint",
	{models.ButtonSkipFirst, models.ReasonBoundary}: "Already at the first waypoint",
	{models.ButtonSkipFirst, models.ReasonPlaying}:  "Unavailable during playback",
	{models.ButtonSkipFirst, models.ReasonInert}:    "Sequence has nothing to step through",

	{models.ButtonSkipPrev, models.ReasonNone}:     "Go to the previous waypoint",
	{models.ButtonSkipPrev, models.ReasonBoundary}: "Already at the first waypoint",
	{models.ButtonSkipPrev, models.ReasonPlaying}:  "Unavailable during playback",
	{models.ButtonSkipPrev, models.ReasonInert}:    "Sequence has nothing to step through",

	{models.ButtonSkipNext, models.ReasonNone}:     "Go to the next waypoint",
	{models.ButtonSkipNext, models.ReasonBoundary}: "Already at the last waypoint",
	{models.ButtonSkipNext, models.ReasonPlaying}:  "Unavailable during playback",
	{models.ButtonSkipNext, models.ReasonInert}:    "Sequence has nothing to step through",

	{models.ButtonSkipLast, models.ReasonNone}:     "Go to the last waypoint",
	{models.ButtonSkipLast, models.ReasonBoundary}: "Already at the last waypoint",
	{models.ButtonSkipLast, models.ReasonPlaying}:  "Unavailable during playback",
	{models.ButtonSkipLast, models.ReasonInert}:    "Sequence has nothing to step through",

	{models.ButtonPlay, models.ReasonNone}:     "Play the sequence (hold for settings)",
	{models.ButtonPlay, models.ReasonBoundary}: "Cannot play from the last waypoint",
	{models.ButtonPlay, models.ReasonPlaying}:  "Stop playback",
	{models.ButtonPlay, models.ReasonInert}:    "Sequence has nothing to step through",
}

// Affordances derives every transport button's presentation from the state.
// It is a pure function of (CurrentIndex, Playing, MinIndex, MaxIndex):
// the same tuple always yields the same enabled set and label set.
func Affordances(state models.SequencerState) []ButtonAffordance {
	out := make([]ButtonAffordance, 0, len(models.TransportButtons))
	for _, id := range models.TransportButtons {
		reason := disableReason(state, id)
		out = append(out, ButtonAffordance{
			ID:      id,
			Enabled: reason == models.ReasonNone || enabledWhilePlaying(id, reason),
			Reason:  reason,
			Tooltip: buttonLabels[labelKey{id, reason}],
		})
	}
	return out
}

// enabledWhilePlaying: the play button stays live during playback and acts
// as "stop"; its tooltip still comes from the playing variant.
func enabledWhilePlaying(id models.ButtonID, reason models.DisableReason) bool {
	return id == models.ButtonPlay && reason == models.ReasonPlaying
}

func disableReason(state models.SequencerState, id models.ButtonID) models.DisableReason {
	if state.Degenerate() {
		return models.ReasonInert
	}
	if state.Playing {
		return models.ReasonPlaying
	}

	switch id {
	case models.ButtonSkipFirst, models.ButtonSkipPrev:
		if state.AtFirst() {
			return models.ReasonBoundary
		}
	case models.ButtonSkipNext, models.ButtonSkipLast, models.ButtonPlay:
		if state.AtLast() {
			return models.ReasonBoundary
		}
	}
	return models.ReasonNone
}
