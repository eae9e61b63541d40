package sequencer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/placeways/waymark/internal/models"
)

func affordanceByID(t *testing.T, affordances []ButtonAffordance, id models.ButtonID) ButtonAffordance {
	t.Helper()
	for _, a := range affordances {
		if a.ID == id {
			return a
		}
	}
	t.Fatalf("no affordance for %s", id)
	return ButtonAffordance{}
}

func idleState(index, maxIndex int) models.SequencerState {
	return models.SequencerState{
		CurrentIndex:     index,
		StepDelaySeconds: 3,
		MinIndex:         0,
		MaxIndex:         maxIndex,
	}
}

func TestAffordancesAtFirstWaypoint(t *testing.T) {
	affordances := Affordances(idleState(0, 4))

	require.False(t, affordanceByID(t, affordances, models.ButtonSkipFirst).Enabled)
	require.False(t, affordanceByID(t, affordances, models.ButtonSkipPrev).Enabled)
	require.True(t, affordanceByID(t, affordances, models.ButtonSkipNext).Enabled)
	require.True(t, affordanceByID(t, affordances, models.ButtonSkipLast).Enabled)
	require.True(t, affordanceByID(t, affordances, models.ButtonPlay).Enabled)

	first := affordanceByID(t, affordances, models.ButtonSkipFirst)
	require.Equal(t, models.ReasonBoundary, first.Reason)
	require.Equal(t, "Already at the first waypoint", first.Tooltip)
}

func TestAffordancesAtLastWaypoint(t *testing.T) {
	affordances := Affordances(idleState(4, 4))

	require.True(t, affordanceByID(t, affordances, models.ButtonSkipFirst).Enabled)
	require.True(t, affordanceByID(t, affordances, models.ButtonSkipPrev).Enabled)
	require.False(t, affordanceByID(t, affordances, models.ButtonSkipNext).Enabled)
	require.False(t, affordanceByID(t, affordances, models.ButtonSkipLast).Enabled)

	play := affordanceByID(t, affordances, models.ButtonPlay)
	require.False(t, play.Enabled)
	require.Equal(t, models.ReasonBoundary, play.Reason)
	require.Equal(t, "Cannot play from the last waypoint", play.Tooltip)
}

func TestAffordancesInterior(t *testing.T) {
	for _, a := range Affordances(idleState(2, 4)) {
		require.True(t, a.Enabled, "button %s", a.ID)
		require.Equal(t, models.ReasonNone, a.Reason)
	}
}

func TestAffordancesWhilePlaying(t *testing.T) {
	state := idleState(2, 4)
	state.Playing = true
	affordances := Affordances(state)

	for _, id := range []models.ButtonID{
		models.ButtonSkipFirst, models.ButtonSkipPrev,
		models.ButtonSkipNext, models.ButtonSkipLast,
	} {
		a := affordanceByID(t, affordances, id)
		require.False(t, a.Enabled, "button %s", id)
		require.Equal(t, models.ReasonPlaying, a.Reason)
	}

	play := affordanceByID(t, affordances, models.ButtonPlay)
	require.True(t, play.Enabled, "play keeps acting as stop during playback")
	require.Equal(t, "Stop playback", play.Tooltip)
}

func TestAffordancesDegenerate(t *testing.T) {
	for _, a := range Affordances(idleState(0, 0)) {
		require.False(t, a.Enabled, "button %s", a.ID)
		require.Equal(t, models.ReasonInert, a.Reason)
	}
}

func TestAffordancesArePure(t *testing.T) {
	state := idleState(1, 3)
	first := Affordances(state)
	second := Affordances(state)
	require.Equal(t, first, second)
}

func TestEveryButtonReasonHasALabel(t *testing.T) {
	reasons := []models.DisableReason{
		models.ReasonNone, models.ReasonBoundary,
		models.ReasonPlaying, models.ReasonInert,
	}
	for _, id := range models.TransportButtons {
		for _, reason := range reasons {
			require.NotEmpty(t, buttonLabels[labelKey{id, reason}],
				"missing label for %s/%s", id, reason)
		}
	}
}
