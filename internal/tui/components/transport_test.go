package components

import (
	"strings"
	"testing"

	"github.com/placeways/waymark/internal/models"
	"github.com/placeways/waymark/internal/sequencer"
	"github.com/placeways/waymark/internal/tui/styles"
)

func interiorState() models.SequencerState {
	return models.SequencerState{CurrentIndex: 2, StepDelaySeconds: 3, MinIndex: 0, MaxIndex: 5}
}

func TestRenderTransportBar(t *testing.T) {
	styleSet := styles.DefaultStyles()

	t.Run("shows all button glyphs", func(t *testing.T) {
		bar := RenderTransportBar(styleSet, sequencer.Affordances(interiorState()), false)
		for _, glyph := range []string{"|«", "«", "»", "»|", "▶", "│"} {
			if !strings.Contains(bar, glyph) {
				t.Errorf("expected %q in bar, got: %s", glyph, bar)
			}
		}
	})

	t.Run("play shows stop face while playing", func(t *testing.T) {
		state := interiorState()
		state.Playing = true
		bar := RenderTransportBar(styleSet, sequencer.Affordances(state), true)
		if !strings.Contains(bar, "■") {
			t.Errorf("expected stop glyph, got: %s", bar)
		}
		if strings.Contains(bar, "▶") {
			t.Errorf("did not expect play glyph while playing, got: %s", bar)
		}
	})
}

func TestButtonZones(t *testing.T) {
	zones := ButtonZones(0)
	if len(zones) != len(models.TransportButtons) {
		t.Fatalf("expected %d zones, got %d", len(models.TransportButtons), len(zones))
	}

	// Zones are contiguous except for the separator before play.
	for i := 1; i < len(zones); i++ {
		gap := zones[i].MinX - zones[i-1].MaxX
		want := 0
		if zones[i].ID == models.ButtonPlay {
			want = 1
		}
		if gap != want {
			t.Errorf("zone %s: gap %d, want %d", zones[i].ID, gap, want)
		}
	}

	if id, ok := ZoneAt(zones, zones[4].MinX); !ok || id != models.ButtonPlay {
		t.Errorf("expected play at column %d, got %s ok=%v", zones[4].MinX, id, ok)
	}
	if _, ok := ZoneAt(zones, zones[4].MaxX+10); ok {
		t.Error("expected miss beyond the bar")
	}
}

func TestRenderTransportHints(t *testing.T) {
	styleSet := styles.DefaultStyles()

	t.Run("play tooltip always present", func(t *testing.T) {
		hints := RenderTransportHints(styleSet, sequencer.Affordances(interiorState()))
		if !strings.Contains(hints, "Play the sequence") {
			t.Errorf("expected play tooltip, got: %s", hints)
		}
	})

	t.Run("boundary tooltip surfaces at the end", func(t *testing.T) {
		state := interiorState()
		state.CurrentIndex = state.MaxIndex
		hints := RenderTransportHints(styleSet, sequencer.Affordances(state))
		if !strings.Contains(hints, "Cannot play from the last waypoint") {
			t.Errorf("expected boundary explanation, got: %s", hints)
		}
	})
}
