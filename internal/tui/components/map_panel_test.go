package components

import (
	"strings"
	"testing"

	"github.com/placeways/waymark/internal/models"
	"github.com/placeways/waymark/internal/tui/styles"
)

func TestMapPanelRender(t *testing.T) {
	styleSet := styles.DefaultStyles()
	waypoints := []models.Waypoint{
		{PlaceID: "wp-a", Title: "Alpha", Lon: -10, Lat: 30},
		{PlaceID: "wp-b", Title: "Beta", Lon: 10, Lat: 40},
		{PlaceID: "wp-c", Title: "Gamma", Lon: 30, Lat: 35},
	}

	t.Run("highlight rendered once", func(t *testing.T) {
		out := MapPanel{Width: 40, Height: 10}.Render(styleSet, waypoints, "wp-b")
		if got := strings.Count(out, highlightGlyph); got != 1 {
			t.Errorf("expected exactly one highlight marker, got %d", got)
		}
		if got := strings.Count(out, markerGlyph); got != 2 {
			t.Errorf("expected two plain markers, got %d", got)
		}
	})

	t.Run("no highlight", func(t *testing.T) {
		out := MapPanel{Width: 40, Height: 10}.Render(styleSet, waypoints, "")
		if strings.Contains(out, highlightGlyph) {
			t.Error("did not expect a highlight marker")
		}
		if got := strings.Count(out, markerGlyph); got != 3 {
			t.Errorf("expected three plain markers, got %d", got)
		}
	})

	t.Run("grid dimensions", func(t *testing.T) {
		out := MapPanel{Width: 40, Height: 10}.Render(styleSet, waypoints, "")
		lines := strings.Split(out, "\n")
		if len(lines) != 10 {
			t.Errorf("expected 10 rows, got %d", len(lines))
		}
	})

	t.Run("empty dataset draws water only", func(t *testing.T) {
		out := MapPanel{Width: 20, Height: 5}.Render(styleSet, nil, "")
		if strings.Contains(out, markerGlyph) || strings.Contains(out, highlightGlyph) {
			t.Error("expected no markers on an empty map")
		}
	})
}

func TestProject(t *testing.T) {
	if got := project(5, 0, 10, 11); got != 5 {
		t.Errorf("midpoint: got %d, want 5", got)
	}
	if got := project(0, 0, 10, 11); got != 0 {
		t.Errorf("min edge: got %d, want 0", got)
	}
	if got := project(10, 0, 10, 11); got != 10 {
		t.Errorf("max edge: got %d, want 10", got)
	}
	if got := project(7, 7, 7, 9); got != 4 {
		t.Errorf("degenerate range centers: got %d, want 4", got)
	}
}
