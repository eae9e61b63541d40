// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"github.com/placeways/waymark/internal/models"
	"github.com/placeways/waymark/internal/sequencer"
	"github.com/placeways/waymark/internal/tui/styles"
)

// buttonGlyphs maps each transport button to its face. The play button
// swaps to a stop face while playback runs.
var buttonGlyphs = map[models.ButtonID]string{
	models.ButtonSkipFirst: "|«",
	models.ButtonSkipPrev:  " «",
	models.ButtonSkipNext:  "» ",
	models.ButtonSkipLast:  "»|",
	models.ButtonPlay:      " ▶",
}

const playStopGlyph = " ■"

// buttonCellWidth is the fixed rendered width of one transport cell,
// glyph plus surrounding padding. ButtonZones depends on it.
const buttonCellWidth = 4

// ButtonZone maps a transport button to the horizontal cell range it
// occupies in the rendered bar, for mouse hit testing.
type ButtonZone struct {
	ID   models.ButtonID
	MinX int
	MaxX int // exclusive
}

// RenderTransportBar renders the transport buttons in display order with
// a separator before the play button. Disabled buttons render muted.
func RenderTransportBar(styleSet styles.Styles, affordances []sequencer.ButtonAffordance, playing bool) string {
	byID := make(map[models.ButtonID]sequencer.ButtonAffordance, len(affordances))
	for _, a := range affordances {
		byID[a.ID] = a
	}

	var parts []string
	for _, id := range models.TransportButtons {
		if id == models.ButtonPlay {
			parts = append(parts, styleSet.Border.Render("│"))
		}
		a := byID[id]
		glyph := buttonGlyphs[id]
		if id == models.ButtonPlay && playing {
			glyph = playStopGlyph
		}
		cell := fmt.Sprintf(" %s ", glyph)
		if a.Enabled {
			parts = append(parts, styleSet.Accent.Render(cell))
		} else {
			parts = append(parts, styleSet.Disabled.Render(cell))
		}
	}
	return strings.Join(parts, "")
}

// ButtonZones returns the hit regions of the bar rendered at column x0.
// The ranges mirror the cell layout of RenderTransportBar.
func ButtonZones(x0 int) []ButtonZone {
	zones := make([]ButtonZone, 0, len(models.TransportButtons))
	x := x0
	for _, id := range models.TransportButtons {
		if id == models.ButtonPlay {
			x++ // separator column
		}
		zones = append(zones, ButtonZone{ID: id, MinX: x, MaxX: x + buttonCellWidth})
		x += buttonCellWidth
	}
	return zones
}

// ZoneAt resolves a column to the button whose cell contains it.
func ZoneAt(zones []ButtonZone, x int) (models.ButtonID, bool) {
	for _, z := range zones {
		if x >= z.MinX && x < z.MaxX {
			return z.ID, true
		}
	}
	return "", false
}

// RenderTransportHints renders the per-button tooltip of whichever button
// the user would reach for next: the play button's tooltip, plus the
// tooltip of any disabled skip button so the user sees why it is parked.
func RenderTransportHints(styleSet styles.Styles, affordances []sequencer.ButtonAffordance) string {
	var lines []string
	for _, a := range affordances {
		if a.ID == models.ButtonPlay {
			lines = append(lines, styleSet.Muted.Render(a.Tooltip))
			continue
		}
		if !a.Enabled && a.Reason == models.ReasonBoundary {
			lines = append(lines, styleSet.Disabled.Render(a.Tooltip))
		}
	}
	return strings.Join(lines, "\n")
}
