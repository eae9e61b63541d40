// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"github.com/placeways/waymark/internal/tui/styles"
)

// DatelineBar renders the temporal range selector as a horizontal track
// with the selected window filled in.
type DatelineBar struct {
	From  int
	To    int
	Min   int
	Max   int
	Width int
}

// Render draws the track plus a numeric readout of the selected range.
func (d DatelineBar) Render(styleSet styles.Styles) string {
	width := d.Width
	if width < 16 {
		width = 16
	}

	span := d.Max - d.Min
	cell := func(year int) int {
		if span <= 0 {
			return 0
		}
		c := (year - d.Min) * (width - 1) / span
		if c < 0 {
			c = 0
		}
		if c >= width {
			c = width - 1
		}
		return c
	}

	from, to := cell(d.From), cell(d.To)
	var track strings.Builder
	for x := 0; x < width; x++ {
		if x >= from && x <= to {
			track.WriteString(styleSet.Accent.Render("━"))
		} else {
			track.WriteString(styleSet.Border.Render("─"))
		}
	}

	readout := fmt.Sprintf(" %d to %d", d.From, d.To)
	return track.String() + styleSet.Muted.Render(readout)
}
