// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"github.com/placeways/waymark/internal/tui/styles"
)

// DelayOverlay is the step-delay settings panel revealed by a long press
// on the play button.
type DelayOverlay struct {
	Selected int
	Min      int
	Max      int
}

// Render draws the selectable delay values with the current one marked.
func (o DelayOverlay) Render(styleSet styles.Styles) string {
	var lines []string
	lines = append(lines, styleSet.Title.Render("Step delay"))
	lines = append(lines, styleSet.Muted.Render("seconds between automatic advances"))
	lines = append(lines, "")

	var row []string
	for v := o.Min; v <= o.Max; v++ {
		cell := fmt.Sprintf(" %d ", v)
		if v == o.Selected {
			row = append(row, styleSet.Selected.Render(cell))
		} else {
			row = append(row, styleSet.Text.Render(cell))
		}
	}
	lines = append(lines, strings.Join(row, ""))
	lines = append(lines, "")
	lines = append(lines, styleSet.Muted.Render("←/→ adjust  enter apply  esc close"))

	return styleSet.Panel.Render(strings.Join(lines, "\n"))
}
