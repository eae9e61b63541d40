// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"github.com/placeways/waymark/internal/models"
	"github.com/placeways/waymark/internal/tui/styles"
	"github.com/placeways/waymark/internal/waytable"
)

// WaypointTable renders one page of the waypoint table with the current
// sort, filter, and highlight.
type WaypointTable struct {
	Rows        []models.Waypoint
	Highlighted string
	Page        int
	Pages       int
	Sort        waytable.SortColumn
	Descending  bool
	Filter      string
	Width       int
}

// Render draws the table header, rows, and a footer with the page count.
func (t WaypointTable) Render(styleSet styles.Styles) string {
	var b strings.Builder

	header := fmt.Sprintf("  %-24s %8s %8s  %s", "Title", "Start", "End", "Place ID")
	b.WriteString(styleSet.Title.Render(header))
	b.WriteString("\n")

	if len(t.Rows) == 0 {
		empty := "No waypoints"
		if t.Filter != "" {
			empty = fmt.Sprintf("No waypoints match %q", t.Filter)
		}
		b.WriteString(styleSet.Muted.Render("  " + empty))
		b.WriteString("\n")
	}

	for _, row := range t.Rows {
		line := fmt.Sprintf("%-24s %8d %8d  %s", truncate(row.Title, 24), row.StartYear, row.EndYear, row.PlaceID)
		if row.PlaceID == t.Highlighted {
			b.WriteString(styleSet.Selected.Render("▸ " + line))
		} else {
			b.WriteString(styleSet.Text.Render("  " + line))
		}
		b.WriteString("\n")
	}

	direction := "asc"
	if t.Descending {
		direction = "desc"
	}
	footer := fmt.Sprintf("page %d/%d  sort %s %s", t.Page+1, maxInt(t.Pages, 1), t.Sort, direction)
	if t.Filter != "" {
		footer += fmt.Sprintf("  filter %q", t.Filter)
	}
	b.WriteString(styleSet.Muted.Render("  " + footer))
	return b.String()
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
