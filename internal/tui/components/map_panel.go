// Package components provides reusable TUI components.
package components

import (
	"math"
	"strings"

	"github.com/placeways/waymark/internal/models"
	"github.com/placeways/waymark/internal/tui/styles"
)

// MapPanel plots waypoints on a character grid using an equirectangular
// projection of the dataset's bounding box.
type MapPanel struct {
	Width  int
	Height int
}

const (
	markerGlyph    = "•"
	highlightGlyph = "◉"
	waterGlyph     = "·"
)

// Render draws the waypoints, with the highlighted place drawn last so it
// wins overlapping cells.
func (p MapPanel) Render(styleSet styles.Styles, waypoints []models.Waypoint, highlightedID string) string {
	width, height := p.Width, p.Height
	if width < 8 {
		width = 8
	}
	if height < 4 {
		height = 4
	}

	grid := make([][]string, height)
	for y := range grid {
		grid[y] = make([]string, width)
		for x := range grid[y] {
			grid[y][x] = styleSet.Water.Render(waterGlyph)
		}
	}

	minLon, maxLon, minLat, maxLat := bounds(waypoints)
	plot := func(wp models.Waypoint, glyph string) {
		x := project(wp.Lon, minLon, maxLon, width)
		// Latitude grows upward, rows grow downward.
		y := height - 1 - project(wp.Lat, minLat, maxLat, height)
		grid[y][x] = glyph
	}

	var highlighted *models.Waypoint
	for i, wp := range waypoints {
		if wp.PlaceID == highlightedID {
			highlighted = &waypoints[i]
			continue
		}
		plot(wp, styleSet.Marker.Render(markerGlyph))
	}
	if highlighted != nil {
		plot(*highlighted, styleSet.Highlight.Render(highlightGlyph))
	}

	lines := make([]string, height)
	for y, row := range grid {
		lines[y] = strings.Join(row, "")
	}
	return strings.Join(lines, "\n")
}

func bounds(waypoints []models.Waypoint) (minLon, maxLon, minLat, maxLat float64) {
	minLon, minLat = math.Inf(1), math.Inf(1)
	maxLon, maxLat = math.Inf(-1), math.Inf(-1)
	for _, wp := range waypoints {
		minLon = math.Min(minLon, wp.Lon)
		maxLon = math.Max(maxLon, wp.Lon)
		minLat = math.Min(minLat, wp.Lat)
		maxLat = math.Max(maxLat, wp.Lat)
	}
	if len(waypoints) == 0 {
		return -180, 180, -90, 90
	}
	return minLon, maxLon, minLat, maxLat
}

func project(value, min, max float64, cells int) int {
	if max <= min {
		return cells / 2
	}
	cell := int(math.Round((value - min) / (max - min) * float64(cells-1)))
	if cell < 0 {
		cell = 0
	}
	if cell >= cells {
		cell = cells - 1
	}
	return cell
}
