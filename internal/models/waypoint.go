package models

// Waypoint is one place in the sequenced collection.
type Waypoint struct {
	// PlaceID is the stable place identifier shared with the table and map.
	PlaceID string `json:"place_id"`

	// Title is the display name of the place.
	Title string `json:"title"`

	// Lon and Lat locate the place on the map, in degrees.
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`

	// StartYear and EndYear bound the place's attested time span.
	// They feed the temporal filter; zero values mean "unknown".
	StartYear int `json:"start_year"`
	EndYear   int `json:"end_year"`

	// Dataset names the collection the place was loaded from.
	Dataset string `json:"dataset,omitempty"`
}

// WaypointSequence is the ordered projection of the table's current sort
// order, one place identifier per row. It is re-derived every time the
// sequencer control is shown and is never persisted.
type WaypointSequence []string

// SequenceFrom projects a sequence from waypoints in table order.
func SequenceFrom(waypoints []Waypoint) WaypointSequence {
	seq := make(WaypointSequence, 0, len(waypoints))
	for _, w := range waypoints {
		seq = append(seq, w.PlaceID)
	}
	return seq
}

// IndexOf returns the zero-based position of a place identifier in the
// sequence, or -1 when the identifier is not part of it.
func (s WaypointSequence) IndexOf(placeID string) int {
	for i, pid := range s {
		if pid == placeID {
			return i
		}
	}
	return -1
}

// At returns the place identifier at index, or "" when the index is out of
// range.
func (s WaypointSequence) At(index int) string {
	if index < 0 || index >= len(s) {
		return ""
	}
	return s[index]
}

// MaxIndex returns the last valid index, -1 for an empty sequence.
func (s WaypointSequence) MaxIndex() int {
	return len(s) - 1
}
