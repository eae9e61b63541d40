package waytable

import "github.com/placeways/waymark/internal/models"

// BuiltinWaypoints returns the demo dataset bundled with Waymark, used when
// no dataset path is configured. A handful of ancient Mediterranean ports,
// enough to exercise sorting, search and playback.
func BuiltinWaypoints() []models.Waypoint {
	return []models.Waypoint{
		{PlaceID: "wp-carthage", Title: "Carthage", Lon: 10.323, Lat: 36.853, StartYear: -814, EndYear: 698, Dataset: "builtin"},
		{PlaceID: "wp-alexandria", Title: "Alexandria", Lon: 29.919, Lat: 31.200, StartYear: -331, EndYear: 1900, Dataset: "builtin"},
		{PlaceID: "wp-byzantium", Title: "Byzantium", Lon: 28.980, Lat: 41.013, StartYear: -657, EndYear: 1930, Dataset: "builtin"},
		{PlaceID: "wp-syracuse", Title: "Syracuse", Lon: 15.287, Lat: 37.069, StartYear: -734, EndYear: 1900, Dataset: "builtin"},
		{PlaceID: "wp-tyre", Title: "Tyre", Lon: 35.196, Lat: 33.271, StartYear: -2750, EndYear: 1900, Dataset: "builtin"},
		{PlaceID: "wp-massalia", Title: "Massalia", Lon: 5.370, Lat: 43.296, StartYear: -600, EndYear: 1900, Dataset: "builtin"},
		{PlaceID: "wp-gades", Title: "Gades", Lon: -6.292, Lat: 36.529, StartYear: -1104, EndYear: 1900, Dataset: "builtin"},
		{PlaceID: "wp-ostia", Title: "Ostia", Lon: 12.291, Lat: 41.756, StartYear: -620, EndYear: 537, Dataset: "builtin"},
		{PlaceID: "wp-ephesus", Title: "Ephesus", Lon: 27.341, Lat: 37.941, StartYear: -1000, EndYear: 1403, Dataset: "builtin"},
		{PlaceID: "wp-leptis", Title: "Leptis Magna", Lon: 14.293, Lat: 32.638, StartYear: -700, EndYear: 647, Dataset: "builtin"},
		{PlaceID: "wp-corinth", Title: "Corinth", Lon: 22.933, Lat: 37.906, StartYear: -900, EndYear: 1858, Dataset: "builtin"},
		{PlaceID: "wp-rhodes", Title: "Rhodes", Lon: 28.227, Lat: 36.434, StartYear: -408, EndYear: 1900, Dataset: "builtin"},
	}
}
