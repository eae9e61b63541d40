package waytable

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/placeways/waymark/internal/models"
)

// LoadWaypoints reads a waypoint dataset from disk. The file holds a JSON
// array of waypoint records in insertion order; the table imposes its own
// sort.
func LoadWaypoints(path string) ([]models.Waypoint, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("dataset path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}

	waypoints, err := parseWaypoints(data)
	if err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	return waypoints, nil
}

func parseWaypoints(data []byte) ([]models.Waypoint, error) {
	var waypoints []models.Waypoint
	if err := json.Unmarshal(data, &waypoints); err != nil {
		return nil, err
	}
	for i, w := range waypoints {
		if strings.TrimSpace(w.PlaceID) == "" {
			return nil, fmt.Errorf("waypoint %d has no place_id", i)
		}
	}
	return waypoints, nil
}
