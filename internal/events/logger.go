// Package events provides helper functions for recording Waymark events.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/placeways/waymark/internal/models"
)

// Repository is the minimal interface needed to write events.
type Repository interface {
	Create(ctx context.Context, event *models.Event) error
}

// Log records one event with an arbitrary payload. A nil payload is stored
// without one.
func Log(ctx context.Context, repo Repository, eventType models.EventType, entityType models.EntityType, entityID string, payload any) error {
	if repo == nil {
		return fmt.Errorf("event repository is required")
	}

	event := &models.Event{
		ID:         uuid.NewString(),
		Timestamp:  time.Now().UTC(),
		Type:       eventType,
		EntityType: entityType,
		EntityID:   entityID,
	}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal event payload: %w", err)
		}
		event.Payload = data
	}
	if err := event.Validate(); err != nil {
		return err
	}

	return repo.Create(ctx, event)
}

// LogWaypointHighlighted records a highlight change for a waypoint.
func LogWaypointHighlighted(ctx context.Context, repo Repository, placeID string, index int) error {
	return Log(ctx, repo, models.EventTypeWaypointHighlighted, models.EntityTypeWaypoint, placeID,
		models.HighlightedPayload{PlaceID: placeID, Index: index})
}

// LogDatelineChanged records a temporal filter range change.
func LogDatelineChanged(ctx context.Context, repo Repository, datelineID string, fromValue, toValue float64) error {
	return Log(ctx, repo, models.EventTypeDatelineChanged, models.EntityTypeDateline, datelineID,
		models.DatelineChangedPayload{FromValue: fromValue, ToValue: toValue})
}
