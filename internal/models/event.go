package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// EventType categorizes events in the system.
type EventType string

const (
	// Sequencer events
	EventTypeSequencerShown   EventType = "sequencer.shown"
	EventTypeSequencerHidden  EventType = "sequencer.hidden"
	EventTypeSequencerStepped EventType = "sequencer.stepped"
	EventTypePlaybackStarted  EventType = "playback.started"
	EventTypePlaybackStopped  EventType = "playback.stopped"
	EventTypeStepDelayChanged EventType = "playback.delay_changed"

	// Table events
	EventTypeWaypointHighlighted EventType = "waypoint.highlighted"
	EventTypeSortChanged         EventType = "table.sort_changed"

	// Temporal filter events
	EventTypeDatelineChanged EventType = "dateline.changed"

	// System events
	EventTypeError   EventType = "error"
	EventTypeWarning EventType = "warning"
)

// EntityType identifies the type of entity an event relates to.
type EntityType string

const (
	EntityTypeSequencer EntityType = "sequencer"
	EntityTypeWaypoint  EntityType = "waypoint"
	EntityTypeTable     EntityType = "table"
	EntityTypeDateline  EntityType = "dateline"
	EntityTypeSystem    EntityType = "system"
)

// Event represents an append-only log entry.
type Event struct {
	// ID is the unique identifier for the event.
	ID string `json:"id"`

	// Timestamp is when the event occurred.
	Timestamp time.Time `json:"timestamp"`

	// Type categorizes the event.
	Type EventType `json:"type"`

	// EntityType identifies what kind of entity this event relates to.
	EntityType EntityType `json:"entity_type"`

	// EntityID is the ID of the related entity.
	EntityID string `json:"entity_id"`

	// Payload contains event-specific data.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Validate checks if the event is valid.
func (e *Event) Validate() error {
	if strings.TrimSpace(string(e.Type)) == "" {
		return fmt.Errorf("event type is required")
	}
	if strings.TrimSpace(string(e.EntityType)) == "" {
		return fmt.Errorf("entity_type is required")
	}
	if strings.TrimSpace(e.EntityID) == "" {
		return fmt.Errorf("entity_id is required")
	}
	return nil
}

// SteppedPayload is the payload for sequencer.stepped events.
type SteppedPayload struct {
	PlaceID   string `json:"place_id"`
	Index     int    `json:"index"`
	Playing   bool   `json:"playing"`
	Requested string `json:"requested,omitempty"`
}

// PlaybackPayload is the payload for playback.started and playback.stopped
// events.
type PlaybackPayload struct {
	FromIndex        int    `json:"from_index"`
	StepDelaySeconds int    `json:"step_delay_seconds"`
	Reason           string `json:"reason,omitempty"`
}

// HighlightedPayload is the payload for waypoint.highlighted events.
type HighlightedPayload struct {
	PlaceID string `json:"place_id"`
	Index   int    `json:"index"`
}

// DatelineChangedPayload is the payload for dateline.changed events.
type DatelineChangedPayload struct {
	FromValue float64 `json:"from_value"`
	ToValue   float64 `json:"to_value"`
}

// ErrorPayload is the payload for error events.
type ErrorPayload struct {
	Error   string `json:"error"`
	Context string `json:"context,omitempty"`
}
