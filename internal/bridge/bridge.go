// Package bridge keeps the sequencer engine, the sortable waypoint table
// and the map's highlighted feature in lockstep. The table's highlight
// change is the single authoritative source the bridge reads back to
// resynchronize the sequencer position, so a user selecting a row manually
// flows through the same path as a transport gesture.
package bridge

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/placeways/waymark/internal/events"
	"github.com/placeways/waymark/internal/logging"
	"github.com/placeways/waymark/internal/models"
	"github.com/placeways/waymark/internal/sequencer"
)

// subscriberName identifies the bridge's table subscription.
const subscriberName = "sequencer-bridge"

// Table is the sortable table collaborator contract. The host provides the
// implementation; the bridge only relies on these narrow, synchronous
// calls, complete when they return.
type Table interface {
	// SortOrder returns all rows in the table's current sort order, not
	// its insertion order.
	SortOrder() []models.Waypoint

	// ScrollToRow scrolls to and highlights the row for a place
	// identifier.
	ScrollToRow(placeID string) error

	// Highlighted returns the currently highlighted row, if any.
	Highlighted() (placeID string, ok bool)

	// SearchFilter and ClearSearchFilter expose the table's search box.
	SearchFilter() string
	ClearSearchFilter()

	// OnHighlight and Unsubscribe manage named highlight subscriptions.
	OnHighlight(name string, fn func(placeID string)) error
	Unsubscribe(name string) error
}

// Control is what the bridge registers on the map: the host calls Toggle to
// show or hide the sequencer and UpdateButtons whenever it wants the
// affordances re-derived.
type Control interface {
	Toggle(show ...bool)
	UpdateButtons()
}

// Map is the map collaborator contract: control registration and feature
// selection. Rendering internals stay behind it.
type Map interface {
	AddControl(control Control, position string)
	SetHighlight(placeID string)
}

// Bridge wires one sequencer engine to a table and a map.
type Bridge struct {
	engine *sequencer.Engine
	table  Table
	mapper Map
	repo   events.Repository
	logger zerolog.Logger

	mu  sync.RWMutex
	seq models.WaypointSequence
}

// New creates a Bridge. The event repository may be nil when nobody wants
// the activity log.
func New(engine *sequencer.Engine, table Table, mapper Map, repo events.Repository) *Bridge {
	return &Bridge{
		engine: engine,
		table:  table,
		mapper: mapper,
		repo:   repo,
		logger: logging.Component("bridge"),
	}
}

// Attach registers the bridge as a map control and subscribes it to table
// highlight changes and playback steps.
func (b *Bridge) Attach(position string) error {
	if err := b.table.OnHighlight(subscriberName, b.onHighlight); err != nil {
		return err
	}
	b.engine.SetOnStep(b.onStep)
	b.mapper.AddControl(b, position)
	b.logger.Debug().Str("position", position).Msg("control attached")
	return nil
}

// Detach unsubscribes the bridge from the table.
func (b *Bridge) Detach() error {
	b.engine.SetOnStep(nil)
	return b.table.Unsubscribe(subscriberName)
}

// Engine returns the wired sequencer engine.
func (b *Bridge) Engine() *sequencer.Engine {
	return b.engine
}

// Sequence returns a copy of the current waypoint sequence projection.
func (b *Bridge) Sequence() models.WaypointSequence {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append(models.WaypointSequence(nil), b.seq...)
}

// Toggle flips the control's visibility, or forces it with the optional
// bool. It always stops playback first. Showing re-derives the waypoint
// sequence from the table's current sort order, so a resort made while
// hidden is picked up lazily here.
func (b *Bridge) Toggle(show ...bool) {
	target := !b.engine.Visible()
	if len(show) > 0 {
		target = show[0]
	}

	b.engine.Stop()

	if !target {
		b.engine.SetVisible(false)
		b.logEvent(models.EventTypeSequencerHidden, nil)
		return
	}

	seq := models.SequenceFrom(b.table.SortOrder())
	b.mu.Lock()
	b.seq = seq
	b.mu.Unlock()

	b.engine.SetBounds(0, seq.MaxIndex())
	b.engine.SetVisible(true)
	b.logger.Debug().Int("waypoints", len(seq)).Msg("sequence derived from table sort order")
	b.logEvent(models.EventTypeSequencerShown, nil)
}

// UpdateButtons re-publishes the engine state so affordances are
// re-derived. Safe to call any time the table highlight changes.
func (b *Bridge) UpdateButtons() {
	b.engine.UpdateButtons()
}

// Skip handles a non-play transport gesture. The search filter is cleared
// first so the intended row is visible, then the new position is pushed
// into the table; the table's highlight event carries it back into the
// engine and onto the map.
func (b *Bridge) Skip(button models.ButtonID) {
	b.table.ClearSearchFilter()

	if _, ok := b.table.Highlighted(); !ok {
		// No row selected: defer to the table by re-asserting its own
		// highlight instead of acting on the index. Nothing is
		// highlighted, so there is nothing to re-assert and the skip
		// ends here.
		b.logger.Debug().Str("button", string(button)).Msg("no highlighted row, deferring to table")
		return
	}

	var (
		index int
		moved bool
	)
	switch button {
	case models.ButtonSkipFirst:
		index, moved = b.engine.SkipFirst()
	case models.ButtonSkipPrev:
		index, moved = b.engine.SkipPrev()
	case models.ButtonSkipNext:
		index, moved = b.engine.SkipNext()
	case models.ButtonSkipLast:
		index, moved = b.engine.SkipLast()
	default:
		return
	}
	if !moved {
		return
	}

	b.push(index, string(button))
}

// PlayPause handles the play/pause gesture. Unlike the skips, a press with
// no highlighted row does not defer to the table: playback still needs a
// deterministic start point, so it begins just before the first waypoint.
func (b *Bridge) PlayPause() {
	b.table.ClearSearchFilter()

	state := b.engine.State()
	if state.Playing {
		b.engine.TogglePlay()
		b.logEvent(models.EventTypePlaybackStopped, models.PlaybackPayload{
			FromIndex:        state.CurrentIndex,
			StepDelaySeconds: state.StepDelaySeconds,
			Reason:           "user",
		})
		return
	}

	var started bool
	if _, ok := b.table.Highlighted(); !ok {
		started = b.engine.PlayFromStart()
	} else {
		started = b.engine.TogglePlay()
	}
	if started {
		b.logEvent(models.EventTypePlaybackStarted, models.PlaybackPayload{
			FromIndex:        state.CurrentIndex,
			StepDelaySeconds: state.StepDelaySeconds,
		})
	}
}

// push maps an index to its place identifier and scrolls the table there.
func (b *Bridge) push(index int, requested string) {
	b.mu.RLock()
	placeID := b.seq.At(index)
	b.mu.RUnlock()
	if placeID == "" {
		return
	}

	if err := b.table.ScrollToRow(placeID); err != nil {
		b.logger.Warn().Err(err).Str("place_id", placeID).Msg("scroll to row failed")
		return
	}

	b.logEvent(models.EventTypeSequencerStepped, models.SteppedPayload{
		PlaceID:   placeID,
		Index:     index,
		Playing:   b.engine.State().Playing,
		Requested: requested,
	})
}

// onStep receives each playback advance and pushes it into the table. The
// resulting highlight event, not this call, updates the map and the engine.
func (b *Bridge) onStep(index int) {
	b.push(index, "")
}

// onHighlight is the read-back path: every highlight change, whether caused
// by the sequencer or by the user clicking a row, resynchronizes the engine
// position and the map's selected feature through this one spot.
func (b *Bridge) onHighlight(placeID string) {
	b.mu.RLock()
	index := b.seq.IndexOf(placeID)
	b.mu.RUnlock()

	if index >= 0 {
		b.engine.SetIndex(index)
	}
	b.mapper.SetHighlight(placeID)
	b.engine.UpdateButtons()
}

func (b *Bridge) logEvent(eventType models.EventType, payload any) {
	if b.repo == nil {
		return
	}
	if err := events.Log(context.Background(), b.repo, eventType, models.EntityTypeSequencer, b.engine.ID(), payload); err != nil {
		b.logger.Warn().Err(err).Str("event_type", string(eventType)).Msg("event log failed")
	}
}
