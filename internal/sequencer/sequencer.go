package sequencer

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/placeways/waymark/internal/logging"
	"github.com/placeways/waymark/internal/models"
)

// Engine errors.
var (
	ErrAlreadySubscribed = errors.New("subscriber name already registered")
	ErrNotSubscribed     = errors.New("subscriber not registered")
)

// Config contains sequencer engine configuration.
type Config struct {
	// StepDelaySeconds is the initial interval between automatic advances.
	// Default: 3.
	StepDelaySeconds int

	// MinDelaySeconds and MaxDelaySeconds bound the values the settings
	// control offers. Defaults: 1 and 20.
	MinDelaySeconds int
	MaxDelaySeconds int

	// TickInterval overrides the step delay for the auto-advance timer.
	// Tests use it to run playback without waiting wall-clock seconds.
	TickInterval time.Duration
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		StepDelaySeconds: 3,
		MinDelaySeconds:  1,
		MaxDelaySeconds:  20,
	}
}

// Engine owns the sequencer state exclusively. All mutations happen through
// its methods; every method is a guarded no-op when its precondition does
// not hold, so a gesture arriving despite a disabled affordance (or racing
// a timer tick) never corrupts state.
type Engine struct {
	id     string
	config Config
	logger zerolog.Logger

	mu      sync.Mutex
	state   models.SequencerState
	visible bool
	// cursor trails one step behind the next waypoint playback will visit.
	// Starting playback with no table selection parks it just before
	// MinIndex so the first advance lands on the first waypoint.
	cursor int
	cancel chan struct{}
	wg     sync.WaitGroup

	subsMu sync.RWMutex
	subs   map[string]func(models.SequencerState)
	onStep func(index int)
}

// New creates an Engine. Out-of-range delay configuration is normalized the
// way the presentation layer would restrict it.
func New(config Config) *Engine {
	defaults := DefaultConfig()
	if config.MinDelaySeconds <= 0 {
		config.MinDelaySeconds = defaults.MinDelaySeconds
	}
	if config.MaxDelaySeconds < config.MinDelaySeconds {
		config.MaxDelaySeconds = defaults.MaxDelaySeconds
	}
	if config.StepDelaySeconds <= 0 {
		config.StepDelaySeconds = defaults.StepDelaySeconds
	}

	return &Engine{
		id:     uuid.NewString(),
		config: config,
		logger: logging.Component("sequencer"),
		state: models.SequencerState{
			StepDelaySeconds: config.StepDelaySeconds,
			MinIndex:         0,
			MaxIndex:         -1,
		},
		subs: make(map[string]func(models.SequencerState)),
	}
}

// ID returns the engine instance identifier.
func (e *Engine) ID() string {
	return e.id
}

// State returns a copy of the current sequencer state.
func (e *Engine) State() models.SequencerState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Visible reports whether the control container is shown.
func (e *Engine) Visible() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.visible
}

// Phase derives the lifecycle phase from the current state.
func (e *Engine) Phase() models.SequencerPhase {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.phaseLocked()
}

func (e *Engine) phaseLocked() models.SequencerPhase {
	switch {
	case e.state.Degenerate():
		return models.PhaseDisabled
	case !e.visible:
		return models.PhaseHidden
	case e.state.Playing:
		return models.PhasePlaying
	default:
		return models.PhaseIdle
	}
}

// SetBounds installs a freshly derived sequence range. Playback stops and
// the position resets to the lower bound. Called by the bridge each time the
// control is shown.
func (e *Engine) SetBounds(minIndex, maxIndex int) {
	e.mu.Lock()
	e.stopLocked()
	e.state.MinIndex = minIndex
	e.state.MaxIndex = maxIndex
	e.state.CurrentIndex = minIndex
	e.cursor = minIndex
	state := e.state
	e.mu.Unlock()

	e.logger.Debug().
		Int("min_index", minIndex).
		Int("max_index", maxIndex).
		Msg("sequence bounds set")
	e.notify(state)
}

// SetVisible shows or hides the control container. Hiding always stops
// playback first and resets the position to the lower bound.
func (e *Engine) SetVisible(visible bool) {
	e.mu.Lock()
	if e.visible == visible {
		e.mu.Unlock()
		return
	}
	if !visible {
		e.stopLocked()
		e.state.CurrentIndex = e.state.MinIndex
		e.cursor = e.state.MinIndex
	}
	e.visible = visible
	state := e.state
	e.mu.Unlock()

	e.logger.Debug().Bool("visible", visible).Msg("visibility toggled")
	e.notify(state)
}

// SetIndex resynchronizes the position from the table's highlighted row.
// This is the sole path by which external selection reaches the engine.
func (e *Engine) SetIndex(index int) {
	e.mu.Lock()
	if e.state.Degenerate() {
		e.mu.Unlock()
		return
	}
	index = e.state.Clamp(index)
	if index == e.state.CurrentIndex {
		e.mu.Unlock()
		return
	}
	e.state.CurrentIndex = index
	if !e.state.Playing {
		e.cursor = index
	}
	state := e.state
	e.mu.Unlock()

	e.notify(state)
}

// SkipFirst moves to the first waypoint. Idle only; no-op when already there.
func (e *Engine) SkipFirst() (int, bool) {
	return e.skipTo(models.ButtonSkipFirst, func(st models.SequencerState) int {
		return st.MinIndex
	})
}

// SkipPrev moves one waypoint back. Idle only; no-op at the lower boundary.
func (e *Engine) SkipPrev() (int, bool) {
	return e.skipTo(models.ButtonSkipPrev, func(st models.SequencerState) int {
		return st.CurrentIndex - 1
	})
}

// SkipNext moves one waypoint forward. Idle only; no-op at the upper
// boundary.
func (e *Engine) SkipNext() (int, bool) {
	return e.skipTo(models.ButtonSkipNext, func(st models.SequencerState) int {
		return st.CurrentIndex + 1
	})
}

// SkipLast moves to the last waypoint. Idle only; no-op when already there.
func (e *Engine) SkipLast() (int, bool) {
	return e.skipTo(models.ButtonSkipLast, func(st models.SequencerState) int {
		return st.MaxIndex
	})
}

// skipTo applies a skip action. The target is clamped into bounds, so even a
// gesture that slips past a disabled affordance cannot leave the range.
func (e *Engine) skipTo(button models.ButtonID, target func(models.SequencerState) int) (int, bool) {
	e.mu.Lock()
	if e.phaseLocked() != models.PhaseIdle {
		index := e.state.CurrentIndex
		e.mu.Unlock()
		return index, false
	}
	next := e.state.Clamp(target(e.state))
	if next == e.state.CurrentIndex {
		index := e.state.CurrentIndex
		e.mu.Unlock()
		return index, false
	}
	e.state.CurrentIndex = next
	e.cursor = next
	state := e.state
	e.mu.Unlock()

	e.logger.Debug().
		Str("button", string(button)).
		Int("index", next).
		Msg("skip")
	e.notify(state)
	return next, true
}

// TogglePlay starts playback from the current position, or stops it when
// already playing. Starting from the last waypoint is disallowed. Returns
// whether playback is active after the call.
func (e *Engine) TogglePlay() bool {
	e.mu.Lock()
	if e.state.Playing {
		e.stopLocked()
		state := e.state
		e.mu.Unlock()
		e.logger.Debug().Int("index", state.CurrentIndex).Msg("playback paused")
		e.notify(state)
		return false
	}
	if e.phaseLocked() != models.PhaseIdle || e.state.AtLast() {
		e.mu.Unlock()
		return false
	}
	e.startLocked(e.state.CurrentIndex)
	state := e.state
	e.mu.Unlock()

	e.logger.Debug().Int("from_index", state.CurrentIndex).Msg("playback started")
	e.notify(state)
	return true
}

// PlayFromStart begins playback parked just before the first waypoint, so
// the first advance lands on MinIndex. Used when the table has no
// highlighted row: playback still needs a deterministic start point.
func (e *Engine) PlayFromStart() bool {
	e.mu.Lock()
	if e.state.Playing || e.state.Degenerate() || !e.visible {
		e.mu.Unlock()
		return false
	}
	e.startLocked(e.state.MinIndex - 1)
	state := e.state
	e.mu.Unlock()

	e.logger.Debug().Msg("playback started from before first waypoint")
	e.notify(state)
	return true
}

func (e *Engine) startLocked(cursor int) {
	e.cursor = cursor
	e.state.Playing = true
	e.cancel = make(chan struct{})
	e.wg.Add(1)
	go e.runLoop(e.cancel)
}

// Stop halts playback and leaves the position where it is. Idempotent:
// stopping an already-stopped engine is a no-op.
func (e *Engine) Stop() {
	e.mu.Lock()
	wasPlaying := e.state.Playing
	e.stopLocked()
	state := e.state
	e.mu.Unlock()

	if wasPlaying {
		e.logger.Debug().Int("index", state.CurrentIndex).Msg("playback stopped")
		e.notify(state)
	}
}

// stopLocked cancels the auto-advance timer unconditionally. Canceling an
// already-canceled timer is a no-op.
func (e *Engine) stopLocked() {
	if e.cancel != nil {
		close(e.cancel)
		e.cancel = nil
	}
	e.state.Playing = false
}

// SetStepDelay records a new step delay in whole seconds. A change made
// while playing takes effect on the next scheduled tick, not the in-flight
// one. The settings control only offers values inside the configured range;
// the engine does not re-validate.
func (e *Engine) SetStepDelay(seconds int) {
	e.mu.Lock()
	if seconds == e.state.StepDelaySeconds {
		e.mu.Unlock()
		return
	}
	e.state.StepDelaySeconds = seconds
	state := e.state
	e.mu.Unlock()

	e.logger.Debug().Int("step_delay_seconds", seconds).Msg("step delay changed")
	e.notify(state)
}

// DelayRange returns the selectable step delay bounds.
func (e *Engine) DelayRange() (minSeconds, maxSeconds int) {
	return e.config.MinDelaySeconds, e.config.MaxDelaySeconds
}

// UpdateButtons re-publishes the current state so subscribers re-derive
// button affordances. Safe to call any time, in particular whenever the
// table highlight changes.
func (e *Engine) UpdateButtons() {
	e.notify(e.State())
}

// OnChange registers a named state subscriber.
func (e *Engine) OnChange(name string, fn func(models.SequencerState)) error {
	e.subsMu.Lock()
	defer e.subsMu.Unlock()
	if _, exists := e.subs[name]; exists {
		return ErrAlreadySubscribed
	}
	e.subs[name] = fn
	return nil
}

// Unsubscribe removes a named state subscriber.
func (e *Engine) Unsubscribe(name string) error {
	e.subsMu.Lock()
	defer e.subsMu.Unlock()
	if _, exists := e.subs[name]; !exists {
		return ErrNotSubscribed
	}
	delete(e.subs, name)
	return nil
}

// SetOnStep installs the playback step callback. The bridge uses it to push
// each reached waypoint into the table and map.
func (e *Engine) SetOnStep(fn func(index int)) {
	e.subsMu.Lock()
	e.onStep = fn
	e.subsMu.Unlock()
}

// Wait blocks until the auto-advance goroutine has exited. Tests use it to
// observe natural termination.
func (e *Engine) Wait() {
	e.wg.Wait()
}

// runLoop is the auto-advance timer. A fresh timer per iteration means a
// delay change applies from the next tick onward.
func (e *Engine) runLoop(cancel chan struct{}) {
	defer e.wg.Done()

	for {
		timer := time.NewTimer(e.stepInterval())
		select {
		case <-cancel:
			timer.Stop()
			return
		case <-timer.C:
			if !e.advance() {
				return
			}
		}
	}
}

func (e *Engine) stepInterval() time.Duration {
	if e.config.TickInterval > 0 {
		return e.config.TickInterval
	}
	e.mu.Lock()
	seconds := e.state.StepDelaySeconds
	e.mu.Unlock()
	return time.Duration(seconds) * time.Second
}

// advance performs one auto-advance step. Returns false when playback is
// over and the loop should exit.
func (e *Engine) advance() bool {
	e.mu.Lock()
	if !e.state.Playing {
		// Stopped between the timer firing and this step.
		e.mu.Unlock()
		return false
	}
	e.cursor++
	e.cursor = e.state.Clamp(e.cursor)
	e.state.CurrentIndex = e.cursor
	finished := e.cursor >= e.state.MaxIndex
	if finished {
		// Natural termination: the loop exits by returning, so the cancel
		// channel is released without being closed.
		e.state.Playing = false
		e.cancel = nil
	}
	state := e.state
	e.mu.Unlock()

	e.subsMu.RLock()
	onStep := e.onStep
	e.subsMu.RUnlock()
	if onStep != nil {
		onStep(state.CurrentIndex)
	}
	e.notify(state)

	if finished {
		e.logger.Debug().Int("index", state.CurrentIndex).Msg("playback reached last waypoint")
	}
	return !finished
}

func (e *Engine) notify(state models.SequencerState) {
	e.subsMu.RLock()
	subs := make([]func(models.SequencerState), 0, len(e.subs))
	for _, fn := range e.subs {
		subs = append(subs, fn)
	}
	e.subsMu.RUnlock()

	for _, fn := range subs {
		fn(state)
	}
}
