package sequencer

import (
	"sync"
	"testing"
	"time"

	"github.com/placeways/waymark/internal/models"
)

func newTestEngine(t *testing.T, count int) *Engine {
	t.Helper()

	engine := New(Config{TickInterval: 2 * time.Millisecond})
	engine.SetBounds(0, count-1)
	engine.SetVisible(true)
	return engine
}

// stepRecorder collects playback step indices.
type stepRecorder struct {
	mu      sync.Mutex
	indices []int
}

func (r *stepRecorder) record(index int) {
	r.mu.Lock()
	r.indices = append(r.indices, index)
	r.mu.Unlock()
}

func (r *stepRecorder) snapshot() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.indices...)
}

func TestNewNormalizesConfig(t *testing.T) {
	engine := New(Config{StepDelaySeconds: -4})
	state := engine.State()
	if state.StepDelaySeconds != 3 {
		t.Fatalf("expected default step delay 3, got %d", state.StepDelaySeconds)
	}

	minDelay, maxDelay := engine.DelayRange()
	if minDelay != 1 || maxDelay != 20 {
		t.Fatalf("expected delay range 1..20, got %d..%d", minDelay, maxDelay)
	}
}

func TestSkipBoundaries(t *testing.T) {
	engine := newTestEngine(t, 5)

	if _, moved := engine.SkipPrev(); moved {
		t.Fatal("skip-previous should be a no-op at the first waypoint")
	}
	if _, moved := engine.SkipFirst(); moved {
		t.Fatal("skip-first should be a no-op at the first waypoint")
	}

	if index, moved := engine.SkipNext(); !moved || index != 1 {
		t.Fatalf("expected skip-next to reach 1, got %d (moved=%v)", index, moved)
	}
	if index, moved := engine.SkipLast(); !moved || index != 4 {
		t.Fatalf("expected skip-last to reach 4, got %d (moved=%v)", index, moved)
	}
	if _, moved := engine.SkipNext(); moved {
		t.Fatal("skip-next should be a no-op at the last waypoint")
	}
	if index, moved := engine.SkipFirst(); !moved || index != 0 {
		t.Fatalf("expected skip-first to reach 0, got %d (moved=%v)", index, moved)
	}
}

func TestSkipFirstThenLastReachesMax(t *testing.T) {
	engine := newTestEngine(t, 7)
	engine.SetIndex(3)

	engine.SkipFirst()
	if index, moved := engine.SkipLast(); !moved || index != 6 {
		t.Fatalf("expected max index 6, got %d (moved=%v)", index, moved)
	}
}

func TestIndexStaysInBoundsAfterEveryTransition(t *testing.T) {
	engine := newTestEngine(t, 4)

	check := func(op string) {
		state := engine.State()
		if state.CurrentIndex < state.MinIndex || state.CurrentIndex > state.MaxIndex {
			t.Fatalf("after %s: index %d outside [%d,%d]", op, state.CurrentIndex, state.MinIndex, state.MaxIndex)
		}
	}

	ops := []struct {
		name string
		run  func()
	}{
		{"skip-next", func() { engine.SkipNext() }},
		{"skip-last", func() { engine.SkipLast() }},
		{"skip-next past end", func() { engine.SkipNext() }},
		{"skip-previous", func() { engine.SkipPrev() }},
		{"skip-first", func() { engine.SkipFirst() }},
		{"skip-previous past start", func() { engine.SkipPrev() }},
		{"set-index out of range", func() { engine.SetIndex(99) }},
	}
	for _, op := range ops {
		op.run()
		check(op.name)
	}
}

func TestPlayVisitsEveryIndexInOrder(t *testing.T) {
	engine := newTestEngine(t, 5)
	recorder := &stepRecorder{}
	engine.SetOnStep(recorder.record)

	if !engine.TogglePlay() {
		t.Fatal("expected playback to start from index 0")
	}
	engine.Wait()

	got := recorder.snapshot()
	want := []int{1, 2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("expected steps %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected steps %v, got %v", want, got)
		}
	}

	state := engine.State()
	if state.Playing {
		t.Fatal("playback should auto-stop at the last waypoint")
	}
	if state.CurrentIndex != 4 {
		t.Fatalf("expected final index 4, got %d", state.CurrentIndex)
	}
}

func TestPlayFromInteriorVisitsRemainder(t *testing.T) {
	engine := newTestEngine(t, 6)
	engine.SetIndex(2)

	recorder := &stepRecorder{}
	engine.SetOnStep(recorder.record)

	engine.TogglePlay()
	engine.Wait()

	got := recorder.snapshot()
	want := []int{3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("expected steps %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected steps %v, got %v", want, got)
		}
	}
}

func TestPlayDisallowedAtLastWaypoint(t *testing.T) {
	engine := newTestEngine(t, 3)
	engine.SkipLast()

	if engine.TogglePlay() {
		t.Fatal("play must be a no-op at the last waypoint")
	}
	if state := engine.State(); state.Playing {
		t.Fatal("state must remain idle")
	}
}

func TestPlayFromStartLandsOnFirstWaypoint(t *testing.T) {
	engine := newTestEngine(t, 3)
	recorder := &stepRecorder{}
	engine.SetOnStep(recorder.record)

	if !engine.PlayFromStart() {
		t.Fatal("expected playback to start")
	}
	engine.Wait()

	got := recorder.snapshot()
	if len(got) == 0 || got[0] != 0 {
		t.Fatalf("expected first step to land on index 0, got %v", got)
	}
}

func TestToggleStopsKeepsIndex(t *testing.T) {
	engine := newTestEngine(t, 50)
	engine.TogglePlay()

	// Let at least one step happen, then pause.
	deadline := time.Now().Add(time.Second)
	for engine.State().CurrentIndex == 0 {
		if time.Now().After(deadline) {
			t.Fatal("playback never advanced")
		}
		time.Sleep(time.Millisecond)
	}

	if engine.TogglePlay() {
		t.Fatal("second toggle should stop playback")
	}
	engine.Wait()

	state := engine.State()
	if state.Playing {
		t.Fatal("expected playback stopped")
	}
	if state.CurrentIndex == 0 {
		t.Fatal("pause must keep the last reached index")
	}
}

func TestHideStopsPlayback(t *testing.T) {
	engine := newTestEngine(t, 10)
	engine.TogglePlay()

	engine.SetVisible(false)
	if state := engine.State(); state.Playing {
		t.Fatal("hiding must stop playback before the container disappears")
	}
	engine.Wait()

	if engine.Phase() != models.PhaseHidden {
		t.Fatalf("expected hidden phase, got %s", engine.Phase())
	}
}

func TestStopIsIdempotent(t *testing.T) {
	engine := newTestEngine(t, 4)
	engine.TogglePlay()

	engine.Stop()
	engine.Stop()
	engine.Wait()

	if state := engine.State(); state.Playing {
		t.Fatal("expected playback stopped")
	}
}

func TestSkipsRefusedWhilePlaying(t *testing.T) {
	engine := newTestEngine(t, 100)
	engine.TogglePlay()
	defer engine.Stop()

	if _, moved := engine.SkipLast(); moved {
		t.Fatal("skip-last must be refused during playback")
	}
	if _, moved := engine.SkipFirst(); moved {
		t.Fatal("skip-first must be refused during playback")
	}
}

func TestDegenerateSequenceIsInert(t *testing.T) {
	engine := New(Config{TickInterval: 2 * time.Millisecond})
	engine.SetBounds(0, 0)
	engine.SetVisible(true)

	if engine.Phase() != models.PhaseDisabled {
		t.Fatalf("expected disabled phase, got %s", engine.Phase())
	}
	if _, moved := engine.SkipNext(); moved {
		t.Fatal("skips must be inert with a single waypoint")
	}
	if engine.TogglePlay() {
		t.Fatal("play must be inert with a single waypoint")
	}
	if engine.PlayFromStart() {
		t.Fatal("play-from-start must be inert with a single waypoint")
	}

	// toggle(true) on a degenerate sequence still succeeds.
	engine.SetVisible(false)
	engine.SetVisible(true)
}

func TestResortWhileHiddenAppliesOnShow(t *testing.T) {
	engine := newTestEngine(t, 5)
	engine.SetIndex(3)

	engine.SetVisible(false)
	// A resort while hidden shrinks the sequence; the new bounds arrive via
	// SetBounds on next show.
	engine.SetBounds(0, 2)
	engine.SetVisible(true)

	state := engine.State()
	if state.MaxIndex != 2 || state.CurrentIndex != 0 {
		t.Fatalf("expected rebuilt bounds [0,2] at index 0, got %+v", state)
	}
}

func TestOnChangeSubscriptions(t *testing.T) {
	engine := newTestEngine(t, 5)

	var mu sync.Mutex
	var seen []models.SequencerState
	if err := engine.OnChange("test", func(state models.SequencerState) {
		mu.Lock()
		seen = append(seen, state)
		mu.Unlock()
	}); err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if err := engine.OnChange("test", func(models.SequencerState) {}); err != ErrAlreadySubscribed {
		t.Fatalf("expected ErrAlreadySubscribed, got %v", err)
	}

	engine.SkipNext()
	engine.UpdateButtons()

	mu.Lock()
	count := len(seen)
	mu.Unlock()
	if count < 2 {
		t.Fatalf("expected at least 2 notifications, got %d", count)
	}

	if err := engine.Unsubscribe("test"); err != nil {
		t.Fatalf("unsubscribe: %v", err)
	}
	if err := engine.Unsubscribe("test"); err != ErrNotSubscribed {
		t.Fatalf("expected ErrNotSubscribed, got %v", err)
	}
}

func TestSetStepDelayWhilePlaying(t *testing.T) {
	engine := newTestEngine(t, 200)
	engine.TogglePlay()
	defer func() {
		engine.Stop()
		engine.Wait()
	}()

	engine.SetStepDelay(7)
	if state := engine.State(); state.StepDelaySeconds != 7 {
		t.Fatalf("expected step delay 7, got %d", state.StepDelaySeconds)
	}
	if state := engine.State(); !state.Playing {
		t.Fatal("changing the delay must not interrupt playback")
	}
}
