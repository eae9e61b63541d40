// Package dateline implements the temporal filter collaborator: a value
// range over the dataset's time span, with bounds padded beyond the data
// and a change callback into the host. The host destroys and recreates the
// dateline whenever the map configuration changes.
package dateline

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/placeways/waymark/internal/logging"
)

// boundsPadding is the fraction of the data range added on each side, so
// the handles never start pinned to the extremes.
const boundsPadding = 0.10

// Config contains dateline construction parameters.
type Config struct {
	// FromValue and ToValue are the initial selected range.
	FromValue float64
	ToValue   float64

	// MinValue and MaxValue bound the selectable range. Usually the data
	// range padded by Bounds.
	MinValue float64
	MaxValue float64

	// OnChange fires after every accepted range change.
	OnChange func(fromValue, toValue float64)
}

// Bounds pads a data range by 10% on each side. A degenerate range (single
// value) is returned unchanged.
func Bounds(dataMin, dataMax float64) (minValue, maxValue float64) {
	span := dataMax - dataMin
	if span <= 0 {
		return dataMin, dataMax
	}
	pad := span * boundsPadding
	return dataMin - pad, dataMax + pad
}

// Dateline is one temporal filter instance.
type Dateline struct {
	logger zerolog.Logger

	mu        sync.Mutex
	from      float64
	to        float64
	min       float64
	max       float64
	onChange  func(float64, float64)
	destroyed bool
}

// New creates a dateline. The initial range is clamped into bounds.
func New(config Config) *Dateline {
	d := &Dateline{
		logger:   logging.Component("dateline"),
		min:      config.MinValue,
		max:      config.MaxValue,
		onChange: config.OnChange,
	}
	d.from, d.to = d.clamp(config.FromValue, config.ToValue)
	return d
}

// Range returns the currently selected range.
func (d *Dateline) Range() (fromValue, toValue float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.from, d.to
}

// Bounds returns the selectable bounds.
func (d *Dateline) Bounds() (minValue, maxValue float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.min, d.max
}

// SetRange updates the selected range, clamped into bounds, and fires the
// change callback. A destroyed dateline ignores the call.
func (d *Dateline) SetRange(fromValue, toValue float64) {
	d.mu.Lock()
	if d.destroyed {
		d.mu.Unlock()
		return
	}
	d.from, d.to = d.clamp(fromValue, toValue)
	from, to := d.from, d.to
	onChange := d.onChange
	d.mu.Unlock()

	d.logger.Debug().Float64("from", from).Float64("to", to).Msg("range changed")
	if onChange != nil {
		onChange(from, to)
	}
}

func (d *Dateline) clamp(fromValue, toValue float64) (float64, float64) {
	if fromValue > toValue {
		fromValue, toValue = toValue, fromValue
	}
	if fromValue < d.min {
		fromValue = d.min
	}
	if toValue > d.max {
		toValue = d.max
	}
	return fromValue, toValue
}

// Contains reports whether a waypoint's time span overlaps the selected
// range.
func (d *Dateline) Contains(startYear, endYear int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return float64(endYear) >= d.from && float64(startYear) <= d.to
}

// Destroy detaches the change callback and makes further SetRange calls
// no-ops. Idempotent, so recreate-on-config-change paths can call it
// unconditionally.
func (d *Dateline) Destroy() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.destroyed = true
	d.onChange = nil
}

// Destroyed reports whether Destroy has been called.
func (d *Dateline) Destroyed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.destroyed
}
