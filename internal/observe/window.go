// Package observe implements observation planning: time grids, altitude
// sampling, visibility analysis, candidate filtering and export.
package observe

import (
	"errors"
	"time"
)

// Validation errors shared across the package.
var (
	ErrEmptyWindow       = errors.New("observation window end is not after start")
	ErrGridTooSmall      = errors.New("time grid needs at least 2 samples")
	ErrAltBoundsInverted = errors.New("minimum altitude exceeds maximum altitude")
	ErrNoSamples         = errors.New("no altitude samples to analyze")
)

// DefaultGridSize is the sample count used when callers do not choose one.
// 120 samples over a typical 10-hour night gives 5-minute resolution.
const DefaultGridSize = 120

// TimeWindow is a half-open observation interval. Both instants are
// interpreted in UTC regardless of their wall-clock location.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// Duration returns the window length.
func (w TimeWindow) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Contains reports whether t falls inside the window (inclusive bounds).
func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Midpoint returns the instant halfway through the window.
func (w TimeWindow) Midpoint() time.Time {
	return w.Start.Add(w.Duration() / 2)
}

// Grid returns n evenly spaced instants spanning the window, first sample at
// Start and last at End. The result is strictly increasing and deterministic
// for a given window and n.
func (w TimeWindow) Grid(n int) ([]time.Time, error) {
	if !w.End.After(w.Start) {
		return nil, ErrEmptyWindow
	}
	if n < 2 {
		return nil, ErrGridTooSmall
	}

	step := w.Duration() / time.Duration(n-1)
	grid := make([]time.Time, n)
	for i := 0; i < n-1; i++ {
		grid[i] = w.Start.Add(step * time.Duration(i))
	}
	// Pin the last sample to End exactly so rounding in step never shortens
	// the covered span.
	grid[n-1] = w.End
	return grid, nil
}
