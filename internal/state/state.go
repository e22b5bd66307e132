// Package state provides thread-safe state management for the application.
package state

import (
	"sync"
	"time"

	"github.com/starfield/dsofinder/internal/astro"
	"github.com/starfield/dsofinder/internal/observe"
)

// RunRecord is one completed search kept in the run history.
type RunRecord struct {
	StartedAt  time.Time
	Elapsed    time.Duration
	Candidates int
	Skipped    int
	Err        error
}

// Manager holds the shared application state: the active search inputs, the
// latest result, and a short history of past runs. All access is
// mutex-guarded; the UI reads through snapshots.
type Manager struct {
	mu sync.RWMutex

	observer astro.Observer
	night    observe.Night
	config   observe.SearchConfig

	result    *observe.SearchResult
	lastRun   time.Time
	lastError error
	searching bool
	moonIllum float64

	history    []RunRecord
	maxHistory int
}

// Config holds configuration for the state manager.
type Config struct {
	MaxHistory int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{MaxHistory: 20}
}

// NewManager creates a new state manager.
func NewManager(cfg Config) *Manager {
	maxHistory := cfg.MaxHistory
	if maxHistory <= 0 {
		maxHistory = 20
	}
	return &Manager{maxHistory: maxHistory}
}

// SetInputs records the search inputs before a run starts.
func (m *Manager) SetInputs(obs astro.Observer, night observe.Night, cfg observe.SearchConfig) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observer = obs
	m.night = night
	m.config = cfg
}

// SetMoonIllumination stores the moon's illuminated fraction for the night.
func (m *Manager) SetMoonIllumination(k float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.moonIllum = k
}

// BeginSearch marks a search as in flight.
func (m *Manager) BeginSearch() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.searching = true
}

// Update atomically stores a finished search run.
func (m *Manager) Update(result *observe.SearchResult, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.searching = false
	m.lastRun = time.Now()
	m.lastError = err

	rec := RunRecord{StartedAt: m.lastRun, Err: err}
	if result != nil {
		m.result = result
		rec.Elapsed = result.Diagnostics.Elapsed
		rec.Candidates = len(result.Candidates)
		rec.Skipped = result.Diagnostics.Skipped
	}
	m.history = append(m.history, rec)
	if len(m.history) > m.maxHistory {
		m.history = m.history[1:]
	}
}

// Snapshot is an immutable view of current state.
type Snapshot struct {
	Observer  astro.Observer
	Night     observe.Night
	Config    observe.SearchConfig
	Result    *observe.SearchResult
	LastRun   time.Time
	LastError error
	Searching bool
	MoonIllum float64
	History   []RunRecord
}

// Snapshot returns a consistent view of current state. The candidate slice
// inside Result is shared but never mutated after a run completes.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	history := make([]RunRecord, len(m.history))
	copy(history, m.history)

	return Snapshot{
		Observer:  m.observer,
		Night:     m.night,
		Config:    m.config,
		Result:    m.result,
		LastRun:   m.lastRun,
		LastError: m.lastError,
		Searching: m.searching,
		MoonIllum: m.moonIllum,
		History:   history,
	}
}

// HasResult reports whether at least one search has completed successfully.
func (m *Manager) HasResult() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.result != nil
}
