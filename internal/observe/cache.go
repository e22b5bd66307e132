package observe

import (
	"fmt"
	"sync"

	"github.com/starfield/dsofinder/internal/astro"
)

// DefaultCacheSize bounds the sample cache. A full-catalog search at one
// site and one night fits comfortably; repeated searches with changed inputs
// evict the stale entries first.
const DefaultCacheSize = 2048

// sampleKey identifies one computed series. Any change to the object, the
// site, the window or the grid resolution produces a different key.
type sampleKey string

func keyFor(name string, obs astro.Observer, w TimeWindow, gridSize int) sampleKey {
	return sampleKey(fmt.Sprintf("%s|%.5f|%.5f|%.1f|%d|%d|%d",
		name, obs.LatDeg, obs.LonDeg, obs.ElevM,
		w.Start.UTC().Unix(), w.End.UTC().Unix(), gridSize))
}

// SampleCache memoizes alt/az series so that re-running a search with the
// same site and night does not repeat the transform work. It is size-bounded
// with simple insertion-order eviction and safe for concurrent use. Callers
// own the cache lifetime and pass it in explicitly.
type SampleCache struct {
	mu      sync.RWMutex
	max     int
	entries map[sampleKey][]AltAzSample
	order   []sampleKey
}

// NewSampleCache creates a cache holding at most max series. A max of zero
// or less falls back to DefaultCacheSize.
func NewSampleCache(max int) *SampleCache {
	if max <= 0 {
		max = DefaultCacheSize
	}
	return &SampleCache{
		max:     max,
		entries: make(map[sampleKey][]AltAzSample),
	}
}

// Get returns the cached series for the key inputs, or nil.
func (c *SampleCache) Get(name string, obs astro.Observer, w TimeWindow, gridSize int) []AltAzSample {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entries[keyFor(name, obs, w, gridSize)]
}

// Put stores a series, evicting the oldest entry when full.
func (c *SampleCache) Put(name string, obs astro.Observer, w TimeWindow, gridSize int, samples []AltAzSample) {
	k := keyFor(name, obs, w, gridSize)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[k]; !exists {
		for len(c.order) >= c.max {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}
		c.order = append(c.order, k)
	}
	c.entries[k] = samples
}

// Len returns the number of cached series.
func (c *SampleCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Clear drops every cached series.
func (c *SampleCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[sampleKey][]AltAzSample)
	c.order = nil
}
