package observe

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/starfield/dsofinder/internal/astro"
	"github.com/starfield/dsofinder/internal/catalog"
)

// SearchConfig holds everything one search run needs.
type SearchConfig struct {
	Observer  astro.Observer
	Window    TimeWindow
	GridSize  int // 0 means DefaultGridSize
	MinAltDeg float64
	MaxAltDeg float64
	Filter    FilterConfig
	Sort      SortMode
	Workers   int // 0 means GOMAXPROCS
}

// SearchDiagnostics counts what happened during a search. Per-object
// transform failures are collected here instead of failing the run.
type SearchDiagnostics struct {
	ObjectsIn int
	Sampled   int
	Skipped   int
	CacheHits int
	Errors    []string
	Elapsed   time.Duration
}

// SearchResult is a completed search: the ranked candidates plus run
// diagnostics.
type SearchResult struct {
	Candidates  []Candidate
	Diagnostics SearchDiagnostics
}

// Search samples every object across the window grid, analyzes visibility,
// then filters and ranks. Objects are independent, so sampling fans out over
// a bounded worker pool; the ranker restores deterministic order. A nil
// cache disables memoization, a nil transformer means the standard one.
// Input validation errors return synchronously before any work starts.
func Search(ctx context.Context, tr Transformer, cache *SampleCache, objects []catalog.Object, cfg SearchConfig) (SearchResult, error) {
	if cfg.MinAltDeg > cfg.MaxAltDeg {
		return SearchResult{}, ErrAltBoundsInverted
	}
	gridSize := cfg.GridSize
	if gridSize == 0 {
		gridSize = DefaultGridSize
	}
	grid, err := cfg.Window.Grid(gridSize)
	if err != nil {
		return SearchResult{}, err
	}
	if tr == nil {
		tr = StandardTransformer{}
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(objects) && len(objects) > 0 {
		workers = len(objects)
	}

	started := time.Now()

	type outcome struct {
		candidate Candidate
		cacheHit  bool
		err       error
	}
	outcomes := make([]outcome, len(objects))

	var wg sync.WaitGroup
	jobs := make(chan int)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				obj := objects[i]

				var samples []AltAzSample
				if cache != nil {
					samples = cache.Get(obj.Name, cfg.Observer, cfg.Window, gridSize)
				}
				if samples != nil {
					outcomes[i].cacheHit = true
				} else {
					var sampleErr error
					samples, sampleErr = SampleSeries(tr, obj, cfg.Observer, grid)
					if sampleErr != nil {
						outcomes[i].err = sampleErr
						continue
					}
					if cache != nil {
						cache.Put(obj.Name, cfg.Observer, cfg.Window, gridSize, samples)
					}
				}

				summary, analyzeErr := Analyze(samples, cfg.MinAltDeg, cfg.MaxAltDeg)
				if analyzeErr != nil {
					outcomes[i].err = analyzeErr
					continue
				}
				outcomes[i].candidate = Candidate{Object: obj, Summary: summary, Samples: samples}
			}
		}()
	}

feed:
	for i := range objects {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return SearchResult{}, err
	}

	diag := SearchDiagnostics{ObjectsIn: len(objects)}
	candidates := make([]Candidate, 0, len(objects))
	for i := range outcomes {
		o := &outcomes[i]
		if o.err != nil {
			diag.Skipped++
			diag.Errors = append(diag.Errors, o.err.Error())
			continue
		}
		diag.Sampled++
		if o.cacheHit {
			diag.CacheHits++
		}
		candidates = append(candidates, o.candidate)
	}

	ranked := cfg.Filter.Apply(candidates, cfg.Sort)
	diag.Elapsed = time.Since(started)

	return SearchResult{Candidates: ranked, Diagnostics: diag}, nil
}
