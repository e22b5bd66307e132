package observe

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/starfield/dsofinder/internal/catalog"
)

// januaryNight is the winter test night used throughout: astronomically dark
// at the mid-European test site for the whole span.
var januaryNight = TimeWindow{
	Start: time.Date(2024, 1, 14, 18, 0, 0, 0, time.UTC),
	End:   time.Date(2024, 1, 15, 6, 0, 0, 0, time.UTC),
}

func TestSearch_JanuaryNightScenario(t *testing.T) {
	// An object on the local meridian at local midnight: sidereal time at
	// the site reaches 122 degrees around 00:00 UTC on Jan 15, so RA 122
	// culminates mid-window. From 47N, Dec 17 peaks at 90-47+17 = 60.
	objects := []catalog.Object{
		{Name: "Culminator", Type: catalog.TypeOpenCluster, RADeg: 122, DecDeg: 17, Mag: fp(5.0)},
		{Name: "NeverUp", Type: catalog.TypeGlobularCluster, RADeg: 122, DecDeg: -80, Mag: fp(6.0)},
		{Name: "Circumpolar", Type: catalog.TypeGalaxy, RADeg: 122, DecDeg: 85, Mag: fp(9.0)},
	}

	cfg := SearchConfig{
		Observer:  innerswiss,
		Window:    januaryNight,
		GridSize:  145, // 5-minute steps
		MinAltDeg: 20,
		MaxAltDeg: 90,
	}

	res, err := Search(context.Background(), nil, nil, objects, cfg)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if res.Diagnostics.ObjectsIn != 3 || res.Diagnostics.Sampled != 3 || res.Diagnostics.Skipped != 0 {
		t.Fatalf("diagnostics = %+v", res.Diagnostics)
	}

	// NeverUp stays below the horizon from 47N and is filtered out.
	if len(res.Candidates) != 2 {
		t.Fatalf("got %d candidates %v, want 2", len(res.Candidates), names(res.Candidates))
	}

	var culm *Candidate
	for i := range res.Candidates {
		if res.Candidates[i].Object.Name == "Culminator" {
			culm = &res.Candidates[i]
		}
	}
	if culm == nil {
		t.Fatal("Culminator missing from results")
	}

	if math.Abs(culm.Summary.PeakAltDeg-60) > 1.0 {
		t.Errorf("PeakAltDeg = %.2f, want about 60", culm.Summary.PeakAltDeg)
	}
	midnight := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	if dt := culm.Summary.PeakTime.Sub(midnight); dt < -30*time.Minute || dt > 30*time.Minute {
		t.Errorf("PeakTime = %v, want near local midnight", culm.Summary.PeakTime)
	}
	if culm.Summary.PeakDirection != South {
		t.Errorf("PeakDirection = %v, want South", culm.Summary.PeakDirection)
	}
	if !culm.Summary.WithinMaxAlt {
		t.Error("WithinMaxAlt = false")
	}
	if culm.Summary.ContinuousHours < 4 {
		t.Errorf("ContinuousHours = %.2f, want several hours above 20 degrees", culm.Summary.ContinuousHours)
	}
	if len(culm.Samples) != 145 {
		t.Errorf("kept %d samples, want the full grid", len(culm.Samples))
	}
}

func TestSearch_SkipsBadObjects(t *testing.T) {
	objects := []catalog.Object{
		{Name: "Good", Type: catalog.TypeGalaxy, RADeg: 122, DecDeg: 17},
		{Name: "BadRA", Type: catalog.TypeGalaxy, RADeg: 400, DecDeg: 17},
		{Name: "BadDec", Type: catalog.TypeGalaxy, RADeg: 122, DecDeg: 95},
	}

	cfg := SearchConfig{
		Observer: innerswiss, Window: januaryNight,
		MinAltDeg: 0, MaxAltDeg: 90,
	}

	res, err := Search(context.Background(), nil, nil, objects, cfg)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if res.Diagnostics.Skipped != 2 || len(res.Diagnostics.Errors) != 2 {
		t.Fatalf("diagnostics = %+v, want 2 skipped with reasons", res.Diagnostics)
	}
	if len(res.Candidates) != 1 || res.Candidates[0].Object.Name != "Good" {
		t.Fatalf("candidates = %v, want only Good", names(res.Candidates))
	}
}

func TestSearch_CacheReuse(t *testing.T) {
	objects := []catalog.Object{
		{Name: "A", Type: catalog.TypeGalaxy, RADeg: 122, DecDeg: 17},
		{Name: "B", Type: catalog.TypeGalaxy, RADeg: 200, DecDeg: 40},
	}
	cfg := SearchConfig{
		Observer: innerswiss, Window: januaryNight,
		MinAltDeg: 0, MaxAltDeg: 90,
	}
	cache := NewSampleCache(16)

	first, err := Search(context.Background(), nil, cache, objects, cfg)
	if err != nil {
		t.Fatalf("first Search() error = %v", err)
	}
	if first.Diagnostics.CacheHits != 0 {
		t.Errorf("first run CacheHits = %d, want 0", first.Diagnostics.CacheHits)
	}

	second, err := Search(context.Background(), nil, cache, objects, cfg)
	if err != nil {
		t.Fatalf("second Search() error = %v", err)
	}
	if second.Diagnostics.CacheHits != 2 {
		t.Errorf("second run CacheHits = %d, want 2", second.Diagnostics.CacheHits)
	}

	// Changing the grid size misses the cache.
	cfg.GridSize = 61
	third, err := Search(context.Background(), nil, cache, objects, cfg)
	if err != nil {
		t.Fatalf("third Search() error = %v", err)
	}
	if third.Diagnostics.CacheHits != 0 {
		t.Errorf("different grid CacheHits = %d, want 0", third.Diagnostics.CacheHits)
	}
}

func TestSearch_ValidatesInputs(t *testing.T) {
	cfg := SearchConfig{
		Observer: innerswiss, Window: januaryNight,
		MinAltDeg: 80, MaxAltDeg: 20,
	}
	if _, err := Search(context.Background(), nil, nil, nil, cfg); !errors.Is(err, ErrAltBoundsInverted) {
		t.Errorf("inverted bounds: error = %v, want ErrAltBoundsInverted", err)
	}

	cfg = SearchConfig{
		Observer: innerswiss,
		Window:   TimeWindow{Start: januaryNight.End, End: januaryNight.Start},
	}
	if _, err := Search(context.Background(), nil, nil, nil, cfg); !errors.Is(err, ErrEmptyWindow) {
		t.Errorf("inverted window: error = %v, want ErrEmptyWindow", err)
	}
}

func TestSearch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	objects := make([]catalog.Object, 100)
	for i := range objects {
		objects[i] = catalog.Object{Name: "obj", Type: catalog.TypeGalaxy, RADeg: 122, DecDeg: 17}
	}
	cfg := SearchConfig{Observer: innerswiss, Window: januaryNight, MaxAltDeg: 90}

	if _, err := Search(ctx, nil, nil, objects, cfg); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled search: error = %v, want context.Canceled", err)
	}
}
