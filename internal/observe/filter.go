package observe

import (
	"sort"

	"github.com/starfield/dsofinder/internal/catalog"
)

// MagnitudeMode selects how the magnitude filter derives its limit.
type MagnitudeMode int

const (
	// MagnitudeOff disables magnitude filtering entirely.
	MagnitudeOff MagnitudeMode = iota
	// MagnitudeBortle derives the faint limit from the sky's Bortle class.
	MagnitudeBortle
	// MagnitudeManual uses an explicit [Min, Max] magnitude range.
	MagnitudeManual
)

// bortleLimits maps Bortle class 1 (pristine) through 9 (inner city) to the
// faintest magnitude worth hunting under that sky.
var bortleLimits = map[int]float64{
	1: 15.5, 2: 15.5,
	3: 14.5, 4: 14.5,
	5: 13.5,
	6: 12.5,
	7: 11.5,
	8: 10.5,
	9: 9.5,
}

// LimitingMagnitude returns the faint magnitude limit for a Bortle class.
// Classes outside 1..9 clamp to the nearest valid class.
func LimitingMagnitude(bortle int) float64 {
	if bortle < 1 {
		bortle = 1
	} else if bortle > 9 {
		bortle = 9
	}
	return bortleLimits[bortle]
}

// SortMode orders the filtered candidates.
type SortMode int

const (
	// SortDurationAltitude ranks by continuous visibility, then peak
	// altitude, then name. The default for planning a night.
	SortDurationAltitude SortMode = iota
	// SortBrightness ranks by apparent magnitude, brightest first; objects
	// without a magnitude sort last.
	SortBrightness
)

// FilterConfig selects and ranks candidates after analysis. The zero value
// keeps everything visible and ranks by duration.
type FilterConfig struct {
	MagMode   MagnitudeMode
	Bortle    int     // used when MagMode == MagnitudeBortle
	MinMag    float64 // used when MagMode == MagnitudeManual
	MaxMag    float64 // used when MagMode == MagnitudeManual
	Types     []catalog.ObjectType
	Direction Direction // DirectionAll disables the direction filter
	MinSize   *float64  // arcminutes, nil = no lower bound
	MaxSize   *float64  // arcminutes, nil = no upper bound
	Limit     int       // keep at most Limit results when >= 1
}

// Candidate pairs an object with its visibility summary and sample series.
type Candidate struct {
	Object  catalog.Object
	Summary Summary
	Samples []AltAzSample
}

// Apply filters and ranks candidates. Objects that never clear the minimum
// altitude or whose peak exceeds the maximum are always rejected; the other
// criteria apply only when configured. An empty result is valid.
func (fc FilterConfig) Apply(candidates []Candidate, mode SortMode) []Candidate {
	out := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if fc.keep(c) {
			out = append(out, c)
		}
	}

	switch mode {
	case SortBrightness:
		sort.SliceStable(out, func(i, j int) bool {
			oi, oj := out[i].Object, out[j].Object
			switch {
			case oi.HasMag() && !oj.HasMag():
				return true
			case !oi.HasMag() && oj.HasMag():
				return false
			case oi.HasMag() && oj.HasMag() && *oi.Mag != *oj.Mag:
				return *oi.Mag < *oj.Mag
			}
			return oi.Name < oj.Name
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			si, sj := out[i].Summary, out[j].Summary
			if si.ContinuousHours != sj.ContinuousHours {
				return si.ContinuousHours > sj.ContinuousHours
			}
			if si.PeakAltDeg != sj.PeakAltDeg {
				return si.PeakAltDeg > sj.PeakAltDeg
			}
			return out[i].Object.Name < out[j].Object.Name
		})
	}

	if fc.Limit >= 1 && len(out) > fc.Limit {
		out = out[:fc.Limit]
	}
	return out
}

func (fc FilterConfig) keep(c Candidate) bool {
	if c.Summary.ContinuousHours == 0 || !c.Summary.WithinMaxAlt {
		return false
	}

	switch fc.MagMode {
	case MagnitudeBortle:
		if !c.Object.HasMag() || *c.Object.Mag > LimitingMagnitude(fc.Bortle) {
			return false
		}
	case MagnitudeManual:
		if !c.Object.HasMag() || *c.Object.Mag < fc.MinMag || *c.Object.Mag > fc.MaxMag {
			return false
		}
	}

	if len(fc.Types) > 0 {
		found := false
		for _, t := range fc.Types {
			if c.Object.Type == t {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if fc.Direction != DirectionAll && c.Summary.PeakDirection != fc.Direction {
		return false
	}

	// Size bounds apply only to objects that carry a size.
	if c.Object.HasSize() {
		if fc.MinSize != nil && *c.Object.MajAxArcmin < *fc.MinSize {
			return false
		}
		if fc.MaxSize != nil && *c.Object.MajAxArcmin > *fc.MaxSize {
			return false
		}
	}

	return true
}
