package observe

import "time"

// Summary describes how well one object is placed during the window.
type Summary struct {
	PeakAltDeg      float64
	PeakTime        time.Time
	PeakAzDeg       float64
	PeakDirection   Direction
	ContinuousHours float64
	WithinMaxAlt    bool
}

// Analyze reduces an aligned sample series to its visibility summary.
//
// The peak is the first sample attaining the maximum altitude. The
// continuous duration is the longest run of consecutive samples at or above
// minAltDeg, measured from the run's first to its last instant; among
// equally long runs the earliest wins. An object that never clears
// minAltDeg gets ContinuousHours 0, which is a valid result, not an error.
func Analyze(samples []AltAzSample, minAltDeg, maxAltDeg float64) (Summary, error) {
	if minAltDeg > maxAltDeg {
		return Summary{}, ErrAltBoundsInverted
	}
	if len(samples) == 0 {
		return Summary{}, ErrNoSamples
	}

	peak := samples[0]
	for _, s := range samples[1:] {
		if s.AltDeg > peak.AltDeg {
			peak = s
		}
	}

	var (
		best     time.Duration
		runStart = -1
	)
	endRun := func(lastIdx int) {
		if runStart < 0 {
			return
		}
		d := samples[lastIdx].Time.Sub(samples[runStart].Time)
		if d > best {
			best = d
		}
		runStart = -1
	}
	for i, s := range samples {
		if s.AltDeg >= minAltDeg {
			if runStart < 0 {
				runStart = i
			}
			continue
		}
		endRun(i - 1)
	}
	endRun(len(samples) - 1)

	return Summary{
		PeakAltDeg:      peak.AltDeg,
		PeakTime:        peak.Time,
		PeakAzDeg:       peak.AzDeg,
		PeakDirection:   DirectionOf(peak.AzDeg),
		ContinuousHours: best.Hours(),
		WithinMaxAlt:    peak.AltDeg <= maxAltDeg,
	}, nil
}
