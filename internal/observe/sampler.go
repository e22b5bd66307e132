package observe

import (
	"fmt"
	"time"

	"github.com/starfield/dsofinder/internal/astro"
	"github.com/starfield/dsofinder/internal/catalog"
)

// AltAzSample is one horizontal-coordinate measurement on the time grid.
type AltAzSample struct {
	Time   time.Time
	AltDeg float64
	AzDeg  float64
}

// Transformer converts an equatorial position to horizontal coordinates for
// an observer at an instant. It is the single seam between the planning code
// and the underlying astronomy math, so tests can substitute analytic
// fixtures for the real transform.
type Transformer interface {
	AltAz(raDeg, decDeg float64, obs astro.Observer, t time.Time) (altDeg, azDeg float64, err error)
}

// StandardTransformer delegates to the built-in equatorial-to-horizontal
// conversion.
type StandardTransformer struct{}

// AltAz implements Transformer.
func (StandardTransformer) AltAz(raDeg, decDeg float64, obs astro.Observer, t time.Time) (float64, float64, error) {
	alt, az := astro.EquatorialToHorizontal(raDeg, decDeg, obs, t)
	return alt, az, nil
}

// SampleSeries computes the object's horizontal position at every grid
// instant. The returned series is aligned index-for-index with the grid.
// Invalid catalog coordinates or a transform failure abort the whole series;
// callers sampling many objects should treat that as excluding this object
// only.
func SampleSeries(tr Transformer, obj catalog.Object, obs astro.Observer, grid []time.Time) ([]AltAzSample, error) {
	if obj.RADeg < 0 || obj.RADeg >= 360 {
		return nil, fmt.Errorf("%s: RA %.4f out of [0, 360)", obj.Name, obj.RADeg)
	}
	if obj.DecDeg < -90 || obj.DecDeg > 90 {
		return nil, fmt.Errorf("%s: Dec %.4f out of [-90, 90]", obj.Name, obj.DecDeg)
	}

	samples := make([]AltAzSample, len(grid))
	for i, t := range grid {
		alt, az, err := tr.AltAz(obj.RADeg, obj.DecDeg, obs, t)
		if err != nil {
			return nil, fmt.Errorf("%s at %s: %w", obj.Name, t.Format(time.RFC3339), err)
		}
		samples[i] = AltAzSample{Time: t, AltDeg: alt, AzDeg: az}
	}
	return samples, nil
}
