package observe

import (
	"time"

	"github.com/starfield/dsofinder/internal/astro"
)

// AstronomicalTwilightAlt is the sun altitude below which the sky is
// astronomically dark.
const AstronomicalTwilightAlt = -18.0

// darknessScanStep is the resolution of the sun-altitude scan.
const darknessScanStep = 5 * time.Minute

// DarknessStatus reports how the darkness window was obtained.
type DarknessStatus int

const (
	// DarknessNormal means real twilight crossings were found.
	DarknessNormal DarknessStatus = iota
	// DarknessPolarNight means the sun stayed below the twilight altitude
	// for the whole scan; the fixed fallback window is used.
	DarknessPolarNight
	// DarknessPolarDay means the sun never reached the twilight altitude;
	// the fixed fallback window is used.
	DarknessPolarDay
)

// String returns the status name.
func (s DarknessStatus) String() string {
	switch s {
	case DarknessNormal:
		return "astronomical darkness"
	case DarknessPolarNight:
		return "polar night (fallback window)"
	case DarknessPolarDay:
		return "polar day (fallback window)"
	default:
		return "?"
	}
}

// Night is the astronomically dark interval for one date at one site.
type Night struct {
	Window TimeWindow
	Status DarknessStatus
}

// DarknessWindow finds the astronomically dark interval of the night that
// begins on ref's UTC date. The scan runs 24 hours from the site's
// approximate solar noon, so the dark interval sits wholly inside it. At
// polar latitudes where the sun never crosses the twilight altitude a fixed
// 18:00 to 06:00 UTC window is returned with the status saying why.
func DarknessWindow(obs astro.Observer, ref time.Time) Night {
	ref = ref.UTC()
	noon := solarNoonUTC(obs, ref)

	type scanPoint struct {
		t   time.Time
		alt float64
	}
	n := int(24*time.Hour/darknessScanStep) + 1
	points := make([]scanPoint, n)
	for i := range points {
		t := noon.Add(time.Duration(i) * darknessScanStep)
		points[i] = scanPoint{t: t, alt: astro.SunAltitude(obs, t)}
	}

	var darkStart, darkEnd time.Time
	for i := 1; i < len(points); i++ {
		prev, curr := points[i-1], points[i]
		if darkStart.IsZero() && prev.alt >= AstronomicalTwilightAlt && curr.alt < AstronomicalTwilightAlt {
			darkStart = interpolateCrossing(prev.t, curr.t, prev.alt, curr.alt, AstronomicalTwilightAlt)
			continue
		}
		if !darkStart.IsZero() && prev.alt < AstronomicalTwilightAlt && curr.alt >= AstronomicalTwilightAlt {
			darkEnd = interpolateCrossing(prev.t, curr.t, prev.alt, curr.alt, AstronomicalTwilightAlt)
			break
		}
	}

	if !darkStart.IsZero() && !darkEnd.IsZero() {
		return Night{Window: TimeWindow{Start: darkStart, End: darkEnd}, Status: DarknessNormal}
	}

	status := DarknessPolarDay
	if points[0].alt < AstronomicalTwilightAlt && points[len(points)-1].alt < AstronomicalTwilightAlt {
		status = DarknessPolarNight
	}
	y, m, d := ref.Date()
	fallback := TimeWindow{
		Start: time.Date(y, m, d, 18, 0, 0, 0, time.UTC),
		End:   time.Date(y, m, d, 6, 0, 0, 0, time.UTC).AddDate(0, 0, 1),
	}
	return Night{Window: fallback, Status: status}
}

// UpcomingDarkness returns the darkness window relevant right now: tonight's
// window clipped to start no earlier than now, or the next night's window
// when tonight's has already ended.
func UpcomingDarkness(obs astro.Observer, now time.Time) Night {
	now = now.UTC()
	night := DarknessWindow(obs, now)
	if !now.Before(night.Window.End) {
		night = DarknessWindow(obs, now.AddDate(0, 0, 1))
	}
	if now.After(night.Window.Start) && now.Before(night.Window.End) {
		night.Window.Start = now
	}
	return night
}

// solarNoonUTC approximates the site's solar noon on the given UTC date.
// One hour per 15 degrees of longitude is accurate enough to anchor the
// darkness scan.
func solarNoonUTC(obs astro.Observer, ref time.Time) time.Time {
	y, m, d := ref.Date()
	noon := time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
	return noon.Add(-time.Duration(obs.LonDeg / 15 * float64(time.Hour)))
}

// interpolateCrossing finds the instant a linearly interpolated value
// crosses a threshold between two samples.
func interpolateCrossing(t1, t2 time.Time, v1, v2, threshold float64) time.Time {
	if v2 == v1 {
		return t1
	}
	fraction := (threshold - v1) / (v2 - v1)
	if fraction < 0 {
		fraction = 0
	} else if fraction > 1 {
		fraction = 1
	}
	return t1.Add(time.Duration(float64(t2.Sub(t1)) * fraction))
}
