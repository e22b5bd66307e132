package astro

import (
	"math"
	"time"
)

// MoonIllumination returns the illuminated fraction of the Moon's disk at
// the given instant, in [0, 1]. 0 is new moon, 1 is full moon.
//
// Uses the phase-angle approximation of Meeus (Astronomical Algorithms,
// ch. 48, eq. 48.4): accurate to well under a percent, which is plenty for
// a "is the sky washed out tonight" warning.
func MoonIllumination(t time.Time) float64 {
	jd := julianDate(t)
	T := (jd - 2451545.0) / 36525.0

	// Mean elongation of the Moon, Sun mean anomaly, Moon mean anomaly.
	D := degToRad(normalizeAngle360(297.8501921 + 445267.1114034*T - 0.0018819*T*T))
	M := degToRad(normalizeAngle360(357.5291092 + 35999.0502909*T - 0.0001536*T*T))
	Mp := degToRad(normalizeAngle360(134.9633964 + 477198.8675055*T + 0.0087414*T*T))

	// Phase angle in degrees.
	i := 180 - radToDeg(D) -
		6.289*math.Sin(Mp) +
		2.100*math.Sin(M) -
		1.274*math.Sin(2*D-Mp) -
		0.658*math.Sin(2*D) -
		0.214*math.Sin(2*Mp) -
		0.110*math.Sin(D)

	k := (1 + math.Cos(degToRad(i))) / 2
	return clamp(k, 0, 1)
}
