package astro

import (
	"math"
	"time"
)

// SunPosition returns the apparent equatorial coordinates of the Sun in
// degrees. Uses a truncated solar ephemeris (Meeus, Astronomical Algorithms
// ch. 25); accuracy is a small fraction of a degree, ample for twilight work.
func SunPosition(t time.Time) (raDeg, decDeg float64) {
	jd := julianDate(t)
	T := (jd - 2451545.0) / 36525.0

	// Mean longitude and mean anomaly of the Sun.
	L0 := normalizeAngle360(280.46646 + 36000.76983*T + 0.0003032*T*T)
	M := normalizeAngle360(357.52911 + 35999.05029*T - 0.0001537*T*T)
	Mrad := degToRad(M)

	// Equation of center.
	C := (1.914602-0.004817*T-0.000014*T*T)*math.Sin(Mrad) +
		(0.019993-0.000101*T)*math.Sin(2*Mrad) +
		0.000289*math.Sin(3*Mrad)

	sunLon := L0 + C

	// Apparent longitude, corrected for aberration and nutation.
	omega := 125.04 - 1934.136*T
	sunLonApp := sunLon - 0.00569 - 0.00478*math.Sin(degToRad(omega))

	// Obliquity of the ecliptic.
	eps0 := 23.439291 - 0.0130042*T - 0.00000016*T*T + 0.000000504*T*T*T
	eps := eps0 + 0.00256*math.Cos(degToRad(omega))

	lonRad := degToRad(sunLonApp)
	epsRad := degToRad(eps)

	ra := math.Atan2(math.Cos(epsRad)*math.Sin(lonRad), math.Cos(lonRad))
	raDeg = normalizeAngle360(radToDeg(ra))
	decDeg = radToDeg(math.Asin(math.Sin(epsRad) * math.Sin(lonRad)))

	return raDeg, decDeg
}

// SunAltitude returns the altitude of the Sun in degrees above the horizon
// for an observer at a UTC instant. Negative below the horizon.
func SunAltitude(obs Observer, t time.Time) float64 {
	ra, dec := SunPosition(t)
	alt, _ := EquatorialToHorizontal(ra, dec, obs, t)
	return alt
}

// SunSeparation returns the angular separation in degrees between the Sun
// and a target at the given instant.
func SunSeparation(targetRA, targetDec float64, t time.Time) float64 {
	sunRA, sunDec := SunPosition(t)
	return AngularSeparation(sunRA, sunDec, targetRA, targetDec)
}
