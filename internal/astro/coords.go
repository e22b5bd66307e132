// Package astro provides spherical-astronomy primitives: coordinate
// transformations, solar and lunar ephemerides, and constellation lookup.
package astro

import (
	"math"
	"time"
)

// Observer is a ground-based observing site.
type Observer struct {
	LatDeg float64 // Geodetic latitude in degrees (north positive)
	LonDeg float64 // Geodetic longitude in degrees (east positive)
	ElevM  float64 // Elevation above sea level in meters
	Name   string  // Optional site name
}

// EquatorialToHorizontal converts ICRS-like equatorial coordinates (RA/Dec,
// both in degrees) to horizontal coordinates for an observer at a UTC instant.
//
// Conventions:
//   - Azimuth: 0° = North, 90° = East, 180° = South, 270° = West, in [0, 360)
//   - Altitude: 0° = horizon, 90° = zenith, in [-90, 90]
//
// The transform uses the hour angle H = LST − RA and the standard relations
//
//	sin(alt) = sin(dec)·sin(lat) + cos(dec)·cos(lat)·cos(H)
//	cos(az)  = (sin(dec) − sin(alt)·sin(lat)) / (cos(alt)·cos(lat))
//
// with the azimuth quadrant resolved by the sign of sin(H).
func EquatorialToHorizontal(raDeg, decDeg float64, obs Observer, t time.Time) (altDeg, azDeg float64) {
	lat := degToRad(obs.LatDeg)
	ra := degToRad(raDeg)
	dec := degToRad(decDeg)

	lst := degToRad(localSiderealTime(t, obs.LonDeg))
	ha := lst - ra

	sinAlt := math.Sin(dec)*math.Sin(lat) + math.Cos(dec)*math.Cos(lat)*math.Cos(ha)
	sinAlt = clamp(sinAlt, -1, 1)
	alt := math.Asin(sinAlt)

	cosAz := (math.Sin(dec) - math.Sin(alt)*math.Sin(lat)) / (math.Cos(alt) * math.Cos(lat))
	cosAz = clamp(cosAz, -1, 1)
	az := math.Acos(cosAz)

	// Positive hour angle puts the object west of the meridian.
	if math.Sin(ha) > 0 {
		az = 2*math.Pi - az
	}

	altDeg = radToDeg(alt)
	azDeg = normalizeAngle360(radToDeg(az))
	return altDeg, azDeg
}

// localSiderealTime returns the Local Sidereal Time in degrees for a UTC
// instant and an observer longitude (east positive).
func localSiderealTime(t time.Time, lonDeg float64) float64 {
	return normalizeAngle360(greenwichMeanSiderealTime(t) + lonDeg)
}

// greenwichMeanSiderealTime returns GMST in degrees (IAU 1982 formula).
func greenwichMeanSiderealTime(t time.Time) float64 {
	jd := julianDate(t)
	T := (jd - 2451545.0) / 36525.0

	gmst := 280.46061837 +
		360.98564736629*(jd-2451545.0) +
		0.000387933*T*T -
		T*T*T/38710000.0

	return normalizeAngle360(gmst)
}

// julianDate returns the Julian Date for a given instant.
func julianDate(t time.Time) float64 {
	t = t.UTC()

	y := float64(t.Year())
	m := float64(t.Month())
	d := float64(t.Day())

	dayFrac := (float64(t.Hour()) +
		float64(t.Minute())/60 +
		float64(t.Second())/3600 +
		float64(t.Nanosecond())/3600e9) / 24.0

	// January and February count as months 13/14 of the previous year.
	if m <= 2 {
		y--
		m += 12
	}

	// Gregorian calendar correction.
	a := math.Floor(y / 100)
	b := 2 - a + math.Floor(a/4)

	return math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		d + dayFrac + b - 1524.5
}

// AngularSeparation returns the great-circle separation in degrees between
// two points on the celestial sphere (all coordinates in degrees).
func AngularSeparation(ra1, dec1, ra2, dec2 float64) float64 {
	dRA := degToRad(ra2 - ra1)
	dDec := degToRad(dec2 - dec1)
	d1 := degToRad(dec1)
	d2 := degToRad(dec2)

	// Haversine form, stable for small separations.
	a := math.Sin(dDec/2)*math.Sin(dDec/2) +
		math.Cos(d1)*math.Cos(d2)*math.Sin(dRA/2)*math.Sin(dRA/2)
	a = clamp(a, 0, 1)

	return radToDeg(2 * math.Asin(math.Sqrt(a)))
}

// normalizeAngle360 normalizes an angle to [0, 360) degrees.
func normalizeAngle360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func degToRad(deg float64) float64 { return deg * math.Pi / 180 }

func radToDeg(rad float64) float64 { return rad * 180 / math.Pi }
