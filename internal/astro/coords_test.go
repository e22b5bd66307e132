package astro

import (
	"math"
	"testing"
	"time"
)

// Observing sites used across the astro tests.
var testSites = map[string]Observer{
	"innerswiss": {LatDeg: 47.0, LonDeg: 8.0, ElevM: 500, Name: "Inner Switzerland"},
	"goldstone":  {LatDeg: 35.4267, LonDeg: -116.8900, Name: "Goldstone"},
	"north_pole": {LatDeg: 89.0, LonDeg: 0.0, Name: "North Pole"},
}

// Well-known star positions (J2000).
var testStars = map[string]struct {
	RADeg  float64
	DecDeg float64
}{
	"vega":    {RADeg: 279.2347, DecDeg: 38.7837},
	"sirius":  {RADeg: 101.2875, DecDeg: -16.7161},
	"polaris": {RADeg: 37.9542, DecDeg: 89.2641},
	"canopus": {RADeg: 95.9879, DecDeg: -52.6957},
}

func TestJulianDate_J2000(t *testing.T) {
	// J2000.0 epoch: 2000-01-01 12:00:00 UTC = JD 2451545.0
	jd := julianDate(time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC))
	if math.Abs(jd-2451545.0) > 1e-6 {
		t.Errorf("julianDate(J2000) = %.8f, want 2451545.0", jd)
	}
}

func TestJulianDate_DayFraction(t *testing.T) {
	// 6 hours after the epoch instant is a quarter day.
	jd0 := julianDate(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	jd6 := julianDate(time.Date(2024, 3, 1, 6, 0, 0, 0, time.UTC))
	if math.Abs((jd6-jd0)-0.25) > 1e-9 {
		t.Errorf("6h JD delta = %.10f, want 0.25", jd6-jd0)
	}
}

func TestGMST_Range(t *testing.T) {
	// GMST must always normalize into [0, 360).
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 48; i++ {
		gmst := greenwichMeanSiderealTime(base.Add(time.Duration(i) * 30 * time.Minute))
		if gmst < 0 || gmst >= 360 {
			t.Fatalf("GMST out of range: %.4f", gmst)
		}
	}
}

func TestEquatorialToHorizontal_Polaris(t *testing.T) {
	// Polaris altitude approximately equals the observer latitude,
	// regardless of time of day.
	obs := testSites["innerswiss"]
	star := testStars["polaris"]

	for hour := 0; hour < 24; hour += 6 {
		at := time.Date(2024, 1, 15, hour, 0, 0, 0, time.UTC)
		alt, _ := EquatorialToHorizontal(star.RADeg, star.DecDeg, obs, at)
		if math.Abs(alt-obs.LatDeg) > 1.5 {
			t.Errorf("hour %d: Polaris altitude = %.2f, want ~%.2f", hour, alt, obs.LatDeg)
		}
	}
}

func TestEquatorialToHorizontal_CulminationAltitude(t *testing.T) {
	// At upper culmination the altitude is 90 - |lat - dec|. Scan a day and
	// check the maximum against that ceiling.
	obs := testSites["goldstone"]
	star := testStars["vega"]

	maxAlt := -90.0
	base := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 24*12; i++ {
		alt, _ := EquatorialToHorizontal(star.RADeg, star.DecDeg, obs, base.Add(time.Duration(i)*5*time.Minute))
		if alt > maxAlt {
			maxAlt = alt
		}
	}

	want := 90.0 - math.Abs(obs.LatDeg-star.DecDeg)
	if math.Abs(maxAlt-want) > 0.5 {
		t.Errorf("max altitude = %.2f, want ~%.2f", maxAlt, want)
	}
}

func TestEquatorialToHorizontal_AzimuthRange(t *testing.T) {
	obs := testSites["innerswiss"]
	base := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	for name, star := range testStars {
		for i := 0; i < 24; i++ {
			alt, az := EquatorialToHorizontal(star.RADeg, star.DecDeg, obs, base.Add(time.Duration(i)*time.Hour))
			if az < 0 || az >= 360 {
				t.Errorf("%s: azimuth out of range: %.4f", name, az)
			}
			if alt < -90 || alt > 90 {
				t.Errorf("%s: altitude out of range: %.4f", name, alt)
			}
		}
	}
}

func TestEquatorialToHorizontal_SouthernStarFromNorth(t *testing.T) {
	// Canopus (dec -52.7) never rises above ~2.3 degrees from latitude 35.
	// From latitude 47 it stays below the horizon entirely.
	obs := testSites["innerswiss"]
	star := testStars["canopus"]

	base := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 24; i++ {
		alt, _ := EquatorialToHorizontal(star.RADeg, star.DecDeg, obs, base.Add(time.Duration(i)*time.Hour))
		if alt > 0 {
			t.Errorf("Canopus above horizon (%.2f°) from lat 47N", alt)
		}
	}
}

func TestAngularSeparation(t *testing.T) {
	tests := []struct {
		name                   string
		ra1, dec1, ra2, dec2   float64
		want, tol              float64
	}{
		{"identical points", 100, 20, 100, 20, 0, 1e-9},
		{"pole to equator", 0, 90, 0, 0, 90, 1e-9},
		{"equator quarter turn", 0, 0, 90, 0, 90, 1e-9},
		{"antipodal", 0, 0, 180, 0, 180, 1e-9},
		{"small offset in dec", 50, 10, 50, 11, 1, 1e-9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AngularSeparation(tt.ra1, tt.dec1, tt.ra2, tt.dec2)
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("AngularSeparation() = %.6f, want %.6f", got, tt.want)
			}
		})
	}
}

func TestNormalizeAngle360(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0},
		{360, 0},
		{-1, 359},
		{725, 5},
		{-725, 355},
	}
	for _, tt := range tests {
		if got := normalizeAngle360(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("normalizeAngle360(%.1f) = %.4f, want %.4f", tt.in, got, tt.want)
		}
	}
}
