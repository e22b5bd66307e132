package astro

import "testing"

func TestConstellationAt_Showpieces(t *testing.T) {
	tests := []struct {
		name   string
		ra, de float64
		want   string
	}{
		{"M31 Andromeda Galaxy", 10.6847, 41.2692, "Andromeda"},
		{"M42 Orion Nebula", 83.8221, -5.3911, "Orion"},
		{"M45 Pleiades", 56.75, 24.1167, "Taurus"},
		{"M51 Whirlpool", 202.4696, 47.1952, "Canes Venatici"},
		{"Polaris", 37.9542, 89.2641, "Ursa Minor"},
		{"Omega Centauri", 201.697, -47.4795, "Centaurus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConstellationAt(tt.ra, tt.de); got != tt.want {
				t.Errorf("ConstellationAt(%.3f, %.3f) = %q, want %q", tt.ra, tt.de, got, tt.want)
			}
		})
	}
}

func TestConstellationCenters_Complete(t *testing.T) {
	if len(constellationCenters) != 88 {
		t.Fatalf("constellation table has %d entries, want 88", len(constellationCenters))
	}

	seen := make(map[string]bool, len(constellationCenters))
	for _, c := range constellationCenters {
		if seen[c.Name] {
			t.Errorf("duplicate constellation %q", c.Name)
		}
		seen[c.Name] = true
		if c.RADeg < 0 || c.RADeg >= 360 || c.DecDeg < -90 || c.DecDeg > 90 {
			t.Errorf("%s: center out of range (%.1f, %.1f)", c.Name, c.RADeg, c.DecDeg)
		}
	}
}

func TestConstellationAt_Total(t *testing.T) {
	// Every point on the sphere maps to some constellation.
	for ra := 0.0; ra < 360; ra += 30 {
		for dec := -90.0; dec <= 90; dec += 30 {
			if got := ConstellationAt(ra, dec); got == "" {
				t.Errorf("ConstellationAt(%.0f, %.0f) returned empty name", ra, dec)
			}
		}
	}
}
