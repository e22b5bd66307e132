package catalog

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestParseRA(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"00:42:44.3", 10.6846, false},
		{"05:35:17.3", 83.8221, false},
		{"12:00:00", 180.0, false},
		{"83.8221", 83.8221, false},
		{"0", 0.0, false},
		{"359.99", 359.99, false},
		{"360.0", 0, true},
		{"-1.0", 0, true},
		{"12:61:00", 0, true},
		{"", 0, true},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseRA(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseRA(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && math.Abs(got-tt.want) > 0.001 {
			t.Errorf("ParseRA(%q) = %.4f, want %.4f", tt.in, got, tt.want)
		}
	}
}

func TestParseDec(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"+41:16:09", 41.2692, false},
		{"-05:23:28", -5.3911, false},
		{"41.2692", 41.2692, false},
		{"-5.3911", -5.3911, false},
		{"90", 90.0, false},
		{"-90", -90.0, false},
		{"91", 0, true},
		{"-90:00:01", 0, true},
		{"", 0, true},
		{"+10:75:00", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseDec(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDec(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && math.Abs(got-tt.want) > 0.001 {
			t.Errorf("ParseDec(%q) = %.4f, want %.4f", tt.in, got, tt.want)
		}
	}
}

func TestParseObjectType(t *testing.T) {
	tests := []struct {
		in   string
		want ObjectType
	}{
		{"Gal", TypeGalaxy},
		{"g", TypeGalaxy},
		{"GALAXY", TypeGalaxy},
		{"OCl", TypeOpenCluster},
		{"GCl", TypeGlobularCluster},
		{"PN", TypePlanetaryNebula},
		{"EmN", TypeEmissionNebula},
		{"SNR", TypeSupernovaRemnant},
		{"Cl+N", TypeClusterNebula},
		{"  hii  ", TypeHIIRegion},
		{"Star", TypeUnknown},
		{"", TypeUnknown},
	}

	for _, tt := range tests {
		if got := ParseObjectType(tt.in); got != tt.want {
			t.Errorf("ParseObjectType(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeCatalog(t, `# test catalog
Name;Type;RA;Dec;V-Mag;MajAx
M31;Gal;00:42:44.3;+41:16:09;3.4;178.0
M42;EmN;05:35:17.3;-05:23:28;4.0;85.0
M31;Gal;00:42:44.3;+41:16:09;3.4;178.0
Sirius;Star;06:45:08.9;-16:42:58;-1.46;
Broken;Gal;not-a-coord;+41:16:09;9.9;
NGC 6960;SNR;312.75;30.7;7.0;
NoMag;Gal;10.0;10.0;;
`)

	objects, stats, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if stats.Rows != 7 {
		t.Errorf("Rows = %d, want 7", stats.Rows)
	}
	if stats.Loaded != 4 || len(objects) != 4 {
		t.Fatalf("Loaded = %d (len %d), want 4", stats.Loaded, len(objects))
	}
	if stats.Duplicates != 1 {
		t.Errorf("Duplicates = %d, want 1", stats.Duplicates)
	}
	if stats.NonDSO != 1 {
		t.Errorf("NonDSO = %d, want 1", stats.NonDSO)
	}
	if stats.BadCoords != 1 {
		t.Errorf("BadCoords = %d, want 1", stats.BadCoords)
	}

	m31 := objects[0]
	if m31.Name != "M31" || m31.Type != TypeGalaxy {
		t.Errorf("first object = %s/%v, want M31/Gal", m31.Name, m31.Type)
	}
	if math.Abs(m31.RADeg-10.6846) > 0.001 || math.Abs(m31.DecDeg-41.2692) > 0.001 {
		t.Errorf("M31 at (%.4f, %.4f), want (10.6846, 41.2692)", m31.RADeg, m31.DecDeg)
	}
	if !m31.HasMag() || *m31.Mag != 3.4 {
		t.Errorf("M31 magnitude = %v, want 3.4", m31.Mag)
	}
	if !m31.HasSize() || *m31.MajAxArcmin != 178.0 {
		t.Errorf("M31 size = %v, want 178.0", m31.MajAxArcmin)
	}

	noMag := objects[3]
	if noMag.Name != "NoMag" || noMag.HasMag() || noMag.HasSize() {
		t.Errorf("NoMag should carry neither magnitude nor size, got %+v", noMag)
	}
}

func TestLoad_MagnitudeFallback(t *testing.T) {
	// Without V-Mag, B-Mag is used; without both, a plain Mag column.
	path := writeCatalog(t, `Name;Type;RA;Dec;B-Mag
M31;Gal;10.6847;41.2692;4.36
`)
	objects, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !objects[0].HasMag() || *objects[0].Mag != 4.36 {
		t.Errorf("B-Mag fallback: magnitude = %v, want 4.36", objects[0].Mag)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing required column", func(t *testing.T) {
		path := writeCatalog(t, "Name;Type;RA;V-Mag\nM31;Gal;10.0;3.4\n")
		if _, _, err := Load(path); !errors.Is(err, ErrMissingColumns) {
			t.Errorf("Load() error = %v, want ErrMissingColumns", err)
		}
	})

	t.Run("no magnitude column", func(t *testing.T) {
		path := writeCatalog(t, "Name;Type;RA;Dec\nM31;Gal;10.0;41.0\n")
		if _, _, err := Load(path); !errors.Is(err, ErrNoMagColumn) {
			t.Errorf("Load() error = %v, want ErrNoMagColumn", err)
		}
	})

	t.Run("no usable rows", func(t *testing.T) {
		path := writeCatalog(t, "Name;Type;RA;Dec;V-Mag\nSirius;Star;101.3;-16.7;-1.46\n")
		if _, _, err := Load(path); !errors.Is(err, ErrEmptyCatalog) {
			t.Errorf("Load() error = %v, want ErrEmptyCatalog", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, _, err := Load(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
			t.Error("Load() on missing file succeeded")
		}
	})
}

func TestBuiltin(t *testing.T) {
	objects := Builtin()
	if len(objects) < 40 {
		t.Fatalf("builtin catalog has %d objects, want at least 40", len(objects))
	}

	seen := make(map[string]bool, len(objects))
	for _, o := range objects {
		if seen[o.Name] {
			t.Errorf("duplicate builtin object %q", o.Name)
		}
		seen[o.Name] = true
		if o.Type == TypeUnknown {
			t.Errorf("%s: unknown type", o.Name)
		}
		if o.RADeg < 0 || o.RADeg >= 360 || o.DecDeg < -90 || o.DecDeg > 90 {
			t.Errorf("%s: coordinates out of range (%.4f, %.4f)", o.Name, o.RADeg, o.DecDeg)
		}
		if !o.HasMag() || !o.HasSize() {
			t.Errorf("%s: builtin objects carry magnitude and size", o.Name)
		}
	}

	// Callers may mutate the returned slice without corrupting the table.
	objects[0].Name = "mutated"
	if Builtin()[0].Name == "mutated" {
		t.Error("Builtin() returned a shared backing array")
	}
}
