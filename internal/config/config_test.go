package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Site.Lat != 47.17 || cfg.Site.Lon != 8.01 || cfg.Site.Elev != 550 {
		t.Errorf("default site = %+v", cfg.Site)
	}
	if cfg.Search.GridSize != 120 || cfg.Search.Bortle != 5 {
		t.Errorf("default search = %+v", cfg.Search)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("default log level = %q", cfg.LogLevel)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DSO_LAT", "-33.86")
	t.Setenv("DSO_LON", "151.21")
	t.Setenv("DSO_GRID_SIZE", "240")
	t.Setenv("DSO_LOG_LEVEL", "debug")

	cfg := Load()
	if cfg.Site.Lat != -33.86 || cfg.Site.Lon != 151.21 {
		t.Errorf("site overrides ignored: %+v", cfg.Site)
	}
	if cfg.Search.GridSize != 240 {
		t.Errorf("GridSize = %d, want 240", cfg.Search.GridSize)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoad_BadValuesFallBack(t *testing.T) {
	t.Setenv("DSO_LAT", "not-a-number")
	t.Setenv("DSO_GRID_SIZE", "lots")

	cfg := Load()
	if cfg.Site.Lat != 47.17 {
		t.Errorf("bad DSO_LAT: Lat = %v, want default", cfg.Site.Lat)
	}
	if cfg.Search.GridSize != 120 {
		t.Errorf("bad DSO_GRID_SIZE: GridSize = %d, want default", cfg.Search.GridSize)
	}
}
