// Package config loads application settings from the environment, with an
// optional .env file for local development.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds every environment-driven setting.
type Config struct {
	Site struct {
		Name string
		Lat  float64
		Lon  float64
		Elev float64
	}
	Search struct {
		GridSize  int
		MinAltDeg float64
		MaxAltDeg float64
		Bortle    int
		Limit     int
	}
	CatalogPath string
	LogLevel    string
}

// Load reads configuration, consulting a .env file first when one exists.
// A missing .env file is not an error; explicit environment variables always
// win because godotenv never overwrites them.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{}

	// Default site is a mid-European backyard, matching the bundled
	// catalog's northern bias.
	cfg.Site.Name = getEnv("DSO_SITE_NAME", "Default site")
	cfg.Site.Lat = getEnvAsFloat("DSO_LAT", 47.17)
	cfg.Site.Lon = getEnvAsFloat("DSO_LON", 8.01)
	cfg.Site.Elev = getEnvAsFloat("DSO_ELEV_M", 550)

	cfg.Search.GridSize = getEnvAsInt("DSO_GRID_SIZE", 120)
	cfg.Search.MinAltDeg = getEnvAsFloat("DSO_MIN_ALT", 20)
	cfg.Search.MaxAltDeg = getEnvAsFloat("DSO_MAX_ALT", 90)
	cfg.Search.Bortle = getEnvAsInt("DSO_BORTLE", 5)
	cfg.Search.Limit = getEnvAsInt("DSO_LIMIT", 20)

	cfg.CatalogPath = getEnv("DSO_CATALOG", "")
	cfg.LogLevel = getEnv("DSO_LOG_LEVEL", "info")

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
