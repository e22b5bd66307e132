// Command dsofinder plans a night of deep-sky observing: it finds which
// catalog objects are visible from a site during astronomical darkness and
// presents them in a terminal UI or as headless table/CSV/XLSX output.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/starfield/dsofinder/internal/astro"
	"github.com/starfield/dsofinder/internal/catalog"
	"github.com/starfield/dsofinder/internal/config"
	"github.com/starfield/dsofinder/internal/cosmo"
	"github.com/starfield/dsofinder/internal/logging"
	"github.com/starfield/dsofinder/internal/observe"
	"github.com/starfield/dsofinder/internal/state"
	"github.com/starfield/dsofinder/internal/ui"
	"github.com/starfield/dsofinder/internal/version"
)

// CLI flags for headless mode
var (
	listMode bool
	csvPath  string
	xlsxPath string
	cosmoZ   float64
)

func main() {
	cfg := config.Load()

	// Site and date
	siteName := flag.String("site", cfg.Site.Name, "Site name for display")
	lat := flag.Float64("lat", cfg.Site.Lat, "Site latitude in degrees (north positive)")
	lon := flag.Float64("lon", cfg.Site.Lon, "Site longitude in degrees (east positive)")
	elev := flag.Float64("elev", cfg.Site.Elev, "Site elevation in meters")
	dateStr := flag.String("date", "", "Night to plan, as YYYY-MM-DD (default: upcoming night)")

	// Search and filter
	catalogPath := flag.String("catalog", cfg.CatalogPath, "Catalog file (semicolon-separated); empty uses the built-in catalog")
	gridSize := flag.Int("grid", cfg.Search.GridSize, "Samples across the darkness window")
	minAlt := flag.Float64("min-alt", cfg.Search.MinAltDeg, "Minimum useful altitude in degrees")
	maxAlt := flag.Float64("max-alt", cfg.Search.MaxAltDeg, "Maximum useful altitude in degrees (zenith-limited mounts)")
	bortle := flag.Int("bortle", cfg.Search.Bortle, "Bortle class 1-9 for the magnitude limit; 0 disables magnitude filtering")
	magMin := flag.Float64("mag-min", 0, "Manual magnitude range lower bound (with -mag-max)")
	magMax := flag.Float64("mag-max", 0, "Manual magnitude range upper bound; overrides -bortle when set")
	typesStr := flag.String("types", "", "Comma-separated object types to keep (e.g. Gal,PN,GCl)")
	directionStr := flag.String("direction", "", "Keep only objects peaking in this compass sector (N, NE, ...)")
	minSize := flag.Float64("min-size", 0, "Minimum apparent size in arcminutes")
	maxSize := flag.Float64("max-size", 0, "Maximum apparent size in arcminutes")
	sortStr := flag.String("sort", "duration", "Ranking: duration or brightness")
	limit := flag.Int("limit", cfg.Search.Limit, "Keep at most this many results; 0 keeps all")

	// Output
	logLevel := flag.String("log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	flag.BoolVar(&listMode, "list", false, "Print a text table instead of the TUI")
	flag.StringVar(&csvPath, "csv", "", "Write results as CSV to file (use - for stdout)")
	flag.StringVar(&xlsxPath, "xlsx", "", "Write results as an XLSX workbook to file")
	flag.Float64Var(&cosmoZ, "cosmo", 0, "Print cosmological distances for this redshift and exit")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("dsofinder %s\n", version.Version)
		return
	}

	logger := logging.New(logging.ParseLevel(*logLevel))

	// Cosmology mode needs no site, catalog, or sky.
	if cosmoZ != 0 {
		if err := printCosmo(cosmoZ); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	obs := astro.Observer{
		Name:   *siteName,
		LatDeg: *lat,
		LonDeg: *lon,
		ElevM:  *elev,
	}

	objects, err := loadObjects(*catalogPath, logger.WithPrefix("catalog"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	night, err := resolveNight(obs, *dateStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("Dark window %s - %s UTC (%s)",
		night.Window.Start.Format("15:04"), night.Window.End.Format("15:04"), night.Status)

	filter, sortMode, err := buildFilter(*bortle, *magMin, *magMax, *typesStr, *directionStr, *minSize, *maxSize, *sortStr, *limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	searchCfg := observe.SearchConfig{
		Observer:  obs,
		Window:    night.Window,
		GridSize:  *gridSize,
		MinAltDeg: *minAlt,
		MaxAltDeg: *maxAlt,
		Filter:    filter,
		Sort:      sortMode,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	cache := observe.NewSampleCache(observe.DefaultCacheSize)

	stateMgr := state.NewManager(state.DefaultConfig())
	stateMgr.SetInputs(obs, night, searchCfg)
	stateMgr.SetMoonIllumination(astro.MoonIllumination(night.Window.Midpoint()))

	// Headless when asked for, and also when stdout is not a terminal.
	headless := listMode || csvPath != "" || xlsxPath != "" ||
		!term.IsTerminal(int(os.Stdout.Fd()))
	if headless {
		if err := runHeadless(ctx, cache, objects, searchCfg, night, logger.WithPrefix("search")); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	model := ui.New(stateMgr, objects, cache)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// loadObjects reads the catalog file, or falls back to the built-in catalog
// when no path is configured.
func loadObjects(path string, logger *logging.Logger) ([]catalog.Object, error) {
	if path == "" {
		objects := catalog.Builtin()
		logger.Debug("Using built-in catalog: %d objects", len(objects))
		return objects, nil
	}

	objects, stats, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	logger.Info("Loaded %d of %d catalog rows (%d bad coords, %d duplicates, %d non-DSO)",
		stats.Loaded, stats.Rows, stats.BadCoords, stats.Duplicates, stats.NonDSO)
	return objects, nil
}

// resolveNight finds the darkness window: the upcoming night by default, or
// the night beginning on an explicit date.
func resolveNight(obs astro.Observer, dateStr string) (observe.Night, error) {
	if dateStr == "" {
		return observe.UpcomingDarkness(obs, time.Now()), nil
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return observe.Night{}, fmt.Errorf("parse -date %q: want YYYY-MM-DD", dateStr)
	}
	return observe.DarknessWindow(obs, date), nil
}

// buildFilter assembles the filter and sort mode from the flag values.
// An explicit manual magnitude range wins over the Bortle-derived limit.
func buildFilter(bortle int, magMin, magMax float64, typesStr, directionStr string, minSize, maxSize float64, sortStr string, limit int) (observe.FilterConfig, observe.SortMode, error) {
	fc := observe.FilterConfig{Limit: limit}

	switch {
	case magMax != 0:
		fc.MagMode = observe.MagnitudeManual
		fc.MinMag = magMin
		fc.MaxMag = magMax
	case bortle != 0:
		fc.MagMode = observe.MagnitudeBortle
		fc.Bortle = bortle
	}

	if typesStr != "" {
		for _, s := range strings.Split(typesStr, ",") {
			t := catalog.ParseObjectType(s)
			if t == catalog.TypeUnknown {
				return fc, 0, fmt.Errorf("unknown object type %q", strings.TrimSpace(s))
			}
			fc.Types = append(fc.Types, t)
		}
	}

	if directionStr != "" {
		d := observe.ParseDirection(directionStr)
		if d == observe.DirectionAll {
			return fc, 0, fmt.Errorf("unknown direction %q", directionStr)
		}
		fc.Direction = d
	}

	if minSize > 0 {
		fc.MinSize = &minSize
	}
	if maxSize > 0 {
		fc.MaxSize = &maxSize
	}

	var sort observe.SortMode
	switch sortStr {
	case "duration", "":
		sort = observe.SortDurationAltitude
	case "brightness", "mag":
		sort = observe.SortBrightness
	default:
		return fc, 0, fmt.Errorf("unknown sort %q: want duration or brightness", sortStr)
	}

	return fc, sort, nil
}

// runHeadless performs one search and writes every requested output.
func runHeadless(ctx context.Context, cache *observe.SampleCache, objects []catalog.Object, cfg observe.SearchConfig, night observe.Night, logger *logging.Logger) error {
	result, err := observe.Search(ctx, nil, cache, objects, cfg)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}
	d := result.Diagnostics
	logger.Debug("Search: %d objects in, %d sampled, %d skipped in %v",
		d.ObjectsIn, d.Sampled, d.Skipped, d.Elapsed)
	for _, msg := range d.Errors {
		logger.Warn("Skipped object: %s", msg)
	}

	if csvPath != "" {
		if csvPath == "-" {
			if err := observe.WriteCSV(os.Stdout, result.Candidates); err != nil {
				return err
			}
		} else {
			f, err := os.Create(csvPath)
			if err != nil {
				return fmt.Errorf("create csv file: %w", err)
			}
			defer f.Close()
			if err := observe.WriteCSV(f, result.Candidates); err != nil {
				return err
			}
			logger.Info("Wrote %d objects to %s", len(result.Candidates), csvPath)
		}
	}

	if xlsxPath != "" {
		if err := observe.WriteXLSX(xlsxPath, result.Candidates, time.Now()); err != nil {
			return err
		}
		logger.Info("Wrote %d objects to %s", len(result.Candidates), xlsxPath)
	}

	if listMode || (csvPath == "" && xlsxPath == "") {
		observe.WriteTable(os.Stdout, result.Candidates, night)
		moon := astro.MoonIllumination(night.Window.Midpoint())
		fmt.Printf("Moon illumination: %.0f%%\n", moon*100)
	}

	return nil
}

// printCosmo evaluates the default model at one redshift and prints every
// derived quantity.
func printCosmo(z float64) error {
	params := cosmo.Planck18()
	res, err := cosmo.Compute(params, z)
	if err != nil {
		return err
	}

	fmt.Printf("Lambda-CDM (H0=%.1f, Om=%.3f, OL=%.3f) at z=%g\n",
		params.H0, params.OmegaM, params.OmegaL, z)
	fmt.Println(strings.Repeat("─", 60))
	fmt.Printf("%-26s %12.3f Gyr\n", "Lookback time", res.LookbackGyr)
	fmt.Printf("%-26s %12.1f Mpc  (%.3f Gly)\n", "Comoving distance", res.ComovingMpc, cosmo.MpcToGly(res.ComovingMpc))
	fmt.Printf("%-26s %12.1f Mpc  (%.3f Gly)\n", "Luminosity distance", res.LuminosityMpc, cosmo.MpcToGly(res.LuminosityMpc))
	fmt.Printf("%-26s %12.1f Mpc  (%.3f Gly)\n", "Angular diameter distance", res.AngularMpc, cosmo.MpcToGly(res.AngularMpc))
	return nil
}
