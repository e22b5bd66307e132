package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Catalog load errors.
var (
	ErrMissingColumns = errors.New("catalog is missing required columns")
	ErrNoMagColumn    = errors.New("catalog has no usable magnitude column")
	ErrEmptyCatalog   = errors.New("catalog contains no usable objects")
)

// requiredColumns must all be present in the header row.
var requiredColumns = []string{"Name", "RA", "Dec", "Type"}

// magColumns are tried in order; the first one present wins.
var magColumns = []string{"V-Mag", "B-Mag", "Mag"}

const sizeColumn = "MajAx"

// LoadStats summarizes what a catalog load kept and dropped.
type LoadStats struct {
	Rows       int // data rows seen
	Loaded     int // objects returned
	BadCoords  int // rows dropped for unparseable RA/Dec
	Duplicates int // rows dropped as duplicate names
	NonDSO     int // rows dropped for unrecognized object type
}

// Load reads a semicolon-separated, ONGC-style catalog file. Lines starting
// with '#' are comments. The first non-comment line is the header. Rows with
// unparseable coordinates or unknown types are dropped, not fatal; duplicate
// names keep the first occurrence.
func Load(path string) ([]Object, LoadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	var (
		stats   LoadStats
		objects []Object
		cols    map[string]int
		magCol  = -1
		sizeCol = -1
		seen    = make(map[string]bool)
	)

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, ";")

		if cols == nil {
			cols = make(map[string]int, len(fields))
			for i, h := range fields {
				cols[strings.TrimSpace(h)] = i
			}
			for _, req := range requiredColumns {
				if _, ok := cols[req]; !ok {
					return nil, stats, fmt.Errorf("%w: %s", ErrMissingColumns, req)
				}
			}
			for _, mc := range magColumns {
				if i, ok := cols[mc]; ok {
					magCol = i
					break
				}
			}
			if magCol < 0 {
				return nil, stats, fmt.Errorf("%w: tried %s", ErrNoMagColumn, strings.Join(magColumns, ", "))
			}
			if i, ok := cols[sizeColumn]; ok {
				sizeCol = i
			}
			continue
		}

		stats.Rows++

		get := func(col string) string {
			i, ok := cols[col]
			if !ok || i >= len(fields) {
				return ""
			}
			return strings.TrimSpace(fields[i])
		}

		name := get("Name")
		if name == "" {
			stats.BadCoords++
			continue
		}
		if seen[name] {
			stats.Duplicates++
			continue
		}

		typ := ParseObjectType(get("Type"))
		if typ == TypeUnknown {
			stats.NonDSO++
			continue
		}

		ra, errRA := ParseRA(get("RA"))
		dec, errDec := ParseDec(get("Dec"))
		if errRA != nil || errDec != nil {
			stats.BadCoords++
			continue
		}

		obj := Object{Name: name, Type: typ, RADeg: ra, DecDeg: dec}

		if magCol < len(fields) {
			if v, err := strconv.ParseFloat(strings.TrimSpace(fields[magCol]), 64); err == nil {
				obj.Mag = fptr(v)
			}
		}
		if sizeCol >= 0 && sizeCol < len(fields) {
			if v, err := strconv.ParseFloat(strings.TrimSpace(fields[sizeCol]), 64); err == nil {
				obj.MajAxArcmin = fptr(v)
			}
		}

		seen[name] = true
		objects = append(objects, obj)
		stats.Loaded++
	}

	if err := sc.Err(); err != nil {
		return nil, stats, fmt.Errorf("read catalog: %w", err)
	}
	if cols == nil || len(objects) == 0 {
		return nil, stats, ErrEmptyCatalog
	}

	return objects, stats, nil
}

// ParseRA parses a right ascension given either as sexagesimal hour angle
// ("HH:MM:SS.s") or decimal degrees. Returns degrees in [0, 360).
func ParseRA(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty RA")
	}

	if strings.Contains(s, ":") {
		h, m, sec, err := parseSexagesimal(s)
		if err != nil {
			return 0, fmt.Errorf("RA %q: %w", s, err)
		}
		deg := (h + m/60 + sec/3600) * 15
		if deg < 0 || deg >= 360 {
			return 0, fmt.Errorf("RA %q out of range", s)
		}
		return deg, nil
	}

	deg, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("RA %q: %w", s, err)
	}
	if deg < 0 || deg >= 360 {
		return 0, fmt.Errorf("RA %q out of range", s)
	}
	return deg, nil
}

// ParseDec parses a declination given either as sexagesimal degrees
// ("±DD:MM:SS") or decimal degrees. Returns degrees in [-90, 90].
func ParseDec(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty Dec")
	}

	var deg float64
	if strings.Contains(s, ":") {
		neg := strings.HasPrefix(s, "-")
		d, m, sec, err := parseSexagesimal(strings.TrimPrefix(strings.TrimPrefix(s, "-"), "+"))
		if err != nil {
			return 0, fmt.Errorf("Dec %q: %w", s, err)
		}
		deg = d + m/60 + sec/3600
		if neg {
			deg = -deg
		}
	} else {
		var err error
		deg, err = strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("Dec %q: %w", s, err)
		}
	}

	if deg < -90 || deg > 90 {
		return 0, fmt.Errorf("Dec %q out of range", s)
	}
	return deg, nil
}

// parseSexagesimal splits "A:B:C" or "A:B" into numeric parts.
func parseSexagesimal(s string) (a, b, c float64, err error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, 0, 0, errors.New("want 2 or 3 colon-separated fields")
	}
	if a, err = strconv.ParseFloat(parts[0], 64); err != nil {
		return 0, 0, 0, err
	}
	if b, err = strconv.ParseFloat(parts[1], 64); err != nil {
		return 0, 0, 0, err
	}
	if len(parts) == 3 {
		if c, err = strconv.ParseFloat(parts[2], 64); err != nil {
			return 0, 0, 0, err
		}
	}
	if b < 0 || b >= 60 || c < 0 || c >= 60 {
		return 0, 0, 0, errors.New("minutes/seconds out of range")
	}
	return a, b, c, nil
}
