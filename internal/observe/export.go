package observe

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/starfield/dsofinder/internal/astro"
)

// exportColumns is the shared column set for CSV and XLSX export.
var exportColumns = []string{
	"Name", "Type", "Constellation", "Magnitude", "Size (arcmin)",
	"RA (deg)", "Dec (deg)", "Max Altitude (deg)", "Azimuth at Max (deg)",
	"Direction at Max", "Time at Max (UTC)", "Max Cont. Duration (h)",
}

// exportRow renders one candidate as display strings, one per column.
func exportRow(c Candidate) []string {
	mag := ""
	if c.Object.HasMag() {
		mag = fmt.Sprintf("%.2f", *c.Object.Mag)
	}
	size := ""
	if c.Object.HasSize() {
		size = fmt.Sprintf("%.1f", *c.Object.MajAxArcmin)
	}
	return []string{
		c.Object.Name,
		c.Object.Type.Label(),
		astro.ConstellationAt(c.Object.RADeg, c.Object.DecDeg),
		mag,
		size,
		fmt.Sprintf("%.4f", c.Object.RADeg),
		fmt.Sprintf("%.4f", c.Object.DecDeg),
		fmt.Sprintf("%.1f", c.Summary.PeakAltDeg),
		fmt.Sprintf("%.1f", c.Summary.PeakAzDeg),
		c.Summary.PeakDirection.String(),
		c.Summary.PeakTime.UTC().Format("2006-01-02 15:04"),
		fmt.Sprintf("%.2f", c.Summary.ContinuousHours),
	}
}

// WriteCSV writes the candidates as a semicolon-separated table, matching
// the catalog file convention. Fields never contain semicolons, so no
// quoting layer is needed.
func WriteCSV(w io.Writer, candidates []Candidate) error {
	if _, err := fmt.Fprintln(w, strings.Join(exportColumns, ";")); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, c := range candidates {
		if _, err := fmt.Fprintln(w, strings.Join(exportRow(c), ";")); err != nil {
			return fmt.Errorf("write csv row %s: %w", c.Object.Name, err)
		}
	}
	return nil
}

// WriteTable writes the candidates as an aligned text table for headless use.
func WriteTable(w io.Writer, candidates []Candidate, night Night) {
	fmt.Fprintf(w, "Dark window %s - %s UTC (%s)\n",
		night.Window.Start.UTC().Format("2006-01-02 15:04"),
		night.Window.End.UTC().Format("15:04"),
		night.Status)
	fmt.Fprintln(w, strings.Repeat("─", 86))

	if len(candidates) == 0 {
		fmt.Fprintln(w, "No visible objects")
		return
	}

	fmt.Fprintf(w, "%-14s %-5s %-16s %6s %6s %-4s %6s  %s\n",
		"Name", "Type", "Constellation", "Mag", "Peak", "Dir", "Hours", "Peak (UTC)")
	fmt.Fprintln(w, strings.Repeat("─", 86))

	for _, c := range candidates {
		mag := "     -"
		if c.Object.HasMag() {
			mag = fmt.Sprintf("%6.1f", *c.Object.Mag)
		}
		fmt.Fprintf(w, "%-14s %-5s %-16s %s %5.1f° %-4s %5.1fh  %s\n",
			truncateStr(c.Object.Name, 14),
			c.Object.Type.String(),
			truncateStr(astro.ConstellationAt(c.Object.RADeg, c.Object.DecDeg), 16),
			mag,
			c.Summary.PeakAltDeg,
			c.Summary.PeakDirection.String(),
			c.Summary.ContinuousHours,
			c.Summary.PeakTime.UTC().Format("15:04"),
		)
	}

	fmt.Fprintf(w, "\nTotal: %d objects\n", len(candidates))
}

func truncateStr(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

const xlsxSheet = "Results"

// WriteXLSX saves the candidates as a formatted spreadsheet: header row,
// widened columns, numeric cells stored as numbers so the reader can sort.
func WriteXLSX(path string, candidates []Candidate, generatedAt time.Time) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(xlsxSheet)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}

	for i, header := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(xlsxSheet, cell, header)
	}

	for rowIdx, c := range candidates {
		row := rowIdx + 2

		set := func(col int, v interface{}) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			f.SetCellValue(xlsxSheet, cell, v)
		}

		set(1, c.Object.Name)
		set(2, c.Object.Type.Label())
		set(3, astro.ConstellationAt(c.Object.RADeg, c.Object.DecDeg))
		if c.Object.HasMag() {
			set(4, *c.Object.Mag)
		}
		if c.Object.HasSize() {
			set(5, *c.Object.MajAxArcmin)
		}
		set(6, c.Object.RADeg)
		set(7, c.Object.DecDeg)
		set(8, c.Summary.PeakAltDeg)
		set(9, c.Summary.PeakAzDeg)
		set(10, c.Summary.PeakDirection.String())
		set(11, c.Summary.PeakTime.UTC().Format("2006-01-02 15:04"))
		set(12, c.Summary.ContinuousHours)
	}

	for i := 1; i <= len(exportColumns); i++ {
		colName, _ := excelize.ColumnNumberToName(i)
		width := 14.0
		if i == 1 || i == 2 || i == 3 {
			width = 20.0
		}
		f.SetColWidth(xlsxSheet, colName, colName, width)
	}

	f.NewSheet("Info")
	f.SetCellValue("Info", "A1", "Generated")
	f.SetCellValue("Info", "B1", generatedAt.UTC().Format("2006-01-02 15:04:05"))
	f.SetCellValue("Info", "A2", "Objects")
	f.SetCellValue("Info", "B2", len(candidates))

	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save xlsx: %w", err)
	}
	return nil
}
