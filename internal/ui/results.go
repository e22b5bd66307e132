package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/starfield/dsofinder/internal/astro"
	"github.com/starfield/dsofinder/internal/observe"
	"github.com/starfield/dsofinder/internal/state"
)

// ResultsModel renders the ranked candidate table with a movable cursor.
type ResultsModel struct {
	candidates []observe.Candidate
	cursor     int
	offset     int
	width      int
	height     int
}

// NewResultsModel creates an empty results table.
func NewResultsModel() ResultsModel {
	return ResultsModel{}
}

// SetSize stores the available drawing area.
func (m ResultsModel) SetSize(width, height int) ResultsModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData replaces the table contents from a fresh snapshot, keeping the
// cursor on the same row index when possible.
func (m ResultsModel) UpdateData(snap state.Snapshot) ResultsModel {
	if snap.Result == nil {
		m.candidates = nil
		m.cursor = 0
		m.offset = 0
		return m
	}
	m.candidates = snap.Result.Candidates
	if m.cursor >= len(m.candidates) {
		m.cursor = len(m.candidates) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	return m
}

// Selected returns the candidate under the cursor, or nil.
func (m ResultsModel) Selected() *observe.Candidate {
	if m.cursor < 0 || m.cursor >= len(m.candidates) {
		return nil
	}
	return &m.candidates[m.cursor]
}

// MoveCursor shifts the cursor by delta, clamped to the table.
func (m ResultsModel) MoveCursor(delta int) ResultsModel {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.candidates) {
		m.cursor = len(m.candidates) - 1
	}
	m.scrollIntoView()
	return m
}

// Update implements the sub-model update contract.
func (m ResultsModel) Update(msg tea.Msg) (ResultsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			return m.MoveCursor(-1), nil
		case "down", "j":
			return m.MoveCursor(1), nil
		case "home", "g":
			m.cursor = 0
			m.offset = 0
			return m, nil
		case "end", "G":
			return m.MoveCursor(len(m.candidates)), nil
		case "pgup":
			return m.MoveCursor(-m.visibleRows()), nil
		case "pgdown":
			return m.MoveCursor(m.visibleRows()), nil
		}
	}
	return m, nil
}

func (m *ResultsModel) visibleRows() int {
	rows := m.height - 3 // header + separator + margin
	if rows < 3 {
		rows = 3
	}
	return rows
}

func (m *ResultsModel) scrollIntoView() {
	rows := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
}

// View renders the table.
func (m ResultsModel) View() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#8B5CF6")).Bold(true)
	selectedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#EDE9FE")).Background(lipgloss.Color("#4C1D95"))

	if len(m.candidates) == 0 {
		return dimStyle.Render("  No visible objects. Adjust the filters and press R.")
	}

	var b strings.Builder

	header := fmt.Sprintf("  %-12s %-5s %-16s %5s %6s %4s %7s  %s",
		"Name", "Type", "Constellation", "Mag", "Peak", "Dir", "Hours", "Peak (UTC)")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  " + strings.Repeat("─", 76)))
	b.WriteString("\n")

	rows := m.visibleRows()
	end := m.offset + rows
	if end > len(m.candidates) {
		end = len(m.candidates)
	}

	for i := m.offset; i < end; i++ {
		c := m.candidates[i]

		mag := "  -"
		if c.Object.HasMag() {
			mag = fmt.Sprintf("%5.1f", *c.Object.Mag)
		}
		line := fmt.Sprintf("  %-12s %-5s %-16s %5s %5.1f° %4s %6.1fh  %s",
			truncate(c.Object.Name, 12),
			c.Object.Type.String(),
			truncate(astro.ConstellationAt(c.Object.RADeg, c.Object.DecDeg), 16),
			mag,
			c.Summary.PeakAltDeg,
			c.Summary.PeakDirection.String(),
			c.Summary.ContinuousHours,
			c.Summary.PeakTime.UTC().Format("15:04"),
		)

		if i == m.cursor {
			b.WriteString(selectedStyle.Render("▶" + line[1:]))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	if end < len(m.candidates) {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  ... %d more", len(m.candidates)-end)))
		b.WriteString("\n")
	}

	return b.String()
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 2 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-2]) + ".."
}
