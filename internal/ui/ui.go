// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/starfield/dsofinder/internal/catalog"
	"github.com/starfield/dsofinder/internal/observe"
	"github.com/starfield/dsofinder/internal/state"
	"github.com/starfield/dsofinder/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewResults ViewMode = iota
	ViewDetail
	ViewCosmo
)

// MoonWarnThreshold is the illuminated fraction above which the footer warns
// about moonlight washing out faint targets.
const MoonWarnThreshold = 0.35

// Msg types for Bubble Tea.
type (
	// TickMsg triggers periodic UI updates.
	TickMsg time.Time

	// AnimTickMsg triggers fast animation updates.
	AnimTickMsg time.Time

	// SearchDoneMsg delivers a finished search from the background goroutine.
	SearchDoneMsg struct {
		Result *observe.SearchResult
		Err    error
	}
)

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	state   *state.Manager
	objects []catalog.Object
	cache   *observe.SampleCache

	// UI state
	viewMode ViewMode
	width    int
	height   int
	ready    bool
	animTick int

	// Sub-models
	results ResultsModel
	detail  DetailModel
	cosmo   CosmoModel

	// Data snapshot (refreshed on ticks and search completion)
	snapshot state.Snapshot
}

// New creates a new root UI model. The object list and cache are shared with
// the background search.
func New(stateMgr *state.Manager, objects []catalog.Object, cache *observe.SampleCache) Model {
	return Model{
		state:   stateMgr,
		objects: objects,
		cache:   cache,
		results: NewResultsModel(),
		detail:  NewDetailModel(),
		cosmo:   NewCosmoModel(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		animTickCmd(),
		m.startSearch(),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "1", "r":
			m.viewMode = ViewResults
		case "2":
			m.viewMode = ViewDetail
		case "3", "z":
			m.viewMode = ViewCosmo

		case "tab":
			m.viewMode = (m.viewMode + 1) % 3

		case "R":
			// Re-run the search with the same inputs.
			if !m.snapshot.Searching {
				cmds = append(cmds, m.startSearch())
			}

		case "enter":
			if m.viewMode == ViewResults {
				if c := m.results.Selected(); c != nil {
					m.detail = m.detail.SetCandidate(*c, m.snapshot.Night)
					m.viewMode = ViewDetail
				}
			} else {
				cmds = append(cmds, m.updateActiveView(msg))
			}

		case "left", "right":
			// In the detail view the arrows page through the result list.
			if m.viewMode == ViewDetail {
				if msg.String() == "left" {
					m.results = m.results.MoveCursor(-1)
				} else {
					m.results = m.results.MoveCursor(1)
				}
				if c := m.results.Selected(); c != nil {
					m.detail = m.detail.SetCandidate(*c, m.snapshot.Night)
				}
			} else {
				cmds = append(cmds, m.updateActiveView(msg))
			}

		default:
			cmds = append(cmds, m.updateActiveView(msg))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Logo takes ~10 lines, footer ~2.
		contentHeight := msg.Height - 13
		m.results = m.results.SetSize(msg.Width, contentHeight)
		m.detail = m.detail.SetSize(msg.Width, contentHeight)
		m.cosmo = m.cosmo.SetSize(msg.Width, contentHeight)

	case TickMsg:
		cmds = append(cmds, tickCmd())
		m.snapshot = m.state.Snapshot()

	case AnimTickMsg:
		cmds = append(cmds, animTickCmd())
		m.animTick++
		m.detail = m.detail.SetAnimTick(m.animTick)

	case SearchDoneMsg:
		m.state.Update(msg.Result, msg.Err)
		m.snapshot = m.state.Snapshot()
		m.results = m.results.UpdateData(m.snapshot)
		// Keep the detail view in sync when its object survived the run.
		if c := m.results.Selected(); c != nil {
			m.detail = m.detail.SetCandidate(*c, m.snapshot.Night)
		}

	default:
		cmds = append(cmds, m.updateActiveView(msg))
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) updateActiveView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.viewMode {
	case ViewResults:
		m.results, cmd = m.results.Update(msg)
	case ViewDetail:
		m.detail, cmd = m.detail.Update(msg)
	case ViewCosmo:
		m.cosmo, cmd = m.cosmo.Update(msg)
	}
	return cmd
}

// startSearch launches the search in a goroutine and delivers the outcome as
// a message.
func (m *Model) startSearch() tea.Cmd {
	m.state.BeginSearch()
	snap := m.state.Snapshot()
	objects := m.objects
	cache := m.cache
	cfg := snap.Config

	return func() tea.Msg {
		res, err := observe.Search(context.Background(), nil, cache, objects, cfg)
		if err != nil {
			return SearchDoneMsg{Err: err}
		}
		return SearchDoneMsg{Result: &res}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewResults:
		content = m.results.View()
	case ViewDetail:
		content = m.detail.View()
	case ViewCosmo:
		content = m.cosmo.View()
	}

	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	return m.renderLogo() + m.renderTabs() + "\n"
}

func (m Model) renderLogo() string {
	logo := []string{
		` ██████╗ ███████╗ ██████╗     ███████╗██╗███╗   ██╗██████╗ ███████╗██████╗ `,
		` ██╔══██╗██╔════╝██╔═══██╗    ██╔════╝██║████╗  ██║██╔══██╗██╔════╝██╔══██╗`,
		` ██║  ██║███████╗██║   ██║    █████╗  ██║██╔██╗ ██║██║  ██║█████╗  ██████╔╝`,
		` ██║  ██║╚════██║██║   ██║    ██╔══╝  ██║██║╚██╗██║██║  ██║██╔══╝  ██╔══██╗`,
		` ██████╔╝███████║╚██████╔╝    ██║     ██║██║ ╚████║██████╔╝███████╗██║  ██║`,
		` ╚═════╝ ╚══════╝ ╚═════╝     ╚═╝     ╚═╝╚═╝  ╚═══╝╚═════╝ ╚══════╝╚═╝  ╚═╝`,
	}

	var b strings.Builder
	b.WriteString("\n")

	for row, line := range logo {
		runes := []rune(line)
		for col, r := range runes {
			color := gradientColor(col, row, len(runes), len(logo))
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
			b.WriteString(style.Render(string(r)))
		}
		b.WriteString("\n")
	}

	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	b.WriteString(muted.Render("  Deep-Sky Observability Planner"))
	b.WriteString(muted.Render(fmt.Sprintf(" | v%s", version.Version)))
	b.WriteString("\n")
	b.WriteString(muted.Render("  " + m.renderSiteLine()))
	b.WriteString("\n\n")

	return b.String()
}

func (m Model) renderSiteLine() string {
	obs := m.snapshot.Observer
	night := m.snapshot.Night
	line := fmt.Sprintf("%s  %.2fN %.2fE %.0fm", obs.Name, obs.LatDeg, obs.LonDeg, obs.ElevM)
	if !night.Window.Start.IsZero() {
		line += fmt.Sprintf("  |  dark %s - %s UTC (%s)",
			night.Window.Start.Format("15:04"),
			night.Window.End.Format("15:04"),
			night.Status)
	}
	return line
}

// gradientColor returns a hex color for a position in the logo gradient:
// deep blue through violet to a warm nebula red, darker toward the bottom.
func gradientColor(col, row, width, height int) string {
	xRatio := float64(col) / float64(width)
	yRatio := float64(row) / float64(height)

	var r, g, b float64
	if xRatio < 0.5 {
		// Blue (#2563EB) to violet (#8B5CF6)
		t := xRatio / 0.5
		r = 37 + t*(139-37)
		g = 99 + t*(92-99)
		b = 235 + t*(246-235)
	} else {
		// Violet to nebula red (#F43F5E)
		t := (xRatio - 0.5) / 0.5
		r = 139 + t*(244-139)
		g = 92 + t*(63-92)
		b = 246 + t*(94-246)
	}

	brightness := 1.0 - yRatio*0.45
	ri := clamp8(r * brightness)
	gi := clamp8(g * brightness)
	bi := clamp8(b * brightness)

	return fmt.Sprintf("#%02X%02X%02X", ri, gi, bi)
}

func clamp8(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return int(v)
}

func (m Model) renderTabs() string {
	tabs := []string{"[1] Results", "[2] Detail", "[3] Cosmology"}
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#8B5CF6")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var parts []string
	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			parts = append(parts, activeStyle.Render("▶ "+tab))
		} else {
			parts = append(parts, dimStyle.Render("  "+tab))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))
	warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E8B74A"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#7B2CBF"))

	spinnerFrames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	spinner := spinnerFrames[m.animTick%len(spinnerFrames)]

	var status string
	switch {
	case m.snapshot.Searching:
		status = accentStyle.Render(spinner) + dimStyle.Render(" searching...")
	case m.snapshot.LastError != nil:
		status = errorStyle.Render("ERROR: " + m.snapshot.LastError.Error())
	case m.snapshot.Result != nil:
		d := m.snapshot.Result.Diagnostics
		status = dimStyle.Render(fmt.Sprintf("%d visible of %d objects (%d skipped, %s)",
			len(m.snapshot.Result.Candidates), d.ObjectsIn, d.Skipped,
			d.Elapsed.Round(time.Millisecond)))
	default:
		status = accentStyle.Render(spinner) + dimStyle.Render(" waiting for first search")
	}

	moon := fmt.Sprintf("moon %.0f%%", m.snapshot.MoonIllum*100)
	if m.snapshot.MoonIllum > MoonWarnThreshold {
		moon = warnStyle.Render(moon + " ⚠")
	} else {
		moon = dimStyle.Render(moon)
	}

	var help string
	switch m.viewMode {
	case ViewDetail:
		help = dimStyle.Render("←/→: object | 1: back to results")
	case ViewCosmo:
		help = dimStyle.Render("type z, enter: compute | ←/→: field")
	default:
		help = dimStyle.Render("↑↓: navigate | enter: detail | R: re-search | tab: view")
	}

	return "  " + status + "  " + dimStyle.Render("|") + "  " + moon +
		"  " + dimStyle.Render("|") + "  " + help
}

func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func animTickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return AnimTickMsg(t)
	})
}
