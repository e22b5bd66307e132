package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/starfield/dsofinder/internal/cosmo"
)

// cosmoField indexes the editable parameter fields.
type cosmoField int

const (
	fieldZ cosmoField = iota
	fieldH0
	fieldOmegaM
	fieldOmegaL
	cosmoFieldCount
)

var cosmoFieldNames = [...]string{"z", "H0", "Ωm", "ΩΛ"}

// CosmoModel is the cosmological distance calculator view: four editable
// fields and the derived distances for the entered redshift.
type CosmoModel struct {
	inputs [cosmoFieldCount]string
	active cosmoField
	result *cosmo.Result
	params cosmo.Params
	err    error
	width  int
	height int
}

// NewCosmoModel creates the calculator primed with the Planck 2018 model.
func NewCosmoModel() CosmoModel {
	p := cosmo.Planck18()
	m := CosmoModel{params: p}
	m.inputs[fieldZ] = "1.0"
	m.inputs[fieldH0] = strconv.FormatFloat(p.H0, 'f', 1, 64)
	m.inputs[fieldOmegaM] = strconv.FormatFloat(p.OmegaM, 'f', 3, 64)
	m.inputs[fieldOmegaL] = strconv.FormatFloat(p.OmegaL, 'f', 3, 64)
	return m
}

// SetSize stores the available drawing area.
func (m CosmoModel) SetSize(width, height int) CosmoModel {
	m.width = width
	m.height = height
	return m
}

// Update implements the sub-model update contract.
func (m CosmoModel) Update(msg tea.Msg) (CosmoModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "left":
		m.active = (m.active + cosmoFieldCount - 1) % cosmoFieldCount
	case "right":
		m.active = (m.active + 1) % cosmoFieldCount
	case "backspace":
		in := m.inputs[m.active]
		if len(in) > 0 {
			m.inputs[m.active] = in[:len(in)-1]
		}
	case "enter":
		m.compute()
	default:
		s := key.String()
		if len(s) == 1 && (s[0] >= '0' && s[0] <= '9' || s[0] == '.') {
			m.inputs[m.active] += s
		}
	}
	return m, nil
}

func (m *CosmoModel) compute() {
	m.err = nil
	m.result = nil

	parse := func(f cosmoField) (float64, error) {
		v, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[f]), 64)
		if err != nil {
			return 0, fmt.Errorf("%s: not a number", cosmoFieldNames[f])
		}
		return v, nil
	}

	z, err := parse(fieldZ)
	if err != nil {
		m.err = err
		return
	}
	if m.params.H0, err = parse(fieldH0); err != nil {
		m.err = err
		return
	}
	if m.params.OmegaM, err = parse(fieldOmegaM); err != nil {
		m.err = err
		return
	}
	if m.params.OmegaL, err = parse(fieldOmegaL); err != nil {
		m.err = err
		return
	}

	res, err := cosmo.Compute(m.params, z)
	if err != nil {
		m.err = err
		return
	}
	m.result = &res
}

// View renders the calculator.
func (m CosmoModel) View() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#8B5CF6")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#EDE9FE")).Background(lipgloss.Color("#4C1D95"))
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))
	warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E8B74A"))

	var b strings.Builder
	b.WriteString(headerStyle.Render("  Cosmological distances"))
	b.WriteString("\n\n  ")

	for f := cosmoField(0); f < cosmoFieldCount; f++ {
		cell := fmt.Sprintf(" %s=%s ", cosmoFieldNames[f], m.inputs[f])
		if f == m.active {
			b.WriteString(activeStyle.Render(cell))
		} else {
			b.WriteString(labelStyle.Render(cell))
		}
		b.WriteString("  ")
	}
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString("  ")
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
		return b.String()
	}
	if m.result == nil {
		b.WriteString(dimStyle.Render("  Press enter to compute."))
		b.WriteString("\n")
		return b.String()
	}

	if !m.params.Flat() {
		b.WriteString("  ")
		b.WriteString(warnStyle.Render("Model is not flat; distances are approximate"))
		b.WriteString("\n\n")
	}

	r := m.result
	row := func(label, value string) {
		b.WriteString("  ")
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-22s", label)))
		b.WriteString(valueStyle.Render(value))
		b.WriteString("\n")
	}

	row("Redshift", fmt.Sprintf("z = %.4f", r.Z))
	row("Lookback time", fmt.Sprintf("%.3f Gyr", r.LookbackGyr))
	row("Comoving distance", fmt.Sprintf("%.1f Mpc  (%.3f Gly)", r.ComovingMpc, cosmo.MpcToGly(r.ComovingMpc)))
	row("Luminosity distance", fmt.Sprintf("%.1f Mpc  (%.3f Gly)", r.LuminosityMpc, cosmo.MpcToGly(r.LuminosityMpc)))
	row("Angular diameter", fmt.Sprintf("%.1f Mpc  (%.3f Gly)", r.AngularMpc, cosmo.MpcToGly(r.AngularMpc)))

	return b.String()
}
