package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/starfield/dsofinder/internal/astro"
	"github.com/starfield/dsofinder/internal/observe"
)

// SparklineWidth is the fixed width of the altitude sparkline.
const SparklineWidth = 48

// sparklineBlocks are the block characters from lowest to highest.
var sparklineBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Altitude gradient endpoints: below-horizon gray, low dark blue, high cyan.
var (
	altColorLow  = [3]uint8{0x1b, 0x2b, 0x4b}
	altColorMid  = [3]uint8{0x34, 0x78, 0xc0}
	altColorHigh = [3]uint8{0x8b, 0xe9, 0xff}
)

// DetailModel renders one candidate's night in full: altitude sparkline, sky
// path, and the summary panel.
type DetailModel struct {
	candidate *observe.Candidate
	night     observe.Night
	animTick  int
	width     int
	height    int
}

// NewDetailModel creates an empty detail view.
func NewDetailModel() DetailModel {
	return DetailModel{}
}

// SetSize stores the available drawing area.
func (m DetailModel) SetSize(width, height int) DetailModel {
	m.width = width
	m.height = height
	return m
}

// SetAnimTick advances the animation counter.
func (m DetailModel) SetAnimTick(tick int) DetailModel {
	m.animTick = tick
	return m
}

// SetCandidate points the view at a candidate.
func (m DetailModel) SetCandidate(c observe.Candidate, night observe.Night) DetailModel {
	m.candidate = &c
	m.night = night
	return m
}

// Update implements the sub-model update contract. Navigation between
// objects is handled by the root model.
func (m DetailModel) Update(msg tea.Msg) (DetailModel, tea.Cmd) {
	return m, nil
}

// View renders the detail panel.
func (m DetailModel) View() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	if m.candidate == nil {
		return dimStyle.Render("  Select an object in the results view first.")
	}

	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#8B5CF6")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	c := m.candidate
	var b strings.Builder

	b.WriteString(headerStyle.Render("  " + c.Object.Name))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %s in %s",
		c.Object.Type.Label(),
		astro.ConstellationAt(c.Object.RADeg, c.Object.DecDeg))))
	b.WriteString("\n\n")

	field := func(label, value string) {
		b.WriteString("  ")
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-14s", label)))
		b.WriteString(valueStyle.Render(value))
		b.WriteString("\n")
	}

	field("Position", fmt.Sprintf("RA %.4f°  Dec %+.4f°", c.Object.RADeg, c.Object.DecDeg))
	if c.Object.HasMag() {
		field("Magnitude", fmt.Sprintf("%.2f", *c.Object.Mag))
	}
	if c.Object.HasSize() {
		field("Size", fmt.Sprintf("%.1f'", *c.Object.MajAxArcmin))
	}
	field("Peak", fmt.Sprintf("%.1f° %s (az %.1f°) at %s UTC",
		c.Summary.PeakAltDeg,
		c.Summary.PeakDirection.Label(),
		c.Summary.PeakAzDeg,
		c.Summary.PeakTime.UTC().Format("15:04")))
	field("Continuous", fmt.Sprintf("%.1f h above the minimum altitude", c.Summary.ContinuousHours))
	if !c.Summary.WithinMaxAlt {
		warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E8B74A"))
		b.WriteString("  ")
		b.WriteString(warnStyle.Render("Peak exceeds the configured maximum altitude"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(headerStyle.Render("  Altitude"))
	b.WriteString(dimStyle.Render(m.windowLabel()))
	b.WriteString("\n  ")
	b.WriteString(renderAltitudeSparkline(c.Samples))
	b.WriteString("\n\n")
	b.WriteString(headerStyle.Render("  Sky path"))
	b.WriteString("\n  ")
	b.WriteString(renderSkyPath(c.Samples))
	b.WriteString("\n")

	return b.String()
}

func (m DetailModel) windowLabel() string {
	if m.candidate == nil || len(m.candidate.Samples) == 0 {
		return ""
	}
	first := m.candidate.Samples[0].Time.UTC()
	last := m.candidate.Samples[len(m.candidate.Samples)-1].Time.UTC()
	return fmt.Sprintf("  %s → %s UTC", first.Format("15:04"), last.Format("15:04"))
}

// renderAltitudeSparkline draws the altitude series as colored blocks.
// Below-horizon samples render as a dim underscore row.
func renderAltitudeSparkline(samples []observe.AltAzSample) string {
	alts := resampleAltitudes(samples, SparklineWidth)
	if len(alts) == 0 {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render("no samples")
	}

	var sb strings.Builder
	for _, alt := range alts {
		if alt < 0 {
			sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Render("▁"))
			continue
		}
		t := alt / 90.0
		if t > 1 {
			t = 1
		}
		blockIdx := int(t * 7.0)
		if blockIdx > 7 {
			blockIdx = 7
		}
		r, g, b := interpolateAltColor(t)
		color := fmt.Sprintf("#%02x%02x%02x", r, g, b)
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(string(sparklineBlocks[blockIdx])))
	}
	return sb.String()
}

// renderSkyPath draws one compass letter per time column, so the strip reads
// as the object's drift across the horizon ("EEESSSSWW").
func renderSkyPath(samples []observe.AltAzSample) string {
	if len(samples) == 0 {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render("no samples")
	}

	var sb strings.Builder
	step := float64(len(samples)) / float64(SparklineWidth)
	if step < 1 {
		step = 1
	}
	for i := 0; i < SparklineWidth && int(float64(i)*step) < len(samples); i++ {
		s := samples[int(float64(i)*step)]
		letter := cardinalLetter(s.AzDeg)
		if s.AltDeg < 0 {
			sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Render(strings.ToLower(letter)))
		} else {
			sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Render(letter))
		}
	}
	return sb.String()
}

// cardinalLetter collapses an azimuth to one of N/E/S/W for the single-char
// path strip.
func cardinalLetter(azDeg float64) string {
	letters := []string{"N", "E", "S", "W"}
	az := azDeg
	for az < 0 {
		az += 360
	}
	return letters[int((az+45)/90)%4]
}

// resampleAltitudes reduces a sample series to width altitude buckets,
// keeping the maximum altitude per bucket so peaks survive.
func resampleAltitudes(samples []observe.AltAzSample, width int) []float64 {
	if len(samples) == 0 || width <= 0 {
		return nil
	}
	if len(samples) <= width {
		out := make([]float64, len(samples))
		for i, s := range samples {
			out[i] = s.AltDeg
		}
		return out
	}

	out := make([]float64, width)
	for i := 0; i < width; i++ {
		lo := i * len(samples) / width
		hi := (i + 1) * len(samples) / width
		if hi <= lo {
			hi = lo + 1
		}
		best := samples[lo].AltDeg
		for _, s := range samples[lo:hi] {
			if s.AltDeg > best {
				best = s.AltDeg
			}
		}
		out[i] = best
	}
	return out
}

// interpolateAltColor returns an RGB color for altitude fraction t in [0, 1].
func interpolateAltColor(t float64) (uint8, uint8, uint8) {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	var r, g, b uint8
	if t < 0.5 {
		s := t * 2
		r = uint8(float64(altColorLow[0])*(1-s) + float64(altColorMid[0])*s)
		g = uint8(float64(altColorLow[1])*(1-s) + float64(altColorMid[1])*s)
		b = uint8(float64(altColorLow[2])*(1-s) + float64(altColorMid[2])*s)
	} else {
		s := (t - 0.5) * 2
		r = uint8(float64(altColorMid[0])*(1-s) + float64(altColorHigh[0])*s)
		g = uint8(float64(altColorMid[1])*(1-s) + float64(altColorHigh[1])*s)
		b = uint8(float64(altColorMid[2])*(1-s) + float64(altColorHigh[2])*s)
	}
	return r, g, b
}
