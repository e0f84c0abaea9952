package radar

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// MaxScale is the indicator scale that fills the whole panel.
const MaxScale = 1.2

const (
	fillChar  = "█"
	dotChar   = "●"
	fillTint  = 0.30 // blend toward white for the disk body
	edgeTint  = 0.55 // blend toward white for an unlit edge
	edgeWidth = 0.6
)

var white = colorful.Color{R: 1, G: 1, B: 1}

// cell is one rendered character and its foreground color.
type cell struct {
	fg string
	ch string
}

// Render draws the proximity indicator: a disk of radius scale relative to
// the panel, on the given background, with a pulse circling its edge.
func Render(width, height int, background string, scale float64, pulse *Pulse) string {
	if width < 3 || height < 3 {
		return ""
	}

	bg := parseHex(background)
	centerX, centerY := width/2, height/2
	fit := FitRadius(width, height)
	radius := math.Min(fit, math.Max(0, scale)/MaxScale*fit)

	fill := tint(bg, fillTint)
	base := lipgloss.NewStyle().Background(lipgloss.Color(bg.Hex()))

	var sb strings.Builder
	row := make([]cell, width)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			row[x] = cellAt(x, y, centerX, centerY, radius, fill, bg, pulse)
		}
		writeRuns(&sb, base, row)
		if y < height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func cellAt(x, y, cx, cy int, radius float64, fill string, bg colorful.Color, pulse *Pulse) cell {
	if radius < 1 {
		if x == cx && y == cy {
			return cell{fg: fill, ch: dotChar}
		}
		return cell{ch: " "}
	}

	d := CellDistance(x, y, cx, cy)
	switch {
	case d < radius-edgeWidth:
		return cell{fg: fill, ch: fillChar}
	case math.Abs(d-radius) <= edgeWidth:
		angle := CellAngle(x, y, cx, cy)
		glow := 0.0
		if pulse != nil {
			glow = pulse.Intensity(angle)
		}
		return cell{fg: tint(bg, edgeTint+(1-edgeTint)*glow), ch: string(EdgeChar(angle))}
	default:
		return cell{ch: " "}
	}
}

// writeRuns renders consecutive cells sharing a color with a single style
// call, which keeps full-panel redraws cheap.
func writeRuns(sb *strings.Builder, base lipgloss.Style, row []cell) {
	start := 0
	for i := 1; i <= len(row); i++ {
		if i < len(row) && row[i].fg == row[start].fg {
			continue
		}
		var text strings.Builder
		for _, c := range row[start:i] {
			text.WriteString(c.ch)
		}
		style := base
		if row[start].fg != "" {
			style = style.Foreground(lipgloss.Color(row[start].fg))
		}
		sb.WriteString(style.Render(text.String()))
		start = i
	}
}

func tint(c colorful.Color, amount float64) string {
	return c.BlendLab(white, math.Min(1, math.Max(0, amount))).Clamped().Hex()
}

func parseHex(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	}
	return c
}
