package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"beacon-radar.klederson.com/internal/presenter"
)

// IndicatorSize returns the grid the indicator may occupy inside a proximity
// panel of the given outer size.
func IndicatorSize(width, height int) (int, int) {
	return max(3, width-2), max(3, height-2-3)
}

// RenderProximityPanel paints the whole panel in the frame's background color
// with the indicator on top and the status and identity texts beneath it.
func RenderProximityPanel(width, height int, f presenter.Frame, indicator string) string {
	innerW := max(3, width-2)
	innerH := max(4, height-2)
	bg := lipgloss.Color(f.Background)
	fg := ContrastText(f.Background)

	line := lipgloss.NewStyle().
		Background(bg).
		Foreground(fg).
		Width(innerW).
		Align(lipgloss.Center)

	lines := strings.Split(indicator, "\n")
	if indicator == "" {
		lines = nil
	}
	lines = append(lines,
		line.Render(""),
		line.Bold(true).Render(f.Status),
		line.Render(f.Identity),
	)
	for len(lines) < innerH {
		lines = append([]string{line.Render("")}, lines...)
	}
	if len(lines) > innerH {
		lines = lines[len(lines)-innerH:]
	}

	return StylePanelBorder.
		BorderBackground(bg).
		Width(innerW).
		Height(innerH).
		Render(strings.Join(lines, "\n"))
}
