package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"beacon-radar.klederson.com/internal/bluetooth"
)

// RenderDetailPanel renders the beacon detail view that replaces the beacon list.
func RenderDetailPanel(b *bluetooth.Beacon, width, height int, now time.Time) string {
	innerW := max(20, width-4)

	title := StylePanelTitle.Render("BEACON DETAIL")
	escHint := StyleHelp.Render("[ESC]")
	titleLine := title + strings.Repeat(" ", max(0, innerW-lipgloss.Width(title)-lipgloss.Width(escHint))) + escHint

	lines := []string{titleLine, StyleHelp.Render(strings.Repeat("-", innerW)), ""}

	labelSty := lipgloss.NewStyle().Foreground(ColorMuted)
	valSty := lipgloss.NewStyle().Foreground(ColorText).Bold(true)

	dist := "unknown"
	if b.Distance > 0 {
		dist = fmt.Sprintf("~%.2fm", b.Distance)
	}

	fields := []struct{ label, value string }{
		{"Name", b.DisplayName()},
		{"UUID", strings.ToUpper(b.ID.UUID.String())},
		{"Major", fmt.Sprint(b.ID.Major)},
		{"Minor", fmt.Sprint(b.ID.Minor)},
		{"Address", b.Address},
		{"Tx @1m", fmt.Sprintf("%d dBm", b.MeasuredPower)},
		{"RSSI", fmt.Sprintf("%d dBm", int(b.RSSI))},
		{"Distance", dist},
		{"Proximity", strings.ToUpper(b.Proximity.String())},
		{"Last", formatLastSeen(now.Sub(b.LastSeen))},
	}
	for _, f := range fields {
		value := truncRaw(f.value, max(1, innerW-12))
		lines = append(lines, labelSty.Render(fmt.Sprintf("  %-10s", f.label))+valSty.Render(value))
	}

	lines = append(lines, "")
	bar := renderSignalBar(b.RSSI, max(10, innerW-22), ProximityColor(b.Proximity))
	lines = append(lines, labelSty.Render("  Signal ")+bar+valSty.Render(fmt.Sprintf(" %ddBm", int(b.RSSI))))

	if len(b.History) > 0 {
		lines = append(lines, "", labelSty.Render("  RSSI History:"))
		spark := renderSparkline(b.History, max(10, innerW-4))
		lines = append(lines, "  "+lipgloss.NewStyle().Foreground(ColorAccent).Render(spark))
	}

	innerH := max(1, height-2)
	if len(lines) > innerH {
		lines = lines[:innerH]
	}
	return StylePanelActive.Width(width - 2).Height(innerH).Render(strings.Join(lines, "\n"))
}

func renderSignalBar(rssi float64, width int, color lipgloss.Color) string {
	// Map RSSI -100..-30 to 0..width filled bars
	ratio := math.Min(1, math.Max(0, (rssi+100.0)/70.0))
	filled := int(math.Round(ratio * float64(width)))

	filledPart := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("|", filled))
	emptyPart := StyleHelp.Render(strings.Repeat("-", width-filled))
	return StyleHelp.Render("[") + filledPart + emptyPart + StyleHelp.Render("]")
}

func renderSparkline(values []float64, width int) string {
	if len(values) == 0 {
		return ""
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}

	chars := []rune("▁▂▃▄▅▆▇█")

	minV, maxV := values[0], values[0]
	for _, v := range values {
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
	}
	rng := math.Max(1, maxV-minV)

	var sb strings.Builder
	for _, v := range values {
		idx := int((v - minV) / rng * float64(len(chars)-1))
		idx = min(len(chars)-1, max(0, idx))
		sb.WriteRune(chars[idx])
	}
	return sb.String()
}

func formatLastSeen(d time.Duration) string {
	switch {
	case d < time.Second:
		return "now"
	case d < time.Minute:
		return fmt.Sprintf("%ds ago", int(d.Seconds()))
	default:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	}
}
