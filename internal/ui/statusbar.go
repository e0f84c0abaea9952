package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StatusInfo is the data shown in the bottom status bar.
type StatusInfo struct {
	Scanning bool
	Heard    int // beacons in the store
	Ranged   int // beacons satisfying a ranging constraint
	Regions  int // monitored regions
	Inside   int // monitored regions currently occupied
	Message  string
}

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, info StatusInfo) string {
	status := StyleStatusPaused.Render("[PAUSED]")
	if info.Scanning {
		status = StyleStatusScanning.Render("[RANGING]")
	}

	text := fmt.Sprintf(" Heard: %d  Ranged: %d  Regions: %d/%d inside",
		info.Heard, info.Ranged, info.Inside, info.Regions)
	if info.Message != "" {
		text += "  | " + info.Message
	}

	content := status + StyleStatusBar.Padding(0).Render(text)
	gap := max(0, width-lipgloss.Width(content)-2)
	return StyleStatusBar.Width(width).Render(content + strings.Repeat(" ", gap))
}
