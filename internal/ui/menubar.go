package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"beacon-radar.klederson.com/internal/config"
)

// RenderMenuBar renders the top menu bar. spin is the scanning spinner frame.
func RenderMenuBar(width int, adapter string, scanning, demo bool, spin string) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"S", "can"},
		{"P", "ause"},
		{"?", "help"},
		{"Q", "uit"},
	}

	var menu strings.Builder
	for _, k := range keys {
		menu.WriteString("  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label))
	}

	status := StyleStatusPaused.Render("PAUSED")
	if scanning {
		status = StyleStatusScanning.Render(spin + " RANGING")
	}

	source := fmt.Sprintf("Adapter: %s", adapter)
	if demo {
		source = "Demo mode"
	}

	left := StyleMenuKey.Render(title) + menu.String()
	right := status + "  " + StyleMenuLabel.Render(source) + " "

	gap := max(0, width-lipgloss.Width(left)-lipgloss.Width(right)-2)
	return StyleMenuBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
