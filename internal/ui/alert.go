package ui

import (
	"github.com/charmbracelet/lipgloss"

	"beacon-radar.klederson.com/internal/presenter"
)

// RenderAlert renders the arrival alert box. It is meant to be placed over
// the proximity panel with Overlay.
func RenderAlert(a presenter.Alert, width int) string {
	w := min(max(24, width/2), max(24, width-4))
	body := lipgloss.JoinVertical(lipgloss.Center,
		StyleAlertTitle.Render(a.Title),
		"",
		a.Message,
		"",
		StyleHelp.Render("[ENTER] OK"),
	)
	return StyleAlertBox.Width(w).Render(body)
}
