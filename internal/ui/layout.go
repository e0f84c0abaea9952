package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout joins the proximity panel and side panel horizontally,
// with menu bar on top and status bar on bottom.
func ComposeLayout(menuBar, mainPanel, sidePanel, statusBar string) string {
	middle := lipgloss.JoinHorizontal(lipgloss.Top, mainPanel, sidePanel)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar)
}

// Overlay centers box in a width x height area filled with background.
func Overlay(width, height int, box, background string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceBackground(lipgloss.Color(background)))
}
