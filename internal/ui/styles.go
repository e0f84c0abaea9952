package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"beacon-radar.klederson.com/internal/beacon"
	"beacon-radar.klederson.com/internal/presenter"
)

// Chrome palette. Panels stay neutral so the proximity color stands out.
var (
	ColorText       = lipgloss.Color("#E6E6E6")
	ColorMuted      = lipgloss.Color("#8A8A8A")
	ColorDim        = lipgloss.Color("#4A4A4A")
	ColorBar        = lipgloss.Color("#1C1C1C")
	ColorAccent     = lipgloss.Color("#00CCFF")
	ColorBorderNorm = lipgloss.Color("#5A5A5A")
	ColorBorderHot  = lipgloss.Color("#00CCFF")
	ColorWarning    = lipgloss.Color("#FFAA00")
	ColorError      = lipgloss.Color("#FF3300")
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(ColorBar).
			Foreground(ColorText).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StyleStatusBar = lipgloss.NewStyle().
			Background(ColorBar).
			Foreground(ColorMuted).
			Padding(0, 1)

	StyleStatusScanning = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)

	StyleStatusPaused = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderNorm)

	StylePanelActive = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderHot)

	StylePanelTitle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true).
			Padding(0, 1)

	StyleBeaconName = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	StyleBeaconID = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StyleBeaconRSSI = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorDim)

	StyleCursorRow = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(ColorAccent).
			Bold(true)

	StyleAlertBox = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorWarning).
			Background(ColorBar).
			Foreground(ColorText).
			Padding(1, 3).
			Align(lipgloss.Center)

	StyleAlertTitle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)
)

// ProximityColor returns the presentation color for a proximity bucket.
func ProximityColor(p beacon.Proximity) lipgloss.Color {
	switch p {
	case beacon.ProximityImmediate:
		return lipgloss.Color(presenter.ColorRed)
	case beacon.ProximityNear:
		return lipgloss.Color(presenter.ColorOrange)
	case beacon.ProximityFar:
		return lipgloss.Color(presenter.ColorBlue)
	default:
		return lipgloss.Color(presenter.ColorGray)
	}
}

// ContrastText picks black or white text for a hex background.
func ContrastText(hex string) lipgloss.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return ColorText
	}
	// Rec. 601 luma
	if 0.299*c.R+0.587*c.G+0.114*c.B > 0.6 {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#FFFFFF")
}
