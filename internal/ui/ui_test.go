package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"beacon-radar.klederson.com/internal/beacon"
	"beacon-radar.klederson.com/internal/bluetooth"
	"beacon-radar.klederson.com/internal/presenter"
)

func sampleBeacon() *bluetooth.Beacon {
	now := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	return &bluetooth.Beacon{
		ID:            beacon.ID{UUID: uuid.MustParse("E2C56DB5-DFFB-48D2-B060-D0F5A71096E0"), Major: 1, Minor: 2},
		Address:       "AA:BB:CC:DD:EE:FF",
		Name:          "Apple AirLocate",
		RSSI:          -61,
		MeasuredPower: -59,
		Distance:      1.2,
		Proximity:     beacon.ProximityNear,
		LastSeen:      now.Add(-3 * time.Second),
		History:       []float64{-70, -65, -61},
	}
}

func TestContrastText(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#FFFFFF"), ContrastText(presenter.ColorBlue))
	assert.Equal(t, lipgloss.Color("#FFFFFF"), ContrastText(presenter.ColorRed))
	assert.Equal(t, lipgloss.Color("#000000"), ContrastText("#F0F0F0"))
	assert.Equal(t, ColorText, ContrastText("not a color"))
}

func TestProximityColor(t *testing.T) {
	assert.Equal(t, lipgloss.Color(presenter.ColorRed), ProximityColor(beacon.ProximityImmediate))
	assert.Equal(t, lipgloss.Color(presenter.ColorOrange), ProximityColor(beacon.ProximityNear))
	assert.Equal(t, lipgloss.Color(presenter.ColorBlue), ProximityColor(beacon.ProximityFar))
	assert.Equal(t, lipgloss.Color(presenter.ColorGray), ProximityColor(beacon.Proximity(7)))
}

func TestRenderSparkline(t *testing.T) {
	assert.Equal(t, "", renderSparkline(nil, 10))
	assert.Equal(t, "▁█", renderSparkline([]float64{-80, -60}, 10))
	assert.Equal(t, 3, len([]rune(renderSparkline([]float64{1, 2, 3, 4, 5}, 3))))
}

func TestRenderSignalBarWidth(t *testing.T) {
	for _, rssi := range []float64{-120, -65, 0} {
		assert.Equal(t, 22, ansi.StringWidth(renderSignalBar(rssi, 20, ColorAccent)))
	}
}

func TestFormatLastSeen(t *testing.T) {
	assert.Equal(t, "now", formatLastSeen(200*time.Millisecond))
	assert.Equal(t, "12s ago", formatLastSeen(12*time.Second))
	assert.Equal(t, "2m ago", formatLastSeen(150*time.Second))
}

func TestRenderProximityPanel(t *testing.T) {
	f := presenter.Frame{State: presenter.State{
		Background: presenter.ColorRed,
		Status:     presenter.StatusImmediate,
		Scale:      1.2,
		Identity:   "Apple AirLocate",
	}}
	out := RenderProximityPanel(40, 16, f, "")
	plain := ansi.Strip(out)

	assert.Contains(t, plain, "RIGHT HERE")
	assert.Contains(t, plain, "Apple AirLocate")
	assert.Len(t, strings.Split(out, "\n"), 16)
	assert.Equal(t, 40, lipgloss.Width(out))
}

func TestRenderBeaconList(t *testing.T) {
	b := sampleBeacon()
	out := RenderBeaconList([]*bluetooth.Beacon{b}, map[string]bool{b.ID.String(): true}, 36, 20, 0)
	plain := ansi.Strip(out)

	assert.Contains(t, plain, "BEACONS [1]")
	assert.Contains(t, plain, "Apple AirLocate")
	assert.Contains(t, plain, "NEAR")
	assert.Len(t, strings.Split(out, "\n"), 20)

	empty := ansi.Strip(RenderBeaconList(nil, nil, 36, 20, 0))
	assert.Contains(t, empty, "No beacons")
}

func TestRenderDetailPanel(t *testing.T) {
	b := sampleBeacon()
	out := ansi.Strip(RenderDetailPanel(b, 60, 30, b.LastSeen.Add(3*time.Second)))

	assert.Contains(t, out, "E2C56DB5-DFFB-48D2-B060-D0F5A71096E0")
	assert.Contains(t, out, "-59 dBm")
	assert.Contains(t, out, "3s ago")
	assert.Contains(t, out, "RSSI History")
}

func TestRenderAlert(t *testing.T) {
	out := ansi.Strip(RenderAlert(presenter.Alert{Title: "Beacon Detected", Message: "You are near MyBeacon."}, 80))
	assert.Contains(t, out, "Beacon Detected")
	assert.Contains(t, out, "You are near MyBeacon.")
}

func TestStatusAndMenuBarsFillWidth(t *testing.T) {
	assert.Equal(t, 100, lipgloss.Width(RenderStatusBar(100, StatusInfo{Scanning: true, Heard: 3, Ranged: 2, Regions: 3, Inside: 1})))
	assert.Equal(t, 100, lipgloss.Width(RenderMenuBar(100, "hci0", false, true, "")))
}
