package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"beacon-radar.klederson.com/internal/bluetooth"
)

const linesPerBeacon = 4 // 3 content + 1 blank

// RenderBeaconList renders the scrollable list of heard beacons. Ranged
// beacons carry a proximity swatch; others are dimmed.
func RenderBeaconList(beacons []*bluetooth.Beacon, ranged map[string]bool, width, height, cursor int) string {
	innerW := max(10, width-4)
	innerH := max(4, height-2)

	title := StylePanelTitle.Render(fmt.Sprintf("BEACONS [%d]", len(beacons)))
	sep := StyleHelp.Render(strings.Repeat("-", innerW))
	header := []string{title, sep}
	space := max(1, innerH-len(header))

	var body []string
	if len(beacons) == 0 {
		body = append(body, "", StyleHelp.Render(" No beacons..."), StyleHelp.Render(" Waiting for ranging"))
	} else {
		visible := max(1, space/linesPerBeacon)
		start := 0
		if cursor >= visible {
			start = cursor - visible + 1
		}
		for i := start; i < len(beacons) && len(body) < space; i++ {
			key := beacons[i].ID.String()
			body = append(body, renderBeaconEntry(beacons[i], innerW, i == cursor, ranged[key])...)
		}
	}

	if len(body) > space {
		body = body[:space]
	}
	for len(body) < space {
		body = append(body, "")
	}

	content := strings.Join(append(header, body...), "\n")
	return StylePanelBorder.Width(width - 2).Height(innerH).Render(content)
}

func renderBeaconEntry(b *bluetooth.Beacon, maxW int, isCursor, isRanged bool) []string {
	name := truncRaw(b.DisplayName(), maxW-5)
	idLine := truncRaw(fmt.Sprintf("%d/%d  %s", b.ID.Major, b.ID.Minor, b.Address), maxW-3)

	dist := "  ?"
	if b.Distance > 0 {
		dist = fmt.Sprintf("~%.1fm", b.Distance)
	}
	metrics := fmt.Sprintf("%ddBm  %s  %s", int(b.RSSI), dist, strings.ToUpper(b.Proximity.String()))

	if isCursor {
		return []string{
			StyleCursorRow.Render(padRaw(">> "+name, maxW)),
			StyleCursorRow.Render(padRaw("   "+idLine, maxW)),
			StyleCursorRow.Render(padRaw("   "+metrics, maxW)),
			"",
		}
	}

	swatch := StyleHelp.Render("○")
	nameSty := StyleHelp
	if isRanged {
		swatch = lipgloss.NewStyle().Foreground(ProximityColor(b.Proximity)).Render("●")
		nameSty = StyleBeaconName
	}
	return []string{
		" " + swatch + " " + nameSty.Render(name),
		"   " + StyleBeaconID.Render(idLine),
		"   " + StyleBeaconRSSI.Render(truncRaw(metrics, maxW-3)),
		"",
	}
}

// truncRaw cuts a raw string to at most w bytes.
func truncRaw(s string, w int) string {
	if w < 1 {
		return ""
	}
	if len(s) > w {
		return s[:w]
	}
	return s
}

// padRaw pads or truncates a raw string to exactly w characters.
func padRaw(s string, w int) string {
	s = truncRaw(s, w)
	if len(s) < w {
		return s + strings.Repeat(" ", w-len(s))
	}
	return s
}
