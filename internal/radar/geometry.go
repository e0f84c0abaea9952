package radar

import (
	"math"

	"beacon-radar.klederson.com/internal/config"
)

// CellDistance computes the distance from a cell to the indicator center,
// accounting for terminal aspect ratio.
func CellDistance(col, row, centerX, centerY int) float64 {
	dx := float64(col - centerX)
	dy := float64(row-centerY) / config.AspectRatio
	return math.Hypot(dx, dy)
}

// CellAngle computes the angle from center to a cell.
// Returns radians in [0, 2π), where 0=north, increasing clockwise.
func CellAngle(col, row, centerX, centerY int) float64 {
	dx := float64(col - centerX)
	dy := float64(row-centerY) / config.AspectRatio
	return NormalizeAngle(math.Atan2(dx, -dy))
}

// EdgeChar returns the character tangent to the circle edge at angle,
// measured clockwise from north as CellAngle does.
func EdgeChar(angle float64) rune {
	switch int(math.Round(NormalizeAngle(angle)/(math.Pi/4))) % 8 {
	case 0, 4:
		return '-'
	case 1, 5:
		return '\\'
	case 2, 6:
		return '|'
	default:
		return '/'
	}
}

// NormalizeAngle wraps an angle to [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// FitRadius returns the largest radius, in columns, of a circle that fits a
// width x height grid once aspect ratio is corrected.
func FitRadius(width, height int) float64 {
	rx := float64(width/2 - 1)
	ry := float64(height/2-1) / config.AspectRatio
	return math.Max(0, math.Min(rx, ry))
}
