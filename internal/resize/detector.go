// Package resize implements frameless-window edge resizing: the stateless
// cursor-zone detector, the per-window drag state machine and the native
// Windows hit-test bridge that lets the OS snap and maximize a window whose
// frame is fully client-drawn.
package resize

import (
	"github.com/bnema/dockyard/internal/geometry"
)

// Margin is the half-width of the grab band around a window border, in
// device-independent units.
const Margin = 4

// Classify maps a global cursor position to the zone of the target
// rectangle it falls in. Pure and stateless; callers re-evaluate it on
// every pointer move while not dragging. Positions outside the band on
// both axes, or ambiguous on either axis, classify as ZoneUndefined.
func Classify(target geometry.Rect, globalPos geometry.Point) geometry.Zone {
	x := globalPos.X - target.X
	y := globalPos.Y - target.Y

	var zone geometry.Zone
	if abs(x) <= Margin {
		zone |= geometry.ZoneLeft
	} else if abs(x-(target.Width-Margin)) <= Margin {
		zone |= geometry.ZoneRight
	}
	if abs(y) <= Margin {
		zone |= geometry.ZoneTop
	} else if abs(y-(target.Height-Margin)) <= Margin {
		zone |= geometry.ZoneBottom
	}
	return zone
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
