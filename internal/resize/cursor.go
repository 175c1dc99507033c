package resize

import (
	"github.com/bnema/dockyard/internal/geometry"
)

// Cursor is the pointer shape hint shown while hovering a resize zone.
type Cursor int

const (
	CursorArrow Cursor = iota
	CursorSizeHorizontal
	CursorSizeVertical

	// CursorSizeFDiagonal is the "\" diagonal (top-left/bottom-right),
	// CursorSizeBDiagonal the "/" one.
	CursorSizeFDiagonal
	CursorSizeBDiagonal
)

// CursorFor maps a zone to its hover cursor shape.
func CursorFor(zone geometry.Zone) Cursor {
	switch zone {
	case geometry.ZoneTopLeft, geometry.ZoneBottomRight:
		return CursorSizeFDiagonal
	case geometry.ZoneBottomLeft, geometry.ZoneTopRight:
		return CursorSizeBDiagonal
	case geometry.ZoneTop, geometry.ZoneBottom:
		return CursorSizeVertical
	case geometry.ZoneLeft, geometry.ZoneRight:
		return CursorSizeHorizontal
	default:
		return CursorArrow
	}
}
