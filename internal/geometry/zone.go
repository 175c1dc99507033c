package geometry

// Zone classifies a cursor position relative to a rectangle's edges and
// corners. It is a small closed set: the four edge flags plus their four
// corner combinations and ZoneUndefined. Keeping it closed keeps the
// resize geometry switch exhaustive.
type Zone uint8

const (
	ZoneUndefined Zone = 0
	ZoneLeft      Zone = 1 << 0
	ZoneRight     Zone = 1 << 1
	ZoneTop       Zone = 1 << 2
	ZoneBottom    Zone = 1 << 3

	ZoneTopLeft     = ZoneTop | ZoneLeft
	ZoneTopRight    = ZoneTop | ZoneRight
	ZoneBottomLeft  = ZoneBottom | ZoneLeft
	ZoneBottomRight = ZoneBottom | ZoneRight
)

// Has reports whether flag z2 is set in z.
func (z Zone) Has(z2 Zone) bool {
	return z&z2 == z2
}

// IsCorner reports whether the zone combines a horizontal and a vertical
// flag.
func (z Zone) IsCorner() bool {
	return z&(ZoneLeft|ZoneRight) != 0 && z&(ZoneTop|ZoneBottom) != 0
}

func (z Zone) String() string {
	switch z {
	case ZoneLeft:
		return "left"
	case ZoneRight:
		return "right"
	case ZoneTop:
		return "top"
	case ZoneBottom:
		return "bottom"
	case ZoneTopLeft:
		return "top-left"
	case ZoneTopRight:
		return "top-right"
	case ZoneBottomLeft:
		return "bottom-left"
	case ZoneBottomRight:
		return "bottom-right"
	default:
		return "undefined"
	}
}
