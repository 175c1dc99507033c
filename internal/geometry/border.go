package geometry

// Edge identifies one side of a dock container. EdgeNone means "no
// preference" and is what placement returns when a panel has no resolvable
// layout node.
type Edge int

const (
	EdgeNone Edge = iota
	EdgeNorth
	EdgeEast
	EdgeSouth
	EdgeWest
)

// Edges lists the four real edges in the order serialization walks them.
func Edges() [4]Edge {
	return [4]Edge{EdgeNorth, EdgeEast, EdgeWest, EdgeSouth}
}

func (e Edge) String() string {
	switch e {
	case EdgeNorth:
		return "north"
	case EdgeEast:
		return "east"
	case EdgeSouth:
		return "south"
	case EdgeWest:
		return "west"
	default:
		return "none"
	}
}

// EdgeFromString is the inverse of Edge.String. Unknown names map to
// EdgeNone so a corrupt document degrades instead of failing.
func EdgeFromString(s string) Edge {
	switch s {
	case "north":
		return EdgeNorth
	case "east":
		return EdgeEast
	case "south":
		return EdgeSouth
	case "west":
		return EdgeWest
	default:
		return EdgeNone
	}
}

// IsVertical reports whether an edge bar on this edge stacks its entries
// vertically (East/West) rather than horizontally (North/South).
func (e Edge) IsVertical() bool {
	return e == EdgeEast || e == EdgeWest
}

// BorderSet is a combinable set of container borders a layout node touches.
// It is recomputed from the tree shape on every query and never persisted.
type BorderSet uint8

const (
	BorderNone  BorderSet = 0
	BorderNorth BorderSet = 1 << 0
	BorderEast  BorderSet = 1 << 1
	BorderWest  BorderSet = 1 << 2
	BorderSouth BorderSet = 1 << 3

	// BorderVerticals is both side borders, BorderHorizontals top and
	// bottom, BorderAll all four.
	BorderVerticals   = BorderEast | BorderWest
	BorderHorizontals = BorderNorth | BorderSouth
	BorderAll         = BorderVerticals | BorderHorizontals
)

// Has reports whether every border in b2 is present in b.
func (b BorderSet) Has(b2 BorderSet) bool {
	return b&b2 == b2
}

// BorderFor returns the border flag matching a single edge.
func BorderFor(e Edge) BorderSet {
	switch e {
	case EdgeNorth:
		return BorderNorth
	case EdgeEast:
		return BorderEast
	case EdgeSouth:
		return BorderSouth
	case EdgeWest:
		return BorderWest
	default:
		return BorderNone
	}
}

// EdgeFor returns the edge matching a single-border set, or EdgeNone when
// the set is empty or combined.
func EdgeFor(b BorderSet) Edge {
	switch b {
	case BorderNorth:
		return EdgeNorth
	case BorderEast:
		return EdgeEast
	case BorderSouth:
		return EdgeSouth
	case BorderWest:
		return EdgeWest
	default:
		return EdgeNone
	}
}
