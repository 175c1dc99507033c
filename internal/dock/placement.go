package dock

import (
	"github.com/bnema/dockyard/internal/geometry"
)

// PreferredSideBar picks the edge a panel should minimize to, from its
// position in the layout tree and its aspect ratio. Deterministic and
// side-effect free; returns EdgeNone when the panel has no layout node.
//
// The rules run in strict priority order over the panel's adjacent borders;
// aspect ratio (width/height > 1 meaning "wide") breaks the ties.
func (w *MainWindow) PreferredSideBar(p *Panel) geometry.Edge {
	borders, ok := w.dropArea.AdjacentBorders(p)
	if !ok {
		w.logger.Warn().Str("panel", p.Name()).Msg("no layout node for panel")
		return geometry.EdgeNone
	}

	wide := p.AspectRatio() > 1.0

	// 1. Touching all four borders.
	if borders == geometry.BorderAll {
		if wide {
			return geometry.EdgeSouth
		}
		return geometry.EdgeEast
	}

	// 2. Touching three borders: use the edge opposite the missing one.
	for _, b := range []geometry.BorderSet{
		geometry.BorderNorth, geometry.BorderEast,
		geometry.BorderWest, geometry.BorderSouth,
	} {
		if borders == geometry.BorderAll&^b {
			return opposedEdgeForBorder(b)
		}
	}

	// 3. Touching both side borders.
	if borders.Has(geometry.BorderVerticals) {
		return geometry.EdgeSouth
	}

	// 4. Touching top and bottom borders.
	if borders.Has(geometry.BorderHorizontals) {
		return geometry.EdgeEast
	}

	// 5. Touching exactly one corner pair.
	switch borders {
	case geometry.BorderWest | geometry.BorderSouth:
		if wide {
			return geometry.EdgeSouth
		}
		return geometry.EdgeWest
	case geometry.BorderEast | geometry.BorderSouth:
		if wide {
			return geometry.EdgeSouth
		}
		return geometry.EdgeEast
	case geometry.BorderWest | geometry.BorderNorth:
		if wide {
			return geometry.EdgeNorth
		}
		return geometry.EdgeWest
	case geometry.BorderEast | geometry.BorderNorth:
		if wide {
			return geometry.EdgeNorth
		}
		return geometry.EdgeEast
	}

	// 6. Touching a single border.
	if edge := geometry.EdgeFor(borders); edge != geometry.EdgeNone {
		return edge
	}

	// 7. Touching none: fall back to aspect ratio.
	if wide {
		return geometry.EdgeSouth
	}
	return geometry.EdgeWest
}

// opposedEdgeForBorder maps a missing border to the bar edge on the far
// side, with East/West swapped: a panel spanning everything but the east
// border reads as belonging to the west.
func opposedEdgeForBorder(b geometry.BorderSet) geometry.Edge {
	switch b {
	case geometry.BorderNorth:
		return geometry.EdgeSouth
	case geometry.BorderEast:
		return geometry.EdgeWest
	case geometry.BorderWest:
		return geometry.EdgeEast
	case geometry.BorderSouth:
		return geometry.EdgeNorth
	default:
		return geometry.EdgeNone
	}
}
