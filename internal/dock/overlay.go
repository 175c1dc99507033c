package dock

import (
	"github.com/bnema/dockyard/internal/geometry"
)

// Minimum extent of an overlay popup along its free axis, before the
// panel's own minimum size takes over.
const overlayMinExtent = 300

// Margin reserved around the popup.
const overlayMargin = 1

// OverlayFrame is the temporary host created for an overlaid panel. It
// lives exactly as long as the overlay does.
type OverlayFrame struct {
	panel    *Panel
	geometry geometry.Rect
}

// Panel returns the hosted panel.
func (f *OverlayFrame) Panel() *Panel { return f.panel }

// Geometry returns the popup rectangle in window coordinates.
func (f *OverlayFrame) Geometry() geometry.Rect { return f.geometry }

// overlayState is the single optional overlay slot. All mutation goes
// through the three entry points below; the invariant is at most one
// overlay, and its panel always resides in some edge bar.
type overlayState struct {
	panel *Panel
	frame *OverlayFrame
}

// OverlaidPanel returns the currently overlaid panel, or nil.
func (w *MainWindow) OverlaidPanel() *Panel { return w.overlaidPanel() }

func (w *MainWindow) overlaidPanel() *Panel {
	if w.overlay == nil {
		return nil
	}
	return w.overlay.panel
}

// OverlayGeometry returns the current popup rectangle, if an overlay
// exists.
func (w *MainWindow) OverlayGeometry() (geometry.Rect, bool) {
	if w.overlay == nil {
		return geometry.Rect{}, false
	}
	return w.overlay.frame.geometry, true
}

// OverlayOnSideBar shows the panel in a temporary popup anchored to its
// edge bar. The panel must already be minimized to a bar; otherwise this is
// a logged no-op. Any existing overlay is cleared first.
func (w *MainWindow) OverlayOnSideBar(p *Panel) {
	if p == nil {
		return
	}
	bar := w.SideBarFor(p)
	if bar == nil {
		w.logger.Warn().Str("panel", p.Name()).
			Msg("panel must be in a side bar before it can be overlaid")
		return
	}
	if w.overlaidPanel() == p {
		// Already overlaid.
		return
	}

	// Only one overlay at a time.
	w.ClearSideBarOverlay()

	frame := &OverlayFrame{panel: p}
	w.overlay = &overlayState{panel: p, frame: frame}
	w.updateOverlayGeometry()
	p.setMode(PlacementOverlaid)
	p.notifyOverlayChanged(true)
	w.logger.Debug().Str("panel", p.Name()).Str("edge", bar.Edge().String()).Msg("panel overlaid")
}

// ToggleOverlayOnSideBar clears the overlay if p is the overlaid panel,
// otherwise overlays p (clearing any other overlay first).
func (w *MainWindow) ToggleOverlayOnSideBar(p *Panel) {
	wasOverlaid := w.overlaidPanel() == p
	w.ClearSideBarOverlay()
	if !wasOverlaid {
		w.OverlayOnSideBar(p)
	}
}

// ClearSideBarOverlay detaches the overlaid panel, destroys its host frame
// and notifies the panel. No-op when nothing is overlaid. Callers must
// clear before removing the panel from its bar or re-docking it.
func (w *MainWindow) ClearSideBarOverlay() {
	if w.overlay == nil {
		return
	}
	p := w.overlay.panel
	w.overlay = nil
	p.setMode(PlacementInSideBar)
	p.notifyOverlayChanged(false)
	w.logger.Debug().Str("panel", p.Name()).Msg("overlay cleared")
}

// OnResized recomputes the overlay geometry after the container resized,
// keeping the popup anchored to its edge bar.
func (w *MainWindow) OnResized() {
	if w.overlay != nil {
		w.updateOverlayGeometry()
	}
}

func (w *MainWindow) updateOverlayGeometry() {
	if w.overlay == nil {
		return
	}
	bar := w.SideBarFor(w.overlay.panel)
	if bar == nil {
		w.logger.Warn().Str("panel", w.overlay.panel.Name()).Msg("expected a side bar for overlaid panel")
		return
	}
	w.overlay.frame.geometry = w.rectForOverlay(w.overlay.panel, bar.Edge())
}

// rectForOverlay computes the popup rectangle for a panel overlaid on the
// given edge. North/South popups span the central width between the side
// bars; East/West popups span the central height between the top and bottom
// bars. Returns an empty rect when the edge has no bar.
func (w *MainWindow) rectForOverlay(p *Panel, edge geometry.Edge) geometry.Rect {
	bar := w.SideBar(edge)
	if bar == nil {
		return geometry.Rect{}
	}

	central := w.centralArea
	margins := w.margins
	minSize := p.EffectiveMinSize()

	var rect geometry.Rect
	switch edge {
	case geometry.EdgeNorth, geometry.EdgeSouth:
		westWidth := 0
		if west := w.SideBar(geometry.EdgeWest); west != nil && west.Visible() {
			westWidth = west.Thickness()
		}
		eastWidth := 0
		if east := w.SideBar(geometry.EdgeEast); east != nil && east.Visible() {
			eastWidth = east.Thickness()
		}
		rect.Height = max(overlayMinExtent, minSize.Height)
		rect.Width = central.Width - 2*overlayMargin - westWidth - eastWidth
		rect.X = overlayMargin + westWidth
		if edge == geometry.EdgeSouth {
			rect.Y = central.Bottom() - margins.Bottom - rect.Height - bar.Thickness()
		} else {
			rect.Y = central.Y + bar.Thickness() + margins.Top
		}

	case geometry.EdgeEast, geometry.EdgeWest:
		northHeight := 0
		if north := w.SideBar(geometry.EdgeNorth); north != nil && north.Visible() {
			northHeight = north.Thickness()
		}
		southHeight := 0
		if south := w.SideBar(geometry.EdgeSouth); south != nil && south.Visible() {
			southHeight = south.Thickness()
		}
		rect.Width = max(overlayMinExtent, minSize.Width)
		rect.Height = central.Height - northHeight - southHeight - margins.Top - margins.Bottom
		rect.Y = central.Y + northHeight - 1
		if edge == geometry.EdgeEast {
			rect.X = central.Width - rect.Width - bar.Thickness() - margins.Right - overlayMargin
		} else {
			rect.X = overlayMargin + central.X + margins.Left + bar.Thickness()
		}

	default:
		// EdgeNone: empty rect.
	}

	return rect
}
