package dock

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bnema/dockyard/internal/geometry"
	"github.com/bnema/dockyard/internal/logging"
)

// WindowOptions is the main-window configuration bitmask. It travels with
// the persisted state; restore refuses a document written under different
// options.
type WindowOptions uint32

const (
	OptionNone WindowOptions = 0

	// OptionHasCentralWidget reserves a non-dockable central area.
	OptionHasCentralWidget WindowOptions = 1 << 0

	// OptionNoSideBars disables the four minimize bars entirely.
	OptionNoSideBars WindowOptions = 1 << 1
)

// MainWindow owns the four edge bars, the single overlay slot and the
// serialization surface for one docking window. All mutation happens
// synchronously on the UI thread.
type MainWindow struct {
	name       string
	options    WindowOptions
	affinities []string

	geometry    geometry.Rect
	visible     bool
	screenIndex int
	screenSize  geometry.Size

	centralArea geometry.Rect
	margins     geometry.Margins

	dropArea DropArea
	registry Registry
	bars     map[geometry.Edge]*EdgeBar

	overlay *overlayState

	logger zerolog.Logger
}

// NewMainWindow creates a window with the given unique name and options.
// Unless OptionNoSideBars is set, all four edge bars exist from the start
// (empty, hence invisible).
func NewMainWindow(ctx context.Context, name string, options WindowOptions, dropArea DropArea, registry Registry) *MainWindow {
	ctx = logging.WithComponent(ctx, "main-window")
	ctx = logging.WithWindow(ctx, name)
	w := &MainWindow{
		name:     name,
		options:  options,
		dropArea: dropArea,
		registry: registry,
		bars:     make(map[geometry.Edge]*EdgeBar),
		logger:   *logging.FromContext(ctx),
	}
	if options&OptionNoSideBars == 0 {
		for _, edge := range geometry.Edges() {
			w.bars[edge] = NewEdgeBar(edge)
		}
	}
	return w
}

// UniqueName returns the window's unique name.
func (w *MainWindow) UniqueName() string { return w.name }

// SetUniqueName names a window constructed anonymously. Renaming is
// refused.
func (w *MainWindow) SetUniqueName(name string) {
	if name == "" {
		return
	}
	if w.name != "" {
		w.logger.Warn().Str("current", w.name).Str("requested", name).
			Msg("window already has a name, refusing rename")
		return
	}
	w.name = name
	w.logger = w.logger.With().Str("window", name).Logger()
}

// Options returns the window's option bitmask.
func (w *MainWindow) Options() WindowOptions { return w.options }

// Affinities returns the window's affinity tags.
func (w *MainWindow) Affinities() []string { return w.affinities }

// SetAffinities sets the affinity tags once. Changing a non-empty set is
// refused.
func (w *MainWindow) SetAffinities(affinities []string) {
	cleaned := cleanAffinities(affinities)
	if equalStrings(w.affinities, cleaned) {
		return
	}
	if len(w.affinities) != 0 {
		w.logger.Warn().Strs("current", w.affinities).Strs("requested", cleaned).
			Msg("affinities already set, refusing change")
		return
	}
	w.affinities = cleaned
}

// DropArea returns the layout-tree collaborator.
func (w *MainWindow) DropArea() DropArea { return w.dropArea }

// Geometry returns the window geometry.
func (w *MainWindow) Geometry() geometry.Rect { return w.geometry }

// SetGeometry updates the window geometry.
func (w *MainWindow) SetGeometry(r geometry.Rect) { w.geometry = r }

// Visible reports window visibility as persisted.
func (w *MainWindow) Visible() bool { return w.visible }

// SetVisible records window visibility.
func (w *MainWindow) SetVisible(v bool) { w.visible = v }

// SetScreen records the screen index and size persisted with the layout.
func (w *MainWindow) SetScreen(index int, size geometry.Size) {
	w.screenIndex = index
	w.screenSize = size
}

// CentralArea returns the central content rectangle.
func (w *MainWindow) CentralArea() geometry.Rect { return w.centralArea }

// SetCentralArea records the central content rectangle and its margins,
// both reported by the host layout. Overlay geometry depends on them.
func (w *MainWindow) SetCentralArea(area geometry.Rect, margins geometry.Margins) {
	w.centralArea = area
	w.margins = margins
}

// SideBar returns the bar for an edge, or nil when side bars are disabled
// or the edge is EdgeNone.
func (w *MainWindow) SideBar(edge geometry.Edge) *EdgeBar {
	return w.bars[edge]
}

// SideBarFor returns the bar currently holding the panel, or nil.
func (w *MainWindow) SideBarFor(p *Panel) *EdgeBar {
	for _, edge := range geometry.Edges() {
		if bar := w.bars[edge]; bar != nil && bar.Contains(p) {
			return bar
		}
	}
	return nil
}

// SideBarVisible reports whether the bar on the given edge is non-empty.
func (w *MainWindow) SideBarVisible(edge geometry.Edge) bool {
	if bar := w.SideBar(edge); bar != nil {
		return bar.Visible()
	}
	return false
}

// AnySideBarVisible reports whether any bar holds a panel.
func (w *MainWindow) AnySideBarVisible() bool {
	for _, edge := range geometry.Edges() {
		if w.SideBarVisible(edge) {
			return true
		}
	}
	return false
}

// MoveToSideBar minimizes the panel to the edge chosen by the placement
// heuristic.
func (w *MainWindow) MoveToSideBar(p *Panel) {
	w.MoveToSideBarAt(p, w.PreferredSideBar(p))
}

// MoveToSideBarAt minimizes the panel to the bar on the given edge. The
// panel leaves its previous container first; an overlaid panel is
// un-overlaid before it moves.
func (w *MainWindow) MoveToSideBarAt(p *Panel, edge geometry.Edge) {
	if p == nil {
		return
	}
	if !w.registry.AffinitiesCompatible(w.affinities, p.Affinities()) {
		w.logger.Warn().Str("panel", p.Name()).Strs("panel_affinities", p.Affinities()).
			Msg("refusing panel with incompatible affinity")
		return
	}
	bar := w.SideBar(edge)
	if bar == nil {
		w.logger.Warn().Str("panel", p.Name()).Str("edge", edge.String()).
			Msg("no side bar for edge, minimize not available")
		return
	}
	if w.overlaidPanel() == p {
		w.ClearSideBarOverlay()
	}
	if prev := w.SideBarFor(p); prev != nil && prev != bar {
		prev.remove(p)
	}
	bar.add(p)
	p.setMode(PlacementInSideBar)
	w.logger.Debug().Str("panel", p.Name()).Str("edge", edge.String()).Msg("panel moved to side bar")
}

// RestoreFromSideBar returns a minimized panel to normal docking. The
// overlay is cleared first so the panel is never observed in two containers.
func (w *MainWindow) RestoreFromSideBar(p *Panel) {
	if p == nil {
		return
	}
	if w.overlaidPanel() == p {
		w.ClearSideBarOverlay()
	}
	bar := w.SideBarFor(p)
	if bar == nil {
		w.logger.Warn().Str("panel", p.Name()).Msg("panel is not in any side bar")
		return
	}
	bar.remove(p)
	p.setMode(PlacementDocked)
	w.logger.Debug().Str("panel", p.Name()).Str("edge", bar.Edge().String()).Msg("panel restored from side bar")
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
