// Package dock implements the docking core: panels, per-edge minimize bars,
// the sidebar placement heuristic, the single-slot overlay lifecycle and the
// layout state codec. The layout tree itself and all widget painting stay
// behind the DropArea and host interfaces.
package dock

import (
	"github.com/bnema/dockyard/internal/geometry"
)

// Hard floor for panel minimum sizes. A panel that reports a smaller (or
// zero) minimum is treated as if it had this one, so overlay and resize
// arithmetic never degenerates.
const (
	hardMinWidth  = 80
	hardMinHeight = 90
)

// PlacementMode describes which container currently owns a panel.
type PlacementMode int

const (
	PlacementDocked PlacementMode = iota
	PlacementFloating
	PlacementInSideBar
	PlacementOverlaid
	PlacementClosed
)

func (m PlacementMode) String() string {
	switch m {
	case PlacementDocked:
		return "docked"
	case PlacementFloating:
		return "floating"
	case PlacementInSideBar:
		return "in-side-bar"
	case PlacementOverlaid:
		return "overlaid"
	case PlacementClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Panel is a dockable unit of content. It is owned by exactly one container
// at a time (drop area, edge bar or overlay frame); the window-level
// operations transfer ownership with remove-then-insert.
type Panel struct {
	name       string
	affinities []string
	geometry   geometry.Rect
	minSize    geometry.Size
	maxSize    geometry.Size
	mode       PlacementMode

	onOverlayChanged func(overlaid bool)
}

// NewPanel creates a panel with the given unique name.
func NewPanel(name string) *Panel {
	return &Panel{name: name}
}

// Name returns the panel's unique name.
func (p *Panel) Name() string { return p.name }

// Affinities returns the panel's affinity tags.
func (p *Panel) Affinities() []string { return p.affinities }

// SetAffinities replaces the panel's affinity tags, dropping empty entries.
func (p *Panel) SetAffinities(affinities []string) {
	p.affinities = cleanAffinities(affinities)
}

// Geometry returns the panel's current geometry.
func (p *Panel) Geometry() geometry.Rect { return p.geometry }

// SetGeometry updates the panel's geometry.
func (p *Panel) SetGeometry(r geometry.Rect) { p.geometry = r }

// MinSize returns the panel's reported minimum size.
func (p *Panel) MinSize() geometry.Size { return p.minSize }

// SetMinSize sets the panel's minimum size hint.
func (p *Panel) SetMinSize(s geometry.Size) { p.minSize = s }

// MaxSize returns the panel's maximum size. A zero dimension means
// unbounded.
func (p *Panel) MaxSize() geometry.Size { return p.maxSize }

// SetMaxSize sets the panel's maximum size.
func (p *Panel) SetMaxSize(s geometry.Size) { p.maxSize = s }

// EffectiveMinSize is the reported minimum expanded to the hard floor.
func (p *Panel) EffectiveMinSize() geometry.Size {
	s := p.minSize
	if s.Width < hardMinWidth {
		s.Width = hardMinWidth
	}
	if s.Height < hardMinHeight {
		s.Height = hardMinHeight
	}
	return s
}

// AspectRatio returns width/height of the panel's current geometry, or 0
// when the height is not positive.
func (p *Panel) AspectRatio() float64 {
	if p.geometry.Height <= 0 {
		return 0
	}
	return float64(p.geometry.Width) / float64(p.geometry.Height)
}

// Mode returns the panel's current placement mode.
func (p *Panel) Mode() PlacementMode { return p.mode }

func (p *Panel) setMode(m PlacementMode) { p.mode = m }

// SetOnOverlayChanged registers the hook fired when the panel enters or
// leaves the overlay. The hook runs synchronously inside the overlay
// transition, after ownership has been updated.
func (p *Panel) SetOnOverlayChanged(fn func(overlaid bool)) {
	p.onOverlayChanged = fn
}

func (p *Panel) notifyOverlayChanged(overlaid bool) {
	if p.onOverlayChanged != nil {
		p.onOverlayChanged(overlaid)
	}
}

func cleanAffinities(affinities []string) []string {
	out := make([]string, 0, len(affinities))
	for _, a := range affinities {
		if a != "" {
			out = append(out, a)
		}
	}
	return out
}
