package dock

import (
	"github.com/bnema/dockyard/internal/geometry"
)

// EdgeBar is the minimized-panel strip along one container edge. Order is
// tab order. A bar is visible exactly when it holds at least one panel.
type EdgeBar struct {
	edge   geometry.Edge
	panels []*Panel

	// Host-reported strip thickness: width for vertical bars (East/West),
	// height for horizontal ones. Zero while the host hasn't laid the bar
	// out, which also keeps overlay arithmetic correct for invisible bars.
	thickness int
}

// NewEdgeBar creates an empty bar for the given edge.
func NewEdgeBar(edge geometry.Edge) *EdgeBar {
	return &EdgeBar{edge: edge}
}

// Edge returns the bar's edge identity.
func (b *EdgeBar) Edge() geometry.Edge { return b.edge }

// IsVertical reports whether entries stack vertically (East/West bars).
func (b *EdgeBar) IsVertical() bool { return b.edge.IsVertical() }

// Len returns the number of panels in the bar.
func (b *EdgeBar) Len() int { return len(b.panels) }

// IsEmpty reports whether the bar holds no panels.
func (b *EdgeBar) IsEmpty() bool { return len(b.panels) == 0 }

// Visible reports whether the bar should be shown. Emptiness and
// invisibility coincide.
func (b *EdgeBar) Visible() bool { return !b.IsEmpty() }

// Thickness returns the host-reported strip thickness.
func (b *EdgeBar) Thickness() int { return b.thickness }

// SetThickness records the strip thickness reported by the host layout.
func (b *EdgeBar) SetThickness(t int) { b.thickness = t }

// Contains reports whether the bar holds the panel.
func (b *EdgeBar) Contains(p *Panel) bool {
	return b.indexOf(p) >= 0
}

// Panels returns the bar's panels in tab order.
func (b *EdgeBar) Panels() []*Panel {
	out := make([]*Panel, len(b.panels))
	copy(out, b.panels)
	return out
}

// Names returns the panel names in tab order.
func (b *EdgeBar) Names() []string {
	out := make([]string, len(b.panels))
	for i, p := range b.panels {
		out[i] = p.Name()
	}
	return out
}

func (b *EdgeBar) add(p *Panel) {
	if b.Contains(p) {
		return
	}
	b.panels = append(b.panels, p)
}

func (b *EdgeBar) remove(p *Panel) bool {
	i := b.indexOf(p)
	if i < 0 {
		return false
	}
	b.panels = append(b.panels[:i], b.panels[i+1:]...)
	return true
}

func (b *EdgeBar) clear() {
	b.panels = nil
}

func (b *EdgeBar) indexOf(p *Panel) int {
	for i, held := range b.panels {
		if held == p {
			return i
		}
	}
	return -1
}
