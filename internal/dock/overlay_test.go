package dock

import (
	"fmt"
	"testing"

	"github.com/bnema/dockyard/internal/geometry"
)

// overlayTestWindow is a 1000x800 central area with zero margins.
func overlayTestWindow(t *testing.T) (*MainWindow, *MemoryRegistry) {
	t.Helper()
	w, _, registry := newTestWindow(t, OptionNone)
	w.SetCentralArea(geometry.Rect{Width: 1000, Height: 800}, geometry.Margins{})
	return w, registry
}

func minimizeTo(t *testing.T, w *MainWindow, registry *MemoryRegistry, name string, edge geometry.Edge, thickness int) *Panel {
	t.Helper()
	p := registerPanel(t, registry, name)
	w.SideBar(edge).SetThickness(thickness)
	w.MoveToSideBarAt(p, edge)
	return p
}

func TestOverlayRequiresSideBar(t *testing.T) {
	w, registry := overlayTestWindow(t)
	p := registerPanel(t, registry, "loose")

	w.OverlayOnSideBar(p)

	if w.OverlaidPanel() != nil {
		t.Error("panel outside any bar must not be overlaid")
	}
	if _, ok := w.OverlayGeometry(); ok {
		t.Error("no overlay geometry should exist")
	}
}

func TestOverlayLifecycle(t *testing.T) {
	w, registry := overlayTestWindow(t)
	p := minimizeTo(t, w, registry, "console", geometry.EdgeSouth, 24)

	var events []string
	p.SetOnOverlayChanged(func(overlaid bool) {
		events = append(events, fmt.Sprintf("console:%v", overlaid))
	})

	w.OverlayOnSideBar(p)

	if w.OverlaidPanel() != p {
		t.Fatal("panel should be overlaid")
	}
	if p.Mode() != PlacementOverlaid {
		t.Errorf("mode = %s, want overlaid", p.Mode())
	}
	if got := w.SideBarFor(p); got == nil || got.Edge() != geometry.EdgeSouth {
		t.Error("overlaid panel must stay in its bar")
	}

	// Overlaying the same panel again is a no-op.
	w.OverlayOnSideBar(p)
	if len(events) != 1 {
		t.Errorf("re-overlay fired %d events, want 1", len(events))
	}

	w.ClearSideBarOverlay()
	if w.OverlaidPanel() != nil {
		t.Error("overlay should be cleared")
	}
	if p.Mode() != PlacementInSideBar {
		t.Errorf("mode after clear = %s, want in-side-bar", p.Mode())
	}
	if len(events) != 2 || events[1] != "console:false" {
		t.Errorf("events = %v, want a trailing console:false", events)
	}

	// Clearing again is a no-op.
	w.ClearSideBarOverlay()
	if len(events) != 2 {
		t.Errorf("second clear fired extra events: %v", events)
	}
}

func TestOverlayIsSingleSlot(t *testing.T) {
	w, registry := overlayTestWindow(t)
	p := minimizeTo(t, w, registry, "first", geometry.EdgeSouth, 24)
	q := minimizeTo(t, w, registry, "second", geometry.EdgeWest, 24)

	var events []string
	p.SetOnOverlayChanged(func(overlaid bool) { events = append(events, fmt.Sprintf("first:%v", overlaid)) })
	q.SetOnOverlayChanged(func(overlaid bool) { events = append(events, fmt.Sprintf("second:%v", overlaid)) })

	w.OverlayOnSideBar(p)
	w.OverlayOnSideBar(q)

	if w.OverlaidPanel() != q {
		t.Fatal("second panel should hold the overlay slot")
	}
	if p.Mode() != PlacementInSideBar {
		t.Errorf("displaced panel mode = %s, want in-side-bar", p.Mode())
	}

	// The old overlay is torn down before the new one appears.
	want := []string{"first:true", "first:false", "second:true"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Fatalf("events = %v, want %v", events, want)
		}
	}
}

func TestToggleOverlay(t *testing.T) {
	w, registry := overlayTestWindow(t)
	p := minimizeTo(t, w, registry, "first", geometry.EdgeSouth, 24)
	q := minimizeTo(t, w, registry, "second", geometry.EdgeWest, 24)

	w.ToggleOverlayOnSideBar(p)
	if w.OverlaidPanel() != p {
		t.Fatal("toggle should overlay an un-overlaid panel")
	}

	w.ToggleOverlayOnSideBar(p)
	if w.OverlaidPanel() != nil {
		t.Fatal("toggling the overlaid panel should clear the overlay")
	}

	w.ToggleOverlayOnSideBar(p)
	w.ToggleOverlayOnSideBar(q)
	if w.OverlaidPanel() != q {
		t.Fatal("toggling another panel should transfer the overlay")
	}
}

func TestMinimizeElsewhereClearsOverlay(t *testing.T) {
	w, registry := overlayTestWindow(t)
	p := minimizeTo(t, w, registry, "console", geometry.EdgeSouth, 24)
	w.OverlayOnSideBar(p)

	w.MoveToSideBarAt(p, geometry.EdgeWest)

	if w.OverlaidPanel() != nil {
		t.Error("moving the overlaid panel should clear the overlay")
	}
	if got := w.SideBarFor(p); got == nil || got.Edge() != geometry.EdgeWest {
		t.Error("panel should land on the west bar")
	}
	if p.Mode() != PlacementInSideBar {
		t.Errorf("mode = %s, want in-side-bar", p.Mode())
	}
}

func TestOverlayGeometrySouth(t *testing.T) {
	w, registry := overlayTestWindow(t)
	p := minimizeTo(t, w, registry, "console", geometry.EdgeSouth, 24)
	p.SetMinSize(geometry.Size{Width: 200, Height: 100})

	w.OverlayOnSideBar(p)

	rect, ok := w.OverlayGeometry()
	if !ok {
		t.Fatal("overlay geometry should exist")
	}
	// Height snaps to the 300 minimum; the popup spans the central width
	// minus one pixel per side, sitting on top of the bar strip.
	want := geometry.Rect{X: 1, Y: 475, Width: 998, Height: 300}
	if rect != want {
		t.Errorf("south overlay = %+v, want %+v", rect, want)
	}
}

func TestOverlayGeometrySouthAvoidsVerticalBars(t *testing.T) {
	w, registry := overlayTestWindow(t)
	p := minimizeTo(t, w, registry, "console", geometry.EdgeSouth, 24)
	minimizeTo(t, w, registry, "files", geometry.EdgeWest, 24)

	w.OverlayOnSideBar(p)

	rect, _ := w.OverlayGeometry()
	if rect.X != 25 {
		t.Errorf("popup should start past the west bar, X = %d, want 25", rect.X)
	}
	if rect.Width != 974 {
		t.Errorf("popup should shrink by the west bar width, Width = %d, want 974", rect.Width)
	}
}

func TestOverlayGeometryNorth(t *testing.T) {
	w, registry := overlayTestWindow(t)
	p := minimizeTo(t, w, registry, "toolbar", geometry.EdgeNorth, 20)

	w.OverlayOnSideBar(p)

	rect, _ := w.OverlayGeometry()
	want := geometry.Rect{X: 1, Y: 20, Width: 998, Height: 300}
	if rect != want {
		t.Errorf("north overlay = %+v, want %+v", rect, want)
	}
}

func TestOverlayGeometryWest(t *testing.T) {
	w, registry := overlayTestWindow(t)
	p := minimizeTo(t, w, registry, "files", geometry.EdgeWest, 24)
	p.SetMinSize(geometry.Size{Width: 420, Height: 100})

	w.OverlayOnSideBar(p)

	rect, _ := w.OverlayGeometry()
	// Width honors the panel minimum once it exceeds 300.
	want := geometry.Rect{X: 25, Y: -1, Width: 420, Height: 800}
	if rect != want {
		t.Errorf("west overlay = %+v, want %+v", rect, want)
	}
}

func TestOverlayGeometryEast(t *testing.T) {
	w, registry := overlayTestWindow(t)
	p := minimizeTo(t, w, registry, "props", geometry.EdgeEast, 30)

	w.OverlayOnSideBar(p)

	rect, _ := w.OverlayGeometry()
	want := geometry.Rect{X: 669, Y: -1, Width: 300, Height: 800}
	if rect != want {
		t.Errorf("east overlay = %+v, want %+v", rect, want)
	}
}

func TestOverlayFollowsResize(t *testing.T) {
	w, registry := overlayTestWindow(t)
	p := minimizeTo(t, w, registry, "console", geometry.EdgeSouth, 24)
	w.OverlayOnSideBar(p)

	before, _ := w.OverlayGeometry()

	w.SetCentralArea(geometry.Rect{Width: 1200, Height: 900}, geometry.Margins{})
	w.OnResized()

	after, _ := w.OverlayGeometry()
	if after == before {
		t.Fatal("overlay geometry should track the central area")
	}
	if after.Width != 1198 {
		t.Errorf("resized popup width = %d, want 1198", after.Width)
	}
}
