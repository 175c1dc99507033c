package geometry

import "testing"

func TestRectEdgesAreInclusive(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	if r.Right() != 109 || r.Bottom() != 69 {
		t.Errorf("Right/Bottom = %d/%d, want 109/69", r.Right(), r.Bottom())
	}
	if !r.Contains(Point{X: 109, Y: 69}) {
		t.Error("the last row and column belong to the rect")
	}
	if r.Contains(Point{X: 110, Y: 69}) {
		t.Error("one past the right edge is outside")
	}
}

func TestRectExpanded(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 100, Height: 100}
	e := r.Expanded(4)
	want := Rect{X: 6, Y: 6, Width: 108, Height: 108}
	if e != want {
		t.Errorf("Expanded(4) = %+v, want %+v", e, want)
	}
}

func TestEdgeStringRoundTrip(t *testing.T) {
	for _, edge := range Edges() {
		if got := EdgeFromString(edge.String()); got != edge {
			t.Errorf("EdgeFromString(%q) = %v, want %v", edge.String(), got, edge)
		}
	}
	if EdgeFromString("diagonal") != EdgeNone {
		t.Error("unknown edge names map to EdgeNone")
	}
}

func TestEdgeIsVertical(t *testing.T) {
	if !EdgeEast.IsVertical() || !EdgeWest.IsVertical() {
		t.Error("east and west bars are vertical")
	}
	if EdgeNorth.IsVertical() || EdgeSouth.IsVertical() {
		t.Error("north and south bars are horizontal")
	}
}

func TestBorderEdgeMapping(t *testing.T) {
	for _, edge := range Edges() {
		border := BorderFor(edge)
		if got := EdgeFor(border); got != edge {
			t.Errorf("EdgeFor(BorderFor(%v)) = %v", edge, got)
		}
	}
	if EdgeFor(BorderNorth|BorderEast) != EdgeNone {
		t.Error("multi-border sets have no single edge")
	}
	if EdgeFor(BorderNone) != EdgeNone {
		t.Error("the empty set has no edge")
	}
}

func TestBorderSetHas(t *testing.T) {
	set := BorderVerticals
	if !set.Has(BorderEast) || !set.Has(BorderWest) {
		t.Error("verticals contain east and west")
	}
	if set.Has(BorderNorth) {
		t.Error("verticals must not contain north")
	}
	if !BorderAll.Has(BorderHorizontals) {
		t.Error("all contains the horizontal pair")
	}
}

func TestZoneCorners(t *testing.T) {
	if !ZoneTopLeft.IsCorner() || ZoneLeft.IsCorner() {
		t.Error("corner detection is wrong")
	}
	if !ZoneBottomRight.Has(ZoneRight) || !ZoneBottomRight.Has(ZoneBottom) {
		t.Error("corner zones are the union of their edges")
	}
}
