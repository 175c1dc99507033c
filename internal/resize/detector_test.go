package resize

import (
	"testing"

	"github.com/bnema/dockyard/internal/geometry"
)

func TestClassify(t *testing.T) {
	target := geometry.Rect{X: 10, Y: 10, Width: 100, Height: 100}

	tests := []struct {
		name string
		pos  geometry.Point
		want geometry.Zone
	}{
		{"top-left corner", geometry.Point{X: 12, Y: 12}, geometry.ZoneTopLeft},
		{"top-right corner", geometry.Point{X: 105, Y: 11}, geometry.ZoneTopRight},
		{"bottom-left corner", geometry.Point{X: 12, Y: 104}, geometry.ZoneBottomLeft},
		{"bottom-right corner", geometry.Point{X: 106, Y: 106}, geometry.ZoneBottomRight},
		{"left edge", geometry.Point{X: 10, Y: 60}, geometry.ZoneLeft},
		{"right edge", geometry.Point{X: 105, Y: 60}, geometry.ZoneRight},
		{"top edge", geometry.Point{X: 60, Y: 10}, geometry.ZoneTop},
		{"bottom edge", geometry.Point{X: 60, Y: 107}, geometry.ZoneBottom},
		{"interior", geometry.Point{X: 60, Y: 60}, geometry.ZoneUndefined},
		{"between bands", geometry.Point{X: 25, Y: 60}, geometry.ZoneUndefined},
		{"far outside", geometry.Point{X: 200, Y: 200}, geometry.ZoneUndefined},
		{"just past the band", geometry.Point{X: 19, Y: 60}, geometry.ZoneUndefined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(target, tt.pos); got != tt.want {
				t.Errorf("Classify(%+v) = %s, want %s", tt.pos, got, tt.want)
			}
		})
	}
}

func TestClassifyIsPositionIndependent(t *testing.T) {
	// The same local offset classifies identically wherever the target sits.
	base := geometry.Rect{Width: 300, Height: 200}
	moved := geometry.Rect{X: -50, Y: 1000, Width: 300, Height: 200}

	for _, local := range []geometry.Point{
		{X: 2, Y: 2}, {X: 150, Y: 198}, {X: 298, Y: 100}, {X: 150, Y: 100},
	} {
		got := Classify(base, local)
		want := Classify(moved, geometry.Point{X: local.X + moved.X, Y: local.Y + moved.Y})
		if got != want {
			t.Errorf("local %+v: base %s, moved %s", local, got, want)
		}
	}
}

func TestCursorFor(t *testing.T) {
	tests := []struct {
		zone geometry.Zone
		want Cursor
	}{
		{geometry.ZoneTopLeft, CursorSizeFDiagonal},
		{geometry.ZoneBottomRight, CursorSizeFDiagonal},
		{geometry.ZoneTopRight, CursorSizeBDiagonal},
		{geometry.ZoneBottomLeft, CursorSizeBDiagonal},
		{geometry.ZoneTop, CursorSizeVertical},
		{geometry.ZoneBottom, CursorSizeVertical},
		{geometry.ZoneLeft, CursorSizeHorizontal},
		{geometry.ZoneRight, CursorSizeHorizontal},
		{geometry.ZoneUndefined, CursorArrow},
	}
	for _, tt := range tests {
		if got := CursorFor(tt.zone); got != tt.want {
			t.Errorf("CursorFor(%s) = %v, want %v", tt.zone, got, tt.want)
		}
	}
}
