// Package geometry provides the value types shared by the docking core:
// points, sizes, rectangles and the closed edge/zone sets used for sidebar
// placement and interactive resizing.
package geometry

// Point is a position in window or virtual-desktop coordinates.
// Coordinates can be negative (e.g. a monitor left of the primary).
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Size is a width/height pair.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// IsEmpty reports whether either dimension is non-positive.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Right returns the x coordinate of the last column inside the rectangle.
func (r Rect) Right() int { return r.X + r.Width - 1 }

// Bottom returns the y coordinate of the last row inside the rectangle.
func (r Rect) Bottom() int { return r.Y + r.Height - 1 }

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// IsEmpty reports whether the rectangle covers no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether p lies inside the rectangle (inclusive bounds).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Expanded grows the rectangle by m units on every side.
func (r Rect) Expanded(m int) Rect {
	return Rect{X: r.X - m, Y: r.Y - m, Width: r.Width + 2*m, Height: r.Height + 2*m}
}

// Margins holds per-side content margins.
type Margins struct {
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
}
