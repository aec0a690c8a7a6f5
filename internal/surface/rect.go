package surface

// Rect is a cell rectangle in screen coordinates. X and Y are the top-left
// corner; Width and Height are non-negative sizes in cells.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Size is the extent of a box without a position.
type Size struct {
	Width  int
	Height int
}

// NewRect creates a rectangle, clamping negative sizes to zero.
func NewRect(x, y, width, height int) Rect {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Left returns the left edge.
func (r Rect) Left() int { return r.X }

// Top returns the top edge.
func (r Rect) Top() int { return r.Y }

// Right returns the first column past the right edge.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the first row past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Size returns the rectangle's extent.
func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Encloses reports whether other lies entirely inside r.
func (r Rect) Encloses(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// Inset shrinks the rectangle by margin cells on every side. The result never
// has a negative size.
func (r Rect) Inset(margin int) Rect {
	return NewRect(r.X+margin, r.Y+margin, r.Width-2*margin, r.Height-2*margin)
}

// Translate moves the rectangle by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}
