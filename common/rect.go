package common

// Rect is an axis-aligned rectangle. X and Y are the top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// TileRect returns the bounds of the tile at row, col.
func TileRect(row, col int) Rect {
	return Rect{X: ToWorld(col), Y: ToWorld(row), Width: TileSize, Height: TileSize}
}

func (r Rect) Right() float64 {
	return r.X + r.Width
}

func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Valid reports whether both extents are positive.
func (r Rect) Valid() bool {
	return r.Width > 0 && r.Height > 0
}

// Intersects is an open-interval overlap test: rectangles that only share an
// edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}
