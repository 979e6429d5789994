package common

import "math"

// TileSize is the edge length of one maze tile in world units.
const TileSize = 30.0

// ToGrid converts a world coordinate to fractional grid units.
func ToGrid(v float64) float64 {
	return v / TileSize
}

// FloorCell returns the grid index containing the world coordinate v.
func FloorCell(v float64) int {
	return int(math.Floor(ToGrid(v)))
}

// CeilCell returns the grid index reached by rounding v/TileSize up.
func CeilCell(v float64) int {
	return int(math.Ceil(ToGrid(v)))
}

// ToWorld converts a grid index to the world coordinate of its top-left edge.
func ToWorld(cell int) float64 {
	return float64(cell) * TileSize
}
