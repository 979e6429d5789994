package component

import "github.com/milk9111/pacman/common"

// Collider is anything that occupies an axis-aligned rectangle.
type Collider interface {
	Bounds() common.Rect
}

// Overlaps is the AABB test used for every geometric query in the game.
// Shared edges are not an overlap.
func Overlaps(a, b common.Rect) bool {
	return a.Intersects(b)
}

// Intersects tests a collider against an arbitrary rectangle.
func Intersects(c Collider, r common.Rect) bool {
	if c == nil {
		return false
	}
	return Overlaps(c.Bounds(), r)
}

// Collide tests two colliders against each other.
func Collide(a, b Collider) bool {
	if a == nil || b == nil {
		return false
	}
	return Overlaps(a.Bounds(), b.Bounds())
}
