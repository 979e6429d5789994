package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/pacman/common"
)

// Transform is the position, size, facing and velocity of a movable entity.
// Velocity is in world units per second, one component per axis.
type Transform struct {
	common.Rect
	Facing   Direction
	Velocity cp.Vector
}

// Moved returns the bounds displaced by velocity*dt along d only.
func (t Transform) Moved(d Direction, dt float64) common.Rect {
	r := t.Rect
	step := d.Unit()
	r.X += step.X * t.Velocity.X * dt
	r.Y += step.Y * t.Velocity.Y * dt
	return r
}

func (t Transform) Bounds() common.Rect {
	return t.Rect
}
