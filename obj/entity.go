package obj

import (
	"github.com/milk9111/pacman/component"
	"github.com/milk9111/pacman/frame"
	"github.com/milk9111/pacman/render"
)

// Entity is anything the world updates and draws each frame. Player is the
// only implementation today.
type Entity interface {
	component.Collider
	Transform() component.Transform
	Update(f frame.Frame)
	Draw(c render.Canvas)
}

var _ Entity = (*Player)(nil)
