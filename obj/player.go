package obj

import (
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pacman/common"
	"github.com/milk9111/pacman/component"
	"github.com/milk9111/pacman/frame"
	"github.com/milk9111/pacman/levels"
	"github.com/milk9111/pacman/render"
	"golang.org/x/image/colornames"
)

// PlayerOptions configures a new Player. Spawn is in tile coordinates.
type PlayerOptions struct {
	SpawnRow, SpawnCol int
	Width, Height      float64
	Velocity           cp.Vector
	Facing             component.Direction
	Color              color.RGBA
	Probe              ProbeMode
}

// DefaultPlayerOptions matches the classic layout: row 13, col 10, facing
// right, one tile per second on both axes.
func DefaultPlayerOptions() PlayerOptions {
	return PlayerOptions{
		SpawnRow: 13,
		SpawnCol: 10,
		Width:    20,
		Height:   20,
		Velocity: cp.Vector{X: common.TileSize, Y: common.TileSize},
		Facing:   component.Right,
		Color:    colornames.Red,
		Probe:    ProbeEdge,
	}
}

// Player is the maze runner. It reads the map but never modifies it.
type Player struct {
	transform component.Transform
	maze      *levels.Map
	color     color.RGBA
	probe     ProbeMode
}

func NewPlayer(opts PlayerOptions, maze *levels.Map) *Player {
	return &Player{
		transform: component.Transform{
			Rect: common.Rect{
				X:      common.ToWorld(opts.SpawnCol),
				Y:      common.ToWorld(opts.SpawnRow),
				Width:  opts.Width,
				Height: opts.Height,
			},
			Facing:   opts.Facing,
			Velocity: opts.Velocity,
		},
		maze:  maze,
		color: opts.Color,
		probe: opts.Probe,
	}
}

func (p *Player) Transform() component.Transform {
	return p.transform
}

func (p *Player) Bounds() common.Rect {
	return p.transform.Rect
}

// SetVelocity replaces the per-axis speed in world units per second.
func (p *Player) SetVelocity(v cp.Vector) {
	p.transform.Velocity = v
}

func (p *Player) SetColor(c color.RGBA) {
	p.color = c
}

func (p *Player) SetProbe(mode ProbeMode) {
	p.probe = mode
}

// Update steers from the frame's input, falling back to the current facing,
// and commits the move only when the destination cells are walkable.
// Position and facing change together or not at all.
func (p *Player) Update(f frame.Frame) {
	dir, ok := f.Heading()
	if !ok {
		dir = p.transform.Facing
	}

	next := p.transform.Moved(dir, f.DT)
	if !p.CanMove(next.X, next.Y, dir) {
		return
	}

	p.transform.Rect = next
	p.transform.Facing = dir
}

// CanMove reports whether the top-left corner may move to (x, y) heading dir.
func (p *Player) CanMove(x, y float64, dir component.Direction) bool {
	for _, c := range ProbeCells(p.probe, dir, x, y) {
		if !p.maze.IsWalkableAt(c.Row, c.Col) {
			return false
		}
	}
	return true
}

func (p *Player) Draw(c render.Canvas) {
	c.FillRect(p.transform.Rect, p.color)
}
