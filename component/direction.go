package component

import (
	"fmt"
	"strings"

	"github.com/jakecoffman/cp"
)

// Direction is one of the four cardinal facings. Diagonals are not supported.
type Direction uint8

const (
	Up Direction = iota
	Down
	Right
	Left
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Right:
		return "right"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// Unit returns the screen-space unit vector for d (Y grows downward).
func (d Direction) Unit() cp.Vector {
	switch d {
	case Up:
		return cp.Vector{X: 0, Y: -1}
	case Down:
		return cp.Vector{X: 0, Y: 1}
	case Right:
		return cp.Vector{X: 1, Y: 0}
	case Left:
		return cp.Vector{X: -1, Y: 0}
	default:
		return cp.Vector{}
	}
}

// Horizontal reports whether d moves along the X axis.
func (d Direction) Horizontal() bool {
	return d == Right || d == Left
}

// ParseDirection accepts the names produced by String, case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "right":
		return Right, nil
	case "left":
		return Left, nil
	default:
		return Up, fmt.Errorf("component: unknown direction %q", s)
	}
}
