package obj

import (
	"fmt"
	"strings"

	"github.com/milk9111/pacman/common"
	"github.com/milk9111/pacman/component"
)

// ProbeMode selects which grid cells gate a move.
type ProbeMode uint8

const (
	// ProbeEdge checks the two cells the leading edge moves into, for every
	// direction.
	ProbeEdge ProbeMode = iota
	// ProbeLegacy keeps the first lookup table, where Right and Left both
	// test the single cell (floor(row), ceil(col)). Narrow corridors are more
	// forgiving horizontally, and a leftward move can slide into a wall.
	ProbeLegacy
)

func (m ProbeMode) String() string {
	if m == ProbeLegacy {
		return "legacy"
	}
	return "edge"
}

// ParseProbeMode accepts "edge" or "legacy". The empty string selects edge.
func ParseProbeMode(s string) (ProbeMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "edge":
		return ProbeEdge, nil
	case "legacy":
		return ProbeLegacy, nil
	default:
		return ProbeEdge, fmt.Errorf("obj: unknown probe mode %q", s)
	}
}

// Cell is a grid coordinate.
type Cell struct {
	Row, Col int
}

// ProbeCells returns the two cells that must be walkable for a move in dir
// ending with its top-left corner at (x, y).
func ProbeCells(mode ProbeMode, dir component.Direction, x, y float64) [2]Cell {
	rowLo, rowHi := common.FloorCell(y), common.CeilCell(y)
	colLo, colHi := common.FloorCell(x), common.CeilCell(x)

	switch dir {
	case component.Up:
		return [2]Cell{{rowLo, colLo}, {rowLo, colHi}}
	case component.Down:
		return [2]Cell{{rowHi, colLo}, {rowHi, colHi}}
	}

	if mode == ProbeLegacy {
		return [2]Cell{{rowLo, colHi}, {rowLo, colHi}}
	}
	if dir == component.Right {
		return [2]Cell{{rowLo, colHi}, {rowHi, colHi}}
	}
	return [2]Cell{{rowLo, colLo}, {rowHi, colLo}}
}
