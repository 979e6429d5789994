package levels

import (
	"bytes"
	"fmt"

	"github.com/milk9111/pacman/common"
	"github.com/milk9111/pacman/component"
)

// Tile is one grid cell of the maze.
type Tile struct {
	Walkable bool
	Rect     common.Rect
}

func (t Tile) Bounds() common.Rect { return t.Rect }

// Occupancy is the result of a grid lookup.
type Occupancy uint8

const (
	Open Occupancy = iota
	Wall
	// OutOfRange is returned for indices outside the grid. Movement treats it
	// exactly like a wall.
	OutOfRange
)

func (o Occupancy) String() string {
	switch o {
	case Open:
		return "open"
	case Wall:
		return "wall"
	default:
		return "out_of_range"
	}
}

// Map is a rectangular, non-empty grid of tiles indexed [row][col].
// It is never mutated after Parse returns.
type Map struct {
	tiles  [][]Tile
	width  int
	height int
}

// Parse builds a Map from the textual grid format: one line per row, one
// decimal digit per column, 0 walkable and anything else a wall.
func Parse(src []byte) (*Map, error) {
	return parse("", src)
}

func parse(path string, src []byte) (*Map, error) {
	fail := func(err error) (*Map, error) {
		return nil, &LoadError{Path: path, Err: err}
	}

	lines := bytes.Split(src, []byte("\n"))
	// a single terminating newline does not start another row
	if n := len(lines); n > 0 && len(lines[n-1]) == 0 {
		lines = lines[:n-1]
	}
	if len(lines) == 0 {
		return fail(ErrEmptyMap)
	}

	tiles := make([][]Tile, 0, len(lines))
	width := -1
	for row, line := range lines {
		line = bytes.TrimSuffix(line, []byte("\r"))
		if len(line) == 0 {
			return fail(fmt.Errorf("row %d: %w", row, ErrEmptyMap))
		}
		if width < 0 {
			width = len(line)
		} else if len(line) != width {
			return fail(fmt.Errorf("row %d has %d tiles, want %d: %w", row, len(line), width, ErrRaggedRow))
		}

		cells := make([]Tile, width)
		for col, ch := range line {
			if ch < '0' || ch > '9' {
				return fail(fmt.Errorf("row %d col %d: %q: %w", row, col, ch, ErrInvalidTile))
			}
			cells[col] = Tile{
				Walkable: ch == '0',
				Rect:     common.TileRect(row, col),
			}
		}
		tiles = append(tiles, cells)
	}

	return &Map{tiles: tiles, width: width, height: len(tiles)}, nil
}

// Dimensions returns the grid size as (cols, rows).
func (m *Map) Dimensions() (int, int) {
	if m == nil {
		return 0, 0
	}
	return m.width, m.height
}

// PixelSize returns the world size of the whole grid.
func (m *Map) PixelSize() (float64, float64) {
	cols, rows := m.Dimensions()
	return common.ToWorld(cols), common.ToWorld(rows)
}

// Lookup classifies the cell at row, col without ever indexing out of range.
func (m *Map) Lookup(row, col int) Occupancy {
	if m == nil || row < 0 || col < 0 || row >= m.height || col >= m.width {
		return OutOfRange
	}
	if m.tiles[row][col].Walkable {
		return Open
	}
	return Wall
}

// IsWalkableAt reports whether the cell is open. Out-of-range cells are not
// walkable.
func (m *Map) IsWalkableAt(row, col int) bool {
	return m.Lookup(row, col) == Open
}

// Tile returns the tile at row, col.
func (m *Map) Tile(row, col int) (Tile, bool) {
	if m.Lookup(row, col) == OutOfRange {
		return Tile{}, false
	}
	return m.tiles[row][col], true
}

// Tiles calls fn for every tile in row-major order.
func (m *Map) Tiles(fn func(row, col int, t Tile)) {
	if m == nil || fn == nil {
		return
	}
	for row, cells := range m.tiles {
		for col, t := range cells {
			fn(row, col, t)
		}
	}
}

// Overlapping returns the wall tiles whose bounds overlap r.
func (m *Map) Overlapping(r common.Rect) []Tile {
	if m == nil || !r.Valid() {
		return nil
	}
	minRow, maxRow := clampRange(common.FloorCell(r.Y), common.CeilCell(r.Bottom()), m.height)
	minCol, maxCol := clampRange(common.FloorCell(r.X), common.CeilCell(r.Right()), m.width)

	var out []Tile
	for row := minRow; row < maxRow; row++ {
		for col := minCol; col < maxCol; col++ {
			t := m.tiles[row][col]
			if !t.Walkable && component.Intersects(t, r) {
				out = append(out, t)
			}
		}
	}
	return out
}

func clampRange(lo, hi, n int) (int, int) {
	if lo < 0 {
		lo = 0
	}
	if hi > n {
		hi = n
	}
	return lo, hi
}
