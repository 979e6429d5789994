// Command mazecheck validates maze files and reports whether the configured
// player spawn is walkable.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/milk9111/pacman/levels"
	"github.com/milk9111/pacman/prefabs"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("mazecheck: ")

	mazeName := flag.String("maze", "", "maze file to check (defaults to the maze named in game.yaml)")
	draw := flag.Bool("draw", false, "print the maze with the spawn marked")
	flag.Parse()

	name := *mazeName
	if name == "" {
		game, err := prefabs.LoadGameSpec()
		if err != nil {
			log.Fatal(err)
		}
		name = game.Maze
	}

	m, err := loadMaze(name)
	if err != nil {
		log.Fatal(err)
	}

	player, err := prefabs.LoadPlayerSpec()
	if err != nil {
		log.Fatal(err)
	}

	ok := report(os.Stdout, name, m, player.Spawn.Row, player.Spawn.Col, *draw)
	if !ok {
		os.Exit(1)
	}
}

// loadMaze reads a path from disk when it exists, otherwise a level name.
func loadMaze(name string) (*levels.Map, error) {
	if _, err := os.Stat(name); err == nil {
		return levels.LoadFile(name)
	}
	return levels.Load(name)
}

// report writes a summary of m and returns false when the spawn is blocked.
func report(w io.Writer, name string, m *levels.Map, spawnRow, spawnCol int, draw bool) bool {
	cols, rows := m.Dimensions()
	walls := 0
	m.Tiles(func(_, _ int, t levels.Tile) {
		if !t.Walkable {
			walls++
		}
	})
	pw, ph := m.PixelSize()

	fmt.Fprintf(w, "%s: %dx%d tiles (%gx%g px), %d walls, %d open\n", name, cols, rows, pw, ph, walls, cols*rows-walls)

	occ := m.Lookup(spawnRow, spawnCol)
	fmt.Fprintf(w, "spawn (%d, %d): %s\n", spawnRow, spawnCol, occ)

	if draw {
		fmt.Fprint(w, drawMaze(m, spawnRow, spawnCol))
	}
	return occ == levels.Open
}

func drawMaze(m *levels.Map, spawnRow, spawnCol int) string {
	var b strings.Builder
	cols, _ := m.Dimensions()
	m.Tiles(func(row, col int, t levels.Tile) {
		switch {
		case row == spawnRow && col == spawnCol:
			b.WriteByte('P')
		case t.Walkable:
			b.WriteByte('.')
		default:
			b.WriteByte('#')
		}
		if col == cols-1 {
			b.WriteByte('\n')
		}
	})
	return b.String()
}
