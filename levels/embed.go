package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultMaze is the embedded maze used when no other name is configured.
const DefaultMaze = "maze.map"

//go:embed *.map
var LevelsFS embed.FS

// Load reads levels/<name> from disk when present, falling back to the
// embedded copy.
func Load(name string) (*Map, error) {
	clean := cleanLevelPath(name)
	if clean == "" {
		clean = DefaultMaze
	}
	disk := filepath.Join("levels", filepath.FromSlash(clean))
	if _, err := os.Stat(disk); err == nil {
		return LoadFile(disk)
	}
	return LoadFS(LevelsFS, clean)
}

// LoadFS parses a maze stored in fsys.
func LoadFS(fsys fs.FS, name string) (*Map, error) {
	data, err := fs.ReadFile(fsys, cleanLevelPath(name))
	if err != nil {
		return nil, &LoadError{Path: name, Err: fmt.Errorf("read level: %w", err)}
	}
	return parse(name, data)
}

// LoadFile parses the maze file at path.
func LoadFile(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("read level: %w", err)}
	}
	return parse(path, data)
}

func cleanLevelPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "levels/"); ok {
		return after
	}
	return s
}
