package levels

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyMap    = errors.New("levels: map is empty")
	ErrInvalidTile = errors.New("levels: tile is not a decimal digit")
	ErrRaggedRow   = errors.New("levels: row length differs from first row")
)

// LoadError reports a maze that could not be read or parsed. There is no game
// without a map, so callers treat it as fatal.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("load maze: %v", e.Err)
	}
	return fmt.Sprintf("load maze %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
