// Package frame describes what the platform loop hands to the game each tick.
package frame

import "github.com/milk9111/pacman/component"

// Key is the subset of the keyboard the game distinguishes.
type Key uint8

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	default:
		return "other"
	}
}

// Direction maps an arrow key to its direction. ok is false for KeyOther.
func (k Key) Direction() (component.Direction, bool) {
	switch k {
	case KeyUp:
		return component.Up, true
	case KeyDown:
		return component.Down, true
	case KeyLeft:
		return component.Left, true
	case KeyRight:
		return component.Right, true
	default:
		return component.Up, false
	}
}

// RenderInfo is the viewport the next draw targets.
type RenderInfo struct {
	Width, Height int
}

// UpdateInfo carries the seconds elapsed since the previous update tick.
type UpdateInfo struct {
	DT float64
}

// InputInfo is a single key press or release.
type InputInfo struct {
	Key     Key
	Pressed bool
}

// Heading returns the direction requested by the event, if any. Releases
// and non-arrow keys request nothing.
func (in InputInfo) Heading() (component.Direction, bool) {
	if !in.Pressed {
		return component.Up, false
	}
	return in.Key.Direction()
}
