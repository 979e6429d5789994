package render

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// Palette holds the colors used to draw the maze and its entities.
type Palette struct {
	Background color.RGBA
	Wall       color.RGBA
	Player     color.RGBA
	Debug      color.RGBA
}

// DefaultPalette is white floor, black walls and a red player.
func DefaultPalette() Palette {
	return Palette{
		Background: colornames.White,
		Wall:       colornames.Black,
		Player:     colornames.Red,
		Debug:      colornames.Magenta,
	}
}

// ParseColor accepts an SVG color name ("red", "navy") or "#rrggbb".
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	if len(s) == 7 && s[0] == '#' {
		var r, g, b uint8
		if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err == nil {
			return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
		}
	}
	return color.RGBA{}, fmt.Errorf("render: unknown color %q", s)
}
