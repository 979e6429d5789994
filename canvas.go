package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/pacman/common"
)

// screenCanvas draws world rectangles straight onto the ebiten screen; one
// world unit is one pixel.
type screenCanvas struct {
	screen *ebiten.Image
}

func (s screenCanvas) Fill(clr color.Color) {
	s.screen.Fill(clr)
}

func (s screenCanvas) FillRect(r common.Rect, clr color.Color) {
	vector.DrawFilledRect(s.screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), clr, false)
}

func (s screenCanvas) StrokeRect(r common.Rect, width float64, clr color.Color) {
	vector.StrokeRect(s.screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), float32(width), clr, false)
}
