// Package render is the drawing surface the game targets. The ebiten screen
// implements Canvas in package main; tests use Recorder.
package render

import (
	"image/color"

	"github.com/milk9111/pacman/common"
)

// Canvas receives filled rectangles in world units.
type Canvas interface {
	Fill(clr color.Color)
	FillRect(r common.Rect, clr color.Color)
	StrokeRect(r common.Rect, width float64, clr color.Color)
}

// Op is one recorded canvas call.
type Op struct {
	Kind  string
	Rect  common.Rect
	Color color.RGBA
}

// Recorder is a Canvas that remembers every call in order.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) Fill(clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "fill", Color: toRGBA(clr)})
}

func (r *Recorder) FillRect(rect common.Rect, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "rect", Rect: rect, Color: toRGBA(clr)})
}

func (r *Recorder) StrokeRect(rect common.Rect, _ float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "stroke", Rect: rect, Color: toRGBA(clr)})
}

// Count returns how many recorded ops have the given kind.
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

func toRGBA(clr color.Color) color.RGBA {
	if clr == nil {
		return color.RGBA{}
	}
	r, g, b, a := clr.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
