package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/pacman/frame"
)

// Input turns this frame's keyboard edges into input ticks.
type Input struct {
	pressed  []ebiten.Key
	released []ebiten.Key
}

func NewInput() *Input {
	return &Input{}
}

// QuitRequested is true on the frame Escape goes down.
func (i *Input) QuitRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// Poll returns releases before presses so that a key pressed this frame is
// the latest input the world sees.
func (i *Input) Poll() []frame.InputInfo {
	i.released = inpututil.AppendJustReleasedKeys(i.released[:0])
	i.pressed = inpututil.AppendJustPressedKeys(i.pressed[:0])
	if len(i.released) == 0 && len(i.pressed) == 0 {
		return nil
	}

	events := make([]frame.InputInfo, 0, len(i.released)+len(i.pressed))
	for _, k := range i.released {
		events = append(events, frame.InputInfo{Key: translateKey(k), Pressed: false})
	}
	for _, k := range i.pressed {
		events = append(events, frame.InputInfo{Key: translateKey(k), Pressed: true})
	}
	return events
}

func translateKey(k ebiten.Key) frame.Key {
	switch k {
	case ebiten.KeyArrowUp:
		return frame.KeyUp
	case ebiten.KeyArrowDown:
		return frame.KeyDown
	case ebiten.KeyArrowLeft:
		return frame.KeyLeft
	case ebiten.KeyArrowRight:
		return frame.KeyRight
	default:
		return frame.KeyOther
	}
}
