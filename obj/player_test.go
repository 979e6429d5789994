package obj

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pacman/common"
	"github.com/milk9111/pacman/component"
	"github.com/milk9111/pacman/frame"
	"github.com/milk9111/pacman/levels"
	"github.com/milk9111/pacman/render"
)

func mustParse(t *testing.T, src string) *levels.Map {
	t.Helper()
	m, err := levels.Parse([]byte(src))
	if err != nil {
		t.Fatalf("parse maze: %v", err)
	}
	return m
}

// openMaze is a 20x20 grid with a border wall and an open interior.
func openMaze(t *testing.T) *levels.Map {
	t.Helper()
	src := ""
	for row := 0; row < 20; row++ {
		for col := 0; col < 20; col++ {
			if row == 0 || col == 0 || row == 19 || col == 19 {
				src += "1"
			} else {
				src += "0"
			}
		}
		src += "\n"
	}
	return mustParse(t, src)
}

func press(k frame.Key) *frame.InputInfo {
	return &frame.InputInfo{Key: k, Pressed: true}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPlayerScenarioMoveRight(t *testing.T) {
	p := NewPlayer(DefaultPlayerOptions(), openMaze(t))
	before := p.Transform()
	if before.X != 300 || before.Y != 390 {
		t.Fatalf("spawn at (%v, %v), want (300, 390)", before.X, before.Y)
	}

	p.Update(frame.Frame{DT: 0.1, Input: &frame.InputInfo{Key: frame.KeyOther}})

	after := p.Transform()
	if !approx(after.X, before.X+3.0) || after.Y != before.Y {
		t.Fatalf("expected x to advance by 3, got (%v, %v)", after.X, after.Y)
	}
	if after.Facing != component.Right {
		t.Fatalf("facing = %v, want right", after.Facing)
	}
}

func TestPlayerMovesPerDirection(t *testing.T) {
	cases := []struct {
		name   string
		key    frame.Key
		dx, dy float64
		facing component.Direction
	}{
		{"up", frame.KeyUp, 0, -6, component.Up},
		{"down", frame.KeyDown, 0, 6, component.Down},
		{"left", frame.KeyLeft, -3, 0, component.Left},
		{"right", frame.KeyRight, 3, 0, component.Right},
	}

	for _, mode := range []ProbeMode{ProbeEdge, ProbeLegacy} {
		for _, c := range cases {
			t.Run(mode.String()+"_"+c.name, func(t *testing.T) {
				opts := DefaultPlayerOptions()
				opts.SpawnRow, opts.SpawnCol = 10, 10
				opts.Velocity = cp.Vector{X: 30, Y: 60}
				opts.Probe = mode
				p := NewPlayer(opts, openMaze(t))
				start := p.Transform()

				p.Update(frame.Frame{DT: 0.1, Input: press(c.key)})

				got := p.Transform()
				if !approx(got.X-start.X, c.dx) || !approx(got.Y-start.Y, c.dy) {
					t.Fatalf("moved by (%v, %v), want (%v, %v)", got.X-start.X, got.Y-start.Y, c.dx, c.dy)
				}
				if got.Facing != c.facing {
					t.Fatalf("facing = %v, want %v", got.Facing, c.facing)
				}
			})
		}
	}
}

func TestPlayerBlockedByWall(t *testing.T) {
	// spawn corridor at row 1 with walls above and below
	m := mustParse(t, ""+
		"11111\n"+
		"10001\n"+
		"11111\n")

	cases := []struct {
		name string
		key  frame.Key
	}{
		{"up_into_wall", frame.KeyUp},
		{"down_into_wall", frame.KeyDown},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			opts := DefaultPlayerOptions()
			opts.SpawnRow, opts.SpawnCol = 1, 2
			p := NewPlayer(opts, m)
			before := p.Transform()

			p.Update(frame.Frame{DT: 0.1, Input: press(c.key)})

			after := p.Transform()
			if after != before {
				t.Fatalf("blocked move must not change transform: before %+v after %+v", before, after)
			}
		})
	}
}

func TestPlayerBlockedAtRightWall(t *testing.T) {
	m := mustParse(t, ""+
		"11111\n"+
		"10001\n"+
		"11111\n")
	opts := DefaultPlayerOptions()
	opts.SpawnRow, opts.SpawnCol = 1, 3
	opts.Facing = component.Left
	p := NewPlayer(opts, m)
	before := p.Transform()

	p.Update(frame.Frame{DT: 0.1, Input: press(frame.KeyRight)})

	if p.Transform() != before {
		t.Fatalf("move into right wall should be rejected")
	}
	if p.Transform().Facing != component.Left {
		t.Fatalf("facing must not change on a rejected move")
	}
}

func TestPlayerKeepsFacingWithoutInput(t *testing.T) {
	p := NewPlayer(DefaultPlayerOptions(), openMaze(t))

	p.Update(frame.Frame{DT: 0.1, Input: press(frame.KeyDown)})
	afterPress := p.Transform()
	if afterPress.Facing != component.Down {
		t.Fatalf("facing = %v, want down", afterPress.Facing)
	}

	inputs := []*frame.InputInfo{
		nil,
		{Key: frame.KeyDown, Pressed: false},
		{Key: frame.KeyOther, Pressed: true},
	}
	y := afterPress.Y
	for i, in := range inputs {
		p.Update(frame.Frame{DT: 0.1, Input: in})
		got := p.Transform()
		if got.Facing != component.Down {
			t.Fatalf("step %d: facing = %v, want down", i, got.Facing)
		}
		if !approx(got.Y, y+3) {
			t.Fatalf("step %d: y = %v, expected continued downward motion from %v", i, got.Y, y)
		}
		y = got.Y
	}
}

func TestPlayerCannotLeaveMap(t *testing.T) {
	// open grid with no border: the only thing stopping the player is the edge
	m := mustParse(t, "000\n000\n000\n")
	opts := DefaultPlayerOptions()
	opts.SpawnRow, opts.SpawnCol = 0, 0
	opts.Facing = component.Up
	p := NewPlayer(opts, m)

	for _, k := range []frame.Key{frame.KeyUp, frame.KeyLeft} {
		before := p.Transform()
		p.Update(frame.Frame{DT: 0.1, Input: press(k)})
		if p.Transform() != before {
			t.Fatalf("move %v off the top-left edge should be rejected", k)
		}
	}

	opts.SpawnRow, opts.SpawnCol = 2, 2
	opts.Facing = component.Right
	p = NewPlayer(opts, m)
	for _, k := range []frame.Key{frame.KeyRight, frame.KeyDown} {
		before := p.Transform()
		p.Update(frame.Frame{DT: 0.1, Input: press(k)})
		if p.Transform() != before {
			t.Fatalf("move %v off the bottom-right edge should be rejected", k)
		}
	}
}

func TestProbeModesDifferMovingLeft(t *testing.T) {
	// wall at col 0; player sits at col 1 and steps left into it
	m := mustParse(t, "100\n100\n")
	opts := DefaultPlayerOptions()
	opts.SpawnRow, opts.SpawnCol = 0, 1
	opts.Facing = component.Left

	edge := NewPlayer(opts, m)
	edge.Update(frame.Frame{DT: 0.1, Input: press(frame.KeyLeft)})
	if edge.Transform().X != common.TileSize {
		t.Fatalf("edge probe should reject moving into the wall, x = %v", edge.Transform().X)
	}

	opts.Probe = ProbeLegacy
	legacy := NewPlayer(opts, m)
	legacy.Update(frame.Frame{DT: 0.1, Input: press(frame.KeyLeft)})
	if !approx(legacy.Transform().X, common.TileSize-3) {
		t.Fatalf("legacy probe only checks the ceil column and should accept, x = %v", legacy.Transform().X)
	}
}

func TestProbeCells(t *testing.T) {
	cases := []struct {
		name string
		mode ProbeMode
		dir  component.Direction
		x, y float64
		want [2]Cell
	}{
		{"up", ProbeEdge, component.Up, 303, 387, [2]Cell{{12, 10}, {12, 11}}},
		{"down", ProbeEdge, component.Down, 303, 393, [2]Cell{{14, 10}, {14, 11}}},
		{"right_edge", ProbeEdge, component.Right, 303, 393, [2]Cell{{13, 11}, {14, 11}}},
		{"left_edge", ProbeEdge, component.Left, 297, 393, [2]Cell{{13, 9}, {14, 9}}},
		{"right_legacy", ProbeLegacy, component.Right, 303, 393, [2]Cell{{13, 11}, {13, 11}}},
		{"left_legacy", ProbeLegacy, component.Left, 297, 393, [2]Cell{{13, 10}, {13, 10}}},
		{"up_legacy_same_as_edge", ProbeLegacy, component.Up, 303, 387, [2]Cell{{12, 10}, {12, 11}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ProbeCells(c.mode, c.dir, c.x, c.y); got != c.want {
				t.Fatalf("ProbeCells = %v, want %v", got, c.want)
			}
		})
	}
}

func TestParseProbeMode(t *testing.T) {
	cases := []struct {
		in      string
		want    ProbeMode
		wantErr bool
	}{
		{"", ProbeEdge, false},
		{"edge", ProbeEdge, false},
		{"LEGACY", ProbeLegacy, false},
		{"diagonal", ProbeEdge, true},
	}
	for _, c := range cases {
		got, err := ParseProbeMode(c.in)
		if (err != nil) != c.wantErr || got != c.want {
			t.Fatalf("ParseProbeMode(%q) = %v, %v", c.in, got, err)
		}
	}
}

func TestPlayerDraw(t *testing.T) {
	p := NewPlayer(DefaultPlayerOptions(), openMaze(t))
	var rec render.Recorder
	p.Draw(&rec)
	if len(rec.Ops) != 1 || rec.Ops[0].Rect != p.Bounds() {
		t.Fatalf("expected one rect at player bounds, got %+v", rec.Ops)
	}
	if rec.Ops[0].Color != DefaultPlayerOptions().Color {
		t.Fatalf("player color = %v", rec.Ops[0].Color)
	}
}
