package system

import (
	"fmt"
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pacman/common"
	"github.com/milk9111/pacman/component"
	"github.com/milk9111/pacman/frame"
	"github.com/milk9111/pacman/levels"
	"github.com/milk9111/pacman/obj"
	"github.com/milk9111/pacman/prefabs"
	"github.com/milk9111/pacman/render"
)

// Phase is the session lifecycle. Entities are only updated while running.
type Phase uint8

const (
	// PhaseWaiting lasts until a render, an update and an input tick have each
	// been observed once.
	PhaseWaiting Phase = iota
	PhaseRunning
)

func (p Phase) String() string {
	if p == PhaseRunning {
		return "running"
	}
	return "waiting"
}

// Settings are the parts of the session that can change while it runs.
type Settings struct {
	Palette  render.Palette
	Debug    bool
	Velocity cp.Vector
	Probe    obj.ProbeMode
}

// World owns the maze and every entity in it.
type World struct {
	Map      *levels.Map
	Player   *obj.Player
	Entities []obj.Entity

	ctx      frame.Context
	phase    Phase
	settings Settings
	updates  int
}

// NewWorld builds a session around an already loaded maze.
func NewWorld(m *levels.Map, opts obj.PlayerOptions, settings Settings) (*World, error) {
	if m == nil {
		return nil, fmt.Errorf("world: map is nil")
	}
	if !m.IsWalkableAt(opts.SpawnRow, opts.SpawnCol) {
		return nil, fmt.Errorf("world: spawn cell (%d, %d) is not walkable", opts.SpawnRow, opts.SpawnCol)
	}
	opts.Color = settings.Palette.Player
	opts.Probe = settings.Probe
	if settings.Velocity == (cp.Vector{}) {
		settings.Velocity = opts.Velocity
	}
	opts.Velocity = settings.Velocity

	player := obj.NewPlayer(opts, m)
	return &World{
		Map:      m,
		Player:   player,
		Entities: []obj.Entity{player},
		settings: settings,
	}, nil
}

// NewWorldFromSpecs loads the maze and player named by the specs.
func NewWorldFromSpecs(game *prefabs.GameSpec, player *prefabs.PlayerSpec) (*World, error) {
	if game == nil || player == nil {
		return nil, fmt.Errorf("world: missing spec")
	}
	m, err := levels.Load(game.Maze)
	if err != nil {
		return nil, err
	}
	settings, err := SettingsFromSpecs(game, player)
	if err != nil {
		return nil, err
	}
	opts, err := PlayerOptionsFromSpec(player)
	if err != nil {
		return nil, err
	}
	return NewWorld(m, opts, settings)
}

// SettingsFromSpecs resolves the reloadable settings.
func SettingsFromSpecs(game *prefabs.GameSpec, player *prefabs.PlayerSpec) (Settings, error) {
	probe, err := obj.ParseProbeMode(game.Probe)
	if err != nil {
		return Settings{}, err
	}
	return Settings{
		Palette:  game.Palette.Palette(),
		Debug:    game.Debug,
		Velocity: cp.Vector{X: player.Velocity.X, Y: player.Velocity.Y},
		Probe:    probe,
	}, nil
}

// PlayerOptionsFromSpec converts a player spec into spawn options.
func PlayerOptionsFromSpec(spec *prefabs.PlayerSpec) (obj.PlayerOptions, error) {
	opts := obj.DefaultPlayerOptions()
	facing, err := component.ParseDirection(spec.Facing)
	if err != nil {
		return opts, err
	}
	opts.SpawnRow = spec.Spawn.Row
	opts.SpawnCol = spec.Spawn.Col
	opts.Width = spec.Collider.Width
	opts.Height = spec.Collider.Height
	opts.Velocity = cp.Vector{X: spec.Velocity.X, Y: spec.Velocity.Y}
	opts.Facing = facing
	return opts, nil
}

func (w *World) Phase() Phase {
	return w.phase
}

func (w *World) Settings() Settings {
	return w.settings
}

// Updates returns how many update ticks advanced the entities.
func (w *World) Updates() int {
	return w.updates
}

func (w *World) HandleRender(info frame.RenderInfo) {
	w.ctx.ObserveRender(info)
	w.checkReady()
}

func (w *World) HandleInput(info frame.InputInfo) {
	w.ctx.ObserveInput(info)
	w.checkReady()
}

// HandleUpdate consumes one update tick. Entities advance by its dt exactly
// once, and only after every tick kind has been seen.
func (w *World) HandleUpdate(info frame.UpdateInfo) {
	w.ctx.ObserveUpdate(info)
	w.checkReady()
	if w.phase != PhaseRunning {
		return
	}
	f, ok := w.ctx.Frame()
	if !ok {
		return
	}
	for _, e := range w.Entities {
		e.Update(f)
	}
	w.updates++
}

func (w *World) checkReady() {
	if w.phase == PhaseWaiting && w.ctx.Ready() {
		w.phase = PhaseRunning
		log.Printf("world: all tick kinds observed, starting")
	}
}

// ApplySettings swaps in reloaded settings without touching positions.
func (w *World) ApplySettings(s Settings) {
	w.settings = s
	w.Player.SetColor(s.Palette.Player)
	w.Player.SetVelocity(s.Velocity)
	w.Player.SetProbe(s.Probe)
}

// Draw paints the floor, every tile, then every entity on top.
func (w *World) Draw(c render.Canvas) {
	pal := w.settings.Palette
	c.Fill(pal.Background)

	w.Map.Tiles(func(_, _ int, t levels.Tile) {
		clr := pal.Wall
		if t.Walkable {
			clr = pal.Background
		}
		c.FillRect(t.Bounds(), clr)
	})

	for _, e := range w.Entities {
		e.Draw(c)
	}

	if !w.settings.Debug {
		return
	}
	for _, t := range w.Map.Overlapping(w.Player.Bounds()) {
		c.StrokeRect(t.Bounds(), 2, pal.Debug)
	}
}

// DebugText summarizes the session for the on-screen overlay.
func (w *World) DebugText() string {
	tr := w.Player.Transform()
	return fmt.Sprintf("phase: %s  updates: %d\nplayer: (%.1f, %.1f) cell (%d, %d) facing %s\nprobe: %s",
		w.phase, w.updates,
		tr.X, tr.Y, common.FloorCell(tr.Y), common.FloorCell(tr.X), tr.Facing,
		w.settings.Probe)
}
