package main

import (
	"fmt"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/pacman/frame"
	"github.com/milk9111/pacman/prefabs"
	"github.com/milk9111/pacman/system"
)

type Game struct {
	frames int

	input   *Input
	world   *system.World
	watcher *prefabs.Watcher

	width, height int
}

func NewGame(gameSpec *prefabs.GameSpec, playerSpec *prefabs.PlayerSpec) (*Game, error) {
	world, err := system.NewWorldFromSpecs(gameSpec, playerSpec)
	if err != nil {
		return nil, err
	}

	w, h := world.Map.PixelSize()
	g := &Game{
		input:  NewInput(),
		world:  world,
		width:  int(math.Ceil(w)),
		height: int(math.Ceil(h)),
	}

	if dir, ok := prefabs.DiskDir(); ok {
		watcher, err := prefabs.NewWatcher(dir)
		if err != nil {
			log.Printf("prefab hot reload disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}

	cols, rows := world.Map.Dimensions()
	log.Printf("loaded maze %s: %dx%d tiles, window %dx%d", gameSpec.Maze, cols, rows, g.width, g.height)
	return g, nil
}

func (g *Game) Update() error {
	g.frames++

	if g.input.QuitRequested() {
		return ebiten.Termination
	}

	g.reloadSpecs()

	for _, ev := range g.input.Poll() {
		g.world.HandleInput(ev)
	}
	g.world.HandleUpdate(frame.UpdateInfo{DT: 1 / float64(ebiten.TPS())})

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	g.world.HandleRender(frame.RenderInfo{Width: b.Dx(), Height: b.Dy()})
	g.world.Draw(screenCanvas{screen: screen})

	if g.world.Settings().Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f\n%s", g.frames, ebiten.ActualFPS(), g.world.DebugText()))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Close stops the prefab watcher, if any.
func (g *Game) Close() {
	if g.watcher == nil {
		return
	}
	if err := g.watcher.Close(); err != nil {
		log.Printf("close prefab watcher: %v", err)
	}
}

// reloadSpecs re-reads the YAML specs after a change on disk. A bad edit is
// logged and the running settings are kept.
func (g *Game) reloadSpecs() {
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok && err != nil {
			log.Printf("prefab watcher: %v", err)
		}
	default:
	}

	changed := g.watcher.Drain()
	if len(changed) == 0 {
		return
	}

	gameSpec, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Printf("reload %v: %v", changed, err)
		return
	}
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		log.Printf("reload %v: %v", changed, err)
		return
	}
	settings, err := system.SettingsFromSpecs(gameSpec, playerSpec)
	if err != nil {
		log.Printf("reload %v: %v", changed, err)
		return
	}
	g.world.ApplySettings(settings)
	ebiten.SetTPS(gameSpec.TPS)
	log.Printf("reloaded %v", changed)
}
