package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pacman/prefabs"
)

func main() {
	log.SetPrefix("pacman: ")

	gameSpec, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Fatalf("failed to load game spec: %v", err)
	}
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		log.Fatalf("failed to load player spec: %v", err)
	}

	game, err := NewGame(gameSpec, playerSpec)
	if err != nil {
		log.Fatalf("failed to start: %v", err)
	}
	defer game.Close()

	ebiten.SetWindowTitle(gameSpec.Title)
	ebiten.SetWindowSize(game.width, game.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(gameSpec.TPS)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
