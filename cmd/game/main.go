// cmd/game/main.go
package main

import (
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"pd-invaders/internal/app"
	"pd-invaders/internal/assets"
	"pd-invaders/internal/config"
	"pd-invaders/internal/input"
	"pd-invaders/internal/render"
	"pd-invaders/internal/state"
	"pd-invaders/internal/system"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	if a.stateMachine.Done() {
		return ebiten.Termination
	}
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	if err := a.stateMachine.Update(deltaTime); err != nil {
		return err
	}
	if a.stateMachine.Done() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Printf("FATAL: %v", err)
		return 1
	}

	manager := assets.NewManager(cfg.AssetsDir)
	defer manager.Cleanup()
	if err := manager.LoadImages(assets.RequiredImages(cfg.Rows)); err != nil {
		log.Printf("FATAL: %v", err)
		return 1
	}
	if err := manager.LoadSounds(system.Cues()); err != nil {
		log.Printf("FATAL: %v", err)
		return 1
	}

	game, err := app.NewGame(cfg, manager, manager)
	if err != nil {
		log.Printf("FATAL: %v", err)
		return 1
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	ctx := &state.Context{
		Game:     game,
		Input:    input.NewSource(),
		Renderer: render.NewRenderer(manager),
	}
	sm.SetState(state.NewStartState(sm, ctx))
	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(config.TPS)
	if err := ebiten.RunGame(a); err != nil {
		log.Printf("FATAL: %v", err)
		return 1
	}
	log.Println("Bye")
	return 0
}
