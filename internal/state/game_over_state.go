// internal/state/game_over_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GameOverState показывает итог. Любая клавиша закрывает игру.
type GameOverState struct {
	sm  *StateMachine
	ctx *Context
}

func NewGameOverState(sm *StateMachine, ctx *Context) *GameOverState {
	return &GameOverState{sm: sm, ctx: ctx}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) error {
	controls := s.ctx.Input.Poll()
	if controls.Quit || controls.Any {
		s.sm.Quit()
	}
	return nil
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	game := s.ctx.Game
	s.ctx.Renderer.DrawWorld(screen, game.World)
	s.ctx.Renderer.DrawGameOver(screen, game.Outcome(), game.Score())
}

func (s *GameOverState) Exit() {}
