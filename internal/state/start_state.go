// internal/state/start_state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// StartState - стартовый экран: строй стоит, ждём пробел.
type StartState struct {
	sm  *StateMachine
	ctx *Context
}

func NewStartState(sm *StateMachine, ctx *Context) *StartState {
	return &StartState{sm: sm, ctx: ctx}
}

func (s *StartState) Enter() {}

func (s *StartState) Update(deltaTime float64) error {
	controls := s.ctx.Input.Poll()
	if controls.Quit {
		s.sm.Quit()
		return nil
	}
	if controls.Start && s.ctx.Game.Start() {
		s.sm.SetState(NewPlayState(s.sm, s.ctx))
	}
	return nil
}

func (s *StartState) Draw(screen *ebiten.Image) {
	s.ctx.Renderer.DrawWorld(screen, s.ctx.Game.World)
	s.ctx.Renderer.DrawStartScreen(screen)
}

func (s *StartState) Exit() {}
