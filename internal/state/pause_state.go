// internal/state/pause_state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает игру: симуляция не тикает, кадр рисуется поверх
// предыдущего состояния.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *PlayState
}

func NewPauseState(sm *StateMachine, prevState *PlayState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) error {
	controls := s.previousState.ctx.Input.Poll()
	if controls.Quit {
		s.stateMachine.Quit()
		return nil
	}
	if controls.Pause {
		s.stateMachine.SetState(s.previousState)
	}
	return nil
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	s.previousState.ctx.Renderer.DrawPaused(screen)
}

func (s *PauseState) Exit() {}
