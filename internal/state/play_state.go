// internal/state/play_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"pd-invaders/internal/component"
	"pd-invaders/internal/config"
	"pd-invaders/internal/ui"
)

// PlayState гоняет симуляцию, пока партия не закончится.
type PlayState struct {
	sm    *StateMachine
	ctx   *Context
	lives *ui.LivesIndicator

	// Пробел, которым начали игру, ещё зажат: огонь игнорируется,
	// пока клавишу не отпустят.
	fireLatched bool
}

func NewPlayState(sm *StateMachine, ctx *Context) *PlayState {
	return &PlayState{
		sm:    sm,
		ctx:   ctx,
		lives: ui.NewLivesIndicator(config.ScreenWidth-120, 28),

		fireLatched: true,
	}
}

func (s *PlayState) Enter() {}

func (s *PlayState) Update(deltaTime float64) error {
	controls := s.ctx.Input.Poll()
	if controls.Quit {
		s.sm.Quit()
		return nil
	}
	if controls.Pause {
		s.sm.SetState(NewPauseState(s.sm, s))
		return nil
	}

	if s.fireLatched {
		if controls.Fire {
			controls.Fire = false
		} else {
			s.fireLatched = false
		}
	}

	if err := s.ctx.Game.Update(controls, deltaTime); err != nil {
		return err
	}
	if s.ctx.Game.Phase() == component.GameOver {
		s.sm.SetState(NewGameOverState(s.sm, s.ctx))
	}
	return nil
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	s.ctx.Renderer.DrawWorld(screen, s.ctx.Game.World)
	s.ctx.Renderer.DrawHUD(screen, s.ctx.Game.Score(), s.ctx.Game.Lives())
	s.lives.Draw(screen, s.ctx.Game.Lives(), s.ctx.Game.Config.Lives)
}

func (s *PlayState) Exit() {}
