// internal/system/state.go
package system

import (
	"log"

	"pd-invaders/internal/component"
	"pd-invaders/internal/entity"
	"pd-invaders/internal/event"
)

// StateSystem ведёт фазы сессии START_SCREEN → PLAYING → GAME_OVER.
// GAME_OVER - конечная фаза.
type StateSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(world *entity.World, eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.PlayerHit, ss)
	return ss
}

// OnEvent: последняя жизнь потеряна - конец игры сразу, не дожидаясь конца тика.
func (s *StateSystem) OnEvent(e event.Event) {
	if e.Type == event.PlayerHit && !s.playerAlive() {
		s.finish(component.OutcomeLoss)
	}
}

// Start переводит стартовый экран в игру.
func (s *StateSystem) Start() bool {
	if s.world.GameState.Phase != component.StartScreen {
		return false
	}
	s.world.GameState.Phase = component.Playing
	log.Println("Game started")
	return true
}

// Check проверяет условия окончания в конце тика. Поражение проверяется
// первым, поэтому при одновременном исходе побеждает поражение.
func (s *StateSystem) Check() {
	if s.world.GameState.Phase != component.Playing {
		return
	}
	switch {
	case !s.playerAlive():
		s.finish(component.OutcomeLoss)
	case s.world.Formation.Empty():
		s.finish(component.OutcomeWin)
	}
}

func (s *StateSystem) Current() component.GameState {
	return s.world.GameState
}

func (s *StateSystem) finish(outcome component.Outcome) {
	if s.world.GameState.Phase == component.GameOver {
		return
	}
	s.world.GameState = component.GameState{Phase: component.GameOver, Outcome: outcome}
	log.Printf("Game over: %s, score %d, tick %d", outcome, s.world.Score, s.world.Tick)
	s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: outcome})
}

func (s *StateSystem) playerAlive() bool {
	return s.world.Player != nil && s.world.Player.Alive()
}
