// internal/state/state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"pd-invaders/internal/app"
	"pd-invaders/internal/component"
	"pd-invaders/internal/render"
)

// State - интерфейс для всех экранов
type State interface {
	Enter()
	Update(deltaTime float64) error
	Draw(screen *ebiten.Image)
	Exit()
}

// InputSource отдаёт снимок ввода за тик.
type InputSource interface {
	Poll() component.Controls
}

// Context - всё, что нужно экранам: логика игры, ввод и рендерер.
type Context struct {
	Game     *app.Game
	Input    InputSource
	Renderer *render.Renderer
}

// StateMachine - структура для управления экранами
type StateMachine struct {
	current State
	quit    bool
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current возвращает активное состояние.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Quit просит цикл завершиться на следующем тике.
func (sm *StateMachine) Quit() {
	sm.quit = true
}

func (sm *StateMachine) Done() bool {
	return sm.quit
}

// Update обновляет текущее состояние. После запроса выхода ничего не делает.
func (sm *StateMachine) Update(deltaTime float64) error {
	if sm.quit || sm.current == nil {
		return nil
	}
	return sm.current.Update(deltaTime)
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
