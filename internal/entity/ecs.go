// internal/entity/ecs.go
package entity

import (
	"pd-invaders/internal/component"
	"pd-invaders/internal/config"
)

// World - единственный владелец всего состояния сессии: игрока, строя,
// ракеты, бомб и счёта. Системы получают указатель на World при создании.
type World struct {
	Screen    component.Bounds
	Tick      uint64
	Player    *component.Player
	Formation *component.Formation
	Missile   *component.Projectile // nil, пока ракета не выпущена
	Bombs     []*component.Projectile
	Score     int
	GameState component.GameState
}

func NewWorld(cfg config.Game) *World {
	return &World{
		Screen:    component.Bounds{W: cfg.ScreenWidth, H: cfg.ScreenHeight},
		Formation: &component.Formation{},
		GameState: component.GameState{Phase: component.StartScreen},
	}
}

// MissileLive - есть ли ракета в полёте.
func (w *World) MissileLive() bool {
	return w.Missile != nil && w.Missile.Alive
}

// LiveBombs возвращает количество живых бомб.
func (w *World) LiveBombs() int {
	count := 0
	for _, b := range w.Bombs {
		if b.Alive {
			count++
		}
	}
	return count
}

// Drawables возвращает видимые сущности в порядке отрисовки:
// монстры, снаряды, игрок поверх всего.
func (w *World) Drawables() []component.Drawable {
	out := make([]component.Drawable, 0, 64)
	w.Formation.EachAlive(func(m *component.Monster) bool {
		out = append(out, m)
		return true
	})
	if w.MissileLive() {
		out = append(out, w.Missile)
	}
	for _, b := range w.Bombs {
		if b.Alive {
			out = append(out, b)
		}
	}
	if w.Player != nil && w.Player.Alive() {
		out = append(out, w.Player)
	}
	return out
}
