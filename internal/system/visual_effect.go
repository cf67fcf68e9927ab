// internal/system/visual_effect.go
package system

import (
	"pd-invaders/internal/entity"
)

// VisualEffectSystem управляет визуальными эффектами, сейчас это мигание игрока.
type VisualEffectSystem struct {
	world *entity.World
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(world *entity.World) *VisualEffectSystem {
	return &VisualEffectSystem{world: world}
}

// Update обновляет таймеры эффектов.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	if s.world.Player != nil {
		s.world.Player.Update(deltaTime)
	}
}
