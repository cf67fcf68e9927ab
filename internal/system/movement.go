// internal/system/movement.go
package system

import (
	"pd-invaders/internal/component"
	"pd-invaders/internal/entity"
	"pd-invaders/pkg/utils"
)

// MovementSystem обновляет позиции игрока и снарядов
type MovementSystem struct {
	world *entity.World
}

func NewMovementSystem(world *entity.World) *MovementSystem {
	return &MovementSystem{world: world}
}

// MovePlayer сдвигает игрока по вводу и не даёт ему уйти за экран.
// Влево имеет приоритет, если зажаты обе клавиши.
func (s *MovementSystem) MovePlayer(controls component.Controls) {
	p := s.world.Player
	if p == nil || !p.Alive() {
		return
	}

	switch {
	case controls.Left:
		p.Bounds.Move(-p.Speed, 0)
	case controls.Right:
		p.Bounds.Move(p.Speed, 0)
	default:
		return
	}
	p.Bounds.X = utils.Clamp(p.Bounds.X, 0, s.world.Screen.W-p.Bounds.W)
}

// MoveProjectiles двигает ракету и бомбы на один тик и убирает всё,
// что улетело за экран. Мёртвые бомбы вычищаются из списка.
func (s *MovementSystem) MoveProjectiles() {
	if m := s.world.Missile; m != nil {
		if m.Alive {
			m.Step()
		}
		if m.Bounds.Top() < 0 {
			m.Alive = false
		}
		if !m.Alive {
			s.world.Missile = nil
		}
	}

	live := s.world.Bombs[:0]
	for _, b := range s.world.Bombs {
		if !b.Alive {
			continue
		}
		b.Step()
		if b.Bounds.Top() > s.world.Screen.H {
			b.Alive = false
			continue
		}
		live = append(live, b)
	}
	for i := len(live); i < len(s.world.Bombs); i++ {
		s.world.Bombs[i] = nil
	}
	s.world.Bombs = live
}
