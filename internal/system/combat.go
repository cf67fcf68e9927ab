// internal/system/combat.go
package system

import (
	"pd-invaders/internal/component"
	"pd-invaders/internal/entity"
	"pd-invaders/internal/event"
)

// CombatSystem разрешает столкновения ракеты, бомб, монстров и игрока.
// Очки, жизни и пересчёт строя делают подписчики событий.
type CombatSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(world *entity.World, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{world: world, eventDispatcher: eventDispatcher}
}

// Update выполняет все проверки тика в фиксированном порядке.
func (s *CombatSystem) Update() {
	s.ResolveMissileVsFormation()
	s.ResolveBombsVsPlayer()
	s.ResolveMonstersVsPlayer()
}

// ResolveMissileVsFormation ищет первого (построчно) живого монстра,
// пересекающегося с ракетой. Ракета не пробивает: максимум одно убийство.
func (s *CombatSystem) ResolveMissileVsFormation() *component.Monster {
	missile := s.world.Missile
	if missile == nil || !missile.Alive {
		return nil
	}

	var victim *component.Monster
	s.world.Formation.EachAlive(func(m *component.Monster) bool {
		if missile.Bounds.Overlaps(m.Bounds) {
			victim = m
			return false
		}
		return true
	})
	if victim == nil {
		return nil
	}

	missile.Alive = false
	s.killMonster(victim)
	return victim
}

// ResolveBombsVsPlayer гасит каждую бомбу, попавшую в игрока. Несколько
// попаданий за тик снимают несколько жизней.
func (s *CombatSystem) ResolveBombsVsPlayer() int {
	hits := 0
	for _, bomb := range s.world.Bombs {
		p := s.world.Player
		if p == nil || !p.Alive() {
			break
		}
		if !bomb.Alive || !bomb.Bounds.Overlaps(p.Bounds) {
			continue
		}
		bomb.Alive = false
		hits++
		s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerHit})
	}
	return hits
}

// ResolveMonstersVsPlayer: монстр, врезавшийся в игрока, погибает
// (очки начисляются) и снимает игроку жизнь.
func (s *CombatSystem) ResolveMonstersVsPlayer() int {
	var colliding []*component.Monster
	if p := s.world.Player; p != nil && p.Alive() {
		s.world.Formation.EachAlive(func(m *component.Monster) bool {
			if m.Bounds.Overlaps(p.Bounds) {
				colliding = append(colliding, m)
			}
			return true
		})
	}

	hits := 0
	for _, m := range colliding {
		if p := s.world.Player; p == nil || !p.Alive() {
			break
		}
		s.killMonster(m)
		hits++
		s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerHit})
	}
	return hits
}

func (s *CombatSystem) killMonster(m *component.Monster) {
	m.Kill()
	s.eventDispatcher.Dispatch(event.Event{Type: event.MonsterKilled, Data: m})
}
