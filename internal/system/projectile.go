// internal/system/projectile.go
package system

import (
	"pd-invaders/internal/component"
	"pd-invaders/internal/config"
	"pd-invaders/internal/defs"
	"pd-invaders/internal/entity"
	"pd-invaders/internal/event"
	"pd-invaders/internal/utils"
)

// ProjectileSystem создаёт снаряды: ракету игрока и бомбы монстров
type ProjectileSystem struct {
	world           *entity.World
	cfg             config.Game
	sizes           SpriteSizer
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(world *entity.World, cfg config.Game, sizes SpriteSizer, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		world:           world,
		cfg:             cfg,
		sizes:           sizes,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

// Fire выпускает ракету с позиции игрока. В полёте может быть только
// одна ракета, повторное нажатие ничего не делает.
func (s *ProjectileSystem) Fire() bool {
	p := s.world.Player
	if p == nil || !p.Alive() || s.world.MissileLive() {
		return false
	}

	w, h := s.sizes.Size(defs.SpriteMissile)
	s.world.Missile = &component.Projectile{
		Bounds:   boundsAbove(p.Bounds, w, h),
		Kind:     component.KindMissile,
		Speed:    s.cfg.MissileSpeed,
		SpriteID: defs.SpriteMissile,
		Alive:    true,
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.MissileFired, Data: s.world.Missile})
	return true
}

// SpawnBombs даёт каждому живому монстру (построчно) шанс сбросить бомбу.
// Лимит проверяется перед каждой попыткой, поэтому живых бомб никогда
// не больше MaxBombs. Возвращает количество новых бомб.
func (s *ProjectileSystem) SpawnBombs() int {
	live := s.world.LiveBombs()
	if live >= s.cfg.MaxBombs {
		return 0
	}

	w, h := s.sizes.Size(defs.SpriteBomb)
	spawned := 0
	s.world.Formation.EachAlive(func(m *component.Monster) bool {
		if live >= s.cfg.MaxBombs {
			return false
		}
		if !s.rng.Chance(s.cfg.BombSpawnChance) {
			return true
		}
		bomb := &component.Projectile{
			Bounds:   boundsBelow(m.Bounds, w, h),
			Kind:     component.KindBomb,
			Speed:    s.cfg.BombSpeed,
			SpriteID: defs.SpriteBomb,
			Alive:    true,
		}
		s.world.Bombs = append(s.world.Bombs, bomb)
		live++
		spawned++
		s.eventDispatcher.Dispatch(event.Event{Type: event.BombDropped, Data: bomb})
		return true
	})
	return spawned
}
