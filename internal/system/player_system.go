// internal/system/player_system.go
package system

import (
	"pd-invaders/internal/component"
	"pd-invaders/internal/config"
	"pd-invaders/internal/defs"
	"pd-invaders/internal/entity"
	"pd-invaders/internal/event"
)

// PlayerSystem отвечает за логику игрока: жизни при попадании и очки за убийства.
type PlayerSystem struct {
	world *entity.World
	cfg   config.Game
}

func NewPlayerSystem(world *entity.World, cfg config.Game, eventDispatcher *event.Dispatcher) *PlayerSystem {
	s := &PlayerSystem{world: world, cfg: cfg}
	eventDispatcher.Subscribe(event.MonsterKilled, s)
	eventDispatcher.Subscribe(event.PlayerHit, s)
	return s
}

// Spawn ставит корабль игрока левым верхним углом в (ScreenWidth/2, ScreenHeight-50).
func (s *PlayerSystem) Spawn(sizes SpriteSizer) {
	w, h := sizes.Size(defs.SpritePlayer)
	s.world.Player = &component.Player{
		Bounds: component.Bounds{
			X: s.cfg.ScreenWidth / 2,
			Y: s.cfg.ScreenHeight - config.PlayerBottomOffset,
			W: w,
			H: h,
		},
		Speed:    s.cfg.PlayerSpeed,
		Lives:    s.cfg.Lives,
		SpriteID: defs.SpritePlayer,
	}
	s.world.Score = 0
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *PlayerSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.MonsterKilled:
		if m, ok := event.MonsterFrom(e); ok {
			s.world.Score += m.Points
		}
	case event.PlayerHit:
		s.Hit()
	}
}

// Hit снимает одну жизнь и запускает мигание. Мигание не даёт
// неуязвимости. Жизни не уходят ниже нуля.
func (s *PlayerSystem) Hit() {
	p := s.world.Player
	if p == nil || !p.Alive() {
		return
	}
	p.Lives--
	p.BlinkTimer = config.PlayerBlinkDuration
}
