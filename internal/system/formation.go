// internal/system/formation.go
package system

import (
	"fmt"

	"pd-invaders/internal/component"
	"pd-invaders/internal/config"
	"pd-invaders/internal/defs"
	"pd-invaders/internal/entity"
	"pd-invaders/internal/event"
)

// FormationSystem двигает строй монстров как одно целое: горизонтальное
// качание от края до края и спуск на каждом развороте. Монстры сами
// не двигаются, все смещения применяет система.
type FormationSystem struct {
	world *entity.World
	cfg   config.Game
}

func NewFormationSystem(world *entity.World, cfg config.Game, eventDispatcher *event.Dispatcher) *FormationSystem {
	s := &FormationSystem{world: world, cfg: cfg}
	eventDispatcher.Subscribe(event.MonsterKilled, s)
	return s
}

// Build создаёт сетку rows x columns и кэширует крайних монстров.
func (s *FormationSystem) Build(sizes SpriteSizer) {
	startX := s.cfg.ScreenWidth/2 - config.FormationCenterOffsetX
	startY := config.FormationStartY

	grid := make([][]*component.Monster, s.cfg.Rows)
	for row := 0; row < s.cfg.Rows; row++ {
		def := defs.MonsterForRow(row, s.cfg.Rows)
		w, h := sizes.Size(def.Sprite)
		grid[row] = make([]*component.Monster, s.cfg.Columns)
		for col := 0; col < s.cfg.Columns; col++ {
			grid[row][col] = &component.Monster{
				Bounds: component.Bounds{
					X: startX + col*config.FormationHSpacing,
					Y: startY + row*config.FormationVSpacing,
					W: w,
					H: h,
				},
				Row:      row,
				Col:      col,
				Kind:     def.Kind,
				Points:   def.Points,
				SpriteID: def.Sprite,
				Alive:    true,
			}
		}
	}

	s.world.Formation = &component.Formation{
		Grid:        grid,
		Direction:   component.DirectionRight,
		Speed:       s.cfg.HSpeed,
		DescentStep: s.cfg.DescentStep,
	}
	s.OnMonsterRemoved()
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *FormationSystem) OnEvent(e event.Event) {
	if e.Type == event.MonsterKilled {
		s.OnMonsterRemoved()
	}
}

// OnMonsterRemoved пересчитывает крайнего левого и правого живого монстра.
// Сравнение по номеру колонки, при равенстве побеждает меньший ряд.
func (s *FormationSystem) OnMonsterRemoved() {
	f := s.world.Formation
	f.Leftmost, f.Rightmost = nil, nil
	f.EachAlive(func(m *component.Monster) bool {
		if f.Leftmost == nil || m.Col < f.Leftmost.Col {
			f.Leftmost = m
		}
		if f.Rightmost == nil || m.Col > f.Rightmost.Col {
			f.Rightmost = m
		}
		return true
	})
}

// Update сдвигает строй на один тик. Смещение обрезается ровно до края
// экрана; если обрезка произошла, направление меняется и строй в том же
// тике опускается на DescentStep.
func (s *FormationSystem) Update() error {
	f := s.world.Formation
	if f.Leftmost == nil || f.Rightmost == nil || !f.Leftmost.Alive || !f.Rightmost.Alive {
		return fmt.Errorf("formation advance: %w", ErrInvalidGridAccess)
	}

	dx := 0
	descend := false

	switch f.Direction {
	case component.DirectionRight:
		dx = f.Speed
		if right := f.Rightmost.Bounds.Right(); right+f.Speed > s.world.Screen.W {
			dx = s.world.Screen.W - right
			f.Direction = component.DirectionLeft
			descend = true
		}
	case component.DirectionLeft:
		dx = -f.Speed
		if left := f.Leftmost.Bounds.Left(); left-f.Speed < 0 {
			dx = -left
			f.Direction = component.DirectionRight
			descend = true
		}
	}

	dy := 0
	if descend {
		dy = f.DescentStep
	}
	if dx == 0 && dy == 0 {
		return nil
	}

	f.EachAlive(func(m *component.Monster) bool {
		m.Bounds.Move(dx, dy)
		return true
	})
	return nil
}
