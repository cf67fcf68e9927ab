package system

import (
	"pd-invaders/internal/component"
	"pd-invaders/internal/config"
	"pd-invaders/internal/entity"
	"pd-invaders/internal/event"
	"pd-invaders/internal/utils"
)

type recordingCues struct {
	played []string
}

func (r *recordingCues) Play(name string) { r.played = append(r.played, name) }

// fixture собирает мир и системы в том же порядке подписки, что и app.NewGame.
type fixture struct {
	cfg        config.Game
	world      *entity.World
	dispatcher *event.Dispatcher
	sizes      StaticSizes
	cues       *recordingCues

	player     *PlayerSystem
	formation  *FormationSystem
	state      *StateSystem
	movement   *MovementSystem
	projectile *ProjectileSystem
	combat     *CombatSystem
}

func newFixture(cfg config.Game) *fixture {
	f := &fixture{
		cfg:        cfg,
		world:      entity.NewWorld(cfg),
		dispatcher: event.NewDispatcher(),
		sizes:      DefaultSizes(cfg.Rows),
		cues:       &recordingCues{},
	}
	f.player = NewPlayerSystem(f.world, cfg, f.dispatcher)
	f.formation = NewFormationSystem(f.world, cfg, f.dispatcher)
	f.state = NewStateSystem(f.world, f.dispatcher)
	f.movement = NewMovementSystem(f.world)
	f.projectile = NewProjectileSystem(f.world, cfg, f.sizes, utils.NewPRNGService(1), f.dispatcher)
	f.combat = NewCombatSystem(f.world, f.dispatcher)
	NewAudioSystem(f.cues, f.dispatcher)

	f.player.Spawn(f.sizes)
	f.formation.Build(f.sizes)
	f.state.Start()
	return f
}

// setGrid заменяет строй на заданные монстры (одна строка) и пересчитывает края.
func (f *fixture) setGrid(rows ...[]*component.Monster) {
	f.world.Formation.Grid = rows
	f.formation.OnMonsterRemoved()
}

func monsterAt(row, col, x, y int) *component.Monster {
	return &component.Monster{
		Bounds: component.Bounds{X: x, Y: y, W: 32, H: 32},
		Row:    row,
		Col:    col,
		Points: 10,
		Alive:  true,
	}
}

// projectileKill сбивает монстра ракетой через CombatSystem.
func (f *fixture) projectileKill(m *component.Monster) {
	f.world.Missile = &component.Projectile{
		Bounds: component.Bounds{X: m.Bounds.X + 1, Y: m.Bounds.Y + 1, W: 2, H: 2},
		Kind:   component.KindMissile,
		Alive:  true,
	}
	f.combat.ResolveMissileVsFormation()
}
