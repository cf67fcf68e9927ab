// internal/app/game.go
package app

import (
	"fmt"
	"log"

	"pd-invaders/internal/component"
	"pd-invaders/internal/config"
	"pd-invaders/internal/entity"
	"pd-invaders/internal/event"
	"pd-invaders/internal/system"
	"pd-invaders/internal/utils"
)

// Game holds the session state and runs the per-tick pipeline.
type Game struct {
	Config             config.Game
	World              *entity.World
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService
	FormationSystem    *system.FormationSystem
	MovementSystem     *system.MovementSystem
	ProjectileSystem   *system.ProjectileSystem
	CombatSystem       *system.CombatSystem
	PlayerSystem       *system.PlayerSystem
	StateSystem        *system.StateSystem
	VisualEffectSystem *system.VisualEffectSystem
	AudioSystem        *system.AudioSystem
}

// NewGame initializes a new game session. sizes gives sprite dimensions,
// cues plays sounds and may be nil.
func NewGame(cfg config.Game, sizes system.SpriteSizer, cues system.CuePlayer) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	if sizes == nil {
		sizes = system.DefaultSizes(cfg.Rows)
	}

	world := entity.NewWorld(cfg)
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(cfg.Seed)

	g := &Game{
		Config:          cfg,
		World:           world,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
	}
	// PlayerSystem подписывается на PlayerHit раньше StateSystem:
	// жизни должны уменьшиться до проверки на конец игры.
	g.PlayerSystem = system.NewPlayerSystem(world, cfg, eventDispatcher)
	g.FormationSystem = system.NewFormationSystem(world, cfg, eventDispatcher)
	g.StateSystem = system.NewStateSystem(world, eventDispatcher)
	g.MovementSystem = system.NewMovementSystem(world)
	g.ProjectileSystem = system.NewProjectileSystem(world, cfg, sizes, rng, eventDispatcher)
	g.CombatSystem = system.NewCombatSystem(world, eventDispatcher)
	g.VisualEffectSystem = system.NewVisualEffectSystem(world)
	g.AudioSystem = system.NewAudioSystem(cues, eventDispatcher)

	g.PlayerSystem.Spawn(sizes)
	g.FormationSystem.Build(sizes)

	eventDispatcher.Subscribe(event.GameOver, &GameEventListener{game: g})

	log.Printf("New game: %d monsters in %dx%d formation, %d lives, max %d bombs",
		world.Formation.LiveCount(), cfg.Rows, cfg.Columns, cfg.Lives, cfg.MaxBombs)
	return g, nil
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	if e.Type == event.GameOver {
		l.game.ClearProjectiles()
	}
}

// Start leaves the start screen. Returns false in any other phase.
func (g *Game) Start() bool {
	return g.StateSystem.Start()
}

// Update progresses the game by one tick. Outside PLAYING it does nothing.
// Order: player move, fire, formation, bombs, projectiles, collisions,
// end conditions.
func (g *Game) Update(controls component.Controls, deltaTime float64) error {
	if g.World.GameState.Phase != component.Playing {
		return nil
	}
	g.World.Tick++

	g.VisualEffectSystem.Update(deltaTime)
	g.MovementSystem.MovePlayer(controls)
	if controls.Fire {
		g.ProjectileSystem.Fire()
	}

	if g.World.Formation.Empty() {
		g.StateSystem.Check()
		return nil
	}
	if err := g.FormationSystem.Update(); err != nil {
		return err
	}

	g.ProjectileSystem.SpawnBombs()
	g.MovementSystem.MoveProjectiles()
	g.CombatSystem.Update()
	g.StateSystem.Check()
	return nil
}

// ClearProjectiles убирает ракету и все бомбы.
func (g *Game) ClearProjectiles() {
	g.World.Missile = nil
	g.World.Bombs = nil
}

func (g *Game) Phase() component.Phase {
	return g.World.GameState.Phase
}

func (g *Game) Outcome() component.Outcome {
	return g.World.GameState.Outcome
}

func (g *Game) Score() int {
	return g.World.Score
}

func (g *Game) Lives() int {
	if g.World.Player == nil {
		return 0
	}
	return g.World.Player.Lives
}
