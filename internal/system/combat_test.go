package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pd-invaders/internal/component"
	"pd-invaders/internal/config"
	"pd-invaders/internal/defs"
)

func TestMissileKillsExactlyOneMonster(t *testing.T) {
	f := newFixture(config.Default())
	// Два монстра наложены друг на друга, ракета задевает обоих.
	a := monsterAt(0, 0, 100, 100)
	b := monsterAt(0, 1, 110, 100)
	c := monsterAt(1, 0, 100, 110)
	f.setGrid([]*component.Monster{a, b}, []*component.Monster{c})
	f.world.Missile = &component.Projectile{
		Bounds: component.Bounds{X: 112, Y: 112, W: 4, H: 12},
		Alive:  true,
	}

	victim := f.combat.ResolveMissileVsFormation()

	require.Same(t, a, victim, "first overlap in row-major order wins")
	assert.False(t, a.Alive)
	assert.True(t, b.Alive)
	assert.True(t, c.Alive)
	assert.False(t, f.world.Missile.Alive)
	assert.Equal(t, a.Points, f.world.Score)
	assert.Same(t, b, f.world.Formation.Rightmost)
	assert.Same(t, c, f.world.Formation.Leftmost)
	assert.Contains(t, f.cues.played, defs.SoundExplosion)

	// Мёртвая ракета больше никого не убивает.
	assert.Nil(t, f.combat.ResolveMissileVsFormation())
	assert.Equal(t, 2, f.world.Formation.LiveCount())
}

func TestMissileMiss(t *testing.T) {
	f := newFixture(config.Default())
	f.world.Missile = &component.Projectile{
		Bounds: component.Bounds{X: 0, Y: 400, W: 4, H: 12},
		Alive:  true,
	}

	assert.Nil(t, f.combat.ResolveMissileVsFormation())
	assert.True(t, f.world.Missile.Alive)
	assert.Zero(t, f.world.Score)
}

func TestTouchingIsNotAHit(t *testing.T) {
	f := newFixture(config.Default())
	a := monsterAt(0, 0, 100, 100)
	f.setGrid([]*component.Monster{a})
	f.world.Missile = &component.Projectile{
		Bounds: component.Bounds{X: 100, Y: 132, W: 4, H: 12}, // касается нижнего края
		Alive:  true,
	}

	assert.Nil(t, f.combat.ResolveMissileVsFormation())
	assert.True(t, a.Alive)
}

func bombOn(p *component.Player) *component.Projectile {
	return &component.Projectile{
		Bounds: component.Bounds{X: p.Bounds.X + 2, Y: p.Bounds.Y + 2, W: 6, H: 12},
		Kind:   component.KindBomb,
		Speed:  config.BombSpeed,
		Alive:  true,
	}
}

func TestSeveralBombsHitInOneTick(t *testing.T) {
	f := newFixture(config.Default())
	p := f.world.Player
	miss := &component.Projectile{Bounds: component.Bounds{X: 0, Y: 0, W: 6, H: 12}, Alive: true}
	f.world.Bombs = []*component.Projectile{bombOn(p), miss, bombOn(p)}

	hits := f.combat.ResolveBombsVsPlayer()

	assert.Equal(t, 2, hits)
	assert.Equal(t, config.PlayerLives-2, p.Lives)
	assert.True(t, p.Blinking())
	assert.False(t, f.world.Bombs[0].Alive)
	assert.True(t, f.world.Bombs[1].Alive)
	assert.False(t, f.world.Bombs[2].Alive)
	assert.Equal(t, component.Playing, f.world.GameState.Phase)
}

func TestLastLifeEndsGameImmediately(t *testing.T) {
	f := newFixture(config.Default())
	p := f.world.Player
	p.Lives = 1
	f.world.Bombs = []*component.Projectile{bombOn(p), bombOn(p)}

	hits := f.combat.ResolveBombsVsPlayer()

	assert.Equal(t, 1, hits)
	assert.Zero(t, p.Lives, "lives never drop below zero")
	assert.True(t, f.world.Bombs[1].Alive, "a dead player is no longer collidable")
	assert.Equal(t, component.GameState{Phase: component.GameOver, Outcome: component.OutcomeLoss}, f.world.GameState)
}

func TestMonsterRammingPlayer(t *testing.T) {
	f := newFixture(config.Default())
	p := f.world.Player
	m := monsterAt(3, 2, p.Bounds.X, p.Bounds.Y-10)
	other := monsterAt(0, 0, 10, 10)
	f.setGrid([]*component.Monster{other}, []*component.Monster{m})

	hits := f.combat.ResolveMonstersVsPlayer()

	assert.Equal(t, 1, hits)
	assert.False(t, m.Alive)
	assert.True(t, other.Alive)
	assert.Equal(t, m.Points, f.world.Score)
	assert.Equal(t, config.PlayerLives-1, p.Lives)
	assert.Same(t, other, f.world.Formation.Rightmost)
	assert.Equal(t, []string{defs.SoundExplosion, defs.SoundPlayerHit}, f.cues.played)
}

func TestRamOnLastLifeKillsOnlyFirstMonster(t *testing.T) {
	f := newFixture(config.Default())
	p := f.world.Player
	p.Lives = 1
	a := monsterAt(2, 0, p.Bounds.X, p.Bounds.Y-10)
	b := monsterAt(2, 1, p.Bounds.X+4, p.Bounds.Y-10)
	f.setGrid([]*component.Monster{a, b})

	hits := f.combat.ResolveMonstersVsPlayer()

	assert.Equal(t, 1, hits)
	assert.False(t, a.Alive)
	assert.True(t, b.Alive, "a dead player is no longer collidable")
	assert.Equal(t, a.Points, f.world.Score)
	assert.Zero(t, p.Lives)
	assert.Equal(t, component.GameState{Phase: component.GameOver, Outcome: component.OutcomeLoss}, f.world.GameState)
}
