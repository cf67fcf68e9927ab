package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pd-invaders/internal/component"
	"pd-invaders/internal/config"
)

const dt = 1.0 / config.TPS

func newTestGame(t *testing.T, mutate func(*config.Game)) *Game {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 1
	if mutate != nil {
		mutate(&cfg)
	}
	g, err := NewGame(cfg, nil, nil)
	require.NoError(t, err)
	return g
}

func TestNewGameRejectsBadConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Rows = 0

	_, err := NewGame(cfg, nil, nil)
	assert.Error(t, err)
}

func TestUpdateIdleOnStartScreen(t *testing.T) {
	g := newTestGame(t, nil)
	x := g.World.Formation.Grid[0][0].Bounds.X

	require.NoError(t, g.Update(component.Controls{Fire: true, Right: true}, dt))

	assert.Equal(t, component.StartScreen, g.Phase())
	assert.Equal(t, x, g.World.Formation.Grid[0][0].Bounds.X)
	assert.Nil(t, g.World.Missile)
	assert.Zero(t, g.World.Tick)
}

func TestTickPipeline(t *testing.T) {
	g := newTestGame(t, func(c *config.Game) { c.BombSpawnChance = 0 })
	require.True(t, g.Start())
	px := g.World.Player.Bounds.X
	mx := g.World.Formation.Grid[0][0].Bounds.X

	require.NoError(t, g.Update(component.Controls{Left: true, Fire: true}, dt))

	assert.Equal(t, uint64(1), g.World.Tick)
	assert.Equal(t, px-config.PlayerSpeed, g.World.Player.Bounds.X)
	assert.Equal(t, mx+config.FormationSpeed, g.World.Formation.Grid[0][0].Bounds.X)
	require.True(t, g.World.MissileLive())
	// Ракета выпущена и уже сдвинулась в этом же тике.
	assert.Equal(t, g.World.Player.Bounds.Top()+config.MissileSpeed, g.World.Missile.Bounds.Bottom())
}

func TestWinByClearingFormation(t *testing.T) {
	g := newTestGame(t, func(c *config.Game) { c.BombSpawnChance = 0 })
	require.True(t, g.Start())

	// Оставляем одного монстра прямо над игроком, чуть выше его верхнего края.
	var last *component.Monster
	g.World.Formation.EachAlive(func(m *component.Monster) bool {
		if last == nil {
			last = m
			return true
		}
		m.Kill()
		return true
	})
	g.FormationSystem.OnMonsterRemoved()
	p := g.World.Player
	last.Bounds.X = p.Bounds.CenterX() - last.Bounds.W/2
	last.Bounds.Y = p.Bounds.Top() - last.Bounds.H - 20

	for i := 0; i < 10 && g.Phase() == component.Playing; i++ {
		require.NoError(t, g.Update(component.Controls{Fire: true}, dt))
	}

	assert.Equal(t, component.GameOver, g.Phase())
	assert.Equal(t, component.OutcomeWin, g.Outcome())
	assert.Equal(t, last.Points, g.Score())
	assert.Equal(t, config.PlayerLives, g.Lives())
	assert.Nil(t, g.World.Missile, "projectiles are cleared on game over")
}

func TestLossByBombs(t *testing.T) {
	g := newTestGame(t, func(c *config.Game) { c.Lives = 1 })
	require.True(t, g.Start())

	// Ставим игрока под первый монстр верхнего ряда, откуда падает первая бомба.
	p := g.World.Player
	src := g.World.Formation.Grid[0][0]
	p.Bounds.X = src.Bounds.CenterX() - p.Bounds.W/2

	for i := 0; i < 1000 && g.Phase() == component.Playing; i++ {
		require.NoError(t, g.Update(component.Controls{}, dt))
		assert.LessOrEqual(t, g.World.LiveBombs(), config.MaxBombs)
	}

	assert.Equal(t, component.GameOver, g.Phase())
	assert.Equal(t, component.OutcomeLoss, g.Outcome())
	assert.Zero(t, g.Lives())

	tick := g.World.Tick
	require.NoError(t, g.Update(component.Controls{Fire: true}, dt))
	assert.Equal(t, tick, g.World.Tick, "GAME_OVER is terminal")
	assert.False(t, g.Start())
}

func TestBombCapDuringPlay(t *testing.T) {
	g := newTestGame(t, func(c *config.Game) { c.Lives = 1000 })
	require.True(t, g.Start())

	for i := 0; i < 600 && g.Phase() == component.Playing; i++ {
		right := (i/60)%2 == 0
		require.NoError(t, g.Update(component.Controls{Right: right, Left: !right, Fire: true}, dt))
		assert.LessOrEqual(t, g.World.LiveBombs(), config.MaxBombs)
	}
}
