// internal/config/game.go
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Game - параметры одной игровой сессии. Создаётся один раз до запуска цикла
// и передаётся всем системам при конструировании.
type Game struct {
	ScreenWidth  int
	ScreenHeight int

	PlayerSpeed int
	Lives       int

	Rows        int
	Columns     int
	HSpeed      int
	DescentStep int

	MissileSpeed    int
	BombSpeed       int
	MaxBombs        int
	BombSpawnChance float64

	Seed      int64 // 0 - сид от текущего времени
	AssetsDir string
}

// Default возвращает конфигурацию эталонной игры.
func Default() Game {
	return Game{
		ScreenWidth:     ScreenWidth,
		ScreenHeight:    ScreenHeight,
		PlayerSpeed:     PlayerSpeed,
		Lives:           PlayerLives,
		Rows:            FormationRows,
		Columns:         FormationColumns,
		HSpeed:          FormationSpeed,
		DescentStep:     FormationDescentStep,
		MissileSpeed:    MissileSpeed,
		BombSpeed:       BombSpeed,
		MaxBombs:        MaxBombs,
		BombSpawnChance: BombSpawnChance,
		AssetsDir:       AssetsDir,
	}
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// FromEnv накладывает переменные окружения PDI_* поверх Default().
func FromEnv() (Game, error) {
	cfg := Default()
	cfg.AssetsDir = GetEnv("PDI_ASSETS_DIR", cfg.AssetsDir)

	if v := GetEnv("PDI_SEED", ""); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid PDI_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if v := GetEnv("PDI_BOMB_CHANCE", ""); v != "" {
		chance, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid PDI_BOMB_CHANCE: %w", err)
		}
		cfg.BombSpawnChance = chance
	}
	if v := GetEnv("PDI_MAX_BOMBS", ""); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid PDI_MAX_BOMBS: %w", err)
		}
		cfg.MaxBombs = n
	}
	if v := GetEnv("PDI_LIVES", ""); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid PDI_LIVES: %w", err)
		}
		cfg.Lives = n
	}

	return cfg, cfg.Validate()
}

// Validate проверяет, что из конфигурации можно собрать игру.
func (c Game) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if c.Rows <= 0 || c.Columns <= 0 {
		return fmt.Errorf("formation grid must be non-empty, got %dx%d", c.Rows, c.Columns)
	}
	if c.HSpeed <= 0 {
		return fmt.Errorf("formation speed must be positive, got %d", c.HSpeed)
	}
	if c.Lives <= 0 {
		return fmt.Errorf("lives must be positive, got %d", c.Lives)
	}
	if c.MaxBombs < 0 {
		return fmt.Errorf("max bombs must not be negative, got %d", c.MaxBombs)
	}
	if c.BombSpawnChance < 0 || c.BombSpawnChance > 1 {
		return fmt.Errorf("bomb spawn chance must be in [0, 1], got %v", c.BombSpawnChance)
	}
	return nil
}
