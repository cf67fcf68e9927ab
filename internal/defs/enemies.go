// internal/defs/enemies.go
package defs

import "pd-invaders/internal/config"

// MonsterDefinition holds the static data for the monsters of one formation row.
type MonsterDefinition struct {
	Kind   int
	Sprite string
	Points int
}

// MonsterForRow returns the definition used for the given row of a formation
// with the given number of rows. Upper rows are worth more points.
func MonsterForRow(row, rows int) MonsterDefinition {
	kind := row + 1
	return MonsterDefinition{
		Kind:   kind,
		Sprite: MonsterSprite(kind),
		Points: (rows - row) * config.PointsPerRow,
	}
}

// MonsterSprites lists the sprite names needed for a formation of the given height.
func MonsterSprites(rows int) []string {
	names := make([]string, 0, rows)
	for row := 0; row < rows; row++ {
		names = append(names, MonsterForRow(row, rows).Sprite)
	}
	return names
}
