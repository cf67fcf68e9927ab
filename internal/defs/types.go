// internal/defs/types.go
package defs

import "fmt"

// Symbolic names of every image and sound the game asks the asset provider for.
const (
	SpriteBackground = "background"
	SpritePlayer     = "player"
	SpriteMissile    = "missile"
	SpriteBomb       = "bomb"

	SoundFire      = "fire"
	SoundExplosion = "explosion"
	SoundPlayerHit = "player_hit"
)

// MonsterSprite returns the sprite name for a monster kind, e.g. "monster1".
func MonsterSprite(kind int) string {
	return fmt.Sprintf("monster%d", kind)
}
