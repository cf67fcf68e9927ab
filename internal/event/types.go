// internal/event/types.go
package event

import "pd-invaders/internal/component"

const (
	MissileFired  EventType = "MissileFired"  // Data: *component.Projectile
	MonsterKilled EventType = "MonsterKilled" // Data: *component.Monster
	PlayerHit     EventType = "PlayerHit"     // Data: nil
	BombDropped   EventType = "BombDropped"   // Data: *component.Projectile
	GameOver      EventType = "GameOver"      // Data: component.Outcome
)

// MonsterFrom достаёт монстра из события MonsterKilled.
func MonsterFrom(e Event) (*component.Monster, bool) {
	m, ok := e.Data.(*component.Monster)
	return m, ok && m != nil
}
