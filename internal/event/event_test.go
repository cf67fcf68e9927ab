package event

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pd-invaders/internal/component"
)

func TestDispatchCallsListenersInOrder(t *testing.T) {
	d := NewDispatcher()
	var calls []string
	d.Subscribe(PlayerHit, ListenerFunc(func(Event) { calls = append(calls, "first") }))
	d.Subscribe(PlayerHit, ListenerFunc(func(Event) { calls = append(calls, "second") }))
	d.Subscribe(MissileFired, ListenerFunc(func(Event) { calls = append(calls, "missile") }))

	d.Dispatch(Event{Type: PlayerHit})

	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestDispatchWithoutListeners(t *testing.T) {
	d := NewDispatcher()
	assert.NotPanics(t, func() { d.Dispatch(Event{Type: GameOver}) })
}

func TestMonsterFrom(t *testing.T) {
	m := &component.Monster{Row: 1, Col: 2}

	got, ok := MonsterFrom(Event{Type: MonsterKilled, Data: m})
	assert.True(t, ok)
	assert.Same(t, m, got)

	_, ok = MonsterFrom(Event{Type: MonsterKilled, Data: "nope"})
	assert.False(t, ok)

	var nilMonster *component.Monster
	_, ok = MonsterFrom(Event{Type: MonsterKilled, Data: nilMonster})
	assert.False(t, ok)
}
