// internal/system/audio.go
package system

import (
	"pd-invaders/internal/defs"
	"pd-invaders/internal/event"
)

// CuePlayer проигрывает звук по имени и сразу возвращает управление.
type CuePlayer interface {
	Play(name string)
}

// NopCuePlayer - тишина, для тестов и запуска без звука.
type NopCuePlayer struct{}

func (NopCuePlayer) Play(string) {}

// AudioSystem переводит игровые события в звуковые сигналы.
type AudioSystem struct {
	cues CuePlayer
}

func NewAudioSystem(cues CuePlayer, eventDispatcher *event.Dispatcher) *AudioSystem {
	if cues == nil {
		cues = NopCuePlayer{}
	}
	s := &AudioSystem{cues: cues}
	eventDispatcher.Subscribe(event.MissileFired, s)
	eventDispatcher.Subscribe(event.MonsterKilled, s)
	eventDispatcher.Subscribe(event.PlayerHit, s)
	return s
}

// Cues lists the sounds this system may ask for.
func Cues() []string {
	return []string{defs.SoundFire, defs.SoundExplosion, defs.SoundPlayerHit}
}

func (s *AudioSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.MissileFired:
		s.cues.Play(defs.SoundFire)
	case event.MonsterKilled:
		s.cues.Play(defs.SoundExplosion)
	case event.PlayerHit:
		s.cues.Play(defs.SoundPlayerHit)
	}
}
