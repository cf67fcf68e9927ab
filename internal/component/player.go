// internal/component/player.go
package component

// Player хранит корабль игрока: положение, скорость, жизни и
// таймер мигания после попадания.
type Player struct {
	Bounds     Bounds
	Speed      int
	Lives      int
	BlinkTimer float64 // Секунды мигания после попадания, только визуальный эффект
	SpriteID   string
}

func (p *Player) Rect() Bounds   { return p.Bounds }
func (p *Player) Sprite() string { return p.SpriteID }

// Alive - игрок участвует в симуляции, пока у него есть жизни.
func (p *Player) Alive() bool { return p.Lives > 0 }

func (p *Player) Blinking() bool { return p.BlinkTimer > 0 }

// Update уменьшает таймер мигания.
func (p *Player) Update(deltaTime float64) {
	if p.BlinkTimer <= 0 {
		return
	}
	p.BlinkTimer -= deltaTime
	if p.BlinkTimer < 0 {
		p.BlinkTimer = 0
	}
}

// BlinkVisible - нужно ли рисовать игрока в текущей фазе мигания.
// Пока идёт мигание, корабль виден через каждый интервал period.
func (p *Player) BlinkVisible(period float64) bool {
	if !p.Blinking() || period <= 0 {
		return true
	}
	return int(p.BlinkTimer/period)%2 == 0
}
