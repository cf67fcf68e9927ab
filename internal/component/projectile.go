// internal/component/projectile.go
package component

// ProjectileKind различает ракету игрока и бомбу монстра.
type ProjectileKind int

const (
	KindMissile ProjectileKind = iota
	KindBomb
)

// Projectile представляет летящий снаряд.
type Projectile struct {
	Bounds   Bounds
	Kind     ProjectileKind
	Speed    int // Вертикальная скорость: ракета < 0, бомба > 0
	SpriteID string
	Alive    bool
}

func (p *Projectile) Rect() Bounds   { return p.Bounds }
func (p *Projectile) Sprite() string { return p.SpriteID }

// Step сдвигает снаряд на один тик.
func (p *Projectile) Step() {
	p.Bounds.Move(0, p.Speed)
}
