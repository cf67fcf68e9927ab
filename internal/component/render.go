// component/render.go
package component

// Drawable - всё, что можно отрисовать: прямоугольник на экране и имя картинки.
type Drawable interface {
	Rect() Bounds
	Sprite() string
}

var (
	_ Drawable = (*Player)(nil)
	_ Drawable = (*Monster)(nil)
	_ Drawable = (*Projectile)(nil)
)
