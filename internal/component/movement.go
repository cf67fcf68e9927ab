// component/movement.go
package component

import "image"

// Direction - горизонтальное направление движения
type Direction int

const (
	DirectionNone Direction = iota
	DirectionRight
	DirectionLeft
)

func (d Direction) String() string {
	switch d {
	case DirectionRight:
		return "RIGHT"
	case DirectionLeft:
		return "LEFT"
	default:
		return "NONE"
	}
}

// Bounds - прямоугольник в пикселях экрана (X, Y - левый верхний угол)
type Bounds struct {
	X, Y int
	W, H int
}

func (b Bounds) Left() int    { return b.X }
func (b Bounds) Right() int   { return b.X + b.W }
func (b Bounds) Top() int     { return b.Y }
func (b Bounds) Bottom() int  { return b.Y + b.H }
func (b Bounds) CenterX() int { return b.X + b.W/2 }

// Move сдвигает прямоугольник на (dx, dy)
func (b *Bounds) Move(dx, dy int) {
	b.X += dx
	b.Y += dy
}

// Rect переводит Bounds в image.Rectangle
func (b Bounds) Rect() image.Rectangle {
	return image.Rect(b.X, b.Y, b.X+b.W, b.Y+b.H)
}

// Overlaps - пересечение полуоткрытых прямоугольников: касание краями
// пересечением не считается, пустой прямоугольник не пересекается ни с чем.
func (b Bounds) Overlaps(o Bounds) bool {
	return b.Rect().Overlaps(o.Rect())
}
