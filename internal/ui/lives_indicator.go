// internal/ui/lives_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	LivesCircleRadius  = 6.0
	LivesCircleSpacing = 4.0
)

var (
	LifeFullColor   = color.RGBA{220, 60, 60, 255}
	LifeEmptyColor  = color.RGBA{40, 40, 40, 255}
	LifeStrokeColor = color.RGBA{240, 240, 240, 255}
)

// LivesIndicator отображает жизни игрока рядом кружков.
type LivesIndicator struct {
	X, Y float32
}

// NewLivesIndicator создает индикатор с левым верхним углом в (x, y).
func NewLivesIndicator(x, y float32) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y}
}

// Slot - один кружок индикатора.
type Slot struct {
	CX, CY float32
	Full   bool
}

// Slots раскладывает maxLives кружков; первые lives из них заполнены.
func (i *LivesIndicator) Slots(lives, maxLives int) []Slot {
	slots := make([]Slot, 0, maxLives)
	for j := 0; j < maxLives; j++ {
		slots = append(slots, Slot{
			CX:   i.X + LivesCircleRadius + float32(j)*(LivesCircleRadius*2+LivesCircleSpacing),
			CY:   i.Y + LivesCircleRadius,
			Full: j < lives,
		})
	}
	return slots
}

// Draw рисует кружки с белой обводкой.
func (i *LivesIndicator) Draw(screen *ebiten.Image, lives, maxLives int) {
	for _, s := range i.Slots(lives, maxLives) {
		clr := LifeEmptyColor
		if s.Full {
			clr = LifeFullColor
		}
		vector.DrawFilledCircle(screen, s.CX, s.CY, LivesCircleRadius, clr, true)
		vector.StrokeCircle(screen, s.CX, s.CY, LivesCircleRadius, 1, LifeStrokeColor, true)
	}
}
