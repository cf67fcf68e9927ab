// internal/input/input.go
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"pd-invaders/internal/component"
)

// Source опрашивает клавиатуру ebiten. Движение и огонь - состояние клавиш,
// остальное - однократные нажатия.
type Source struct {
	keys []ebiten.Key
}

func NewSource() *Source {
	return &Source{}
}

// Poll возвращает снимок ввода за текущий тик.
func (s *Source) Poll() component.Controls {
	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])

	return component.Controls{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Fire:  ebiten.IsKeyPressed(ebiten.KeySpace),
		Quit:  inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Pause: inpututil.IsKeyJustPressed(ebiten.KeyP),
		Start: inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Any:   len(s.keys) > 0,
	}
}
