// internal/system/utils.go
package system

import (
	"errors"

	"pd-invaders/internal/component"
	"pd-invaders/internal/config"
	"pd-invaders/internal/defs"
)

// ErrInvalidGridAccess - запрос крайнего монстра у пустого строя. Это
// нарушение контракта: вызывающий обязан проверить Formation.Empty().
var ErrInvalidGridAccess = errors.New("invalid grid access: formation has no live monsters")

// SpriteSizer отдаёт размер картинки по её имени.
type SpriteSizer interface {
	Size(name string) (w, h int)
}

// StaticSizes - таблица размеров спрайтов, когда картинки не загружены
// (тесты, headless-прогон).
type StaticSizes map[string][2]int

func (s StaticSizes) Size(name string) (int, int) {
	wh := s[name]
	return wh[0], wh[1]
}

// DefaultSizes возвращает размеры спрайтов по умолчанию из конфига.
func DefaultSizes(rows int) StaticSizes {
	sizes := StaticSizes{
		defs.SpritePlayer:  {config.DefaultPlayerWidth, config.DefaultPlayerHeight},
		defs.SpriteMissile: {config.DefaultMissileWidth, config.DefaultMissileHeight},
		defs.SpriteBomb:    {config.DefaultBombWidth, config.DefaultBombHeight},
	}
	for _, name := range defs.MonsterSprites(rows) {
		sizes[name] = [2]int{config.DefaultMonsterWidth, config.DefaultMonsterHeight}
	}
	return sizes
}

// boundsAbove строит прямоугольник спрайта, центрированный по X над anchor
// и стоящий нижним краем на его верхний край.
func boundsAbove(anchor component.Bounds, w, h int) component.Bounds {
	return component.Bounds{X: anchor.CenterX() - w/2, Y: anchor.Top() - h, W: w, H: h}
}

// boundsBelow строит прямоугольник, центрированный по X под anchor.
func boundsBelow(anchor component.Bounds, w, h int) component.Bounds {
	return component.Bounds{X: anchor.CenterX() - w/2, Y: anchor.Bottom(), W: w, H: h}
}
