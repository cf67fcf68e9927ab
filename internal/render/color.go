// internal/render/color.go
package render

import (
	"image/color"

	"pd-invaders/internal/config"
)

// Palette holds the colors used for the HUD and the screen overlays.
type Palette struct {
	Background  color.RGBA
	Text        color.RGBA
	Accent      color.RGBA
	Win         color.RGBA
	Loss        color.RGBA
	Overlay     color.RGBA
	Placeholder color.RGBA
}

// DefaultPalette builds the palette from the config colors.
func DefaultPalette() Palette {
	return Palette{
		Background:  config.BackgroundColor,
		Text:        config.TextLightColor,
		Accent:      config.TextAccentColor,
		Win:         config.WinColor,
		Loss:        config.LossColor,
		Overlay:     config.OverlayColor,
		Placeholder: config.BlinkColor,
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
