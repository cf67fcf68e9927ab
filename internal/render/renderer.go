// internal/render/renderer.go
package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"pd-invaders/internal/component"
	"pd-invaders/internal/config"
	"pd-invaders/internal/defs"
	"pd-invaders/internal/entity"
)

const (
	hudMargin   = 10
	lineSpacing = 20
)

// Images отдаёт загруженные картинки по имени спрайта.
type Images interface {
	Image(name string) *ebiten.Image
}

// Renderer рисует мир, HUD и экранные надписи. Состояние игры не меняет.
type Renderer struct {
	images  Images
	face    *text.GoXFace
	palette Palette
}

func NewRenderer(images Images) *Renderer {
	return &Renderer{
		images:  images,
		face:    text.NewGoXFace(basicfont.Face7x13),
		palette: DefaultPalette(),
	}
}

// DrawWorld рисует фон и все видимые сущности. Во время мигания
// игрок пропускается через кадр.
func (r *Renderer) DrawWorld(screen *ebiten.Image, world *entity.World) {
	screen.Fill(r.palette.Background)
	r.Blit(screen, defs.SpriteBackground, world.Screen)

	for _, d := range world.Drawables() {
		if p, ok := d.(*component.Player); ok && !p.BlinkVisible(config.PlayerBlinkPeriod) {
			continue
		}
		r.Blit(screen, d.Sprite(), d.Rect())
	}
}

// Blit рисует спрайт с левым верхним углом в b. Если картинки нет,
// рисуется прямоугольник размером b.
func (r *Renderer) Blit(screen *ebiten.Image, sprite string, b component.Bounds) {
	img := r.images.Image(sprite)
	if img == nil {
		if sprite == defs.SpriteBackground {
			return
		}
		vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), r.palette.Placeholder, false)
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(b.X), float64(b.Y))
	screen.DrawImage(img, op)
}

// DrawHUD выводит счёт и жизни.
func (r *Renderer) DrawHUD(screen *ebiten.Image, score, lives int) {
	r.drawText(screen, fmt.Sprintf("SCORE: %d", score), hudMargin, hudMargin, text.AlignStart, r.palette.Text)
	r.drawText(screen, fmt.Sprintf("LIVES: %d", lives), float64(screen.Bounds().Dx()-hudMargin), hudMargin, text.AlignEnd, r.palette.Accent)
}

// DrawOverlay затемняет весь экран.
func (r *Renderer) DrawOverlay(screen *ebiten.Image) {
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), r.palette.Overlay, false)
}

// DrawStartScreen - заставка перед первой игрой.
func (r *Renderer) DrawStartScreen(screen *ebiten.Image) {
	r.DrawOverlay(screen)
	r.drawCentered(screen, []string{config.WindowTitle}, -lineSpacing, r.palette.Accent)
	r.drawCentered(screen, []string{"PRESS SPACE TO START", "Q TO QUIT"}, lineSpacing, r.palette.Text)
}

// DrawPaused - надпись поверх замороженного кадра.
func (r *Renderer) DrawPaused(screen *ebiten.Image) {
	r.DrawOverlay(screen)
	r.drawCentered(screen, []string{"PAUSED", "PRESS P TO RESUME"}, 0, r.palette.Text)
}

// DrawGameOver показывает исход партии и итоговый счёт.
func (r *Renderer) DrawGameOver(screen *ebiten.Image, outcome component.Outcome, score int) {
	r.DrawOverlay(screen)
	title, clr := "GAME OVER", r.palette.Loss
	if outcome == component.OutcomeWin {
		title, clr = "YOU WIN!", r.palette.Win
	}
	r.drawCentered(screen, []string{title}, -lineSpacing, clr)
	r.drawCentered(screen, []string{
		fmt.Sprintf("FINAL SCORE: %d", score),
		"PRESS ANY KEY TO EXIT",
	}, lineSpacing, DarkenColor(r.palette.Text))
}

func (r *Renderer) drawCentered(screen *ebiten.Image, lines []string, offsetY float64, clr color.Color) {
	b := screen.Bounds()
	x := float64(b.Dx()) / 2
	y := float64(b.Dy())/2 + offsetY
	for i, line := range lines {
		r.drawText(screen, line, x, y+float64(i*lineSpacing), text.AlignCenter, clr)
	}
}

func (r *Renderer) drawText(screen *ebiten.Image, s string, x, y float64, align text.Align, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	text.Draw(screen, s, r.face, op)
}
