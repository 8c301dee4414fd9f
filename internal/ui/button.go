// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"nova-remains/internal/config"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect       image.Rectangle
	Text       string
	TextColor  color.Color
	BgColor    color.RGBA
	HoverColor color.RGBA
	Selected   bool // Выбрана с клавиатуры
	face       text.Face
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string, face text.Face) *Button {
	return &Button{
		Rect:       rect,
		Text:       label,
		TextColor:  config.TextLightColor,
		BgColor:    color.RGBA{50, 50, 70, 230},
		HoverColor: color.RGBA{80, 80, 110, 240},
		face:       face,
	}
}

// Hovered курсор над кнопкой.
func (b *Button) Hovered() bool {
	x, y := ebiten.CursorPosition()
	return image.Pt(x, y).In(b.Rect)
}

// IsClicked проверяет, был ли сделан клик по кнопке на этом кадре.
func (b *Button) IsClicked() bool {
	return b.Hovered() && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image) {
	bg := b.BgColor
	if b.Selected || b.Hovered() {
		bg = b.HoverColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)

	border := color.Color(color.RGBA{120, 120, 140, 255})
	if b.Selected {
		border = config.HighlightColor
	}
	vector.StrokeRect(screen, x, y, w, h, 2, border, false)

	textY := float64(y) + (float64(h)-LineHeight(b.face))/2
	DrawTextCentered(screen, b.Text, b.face, float64(x+w/2), textY, b.TextColor)
}
