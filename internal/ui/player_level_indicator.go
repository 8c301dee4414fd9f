// internal/ui/player_level_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"nova-remains/internal/config"
)

// PlayerLevelIndicator отображает уровень и опыт игрока.
type PlayerLevelIndicator struct {
	X, Y float32
	face text.Face
}

const (
	xpBarWidth  = 200
	xpBarHeight = 6
	borderWidth = 1
)

var borderColor = color.White

// NewPlayerLevelIndicator создает новый индикатор уровня.
func NewPlayerLevelIndicator(x, y float32, face text.Face) *PlayerLevelIndicator {
	return &PlayerLevelIndicator{X: x, Y: y, face: face}
}

// Draw отрисовывает полосу опыта и подпись уровня.
func (i *PlayerLevelIndicator) Draw(screen *ebiten.Image, level, currentXP, xpToNext int) {
	vector.StrokeRect(screen, i.X, i.Y, xpBarWidth, xpBarHeight, borderWidth, borderColor, false)

	fillWidth := float32(ratio(float64(currentXP), float64(xpToNext)) * (xpBarWidth - borderWidth*2))
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fillWidth, xpBarHeight-borderWidth*2, config.ExpColor, false)
	}

	label := fmt.Sprintf("Lv %d  %d/%d", level, currentXP, xpToNext)
	DrawText(screen, label, i.face, float64(i.X)+xpBarWidth+8, float64(i.Y)-4, config.ExpColor)
}
