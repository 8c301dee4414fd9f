// internal/ui/player_health_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"nova-remains/internal/config"
)

const (
	resourceBarWidth  = 200
	resourceBarHeight = 14
	resourceBarGap    = 6
)

var barBackColor = color.RGBA{20, 20, 30, 200}

// PlayerHealthIndicator полосы здоровья и маны игрока.
type PlayerHealthIndicator struct {
	X, Y float32
	face text.Face
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32, face text.Face) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y, face: face}
}

// Draw рисует здоровье и ману. Здоровье ниже четверти мигает.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int, mana, maxMana, gameTime float64) {
	hpColor := config.HealthColor
	if maxHealth > 0 && health*4 < maxHealth && int(gameTime*4)%2 == 0 {
		hpColor = color.RGBA{255, 120, 120, 255}
	}
	i.drawBar(screen, i.Y, ratio(float64(health), float64(maxHealth)), hpColor,
		fmt.Sprintf("HP %d/%d", health, maxHealth))
	i.drawBar(screen, i.Y+resourceBarHeight+resourceBarGap, ratio(mana, maxMana), config.ManaColor,
		fmt.Sprintf("MP %.0f/%.0f", mana, maxMana))
}

func (i *PlayerHealthIndicator) drawBar(screen *ebiten.Image, y float32, fill float64, c color.RGBA, label string) {
	vector.DrawFilledRect(screen, i.X, y, resourceBarWidth, resourceBarHeight, barBackColor, false)
	if fill > 0 {
		vector.DrawFilledRect(screen, i.X+1, y+1, float32(fill*(resourceBarWidth-2)), resourceBarHeight-2, c, false)
	}
	vector.StrokeRect(screen, i.X, y, resourceBarWidth, resourceBarHeight, 1, color.White, false)
	DrawText(screen, label, i.face, float64(i.X)+resourceBarWidth+8, float64(y), config.TextLightColor)
}

// GetHeight возвращает общую высоту индикатора.
func (i *PlayerHealthIndicator) GetHeight() float32 {
	return resourceBarHeight*2 + resourceBarGap
}

// ratio доля value от max в пределах [0, 1].
func ratio(value, max float64) float64 {
	if max <= 0 || value <= 0 {
		return 0
	}
	if value >= max {
		return 1
	}
	return value / max
}
