// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"nova-remains/internal/config"
	"nova-remains/internal/defs"
	"nova-remains/internal/shop"
)

const (
	panelHeight    = 120
	panelMargin    = 5
	animationSpeed = 600.0 // пикселей в секунду
)

// InfoPanel выезжающая снизу панель с описанием выбранного предмета.
type InfoPanel struct {
	IsVisible bool
	item      *defs.ItemDefinition
	footer    string
	face      text.Face
	currentY  float64
	targetY   float64
}

// NewInfoPanel creates a new information panel.
func NewInfoPanel(face text.Face) *InfoPanel {
	return &InfoPanel{
		face:     face,
		currentY: config.ScreenHeight,
		targetY:  config.ScreenHeight,
	}
}

// SetItem показывает предмет. footer подсказка по клавишам внизу панели.
func (p *InfoPanel) SetItem(def defs.ItemDefinition, footer string) {
	p.item = &def
	p.footer = footer
	p.IsVisible = true
	p.targetY = config.ScreenHeight - panelHeight
}

func (p *InfoPanel) Hide() {
	p.targetY = config.ScreenHeight
}

func (p *InfoPanel) Update(deltaTime float64) {
	if p.currentY == p.targetY {
		return
	}
	diff := p.targetY - p.currentY
	step := animationSpeed * deltaTime
	if math.Abs(diff) <= step {
		p.currentY = p.targetY
	} else {
		p.currentY += math.Copysign(step, diff)
	}
	if p.currentY >= config.ScreenHeight {
		p.IsVisible = false
		p.item = nil
	}
}

func (p *InfoPanel) Draw(screen *ebiten.Image) {
	if !p.IsVisible || p.item == nil {
		return
	}
	x, y := float32(panelMargin), float32(p.currentY)+panelMargin
	w, h := float32(config.ScreenWidth-panelMargin*2), float32(panelHeight-panelMargin*2)

	vector.DrawFilledRect(screen, x, y, w, h, color.RGBA{25, 35, 45, 230}, false)
	vector.StrokeRect(screen, x, y, w, h, 2, color.RGBA{70, 130, 180, 255}, false)

	lh := LineHeight(p.face)
	ty := float64(y) + 10
	DrawText(screen, p.item.Name, p.face, float64(x)+15, ty, config.HighlightColor)
	for i, line := range itemLines(*p.item) {
		DrawText(screen, line, p.face, float64(x)+15, ty+lh*float64(i+1), config.TextLightColor)
	}
	if p.footer != "" {
		DrawText(screen, p.footer, p.face, float64(x)+15, float64(y+h)-lh-8, color.RGBA{170, 170, 190, 255})
	}
}

// itemLines строки описания предмета: категория, цена, бонусы.
func itemLines(def defs.ItemDefinition) []string {
	lines := []string{fmt.Sprintf("%s  price %d  sells for %d", def.Category, def.Price, shop.SellPrice(def))}
	s := def.Stats
	var bonus string
	if s.Damage != 0 {
		bonus += fmt.Sprintf("DMG %+d  ", s.Damage)
	}
	if s.Defense != 0 {
		bonus += fmt.Sprintf("DEF %+d  ", s.Defense)
	}
	if s.MaxHealth != 0 {
		bonus += fmt.Sprintf("HP %+d  ", s.MaxHealth)
	}
	if s.MaxMana != 0 {
		bonus += fmt.Sprintf("MP %+.0f  ", s.MaxMana)
	}
	if s.Crit != 0 {
		bonus += fmt.Sprintf("CRIT %+.0f%%  ", s.Crit*100)
	}
	if def.RestoreHP > 0 {
		bonus += fmt.Sprintf("restores %d HP  ", def.RestoreHP)
	}
	if def.RestoreMana > 0 {
		bonus += fmt.Sprintf("restores %.0f MP  ", def.RestoreMana)
	}
	if bonus != "" {
		lines = append(lines, bonus)
	}
	if def.Description != "" {
		lines = append(lines, def.Description)
	}
	return lines
}
