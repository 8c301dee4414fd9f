// internal/ui/wave_indicator.go
package ui

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"nova-remains/internal/config"
	"nova-remains/internal/defs"
)

// WaveIndicator название миссии и номер волны римскими цифрами.
type WaveIndicator struct {
	X, Y float64 // Центр верхнего края
	face text.Face
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y float64, face text.Face) *WaveIndicator {
	return &WaveIndicator{X: x, Y: y, face: face}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw рисует "Миссия - волна N/M" и число оставшихся врагов.
// waveIndex считается с нуля.
func (i *WaveIndicator) Draw(screen *ebiten.Image, m *defs.MissionDefinition, waveIndex, enemiesLeft int) {
	if m == nil {
		return
	}
	title := fmt.Sprintf("%s  wave %s/%s", m.Name, toRoman(waveIndex+1), toRoman(len(m.Waves)))
	c := config.TextLightColor
	// Последняя волна выделяется
	if waveIndex == len(m.Waves)-1 {
		c = config.HighlightColor
	}
	DrawTextCentered(screen, title, i.face, i.X, i.Y, c)
	if enemiesLeft > 0 {
		DrawTextCentered(screen, fmt.Sprintf("enemies: %d", enemiesLeft), i.face, i.X, i.Y+LineHeight(i.face)+2, config.TextLightColor)
	}
}
