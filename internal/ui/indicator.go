// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StateIndicator цветной кружок с подписью: фаза игры или статус комнаты.
// При смене подписи кружок коротко увеличивается.
type StateIndicator struct {
	X, Y      float32
	Radius    float32
	face      text.Face
	label     string
	changedAt float64
}

func NewStateIndicator(x, y, radius float32, face text.Face) *StateIndicator {
	return &StateIndicator{X: x, Y: y, Radius: radius, face: face}
}

// Draw отрисовывает индикатор.
func (i *StateIndicator) Draw(screen *ebiten.Image, label string, stateColor color.RGBA, gameTime float64) {
	if label != i.label {
		i.label = label
		i.changedAt = gameTime
	}
	elapsed := gameTime - i.changedAt
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	r := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, r, stateColor, true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, color.White, true)
	DrawText(screen, label, i.face, float64(i.X+i.Radius*2), float64(i.Y)-LineHeight(i.face)/2, color.White)
}
