// internal/ui/font.go
package ui

import (
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// LoadFace загружает TTF/OTF шрифт размера size. Пустой путь - встроенный
// растровый шрифт 7x13.
func LoadFace(path string, size float64) (text.Face, error) {
	if path == "" {
		return DefaultFace(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultFace(), fmt.Errorf("reading font %s: %w", path, err)
	}
	tt, err := opentype.Parse(data)
	if err != nil {
		return DefaultFace(), fmt.Errorf("parsing font %s: %w", path, err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return DefaultFace(), fmt.Errorf("creating face %s: %w", path, err)
	}
	return text.NewGoXFace(face), nil
}

// DefaultFace встроенный шрифт basicfont.
func DefaultFace() text.Face {
	return text.NewGoXFace(basicfont.Face7x13)
}

// DrawText рисует строку s с левым верхним углом в (x, y).
func DrawText(screen *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = LineHeight(face)
	text.Draw(screen, s, face, op)
}

// DrawTextCentered рисует строку, центрированную по x.
func DrawTextCentered(screen *ebiten.Image, s string, face text.Face, cx, y float64, clr color.Color) {
	w, _ := text.Measure(s, face, LineHeight(face))
	DrawText(screen, s, face, cx-w/2, y, clr)
}

// LineHeight высота строки шрифта.
func LineHeight(face text.Face) float64 {
	m := face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}
