package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPlaceholder_SizeAndBorder(t *testing.T) {
	base := color.RGBA{100, 40, 40, 255}
	img := NewPlaceholder("enemies/goblin", base, 16, 24)

	assert.Equal(t, 16, img.Bounds().Dx())
	assert.Equal(t, 24, img.Bounds().Dy())

	edge := img.RGBAAt(0, 12)
	assert.Equal(t, color.RGBA{177, 147, 147, 255}, edge)
	assert.Equal(t, base, img.RGBAAt(3, 12))
}

func TestNewPlaceholder_Defaults(t *testing.T) {
	img := NewPlaceholder("x", color.RGBA{}, 0, -1)
	assert.Equal(t, PlaceholderWidth, img.Bounds().Dx())
	assert.Equal(t, PlaceholderHeight, img.Bounds().Dy())
	// Прозрачный базовый цвет заменяется цветом по имени
	assert.Equal(t, PlaceholderColor("x"), img.RGBAAt(PlaceholderWidth/2, 1))
}

func TestPlaceholderColor_Deterministic(t *testing.T) {
	assert.Equal(t, PlaceholderColor("characters/knight"), PlaceholderColor("characters/knight"))
	assert.NotEqual(t, PlaceholderColor("characters/knight"), PlaceholderColor("characters/mage"))
	assert.Equal(t, uint8(255), PlaceholderColor("a").A)
}
