package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorHelpers(t *testing.T) {
	c := color.RGBA{200, 100, 50, 255}

	assert.Equal(t, color.RGBA{100, 50, 25, 255}, DarkenColor(c))
	assert.Equal(t, color.RGBA{255, 200, 100, 255}, ScaleColor(c, 2))
	assert.Equal(t, c, MixColor(c, color.RGBA{}, 0))
	assert.Equal(t, color.RGBA{100, 50, 25, 128}, MixColor(c, color.RGBA{}, 0.5))
	assert.Equal(t, uint8(0), WithAlpha(c, -1).A)
	assert.Equal(t, uint8(128), WithAlpha(c, 0.5).A)
}
