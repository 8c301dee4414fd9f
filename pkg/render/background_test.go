package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBackground_Deterministic(t *testing.T) {
	a := NewBackground(DefaultBackground, 120, 80, 42)
	b := NewBackground(DefaultBackground, 120, 80, 42)

	require.Len(t, a, 1+len(DefaultBackground.Hills))
	for i := range a {
		assert.Equal(t, a[i].Image.Pix, b[i].Image.Pix)
		assert.Equal(t, a[i].Parallax, b[i].Parallax)
	}
	assert.Zero(t, a[0].Parallax, "sky does not scroll")
	assert.Less(t, a[1].Parallax, a[2].Parallax, "near hills scroll faster")
}

func TestHillsLayer_BottomFilled(t *testing.T) {
	layers := NewBackground(DefaultBackground, 64, 40, 1)
	hills := layers[1].Image
	for x := 0; x < 64; x++ {
		assert.Equal(t, DefaultBackground.Hills[0], hills.RGBAAt(x, 39))
	}
	assert.Zero(t, hills.RGBAAt(0, 0).A, "sky part of the layer is transparent")
}

func TestLayerOffset_Wraps(t *testing.T) {
	layers := NewBackground(DefaultBackground, 100, 10, 3)
	l := Layer{Image: layers[1].Image, Parallax: 0.5}

	assert.Equal(t, 0.0, l.Offset(0))
	assert.Equal(t, 25.0, l.Offset(50))
	assert.Equal(t, 10.0, l.Offset(220))
	assert.Equal(t, 90.0, l.Offset(-20))
}
