// pkg/render/color.go
package render

import "image/color"

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return ScaleColor(c, 0.5)
}

// ScaleColor умножает каналы RGB на k, прозрачность не меняется.
func ScaleColor(c color.RGBA, k float64) color.RGBA {
	return color.RGBA{
		R: clampChannel(float64(c.R) * k),
		G: clampChannel(float64(c.G) * k),
		B: clampChannel(float64(c.B) * k),
		A: c.A,
	}
}

// MixColor линейная смесь a и b, t=0 - a, t=1 - b.
func MixColor(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return color.RGBA{
		R: clampChannel(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: clampChannel(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: clampChannel(float64(a.B) + (float64(b.B)-float64(a.B))*t),
		A: clampChannel(float64(a.A) + (float64(b.A)-float64(a.A))*t),
	}
}

// WithAlpha возвращает цвет с прозрачностью alpha (0..1).
func WithAlpha(c color.RGBA, alpha float64) color.RGBA {
	c.A = clampChannel(255 * alpha)
	return c
}

func clampChannel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v + 0.5)
}
