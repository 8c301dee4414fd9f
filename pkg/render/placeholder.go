package render

import (
	"hash/fnv"
	"image"
	"image/color"
)

const (
	PlaceholderWidth  = 32
	PlaceholderHeight = 48
)

// PlaceholderColor детерминированный цвет заглушки по имени спрайта.
func PlaceholderColor(name string) color.RGBA {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	sum := h.Sum32()
	return color.RGBA{
		R: 80 + uint8(sum&0x7f),
		G: 80 + uint8((sum>>8)&0x7f),
		B: 80 + uint8((sum>>16)&0x7f),
		A: 255,
	}
}

// NewPlaceholder рисует заглушку w x h: заливка цветом base, светлая рамка
// в 1 пиксель и диагональный крест, чтобы отсутствующий спрайт был заметен.
func NewPlaceholder(name string, base color.RGBA, w, h int) *image.RGBA {
	if w <= 0 || h <= 0 {
		w, h = PlaceholderWidth, PlaceholderHeight
	}
	if base.A == 0 {
		base = PlaceholderColor(name)
	}
	edge := color.RGBA{
		R: base.R/2 + 127,
		G: base.G/2 + 127,
		B: base.B/2 + 127,
		A: 255,
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := base
			onBorder := x == 0 || y == 0 || x == w-1 || y == h-1
			// Диагонали в координатах, нормированных к меньшей стороне
			onCross := x*h/w == y || (w-1-x)*h/w == y
			if onBorder || onCross {
				c = edge
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
