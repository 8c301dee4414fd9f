package render

import (
	"image"
	"image/color"
	"math"
	"math/rand/v2"
)

// Layer слой параллакс-фона: заранее отрисованная картинка и доля
// смещения камеры, с которой он прокручивается.
type Layer struct {
	Image    *image.RGBA
	Parallax float64
}

// Offset горизонтальное смещение слоя для камеры camX, в пределах [0, ширина).
func (l Layer) Offset(camX float64) float64 {
	return ScrollOffset(camX, l.Parallax, float64(l.Image.Bounds().Dx()))
}

// ScrollOffset смещение бесшовного слоя ширины width.
func ScrollOffset(camX, parallax, width float64) float64 {
	if width <= 0 {
		return 0
	}
	off := math.Mod(camX*parallax, width)
	if off < 0 {
		off += width
	}
	return off
}

// BackgroundStyle цвета фона.
type BackgroundStyle struct {
	SkyTop    color.RGBA
	SkyBottom color.RGBA
	Star      color.RGBA
	Hills     []color.RGBA // от дальних к ближним
}

// DefaultBackground ночное небо и два ряда холмов.
var DefaultBackground = BackgroundStyle{
	SkyTop:    color.RGBA{14, 12, 30, 255},
	SkyBottom: color.RGBA{48, 36, 72, 255},
	Star:      color.RGBA{230, 230, 255, 255},
	Hills: []color.RGBA{
		{40, 34, 66, 255},
		{30, 26, 48, 255},
	},
}

// NewBackground строит слои фона w x h. Один seed даёт одинаковую картинку.
// Первый слой небо со звёздами и не прокручивается.
func NewBackground(style BackgroundStyle, w, h int, seed uint64) []Layer {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	layers := []Layer{{Image: skyLayer(style, w, h, rng), Parallax: 0}}
	for i, c := range style.Hills {
		depth := float64(i+1) / float64(len(style.Hills)+1)
		layers = append(layers, Layer{
			Image:    hillsLayer(c, w, h, depth, rng),
			Parallax: 0.15 + 0.35*depth,
		})
	}
	return layers
}

func skyLayer(style BackgroundStyle, w, h int, rng *rand.Rand) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		c := MixColor(style.SkyTop, style.SkyBottom, float64(y)/float64(max(h-1, 1)))
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	// Звёзды только в верхней половине
	stars := w * h / 2500
	for i := 0; i < stars; i++ {
		x, y := rng.IntN(w), rng.IntN(max(h/2, 1))
		img.SetRGBA(x, y, WithAlpha(style.Star, 0.4+0.6*rng.Float64()))
	}
	return img
}

// hillsLayer полоса холмов, бесшовная по горизонтали: период синусов
// кратен ширине слоя.
func hillsLayer(c color.RGBA, w, h int, depth float64, rng *rand.Rand) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	base := float64(h) * (0.55 + 0.2*depth)
	amp := float64(h) * (0.05 + 0.05*depth)
	k1, k2 := float64(1+rng.IntN(3)), float64(3+rng.IntN(4))
	p1, p2 := rng.Float64()*2*math.Pi, rng.Float64()*2*math.Pi

	for x := 0; x < w; x++ {
		t := 2 * math.Pi * float64(x) / float64(w)
		top := int(base - amp*math.Sin(k1*t+p1) - amp*0.5*math.Sin(k2*t+p2))
		for y := max(top, 0); y < h; y++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
