// internal/component/visual.go
package component

import "image/color"

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
type DamageFlash struct {
	Timer float64 // Сколько времени эффекта осталось
}

// Renderable базовый цвет и имя спрайта сущности.
type Renderable struct {
	Color  color.RGBA
	Sprite string // Имя спрайта в SpriteManager, пустое - рисуем прямоугольник
}
