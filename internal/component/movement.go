// internal/component/movement.go
package component

import "nova-remains/pkg/geom"

// Position компонент позиции (левый верхний угол тела)
type Position struct {
	X, Y float64
}

// Velocity компонент скорости, пикселей в секунду
type Velocity struct {
	X, Y float64
}

// Body габариты сущности и её контакт с опорой
type Body struct {
	Width, Height float64
	OnGround      bool
	Gravity       bool // Подвержена ли сущность гравитации
}

// Rect возвращает AABB тела в позиции pos.
func (b *Body) Rect(pos *Position) geom.Rect {
	return geom.NewRect(pos.X, pos.Y, b.Width, b.Height)
}

// Platform статичная платформа, на которую можно встать.
type Platform struct {
	Ground bool // Земля уровня: бесконечно толстая снизу
}
