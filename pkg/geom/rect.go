// pkg/geom/rect.go
package geom

// Rect осевой прямоугольник (AABB). X, Y - левый верхний угол.
type Rect struct {
	X, Y, W, H float64
}

// NewRect создаёт прямоугольник.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right возвращает правую границу.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom возвращает нижнюю границу.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center возвращает центр прямоугольника.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Intersects проверяет пересечение двух прямоугольников.
// Касание границами пересечением не считается.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X && r.Y < o.Bottom() && r.Bottom() > o.Y
}

// Contains проверяет, лежит ли точка внутри прямоугольника.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Overlap возвращает глубину пересечения по осям.
// Для непересекающихся прямоугольников оба значения равны нулю.
func (r Rect) Overlap(o Rect) (dx, dy float64) {
	if !r.Intersects(o) {
		return 0, 0
	}
	dx = min(r.Right(), o.Right()) - max(r.X, o.X)
	dy = min(r.Bottom(), o.Bottom()) - max(r.Y, o.Y)
	return dx, dy
}

// Expand возвращает прямоугольник, расширенный на d во все стороны.
func (r Rect) Expand(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}
