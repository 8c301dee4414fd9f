// internal/ui/menu_button.go
package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"nova-remains/internal/input"
)

// Menu вертикальный список кнопок с выбором стрелками, Enter и мышью.
type Menu struct {
	Buttons  []*Button
	selected int
	cursor   image.Point
}

// NewMenu размещает кнопки с подписями labels столбцом от (x, y).
func NewMenu(x, y, width, height, gap int, labels []string, face text.Face) *Menu {
	m := &Menu{}
	for i, label := range labels {
		top := y + i*(height+gap)
		m.Buttons = append(m.Buttons, NewButton(image.Rect(x, top, x+width, top+height), label, face))
	}
	m.Select(0)
	return m
}

// Selected индекс выбранной кнопки.
func (m *Menu) Selected() int {
	return m.selected
}

// Select выбирает кнопку i, индекс берётся по модулю длины списка.
func (m *Menu) Select(i int) {
	n := len(m.Buttons)
	if n == 0 {
		return
	}
	m.selected = ((i % n) + n) % n
	for j, b := range m.Buttons {
		b.Selected = j == m.selected
	}
}

// Update обрабатывает ввод. Возвращает индекс активированной кнопки
// или -1.
func (m *Menu) Update(in input.State) int {
	switch {
	case in.JustPressed(input.Up):
		m.Select(m.selected - 1)
	case in.JustPressed(input.Down):
		m.Select(m.selected + 1)
	case in.JustPressed(input.Confirm):
		return m.selected
	}
	// Наведение мышью меняет выбор только при движении курсора
	x, y := ebiten.CursorPosition()
	moved := image.Pt(x, y) != m.cursor
	m.cursor = image.Pt(x, y)
	for i, b := range m.Buttons {
		if moved && b.Hovered() {
			m.Select(i)
		}
		if b.IsClicked() {
			return i
		}
	}
	return -1
}

// Draw отрисовывает все кнопки.
func (m *Menu) Draw(screen *ebiten.Image) {
	for _, b := range m.Buttons {
		b.Draw(screen)
	}
}
