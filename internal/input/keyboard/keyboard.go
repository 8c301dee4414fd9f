// Package keyboard связывает клавиши Ebiten с игровыми действиями.
package keyboard

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"nova-remains/internal/input"
)

// DefaultBindings раскладка по умолчанию.
var DefaultBindings = map[input.Action][]ebiten.Key{
	input.Left:      {ebiten.KeyArrowLeft},
	input.Right:     {ebiten.KeyArrowRight},
	input.Up:        {ebiten.KeyArrowUp},
	input.Down:      {ebiten.KeyArrowDown},
	input.Attack:    {ebiten.KeyZ},
	input.Defend:    {ebiten.KeyX},
	input.Grab:      {ebiten.KeyC},
	input.Skill1:    {ebiten.KeyK},
	input.Skill2:    {ebiten.KeyL},
	input.Pause:     {ebiten.KeyEscape},
	input.Inventory: {ebiten.KeyI},
	input.Missions:  {ebiten.KeyM},
	input.Shop:      {ebiten.KeyB},
	input.Confirm:   {ebiten.KeyEnter, ebiten.KeySpace},
	input.Use:       {ebiten.KeyU},
	input.Sell:      {ebiten.KeyS},
}

// Keyboard реализует input.State поверх Ebiten.
type Keyboard struct {
	bindings map[input.Action][]ebiten.Key
}

// New создаёт раскладку. nil - раскладка по умолчанию.
func New(bindings map[input.Action][]ebiten.Key) *Keyboard {
	if bindings == nil {
		bindings = DefaultBindings
	}
	return &Keyboard{bindings: bindings}
}

// Held реализует input.State.
func (k *Keyboard) Held(a input.Action) bool {
	for _, key := range k.bindings[a] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// JustPressed реализует input.State.
func (k *Keyboard) JustPressed(a input.Action) bool {
	for _, key := range k.bindings[a] {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}

// DigitJustPressed возвращает нажатую цифру 1..9 или 0, если не нажата ни одна.
func DigitJustPressed() int {
	for i := 1; i <= 9; i++ {
		if inpututil.IsKeyJustPressed(ebiten.Key1 + ebiten.Key(i-1)) {
			return i
		}
	}
	return 0
}
