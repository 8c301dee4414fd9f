// Package term терминальная версия: раскладка клавиш tcell и отрисовка
// мира символами.
package term

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"nova-remains/internal/input"
)

// holdTime сколько держится действие после нажатия: терминал не
// присылает отпускание клавиш, только автоповтор.
const holdTime = 0.12

var keyBindings = map[tcell.Key]input.Action{
	tcell.KeyLeft:   input.Left,
	tcell.KeyRight:  input.Right,
	tcell.KeyUp:     input.Up,
	tcell.KeyDown:   input.Down,
	tcell.KeyEscape: input.Pause,
	tcell.KeyEnter:  input.Confirm,
}

var runeBindings = map[rune]input.Action{
	'z': input.Attack,
	'x': input.Defend,
	'c': input.Grab,
	'k': input.Skill1,
	'l': input.Skill2,
	'i': input.Inventory,
	'm': input.Missions,
	'b': input.Shop,
	'u': input.Use,
	's': input.Sell,
	' ': input.Confirm,
}

// ActionFor действие для события клавиатуры.
func ActionFor(ev *tcell.EventKey) (input.Action, bool) {
	if ev.Key() == tcell.KeyRune {
		a, ok := runeBindings[unicode.ToLower(ev.Rune())]
		return a, ok
	}
	a, ok := keyBindings[ev.Key()]
	return a, ok
}

// Input состояние ввода терминала. Нажатие удерживает действие
// holdTime секунд, автоповтор продлевает удержание.
type Input struct {
	snapshot input.Snapshot
	expires  map[input.Action]float64
	now      float64
}

func NewInput() *Input {
	return &Input{expires: make(map[input.Action]float64)}
}

// HandleKey учитывает событие клавиатуры. Возвращает false, если
// клавиша не привязана.
func (in *Input) HandleKey(ev *tcell.EventKey) bool {
	a, ok := ActionFor(ev)
	if !ok {
		return false
	}
	in.snapshot.Press(a)
	in.expires[a] = in.now + holdTime
	return true
}

// Held реализует input.State.
func (in *Input) Held(a input.Action) bool {
	return in.snapshot.Held(a)
}

// JustPressed реализует input.State.
func (in *Input) JustPressed(a input.Action) bool {
	return in.snapshot.JustPressed(a)
}

// EndFrame сбрасывает "только что нажато" и отпускает действия, время
// удержания которых прошло.
func (in *Input) EndFrame(deltaTime float64) {
	in.snapshot.EndFrame()
	in.now += deltaTime
	for a, until := range in.expires {
		if in.now >= until {
			in.snapshot.Release(a)
			delete(in.expires, a)
		}
	}
}
