// Package input отделяет игровые действия от конкретных клавиш.
package input

// Action игровое действие.
type Action int

const (
	Left Action = iota
	Right
	Up
	Down
	Attack
	Defend
	Grab
	Skill1
	Skill2
	Pause
	Inventory
	Missions
	Shop
	Confirm
	Use
	Sell
	actionCount
)

var actionNames = [...]string{
	"left", "right", "up", "down", "attack", "defend", "grab", "skill1", "skill2",
	"pause", "inventory", "missions", "shop", "confirm", "use", "sell",
}

func (a Action) String() string {
	if a >= 0 && a < actionCount {
		return actionNames[a]
	}
	return "unknown"
}

// State состояние ввода на текущем кадре.
type State interface {
	// Held действие удерживается.
	Held(a Action) bool
	// JustPressed действие нажато именно на этом кадре.
	JustPressed(a Action) bool
}

// Snapshot состояние ввода, собранное вручную. Используется
// терминальной версией и тестами.
type Snapshot struct {
	held [actionCount]bool
	just [actionCount]bool
}

// Held реализует State.
func (s *Snapshot) Held(a Action) bool {
	return a >= 0 && a < actionCount && s.held[a]
}

// JustPressed реализует State.
func (s *Snapshot) JustPressed(a Action) bool {
	return a >= 0 && a < actionCount && s.just[a]
}

// Press отмечает действие нажатым на этом кадре.
func (s *Snapshot) Press(a Action) {
	if !s.held[a] {
		s.just[a] = true
	}
	s.held[a] = true
}

// Release отпускает действие.
func (s *Snapshot) Release(a Action) {
	s.held[a] = false
	s.just[a] = false
}

// EndFrame сбрасывает флаги "только что нажато".
func (s *Snapshot) EndFrame() {
	s.just = [actionCount]bool{}
}

// None пустой ввод.
var None State = &Snapshot{}
