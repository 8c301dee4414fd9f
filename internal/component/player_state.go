// internal/component/player_state.go
package component

// PlayerState состояние конечного автомата игрока.
type PlayerState int

const (
	StateIdle PlayerState = iota
	StateWalk
	StateJump
	StateCrouch
	StateAttack
	StateDefend
	StateGrab
	StateHurt
	StateDead
)

var playerStateNames = [...]string{"idle", "walk", "jump", "crouch", "attack", "defend", "grab", "hurt", "dead"}

func (s PlayerState) String() string {
	if int(s) < len(playerStateNames) {
		return playerStateNames[s]
	}
	return "unknown"
}

// playerTransitions таблица разрешённых переходов.
// Переход в то же самое состояние всегда разрешён и ничего не меняет.
var playerTransitions = map[PlayerState][]PlayerState{
	StateIdle:   {StateWalk, StateJump, StateCrouch, StateAttack, StateDefend, StateGrab, StateHurt, StateDead},
	StateWalk:   {StateIdle, StateJump, StateCrouch, StateAttack, StateDefend, StateGrab, StateHurt, StateDead},
	StateJump:   {StateIdle, StateWalk, StateAttack, StateHurt, StateDead},
	StateCrouch: {StateIdle, StateWalk, StateJump, StateAttack, StateDefend, StateHurt, StateDead},
	StateAttack: {StateIdle, StateWalk, StateJump, StateHurt, StateDead},
	StateDefend: {StateIdle, StateWalk, StateCrouch, StateDead},
	StateGrab:   {StateIdle, StateWalk, StateHurt, StateDead},
	StateHurt:   {StateIdle, StateWalk, StateJump, StateDead},
	StateDead:   {},
}

// CanTransition проверяет переход по таблице.
func CanTransition(from, to PlayerState) bool {
	if from == to {
		return true
	}
	for _, allowed := range playerTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// PlayerFSM текущее состояние игрока и время, проведённое в нём.
type PlayerFSM struct {
	Current PlayerState
	Elapsed float64
}

// Transition переводит автомат в состояние to, если таблица это разрешает.
func (f *PlayerFSM) Transition(to PlayerState) bool {
	if f.Current == to {
		return true
	}
	if !CanTransition(f.Current, to) {
		return false
	}
	f.Current = to
	f.Elapsed = 0
	return true
}

// Tick увеличивает время в текущем состоянии.
func (f *PlayerFSM) Tick(deltaTime float64) {
	f.Elapsed += deltaTime
}
