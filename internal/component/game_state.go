package component

// GamePhase фаза игровой сессии
type GamePhase int

const (
	PhaseTown GamePhase = iota // Свободная зона без миссии
	PhaseMission
	PhaseMissionCleared
	PhaseGameOver
)

func (p GamePhase) String() string {
	switch p {
	case PhaseTown:
		return "town"
	case PhaseMission:
		return "mission"
	case PhaseMissionCleared:
		return "cleared"
	case PhaseGameOver:
		return "game over"
	}
	return "unknown"
}

// Wave состояние текущей волны миссии.
type Wave struct {
	Index          int
	EnemyID        string
	EnemiesToSpawn int
	SpawnTimer     float64
	SpawnInterval  float64
}
