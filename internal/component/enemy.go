// internal/component/enemy.go
package component

import "nova-remains/internal/types"

// AIMode текущее поведение врага.
type AIMode int

const (
	AIPatrol AIMode = iota
	AIChase
	AIAttack
	AIGrabbed
	AIThrown
)

func (m AIMode) String() string {
	switch m {
	case AIPatrol:
		return "patrol"
	case AIChase:
		return "chase"
	case AIAttack:
		return "attack"
	case AIGrabbed:
		return "grabbed"
	case AIThrown:
		return "thrown"
	}
	return "unknown"
}

// Enemy представляет вражескую сущность.
type Enemy struct {
	DefID          string  // ID из EnemyLibrary
	Speed          float64 // Базовая скорость, пикселей в секунду
	AttackCooldown float64 // Оставшееся время до следующей атаки
	AttackInterval float64
	Mode           AIMode
	Facing         float64 // -1 влево, 1 вправо
	PatrolOriginX  float64
	PatrolDir      float64
	Grabbed        bool           // Позицией владеет игрок
	GrabbedBy      types.EntityID // Кто держит
	Exp            int
	Gold           int
}
