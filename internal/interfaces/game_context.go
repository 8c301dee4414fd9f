// internal/interfaces/game_context.go
package interfaces

import (
	"nova-remains/internal/defs"
	"nova-remains/internal/types"
)

// GameContext то, что системам нужно знать об игре помимо ECS.
type GameContext interface {
	PlayerID() types.EntityID
	Difficulty() float64            // Множитель здоровья и урона врагов
	ParticleBudget() int            // 0 - частицы отключены
	EquipmentBonus() defs.ItemStats // Суммарные бонусы надетой экипировки
}
