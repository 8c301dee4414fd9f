// internal/system/utils.go
package system

import (
	"math"

	"nova-remains/internal/component"
	"nova-remains/internal/config"
	"nova-remains/internal/entity"
	"nova-remains/internal/types"
)

// ApplyDamage снимает здоровье у сущности и запускает вспышку урона.
// Возвращает фактически снятое здоровье.
func ApplyDamage(ecs *entity.ECS, entityID types.EntityID, damage int) int {
	health, ok := ecs.Healths[entityID]
	if !ok || damage <= 0 || health.Value <= 0 {
		return 0
	}
	if damage > health.Value {
		damage = health.Value
	}
	health.Value -= damage

	// Добавляем или сбрасываем компонент "вспышки"
	ecs.DamageFlashes[entityID] = &component.DamageFlash{Timer: config.DamageFlashDuration}
	return damage
}

// center возвращает центр тела сущности.
func center(ecs *entity.ECS, id types.EntityID) (float64, float64, bool) {
	pos, okPos := ecs.Positions[id]
	body, okBody := ecs.Bodies[id]
	if !okPos {
		return 0, 0, false
	}
	if !okBody {
		return pos.X, pos.Y, true
	}
	return pos.X + body.Width/2, pos.Y + body.Height/2, true
}

// distance расстояние между центрами двух сущностей.
func distance(ecs *entity.ECS, a, b types.EntityID) (float64, float64, bool) {
	ax, ay, okA := center(ecs, a)
	bx, by, okB := center(ecs, b)
	if !okA || !okB {
		return 0, 0, false
	}
	dx := bx - ax
	dy := by - ay
	return dx, math.Hypot(dx, dy), true
}
