// internal/component/combat.go
package component

import "nova-remains/internal/defs"

// Health компонент здоровья
type Health struct {
	Value int
	Max   int
}

// Alive сообщает, жива ли сущность.
func (h *Health) Alive() bool {
	return h.Value > 0
}

// Combat боевые характеристики сущности
type Combat struct {
	Damage         int
	Defense        int
	DamageType     defs.DamageType
	CritChance     float64
	CritMultiplier float64
	DodgeChance    float64
	Defending      bool // Урон по защищающейся цели снижается
}
