// internal/component/status_effect.go
package component

import (
	"nova-remains/internal/defs"
	"nova-remains/internal/types"
)

// StatusEffect один активный эффект на сущности.
type StatusEffect struct {
	Type         defs.EffectType
	Remaining    float64 // Сколько времени осталось, секунды
	TickTimer    float64 // Время до следующего тика урона
	DamagePerSec int
	SourceID     types.EntityID // Кто наложил эффект
}

// StatusEffects контейнер эффектов: не более одного эффекта каждого типа.
type StatusEffects struct {
	Active map[defs.EffectType]*StatusEffect
}

// NewStatusEffects создаёт пустой контейнер.
func NewStatusEffects() *StatusEffects {
	return &StatusEffects{Active: make(map[defs.EffectType]*StatusEffect)}
}

// Has проверяет наличие эффекта.
func (s *StatusEffects) Has(t defs.EffectType) bool {
	if s == nil {
		return false
	}
	_, ok := s.Active[t]
	return ok
}

// SpeedFactor множитель скорости от активных эффектов.
func (s *StatusEffects) SpeedFactor(freezeFactor float64) float64 {
	switch {
	case s.Has(defs.EffectStun):
		return 0
	case s.Has(defs.EffectFreeze):
		return freezeFactor
	}
	return 1
}
