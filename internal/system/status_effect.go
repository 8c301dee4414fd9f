// internal/system/status_effect.go
package system

import (
	"nova-remains/internal/component"
	"nova-remains/internal/config"
	"nova-remains/internal/defs"
	"nova-remains/internal/entity"
	"nova-remains/internal/event"
	"nova-remains/internal/types"
)

// ApplyStatusEffect накладывает эффект на сущность. Эффект одного типа
// не дублируется: остаётся наибольшая из длительностей и наибольший урон.
func ApplyStatusEffect(ecs *entity.ECS, targetID types.EntityID, def *defs.EffectDef, sourceID types.EntityID) *component.StatusEffect {
	if def == nil || def.Duration <= 0 {
		return nil
	}
	effects, ok := ecs.StatusEffects[targetID]
	if !ok {
		effects = component.NewStatusEffects()
		ecs.StatusEffects[targetID] = effects
	}

	if existing, ok := effects.Active[def.Type]; ok {
		if def.Duration > existing.Remaining {
			existing.Remaining = def.Duration
		}
		if def.DamagePerSec > existing.DamagePerSec {
			existing.DamagePerSec = def.DamagePerSec
		}
		existing.SourceID = sourceID
		return existing
	}

	effect := &component.StatusEffect{
		Type:         def.Type,
		Remaining:    def.Duration,
		TickTimer:    config.StatusTickInterval,
		DamagePerSec: def.DamagePerSec,
		SourceID:     sourceID,
	}
	effects.Active[def.Type] = effect
	return effect
}

// StatusEffectSystem управляет жизненным циклом эффектов.
type StatusEffectSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewStatusEffectSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Update обрабатывает все активные эффекты.
func (s *StatusEffectSystem) Update(deltaTime float64) {
	for id, effects := range s.ecs.StatusEffects {
		if _, alive := s.ecs.Healths[id]; !alive {
			delete(s.ecs.StatusEffects, id)
			continue
		}
		for kind, effect := range effects.Active {
			effect.Remaining -= deltaTime
			if effect.Remaining <= 0 {
				delete(effects.Active, kind)
				continue
			}
			if kind != defs.EffectBurn && kind != defs.EffectPoison {
				continue
			}
			effect.TickTimer -= deltaTime
			for effect.TickTimer <= 0 {
				s.tick(id, effect)
				effect.TickTimer += config.StatusTickInterval
			}
		}
		if len(effects.Active) == 0 {
			delete(s.ecs.StatusEffects, id)
		}
	}
}

// tick наносит периодический урон. Защита его не уменьшает.
func (s *StatusEffectSystem) tick(id types.EntityID, effect *component.StatusEffect) {
	dealt := ApplyDamage(s.ecs, id, effect.DamagePerSec)
	if dealt == 0 || s.eventDispatcher == nil {
		return
	}
	x, y, _ := center(s.ecs, id)
	damageType := defs.DamageFire
	if effect.Type == defs.EffectPoison {
		damageType = defs.DamageMagical
	}
	eventType := event.EnemyDamaged
	if _, isPlayer := s.ecs.Players[id]; isPlayer {
		eventType = event.PlayerDamaged
	}
	s.eventDispatcher.Dispatch(event.Event{Type: eventType, Data: event.DamageData{
		AttackerID: effect.SourceID,
		TargetID:   id,
		Amount:     dealt,
		Periodic:   true,
		DamageType: damageType,
		X:          x,
		Y:          y,
	}})
}
