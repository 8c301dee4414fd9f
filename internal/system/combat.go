package system

import (
	"math"

	"nova-remains/internal/component"
	"nova-remains/internal/config"
	"nova-remains/internal/defs"
	"nova-remains/internal/entity"
	"nova-remains/internal/event"
	"nova-remains/internal/types"
)

// RandomSource источник случайных чисел в [0, 1).
type RandomSource interface {
	Float64() float64
}

// AttackResult итог одной атаки.
type AttackResult struct {
	Dodged   bool
	Critical bool
	Damage   int
	Killed   bool
	Effect   defs.EffectType // Наложенный эффект, пустой если не наложен
}

// CombatSystem рассчитывает урон, криты и уклонения. Собственного
// состояния между кадрами у неё нет.
type CombatSystem struct {
	ecs             *entity.ECS
	rng             RandomSource
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, rng RandomSource, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

// CalculateDamage считает урон с заданным разбросом variation:
// (урон атакующего + бонус умения) * множитель типа * variation - защита цели,
// не меньше MinDamage.
func CalculateDamage(attacker, target *component.Combat, skill *defs.Skill, variation float64) int {
	base := attacker.Damage
	damageType := attacker.DamageType
	if skill != nil {
		base += skill.DamageBonus
		if skill.DamageType != "" {
			damageType = skill.DamageType
		}
	}

	defense := 0
	if target != nil {
		defense = target.Defense
	}

	raw := float64(base)*damageType.Multiplier()*variation - float64(defense)
	damage := int(math.Round(raw))
	if damage < config.MinDamage {
		damage = config.MinDamage
	}
	return damage
}

// Variation случайный разброс урона в [MinDamageVariation, MaxDamageVariation).
func (s *CombatSystem) Variation() float64 {
	return config.MinDamageVariation + s.rng.Float64()*(config.MaxDamageVariation-config.MinDamageVariation)
}

// CalculateDamage считает урон со случайным разбросом.
func (s *CombatSystem) CalculateDamage(attacker, target *component.Combat, skill *defs.Skill) int {
	return CalculateDamage(attacker, target, skill, s.Variation())
}

// CheckCriticalHit бросок на критический удар.
func (s *CombatSystem) CheckCriticalHit(attacker *component.Combat) bool {
	return s.rng.Float64() < attacker.CritChance
}

// CheckDodge бросок на уклонение цели.
func (s *CombatSystem) CheckDodge(target *component.Combat) bool {
	return s.rng.Float64() < target.DodgeChance
}

// PerformAttack проводит атаку attackerID по targetID. skill может быть nil
// (обычный удар). effect накладывается после попадания, если прошёл бросок шанса.
func (s *CombatSystem) PerformAttack(attackerID, targetID types.EntityID, skill *defs.Skill, effect *defs.EffectDef) AttackResult {
	var result AttackResult

	attacker, okA := s.ecs.Combats[attackerID]
	target, okT := s.ecs.Combats[targetID]
	health, okH := s.ecs.Healths[targetID]
	if !okA || !okT || !okH || !health.Alive() {
		return result
	}

	x, y, _ := center(s.ecs, targetID)

	if s.CheckDodge(target) {
		result.Dodged = true
		s.dispatch(event.AttackDodged, event.DamageData{AttackerID: attackerID, TargetID: targetID, X: x, Y: y})
		return result
	}

	damage := s.CalculateDamage(attacker, target, skill)
	if s.CheckCriticalHit(attacker) {
		result.Critical = true
		mult := attacker.CritMultiplier
		if mult <= 0 {
			mult = config.DefaultCritMultiplier
		}
		damage = int(math.Round(float64(damage) * mult))
	}
	if target.Defending {
		damage = int(math.Round(float64(damage) * config.DefendDamageFactor))
		if damage < config.MinDamage {
			damage = config.MinDamage
		}
	}

	ApplyDamage(s.ecs, targetID, damage)
	result.Damage = damage
	result.Killed = !health.Alive()

	damageType := attacker.DamageType
	if skill != nil && skill.DamageType != "" {
		damageType = skill.DamageType
	}
	data := event.DamageData{
		AttackerID: attackerID,
		TargetID:   targetID,
		Amount:     damage,
		Critical:   result.Critical,
		DamageType: damageType,
		X:          x,
		Y:          y,
	}
	if _, isPlayer := s.ecs.Players[targetID]; isPlayer {
		s.dispatch(event.PlayerDamaged, data)
	} else {
		s.dispatch(event.EnemyDamaged, data)
	}

	if effect != nil && !result.Killed && s.rollEffect(effect) {
		ApplyStatusEffect(s.ecs, targetID, effect, attackerID)
		result.Effect = effect.Type
		s.dispatch(event.StatusApplied, event.StatusData{TargetID: targetID, Effect: effect.Type, Duration: effect.Duration})
	}
	return result
}

func (s *CombatSystem) rollEffect(effect *defs.EffectDef) bool {
	if effect.Chance <= 0 || effect.Chance >= 1 {
		return true
	}
	return s.rng.Float64() < effect.Chance
}

func (s *CombatSystem) dispatch(t event.EventType, data interface{}) {
	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(event.Event{Type: t, Data: data})
	}
}
