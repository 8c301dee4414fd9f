// internal/defs/types.go
package defs

// DamageType defines the type of damage dealt.
type DamageType string

const (
	DamagePhysical  DamageType = "physical"
	DamageMagical   DamageType = "magical"
	DamageFire      DamageType = "fire"
	DamageIce       DamageType = "ice"
	DamageLightning DamageType = "lightning"
)

// damageMultipliers фиксированная таблица множителей урона по типу.
var damageMultipliers = map[DamageType]float64{
	DamagePhysical:  1.0,
	DamageMagical:   1.2,
	DamageFire:      1.5,
	DamageIce:       1.3,
	DamageLightning: 1.4,
}

// Multiplier возвращает множитель урона для типа. Неизвестный тип считается физическим.
func (d DamageType) Multiplier() float64 {
	if m, ok := damageMultipliers[d]; ok {
		return m
	}
	return 1.0
}

// EffectType тип статус-эффекта.
type EffectType string

const (
	EffectBurn   EffectType = "burn"
	EffectPoison EffectType = "poison"
	EffectFreeze EffectType = "freeze"
	EffectStun   EffectType = "stun"
)

// EffectDef описывает накладываемый статус-эффект.
type EffectDef struct {
	Type         EffectType `json:"type"`
	Duration     float64    `json:"duration"`       // секунды
	DamagePerSec int        `json:"damage_per_sec"` // только для burn/poison
	Chance       float64    `json:"chance"`         // 0 трактуется как 1
}

// Skill описывает умение персонажа.
type Skill struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	ManaCost    float64    `json:"mana_cost"`
	Cooldown    float64    `json:"cooldown"`
	DamageBonus int        `json:"damage_bonus"`
	DamageType  DamageType `json:"damage_type"`
	Projectile  bool       `json:"projectile"` // true - снаряд, false - удар по области
	Speed       float64    `json:"speed"`      // скорость снаряда
	Radius      float64    `json:"radius"`     // радиус области
	Effect      *EffectDef `json:"effect,omitempty"`
}
