package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nova-remains/internal/component"
	"nova-remains/internal/defs"
	"nova-remains/internal/event"
)

func TestCalculateDamage_TypeMultipliers(t *testing.T) {
	tests := []struct {
		damageType defs.DamageType
		want       int
	}{
		{defs.DamagePhysical, 10},
		{defs.DamageMagical, 12},
		{defs.DamageFire, 15},
		{defs.DamageIce, 13},
		{defs.DamageLightning, 14},
	}
	for _, tt := range tests {
		t.Run(string(tt.damageType), func(t *testing.T) {
			attacker := &component.Combat{Damage: 10, DamageType: tt.damageType}
			target := &component.Combat{Defense: 0}
			assert.Equal(t, tt.want, CalculateDamage(attacker, target, nil, 1.0))
		})
	}
}

func TestCalculateDamage_NeverBelowOne(t *testing.T) {
	attacker := &component.Combat{Damage: 3, DamageType: defs.DamagePhysical}
	for _, defense := range []int{3, 10, 1000} {
		target := &component.Combat{Defense: defense}
		assert.Equal(t, 1, CalculateDamage(attacker, target, nil, 0.8), "defense %d", defense)
	}
}

func TestCalculateDamage_SkillOverridesType(t *testing.T) {
	attacker := &component.Combat{Damage: 8, DamageType: defs.DamagePhysical}
	skill := &defs.Skill{DamageBonus: 2, DamageType: defs.DamageFire}
	assert.Equal(t, 15, CalculateDamage(attacker, &component.Combat{}, skill, 1.0))
}

func TestCombatSystem_VariationRange(t *testing.T) {
	low := NewCombatSystem(nil, fixedRandom{v: 0}, nil)
	mid := NewCombatSystem(nil, fixedRandom{v: 0.5}, nil)
	assert.InDelta(t, 0.8, low.Variation(), 1e-9)
	assert.InDelta(t, 1.0, mid.Variation(), 1e-9)

	fire := &component.Combat{Damage: 10, DamageType: defs.DamageFire}
	assert.Equal(t, 15, mid.CalculateDamage(fire, &component.Combat{}, nil))
}

func TestPerformAttack_Dodge(t *testing.T) {
	w := newTestWorld()
	player := w.spawnPlayer("knight", 100)
	enemy := w.spawnEnemy("goblin", 140)
	w.ecs.Combats[enemy].DodgeChance = 1

	result := w.combat.PerformAttack(player, enemy, nil, nil)
	assert.True(t, result.Dodged)
	assert.Zero(t, result.Damage)
	assert.Equal(t, 40, w.ecs.Healths[enemy].Value)
	assert.Len(t, w.events[event.AttackDodged], 1)
	assert.Empty(t, w.events[event.EnemyDamaged])
}

func TestPerformAttack_CriticalAndDefend(t *testing.T) {
	w := newTestWorld()
	player := w.spawnPlayer("knight", 100)
	enemy := w.spawnEnemy("goblin", 140)

	// Рыцарь: урон 14, у гоблина защита 1
	w.ecs.Combats[player].CritChance = 1
	result := w.combat.PerformAttack(player, enemy, nil, nil)
	require.True(t, result.Critical)
	assert.Equal(t, 20, result.Damage) // round(13 * 1.5)
	assert.Equal(t, 20, w.ecs.Healths[enemy].Value)

	w.ecs.Combats[player].CritChance = 0
	w.ecs.Combats[enemy].Defending = true
	result = w.combat.PerformAttack(player, enemy, nil, nil)
	assert.Equal(t, 4, result.Damage) // round(13 * 0.3)

	require.Len(t, w.events[event.EnemyDamaged], 2)
	data := w.events[event.EnemyDamaged][0].Data.(event.DamageData)
	assert.True(t, data.Critical)
	assert.Equal(t, enemy, data.TargetID)
	assert.Contains(t, w.ecs.DamageFlashes, enemy)
}

func TestPerformAttack_KillsAndSkipsEffect(t *testing.T) {
	w := newTestWorld()
	player := w.spawnPlayer("mage", 100)
	enemy := w.spawnEnemy("goblin", 140)
	w.ecs.Healths[enemy].Value = 5

	mage := defs.CharacterLibrary["mage"]
	skill := &mage.Skills[0]
	result := w.combat.PerformAttack(player, enemy, skill, skill.Effect)
	assert.True(t, result.Killed)
	assert.Zero(t, w.ecs.Healths[enemy].Value)
	assert.Empty(t, result.Effect)
	assert.NotContains(t, w.ecs.StatusEffects, enemy)
}

func TestPerformAttack_AppliesEffect(t *testing.T) {
	w := newTestWorld()
	player := w.spawnPlayer("mage", 100)
	enemy := w.spawnEnemy("orc", 140)

	effect := &defs.EffectDef{Type: defs.EffectBurn, Duration: 3, DamagePerSec: 3}
	result := w.combat.PerformAttack(player, enemy, nil, effect)
	assert.Equal(t, defs.EffectBurn, result.Effect)
	assert.True(t, w.ecs.StatusEffects[enemy].Has(defs.EffectBurn))
	assert.Len(t, w.events[event.StatusApplied], 1)

	// Шанс 0.25 при броске 0.5 не срабатывает
	rare := &defs.EffectDef{Type: defs.EffectPoison, Duration: 3, Chance: 0.25}
	result = w.combat.PerformAttack(player, enemy, nil, rare)
	assert.Empty(t, result.Effect)
	assert.False(t, w.ecs.StatusEffects[enemy].Has(defs.EffectPoison))
}

func TestPerformAttack_PlayerTargetDispatchesPlayerDamaged(t *testing.T) {
	w := newTestWorld()
	player := w.spawnPlayer("knight", 100)
	enemy := w.spawnEnemy("goblin", 140)

	w.combat.PerformAttack(enemy, player, nil, nil)
	assert.Len(t, w.events[event.PlayerDamaged], 1)
	assert.Equal(t, 148, w.ecs.Healths[player].Value) // 6 - 4 защиты
}

func TestPerformAttack_MissingEntities(t *testing.T) {
	w := newTestWorld()
	player := w.spawnPlayer("knight", 100)
	result := w.combat.PerformAttack(player, 999, nil, nil)
	assert.Equal(t, AttackResult{}, result)
}
