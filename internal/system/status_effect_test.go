package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nova-remains/internal/defs"
	"nova-remains/internal/event"
)

func TestApplyStatusEffect_StacksByMaxDuration(t *testing.T) {
	w := newTestWorld()
	enemy := w.spawnEnemy("orc", 500)

	ApplyStatusEffect(w.ecs, enemy, &defs.EffectDef{Type: defs.EffectBurn, Duration: 3, DamagePerSec: 3}, 0)
	ApplyStatusEffect(w.ecs, enemy, &defs.EffectDef{Type: defs.EffectBurn, Duration: 5, DamagePerSec: 2}, 0)

	effects := w.ecs.StatusEffects[enemy]
	require.Len(t, effects.Active, 1)
	assert.Equal(t, 5.0, effects.Active[defs.EffectBurn].Remaining)
	assert.Equal(t, 3, effects.Active[defs.EffectBurn].DamagePerSec)

	// Более короткий эффект не сокращает действующий
	ApplyStatusEffect(w.ecs, enemy, &defs.EffectDef{Type: defs.EffectBurn, Duration: 1}, 0)
	assert.Equal(t, 5.0, effects.Active[defs.EffectBurn].Remaining)

	ApplyStatusEffect(w.ecs, enemy, &defs.EffectDef{Type: defs.EffectFreeze, Duration: 2}, 0)
	assert.Len(t, effects.Active, 2)
}

func TestApplyStatusEffect_IgnoresEmpty(t *testing.T) {
	w := newTestWorld()
	enemy := w.spawnEnemy("orc", 500)
	assert.Nil(t, ApplyStatusEffect(w.ecs, enemy, nil, 0))
	assert.Nil(t, ApplyStatusEffect(w.ecs, enemy, &defs.EffectDef{Type: defs.EffectStun}, 0))
	assert.NotContains(t, w.ecs.StatusEffects, enemy)
}

func TestStatusEffectSystem_BurnTicksOncePerSecond(t *testing.T) {
	w := newTestWorld()
	enemy := w.spawnEnemy("orc", 500)
	ApplyStatusEffect(w.ecs, enemy, &defs.EffectDef{Type: defs.EffectBurn, Duration: 3, DamagePerSec: 3}, 0)
	sys := NewStatusEffectSystem(w.ecs, w.dispatcher)

	sys.Update(0.5)
	assert.Equal(t, 90, w.ecs.Healths[enemy].Value)
	sys.Update(0.5)
	assert.Equal(t, 87, w.ecs.Healths[enemy].Value)
	sys.Update(0.5)
	sys.Update(0.5)
	assert.Equal(t, 84, w.ecs.Healths[enemy].Value)

	// На исходе третьей секунды эффект снимается без тика
	sys.Update(0.5)
	sys.Update(0.5)
	assert.Equal(t, 84, w.ecs.Healths[enemy].Value)
	assert.NotContains(t, w.ecs.StatusEffects, enemy)

	require.Len(t, w.events[event.EnemyDamaged], 2)
	assert.True(t, w.events[event.EnemyDamaged][0].Data.(event.DamageData).Periodic)
}

func TestStatusEffectSystem_FreezeAndStunExpire(t *testing.T) {
	w := newTestWorld()
	enemy := w.spawnEnemy("goblin", 500)
	ApplyStatusEffect(w.ecs, enemy, &defs.EffectDef{Type: defs.EffectFreeze, Duration: 1}, 0)
	ApplyStatusEffect(w.ecs, enemy, &defs.EffectDef{Type: defs.EffectStun, Duration: 0.5}, 0)
	sys := NewStatusEffectSystem(w.ecs, w.dispatcher)

	assert.Zero(t, w.ecs.StatusEffects[enemy].SpeedFactor(0.5))
	sys.Update(0.6)
	assert.Equal(t, 0.5, w.ecs.StatusEffects[enemy].SpeedFactor(0.5))
	sys.Update(0.6)
	assert.Equal(t, 1.0, w.ecs.StatusEffects[enemy].SpeedFactor(0.5))
	assert.Equal(t, 40, w.ecs.Healths[enemy].Value)
}
