package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nova-remains/internal/component"
	"nova-remains/internal/config"
	"nova-remains/internal/defs"
	"nova-remains/internal/event"
	"nova-remains/internal/input"
)

const frame = 1.0 / 60

func newPlayerSystem(w *testWorld) *PlayerSystem {
	return NewPlayerSystem(w.ecs, w.combat, w.dispatcher, w.game, w.emitter)
}

func TestPlayerSystem_WalkAndFace(t *testing.T) {
	w := newTestWorld()
	id := w.spawnPlayer("knight", 500)
	ps := newPlayerSystem(w)

	var in input.Snapshot
	in.Press(input.Left)
	ps.Update(frame, &in)

	p := w.ecs.Players[id]
	assert.Equal(t, component.StateWalk, p.FSM.Current)
	assert.Equal(t, -p.Speed, w.ecs.Velocities[id].X)
	assert.Equal(t, -1.0, p.Facing)
}

func TestPlayerSystem_JumpAndCrouch(t *testing.T) {
	w := newTestWorld()
	id := w.spawnPlayer("knight", 500)
	ps := newPlayerSystem(w)

	var in input.Snapshot
	in.Press(input.Down)
	ps.Update(frame, &in)
	assert.Equal(t, component.StateCrouch, w.ecs.Players[id].FSM.Current)

	in.EndFrame()
	in.Press(input.Up)
	ps.Update(frame, &in)
	assert.Equal(t, component.StateJump, w.ecs.Players[id].FSM.Current)
	assert.Equal(t, config.JumpVelocity, w.ecs.Velocities[id].Y)
	assert.Len(t, w.events[event.PlayerJumped], 1)
}

func TestPlayerSystem_FSMRejectsDefendInAir(t *testing.T) {
	w := newTestWorld()
	id := w.spawnPlayer("knight", 500)
	p := w.ecs.Players[id]
	p.FSM.Current = component.StateJump
	w.ecs.Bodies[id].OnGround = false
	ps := newPlayerSystem(w)

	var in input.Snapshot
	in.Press(input.Defend)
	ps.Update(frame, &in)

	assert.Equal(t, component.StateJump, p.FSM.Current)
	assert.False(t, w.ecs.Combats[id].Defending)
	assert.Zero(t, p.DefendCooldown)
}

func TestPlayerSystem_DefendReducesDamage(t *testing.T) {
	w := newTestWorld()
	id := w.spawnPlayer("knight", 500)
	enemy := w.spawnEnemy("orc", 540)
	ps := newPlayerSystem(w)

	var in input.Snapshot
	in.Press(input.Defend)
	ps.Update(frame, &in)
	require.Equal(t, component.StateDefend, w.ecs.Players[id].FSM.Current)
	require.True(t, w.ecs.Combats[id].Defending)

	// Орк: 12 - 4 = 8, в защите round(8 * 0.3) = 2
	w.combat.PerformAttack(enemy, id, nil, nil)
	assert.Equal(t, 148, w.ecs.Healths[id].Value)
	assert.Equal(t, component.StateDefend, w.ecs.Players[id].FSM.Current, "defending player is not staggered")
}

func TestPlayerSystem_AttackHitsEnemyInFront(t *testing.T) {
	w := newTestWorld()
	id := w.spawnPlayer("knight", 100)
	front := w.spawnEnemy("goblin", 142)
	behind := w.spawnEnemy("goblin", 40)
	ps := newPlayerSystem(w)

	var in input.Snapshot
	in.Press(input.Attack)
	ps.Update(frame, &in)

	p := w.ecs.Players[id]
	assert.Equal(t, component.StateAttack, p.FSM.Current)
	assert.Equal(t, config.AttackCooldown, p.AttackCooldown)
	assert.Equal(t, 40-13, w.ecs.Healths[front].Value)
	assert.Equal(t, 40, w.ecs.Healths[behind].Value)
	assert.Positive(t, w.ecs.Velocities[front].X)

	// Кулдаун не даёт ударить повторно
	in.EndFrame()
	in.Release(input.Attack)
	in.Press(input.Attack)
	ps.Update(frame, &in)
	assert.Equal(t, 40-13, w.ecs.Healths[front].Value)
}

func TestPlayerSystem_AttackStateExpires(t *testing.T) {
	w := newTestWorld()
	id := w.spawnPlayer("knight", 100)
	ps := newPlayerSystem(w)

	var in input.Snapshot
	in.Press(input.Attack)
	ps.Update(frame, &in)
	in.EndFrame()
	in.Release(input.Attack)

	ps.Update(config.AttackDuration, &in)
	assert.Equal(t, component.StateIdle, w.ecs.Players[id].FSM.Current)
}

func TestPlayerSystem_GrabAndThrow(t *testing.T) {
	w := newTestWorld()
	id := w.spawnPlayer("knight", 100)
	enemy := w.spawnEnemy("goblin", 135)
	ps := newPlayerSystem(w)

	var in input.Snapshot
	in.Press(input.Grab)
	ps.Update(frame, &in)

	p := w.ecs.Players[id]
	require.Equal(t, enemy, p.GrabbedEnemy)
	assert.Equal(t, component.StateGrab, p.FSM.Current)
	assert.True(t, w.ecs.Enemies[enemy].Grabbed)
	assert.Equal(t, component.AIGrabbed, w.ecs.Enemies[enemy].Mode)

	ps.SyncGrabbed()
	assert.InDelta(t, 100+config.PlayerWidth*0.6, w.ecs.Positions[enemy].X, 1e-9)

	in.EndFrame()
	in.Release(input.Grab)
	in.Press(input.Grab)
	ps.Update(frame, &in)

	assert.False(t, p.Grabbing())
	assert.Equal(t, component.StateIdle, p.FSM.Current)
	assert.Equal(t, config.GrabCooldown, p.GrabCooldown)
	e := w.ecs.Enemies[enemy]
	assert.False(t, e.Grabbed)
	assert.Equal(t, component.AIThrown, e.Mode)
	assert.Equal(t, config.ThrowImpulseX, w.ecs.Velocities[enemy].X)
	assert.Equal(t, config.ThrowImpulseY, w.ecs.Velocities[enemy].Y)
	assert.Equal(t, 40-config.ThrowDamage, w.ecs.Healths[enemy].Value)
	assert.Len(t, w.events[event.EnemyThrown], 1)
}

func TestPlayerSystem_GrabTimesOut(t *testing.T) {
	w := newTestWorld()
	id := w.spawnPlayer("knight", 100)
	enemy := w.spawnEnemy("goblin", 135)
	ps := newPlayerSystem(w)

	var in input.Snapshot
	in.Press(input.Grab)
	ps.Update(frame, &in)
	in.EndFrame()
	in.Release(input.Grab)

	ps.Update(config.GrabMaxHold, &in)
	assert.False(t, w.ecs.Players[id].Grabbing())
	assert.Equal(t, component.AIThrown, w.ecs.Enemies[enemy].Mode)
}

func TestPlayerSystem_HurtAndDeath(t *testing.T) {
	w := newTestWorld()
	id := w.spawnPlayer("knight", 500)
	enemy := w.spawnEnemy("goblin", 540)
	ps := newPlayerSystem(w)

	w.combat.PerformAttack(enemy, id, nil, nil)
	p := w.ecs.Players[id]
	assert.Equal(t, component.StateHurt, p.FSM.Current)
	assert.Equal(t, config.HurtDuration, p.ActionTimer)
	assert.Negative(t, w.ecs.Velocities[id].X, "knocked away from attacker")

	w.ecs.Healths[id].Value = 0
	ps.Update(frame, input.None)
	assert.Equal(t, component.StateDead, p.FSM.Current)
	assert.Len(t, w.events[event.PlayerDied], 1)

	// Мёртвый игрок не реагирует на ввод и событие не повторяется
	var in input.Snapshot
	in.Press(input.Right)
	ps.Update(frame, &in)
	assert.Equal(t, component.StateDead, p.FSM.Current)
	assert.Len(t, w.events[event.PlayerDied], 1)
}

func TestPlayerSystem_StunBlocksActions(t *testing.T) {
	w := newTestWorld()
	id := w.spawnPlayer("knight", 500)
	ApplyStatusEffect(w.ecs, id, &defs.EffectDef{Type: defs.EffectStun, Duration: 1}, 0)
	ps := newPlayerSystem(w)

	var in input.Snapshot
	in.Press(input.Right)
	in.Press(input.Attack)
	ps.Update(frame, &in)

	assert.Zero(t, w.ecs.Velocities[id].X)
	assert.Equal(t, component.StateIdle, w.ecs.Players[id].FSM.Current)
	assert.Zero(t, w.ecs.Players[id].AttackCooldown)
}

func TestPlayerSystem_CastProjectileSkill(t *testing.T) {
	w := newTestWorld()
	id := w.spawnPlayer("mage", 500)
	ps := newPlayerSystem(w)
	p := w.ecs.Players[id]
	startMana := p.Mana

	var in input.Snapshot
	in.Press(input.Skill1)
	ps.Update(frame, &in)

	require.Len(t, w.ecs.Projectiles, 1)
	for pid, proj := range w.ecs.Projectiles {
		assert.Equal(t, id, proj.OwnerID)
		assert.Equal(t, "fireball", proj.Skill.ID)
		assert.Positive(t, w.ecs.Velocities[pid].X)
	}
	assert.InDelta(t, startMana-p.Skills[0].ManaCost, p.Mana, 1e-9)
	assert.Equal(t, p.Skills[0].Cooldown, p.SkillCooldowns[0])
	assert.Len(t, w.events[event.SkillCast], 1)

	// Без маны умение не срабатывает
	p.Mana = 0
	p.SkillCooldowns[1] = 0
	assert.False(t, ps.CastSkill(id, 1))
}

func TestPlayerSystem_CastAreaSkill(t *testing.T) {
	w := newTestWorld()
	id := w.spawnPlayer("archer", 500)
	near := w.spawnEnemy("orc", 600)
	far := w.spawnEnemy("orc", 900)
	ps := newPlayerSystem(w)

	require.True(t, ps.CastSkill(id, 1))
	assert.Less(t, w.ecs.Healths[near].Value, 90)
	assert.True(t, w.ecs.StatusEffects[near].Has(defs.EffectPoison))
	assert.Equal(t, 90, w.ecs.Healths[far].Value)
}

func TestPlayerSystem_LevelUpOnKill(t *testing.T) {
	w := newTestWorld()
	id := w.spawnPlayer("knight", 500)
	newPlayerSystem(w)
	w.ecs.Healths[id].Value = 10

	w.dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.KillData{Exp: 100}})

	p := w.ecs.Players[id]
	assert.Equal(t, 2, p.Level)
	assert.Zero(t, p.Exp)
	assert.Equal(t, 150, p.ExpToNext)
	assert.Equal(t, 170, w.ecs.Healths[id].Max)
	assert.Equal(t, 170, w.ecs.Healths[id].Value)
	assert.Equal(t, 16, w.ecs.Combats[id].Damage)
	assert.Len(t, w.events[event.LevelUp], 1)
}

func TestPlayerSystem_GainExpMultipleLevels(t *testing.T) {
	w := newTestWorld()
	id := w.spawnPlayer("knight", 500)
	ps := newPlayerSystem(w)

	assert.Equal(t, 2, ps.GainExp(id, 260))
	p := w.ecs.Players[id]
	assert.Equal(t, 3, p.Level)
	assert.Equal(t, 10, p.Exp)
	assert.Equal(t, 225, p.ExpToNext)
}

func TestRecalculatePlayerStats(t *testing.T) {
	w := newTestWorld()
	id := w.spawnPlayer("knight", 500)

	RecalculatePlayerStats(w.ecs, id, defs.ItemStats{Damage: 5, Defense: 3, MaxHealth: 40, MaxMana: 10, Crit: 0.05})
	assert.Equal(t, 19, w.ecs.Combats[id].Damage)
	assert.Equal(t, 7, w.ecs.Combats[id].Defense)
	assert.Equal(t, 190, w.ecs.Healths[id].Max)
	assert.Equal(t, 60.0, w.ecs.Players[id].MaxMana)
	assert.InDelta(t, 0.15, w.ecs.Combats[id].CritChance, 1e-9)

	// Снятие экипировки срезает текущее здоровье до нового максимума
	w.ecs.Healths[id].Value = 190
	RecalculatePlayerStats(w.ecs, id, defs.ItemStats{})
	assert.Equal(t, 150, w.ecs.Healths[id].Value)
}
