package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nova-remains/internal/component"
	"nova-remains/internal/config"
	"nova-remains/internal/defs"
)

func TestMovementSystem_GravityAndEuler(t *testing.T) {
	w := newTestWorld()
	id := w.spawnEnemy("goblin", 500)
	w.ecs.Positions[id].Y = 100

	NewMovementSystem(w.ecs).Update(0.1)

	assert.InDelta(t, config.Gravity*0.1, w.ecs.Velocities[id].Y, 1e-9)
	assert.InDelta(t, 100+config.Gravity*0.1*0.1, w.ecs.Positions[id].Y, 1e-9)
}

func TestMovementSystem_FallSpeedCapped(t *testing.T) {
	w := newTestWorld()
	id := w.spawnEnemy("goblin", 500)
	w.ecs.Velocities[id].Y = config.MaxFallSpeed

	NewMovementSystem(w.ecs).Update(0.1)
	assert.Equal(t, config.MaxFallSpeed, w.ecs.Velocities[id].Y)
}

func TestMovementSystem_GroundFriction(t *testing.T) {
	w := newTestWorld()
	id := w.spawnPlayer("knight", 500)
	w.ecs.Velocities[id].X = 100

	NewMovementSystem(w.ecs).Update(1.0 / 60)
	assert.InDelta(t, 100*config.GroundFriction, w.ecs.Velocities[id].X, 1e-6)
}

func TestMovementSystem_WorldBounds(t *testing.T) {
	w := newTestWorld()
	id := w.spawnPlayer("knight", 5)
	w.ecs.Velocities[id].X = -1000

	NewMovementSystem(w.ecs).Update(0.1)
	assert.Zero(t, w.ecs.Positions[id].X)
	assert.Zero(t, w.ecs.Velocities[id].X)

	w.ecs.Positions[id].X = config.WorldWidth - config.PlayerWidth - 1
	w.ecs.Velocities[id].X = 1000
	NewMovementSystem(w.ecs).Update(0.1)
	assert.Equal(t, config.WorldWidth-config.PlayerWidth, w.ecs.Positions[id].X)
}

func TestMovementSystem_SkipsGrabbedAndProjectiles(t *testing.T) {
	w := newTestWorld()
	enemy := w.spawnEnemy("goblin", 500)
	w.ecs.Enemies[enemy].Grabbed = true
	w.ecs.Positions[enemy].Y = 100

	owner := w.spawnPlayer("mage", 100)
	mage := defs.CharacterLibrary["mage"]
	proj := SpawnProjectile(w.ecs, owner, &mage.Skills[0], 300, 300, 1)

	NewMovementSystem(w.ecs).Update(0.1)
	assert.Equal(t, 100.0, w.ecs.Positions[enemy].Y)
	assert.Equal(t, mage.Skills[0].Speed, w.ecs.Velocities[proj].X)
}

func TestCollisionSystem_LandsOnGround(t *testing.T) {
	w := newTestWorld()
	SpawnGround(w.ecs)
	id := w.spawnEnemy("goblin", 500)
	w.ecs.Positions[id].Y = config.GroundY - config.EnemyHeight + 5
	w.ecs.Velocities[id].Y = 300

	NewCollisionSystem(w.ecs, w.combat, w.dispatcher, w.emitter).Update(1.0 / 60)

	assert.Equal(t, config.GroundY-config.EnemyHeight, w.ecs.Positions[id].Y)
	assert.Zero(t, w.ecs.Velocities[id].Y)
	assert.True(t, w.ecs.Bodies[id].OnGround)
}

func TestCollisionSystem_PlatformIsOneWay(t *testing.T) {
	w := newTestWorld()
	SpawnPlatform(w.ecs, 0, 300, 200, 16, false)
	sys := NewCollisionSystem(w.ecs, w.combat, w.dispatcher, w.emitter)

	// Падает сверху: встаёт на платформу
	falling := w.spawnEnemy("goblin", 50)
	w.ecs.Positions[falling].Y = 300 - config.EnemyHeight + 3
	w.ecs.Velocities[falling].Y = 300

	// Прыгает снизу: пролетает сквозь
	jumping := w.spawnEnemy("goblin", 120)
	w.ecs.Positions[jumping].Y = 300 - config.EnemyHeight + 10
	w.ecs.Velocities[jumping].Y = -300

	sys.Update(1.0 / 60)

	assert.Equal(t, 300-config.EnemyHeight, w.ecs.Positions[falling].Y)
	assert.True(t, w.ecs.Bodies[falling].OnGround)
	assert.Equal(t, 300-config.EnemyHeight+10, w.ecs.Positions[jumping].Y)
	assert.False(t, w.ecs.Bodies[jumping].OnGround)
}

func TestCollisionSystem_ProjectileHitsEnemy(t *testing.T) {
	w := newTestWorld()
	player := w.spawnPlayer("mage", 100)
	enemy := w.spawnEnemy("orc", 400)
	mage := defs.CharacterLibrary["mage"]
	proj := SpawnProjectile(w.ecs, player, &mage.Skills[0], 410, config.GroundY-20, 1)

	NewCollisionSystem(w.ecs, w.combat, w.dispatcher, w.emitter).Update(1.0 / 60)

	assert.NotContains(t, w.ecs.Projectiles, proj)
	// (9 + 8) * 1.5 - 4 = 21.5
	assert.Equal(t, 90-22, w.ecs.Healths[enemy].Value)
	assert.True(t, w.ecs.StatusEffects[enemy].Has(defs.EffectBurn))
	assert.NotEmpty(t, w.ecs.Particles)
}

func TestCollisionSystem_ThrownEnemyHitsOthersOnce(t *testing.T) {
	w := newTestWorld()
	thrown := w.spawnEnemy("goblin", 500)
	other := w.spawnEnemy("goblin", 520)
	w.ecs.Enemies[thrown].Mode = component.AIThrown
	w.ecs.Velocities[thrown].X = 400
	sys := NewCollisionSystem(w.ecs, w.combat, w.dispatcher, w.emitter)

	sys.Update(1.0 / 60)
	sys.Update(1.0 / 60)
	require.Equal(t, 40-config.ThrowDamage/2, w.ecs.Healths[other].Value)
	assert.Equal(t, 40, w.ecs.Healths[thrown].Value)
}

func TestCollisionSystem_SeparatesPlayerAndEnemy(t *testing.T) {
	w := newTestWorld()
	player := w.spawnPlayer("knight", 500)
	enemy := w.spawnEnemy("goblin", 520)

	NewCollisionSystem(w.ecs, w.combat, w.dispatcher, w.emitter).Update(1.0 / 60)
	assert.Equal(t, 500+config.PlayerWidth, w.ecs.Positions[enemy].X)
	assert.Equal(t, 500.0, w.ecs.Positions[player].X)
}
