package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nova-remains/internal/component"
	"nova-remains/internal/config"
	"nova-remains/internal/defs"
)

func TestVisualEffectSystem_RemovesDeadParticles(t *testing.T) {
	w := newTestWorld()
	dead := w.ecs.NewEntity()
	w.ecs.Positions[dead] = &component.Position{}
	w.ecs.Particles[dead] = &component.Particle{Life: 0, MaxLife: 1}

	alive := w.ecs.NewEntity()
	w.ecs.Positions[alive] = &component.Position{X: 10, Y: 10}
	w.ecs.Velocities[alive] = &component.Velocity{X: 60}
	w.ecs.Particles[alive] = &component.Particle{Life: 1, MaxLife: 1}

	NewVisualEffectSystem(w.ecs).Update(0.5)

	assert.NotContains(t, w.ecs.Particles, dead)
	assert.NotContains(t, w.ecs.Positions, dead)
	assert.Contains(t, w.ecs.Particles, alive)
	assert.Equal(t, 40.0, w.ecs.Positions[alive].X)
	assert.Equal(t, 0.5, w.ecs.Particles[alive].Life)
	assert.Equal(t, 0.5, w.ecs.Particles[alive].Alpha())

	NewVisualEffectSystem(w.ecs).Update(0.5)
	assert.Empty(t, w.ecs.Particles)
}

func TestVisualEffectSystem_DamageFlashExpires(t *testing.T) {
	w := newTestWorld()
	enemy := w.spawnEnemy("goblin", 500)
	ApplyDamage(w.ecs, enemy, 5)
	sys := NewVisualEffectSystem(w.ecs)

	sys.Update(config.DamageFlashDuration / 2)
	assert.Contains(t, w.ecs.DamageFlashes, enemy)
	sys.Update(config.DamageFlashDuration)
	assert.NotContains(t, w.ecs.DamageFlashes, enemy)
}

func TestParticleEmitter_RespectsBudget(t *testing.T) {
	w := newTestWorld()
	w.game.budget = 5

	assert.Equal(t, 5, w.emitter.Emit(component.ParticleHit, 0, 0, 10))
	assert.Zero(t, w.emitter.Emit(component.ParticleHit, 0, 0, 3))
	assert.Len(t, w.ecs.Particles, 5)

	w.game.budget = 0
	assert.Zero(t, w.emitter.Emit(component.ParticleFire, 0, 0, 1))

	var nilEmitter *ParticleEmitter
	assert.Zero(t, nilEmitter.Emit(component.ParticleHit, 0, 0, 1))
}

func TestParticleForSkill(t *testing.T) {
	archer := defs.CharacterLibrary["archer"]
	mage := defs.CharacterLibrary["mage"]
	assert.Equal(t, component.ParticleHit, particleForSkill(nil))
	assert.Equal(t, component.ParticleIce, particleForSkill(&archer.Skills[0]))
	assert.Equal(t, component.ParticlePoison, particleForSkill(&archer.Skills[1]))
	assert.Equal(t, component.ParticleFire, particleForSkill(&mage.Skills[0]))
	assert.Equal(t, component.ParticleSpark, particleForSkill(&mage.Skills[1]))
}

func TestApplyDamage_ClampsAtZero(t *testing.T) {
	w := newTestWorld()
	enemy := w.spawnEnemy("goblin", 500)
	assert.Equal(t, 40, ApplyDamage(w.ecs, enemy, 100))
	assert.Zero(t, w.ecs.Healths[enemy].Value)
	assert.Zero(t, ApplyDamage(w.ecs, enemy, 5))
	assert.Zero(t, ApplyDamage(w.ecs, 12345, 5))
}

func TestCameraSystem_FollowsAndClamps(t *testing.T) {
	w := newTestWorld()
	player := w.spawnPlayer("knight", config.WorldWidth-100)
	cam := NewCameraSystem(w.ecs, config.ScreenWidth, config.ScreenHeight)

	cam.Update(1.0/60, player)
	assert.InDelta(t, (config.WorldWidth-config.ScreenWidth)*config.CameraLerp, cam.Camera.X, 1e-6)

	for i := 0; i < 600; i++ {
		cam.Update(1.0/60, player)
	}
	assert.InDelta(t, config.WorldWidth-config.ScreenWidth, cam.Camera.X, 1e-3)
	assert.Zero(t, cam.Camera.Y)

	w.ecs.Positions[player].X = 10
	cam.SnapTo(player)
	assert.Zero(t, cam.Camera.X)
}
