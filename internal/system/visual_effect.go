// internal/system/visual_effect.go
package system

import (
	"image/color"
	"math"

	"nova-remains/internal/component"
	"nova-remains/internal/defs"
	"nova-remains/internal/entity"
	"nova-remains/internal/types"
)

// particlePreset внешний вид и поведение частиц одного типа.
type particlePreset struct {
	Color   color.RGBA
	Size    float64
	Life    float64
	Speed   float64
	Gravity float64
}

var particlePresets = map[component.ParticleType]particlePreset{
	component.ParticleHit:     {Color: color.RGBA{255, 240, 200, 255}, Size: 3, Life: 0.3, Speed: 160, Gravity: 300},
	component.ParticleCrit:    {Color: color.RGBA{255, 200, 40, 255}, Size: 4, Life: 0.45, Speed: 240, Gravity: 300},
	component.ParticleDust:    {Color: color.RGBA{170, 150, 120, 255}, Size: 3, Life: 0.4, Speed: 60, Gravity: -20},
	component.ParticleFire:    {Color: color.RGBA{255, 110, 30, 255}, Size: 4, Life: 0.5, Speed: 120, Gravity: -120},
	component.ParticleIce:     {Color: color.RGBA{150, 220, 255, 255}, Size: 3, Life: 0.5, Speed: 110, Gravity: 100},
	component.ParticlePoison:  {Color: color.RGBA{120, 220, 80, 255}, Size: 3, Life: 0.6, Speed: 70, Gravity: -40},
	component.ParticleSpark:   {Color: color.RGBA{240, 240, 120, 255}, Size: 2, Life: 0.25, Speed: 280, Gravity: 0},
	component.ParticleLevelUp: {Color: color.RGBA{255, 230, 90, 255}, Size: 4, Life: 1.0, Speed: 90, Gravity: -160},
}

// particleForSkill подбирает частицы под тип урона умения.
func particleForSkill(skill *defs.Skill) component.ParticleType {
	if skill == nil {
		return component.ParticleHit
	}
	switch skill.DamageType {
	case defs.DamageFire:
		return component.ParticleFire
	case defs.DamageIce:
		return component.ParticleIce
	case defs.DamageLightning:
		return component.ParticleSpark
	case defs.DamageMagical:
		if skill.Effect != nil && skill.Effect.Type == defs.EffectPoison {
			return component.ParticlePoison
		}
		return component.ParticleSpark
	}
	return component.ParticleHit
}

// emitHit частицы попадания, крита или уклонения над целью.
func emitHit(ecs *entity.ECS, emitter *ParticleEmitter, targetID types.EntityID, result AttackResult, skill *defs.Skill) {
	x, y, _ := center(ecs, targetID)
	switch {
	case result.Dodged:
		emitter.Emit(component.ParticleDust, x, y, 4)
	case result.Critical:
		emitter.Emit(component.ParticleCrit, x, y, 10)
	default:
		emitter.Emit(particleForSkill(skill), x, y, 6)
	}
}

// ParticleEmitter создаёт частицы, не превышая бюджет.
type ParticleEmitter struct {
	ecs    *entity.ECS
	rng    RandomSource
	budget func() int
}

// NewParticleEmitter создаёт эмиттер. budget возвращает допустимое число
// частиц в мире, 0 отключает частицы.
func NewParticleEmitter(ecs *entity.ECS, rng RandomSource, budget func() int) *ParticleEmitter {
	return &ParticleEmitter{ecs: ecs, rng: rng, budget: budget}
}

// Emit выпускает до count частиц типа kind из точки (x, y) во все стороны.
// Возвращает число созданных частиц.
func (e *ParticleEmitter) Emit(kind component.ParticleType, x, y float64, count int) int {
	if e == nil {
		return 0
	}
	limit := e.budget()
	if free := limit - len(e.ecs.Particles); count > free {
		count = free
	}
	if count <= 0 {
		return 0
	}
	preset := particlePresets[kind]

	for i := 0; i < count; i++ {
		angle := e.rng.Float64() * 2 * math.Pi
		speed := preset.Speed * (0.5 + e.rng.Float64()*0.5)
		life := preset.Life * (0.7 + e.rng.Float64()*0.3)

		id := e.ecs.NewEntity()
		e.ecs.Positions[id] = &component.Position{X: x, Y: y}
		e.ecs.Velocities[id] = &component.Velocity{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed}
		e.ecs.Particles[id] = &component.Particle{
			Type:    kind,
			Life:    life,
			MaxLife: life,
			Size:    preset.Size,
			Color:   preset.Color,
			Gravity: preset.Gravity,
		}
	}
	return count
}

// VisualEffectSystem управляет визуальными эффектами: частицами и вспышками урона.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	for id, p := range s.ecs.Particles {
		if p.Life <= 0 {
			s.ecs.RemoveEntity(id)
			continue
		}
		if pos, ok := s.ecs.Positions[id]; ok {
			if vel, ok := s.ecs.Velocities[id]; ok {
				vel.Y += p.Gravity * deltaTime
				pos.X += vel.X * deltaTime
				pos.Y += vel.Y * deltaTime
			}
		}
		p.Life -= deltaTime
		if p.Life <= 0 {
			s.ecs.RemoveEntity(id)
		}
	}

	// Обновляем таймеры вспышек урона
	for id, flash := range s.ecs.DamageFlashes {
		flash.Timer -= deltaTime
		if flash.Timer <= 0 {
			delete(s.ecs.DamageFlashes, id)
		}
	}
}
