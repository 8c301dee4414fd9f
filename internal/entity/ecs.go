// internal/entity/ecs.go
package entity

import (
	"nova-remains/internal/component"
	"nova-remains/internal/types"
)

// ECS хранит все компоненты игрового мира в картах по ID сущности.
type ECS struct {
	GameTime      float64
	NextID        types.EntityID
	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	Bodies        map[types.EntityID]*component.Body
	Healths       map[types.EntityID]*component.Health
	Combats       map[types.EntityID]*component.Combat
	Renderables   map[types.EntityID]*component.Renderable
	Players       map[types.EntityID]*component.Player
	Enemies       map[types.EntityID]*component.Enemy
	Projectiles   map[types.EntityID]*component.Projectile
	Particles     map[types.EntityID]*component.Particle
	Platforms     map[types.EntityID]*component.Platform
	StatusEffects map[types.EntityID]*component.StatusEffects
	DamageFlashes map[types.EntityID]*component.DamageFlash
	Phase         component.GamePhase
	Wave          *component.Wave
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Bodies:        make(map[types.EntityID]*component.Body),
		Healths:       make(map[types.EntityID]*component.Health),
		Combats:       make(map[types.EntityID]*component.Combat),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		Players:       make(map[types.EntityID]*component.Player),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		Particles:     make(map[types.EntityID]*component.Particle),
		Platforms:     make(map[types.EntityID]*component.Platform),
		StatusEffects: make(map[types.EntityID]*component.StatusEffects),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		Phase:         component.PhaseTown,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет сущность из всех хранилищ.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Bodies, id)
	delete(ecs.Healths, id)
	delete(ecs.Combats, id)
	delete(ecs.Renderables, id)
	delete(ecs.Players, id)
	delete(ecs.Enemies, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Particles, id)
	delete(ecs.Platforms, id)
	delete(ecs.StatusEffects, id)
	delete(ecs.DamageFlashes, id)
}

// Exists сообщает, есть ли у сущности позиция (все живые сущности её имеют).
func (ecs *ECS) Exists(id types.EntityID) bool {
	_, ok := ecs.Positions[id]
	return ok
}

// ClearEnemies удаляет всех врагов и их снаряды.
func (ecs *ECS) ClearEnemies() {
	for id := range ecs.Enemies {
		ecs.RemoveEntity(id)
	}
	for id := range ecs.Projectiles {
		ecs.RemoveEntity(id)
	}
}

// ClearPlatforms удаляет все платформы, кроме земли.
func (ecs *ECS) ClearPlatforms() {
	for id, p := range ecs.Platforms {
		if !p.Ground {
			ecs.RemoveEntity(id)
		}
	}
}
