// internal/system/projectile.go
package system

import (
	"image/color"

	"nova-remains/internal/component"
	"nova-remains/internal/config"
	"nova-remains/internal/defs"
	"nova-remains/internal/entity"
	"nova-remains/internal/types"
)

const (
	projectileWidth  = 18.0
	projectileHeight = 8.0
)

// ProjectileSystem двигает снаряды и удаляет истёкшие или улетевшие за
// пределы мира. Попадания обрабатывает CollisionSystem.
type ProjectileSystem struct {
	ecs *entity.ECS
}

func NewProjectileSystem(ecs *entity.ECS) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for id, proj := range s.ecs.Projectiles {
		pos, okPos := s.ecs.Positions[id]
		vel, okVel := s.ecs.Velocities[id]
		if !okPos || !okVel {
			s.ecs.RemoveEntity(id)
			continue
		}

		pos.X += vel.X * deltaTime
		pos.Y += vel.Y * deltaTime
		proj.Life -= deltaTime

		if proj.Life <= 0 || pos.X < -projectileWidth || pos.X > config.WorldWidth {
			s.ecs.RemoveEntity(id)
		}
	}
}

// SpawnProjectile выпускает снаряд умения из точки (x, y) в направлении facing.
func SpawnProjectile(ecs *entity.ECS, ownerID types.EntityID, skill *defs.Skill, x, y, facing float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x - projectileWidth/2, Y: y - projectileHeight/2}
	ecs.Velocities[id] = &component.Velocity{X: facing * skill.Speed}
	ecs.Bodies[id] = &component.Body{Width: projectileWidth, Height: projectileHeight}
	ecs.Projectiles[id] = &component.Projectile{
		OwnerID: ownerID,
		Skill:   skill,
		Life:    config.ProjectileLifetime,
	}
	ecs.Renderables[id] = &component.Renderable{Color: projectileColor(skill.DamageType)}
	return id
}

func projectileColor(t defs.DamageType) color.RGBA {
	switch t {
	case defs.DamageFire:
		return color.RGBA{255, 120, 30, 255}
	case defs.DamageIce:
		return color.RGBA{140, 210, 255, 255}
	case defs.DamageLightning:
		return color.RGBA{250, 240, 100, 255}
	case defs.DamageMagical:
		return color.RGBA{190, 110, 255, 255}
	}
	return color.RGBA{230, 230, 230, 255}
}
