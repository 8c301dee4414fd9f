package system

import (
	"nova-remains/internal/config"
	"nova-remains/internal/entity"
	"nova-remains/internal/utils"
)

// MovementSystem интегрирует физику тел: гравитация, трение, явный Эйлер
// и границы мира. Снаряды и частицы двигают свои системы.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update(deltaTime float64) {
	groundDecay := utils.DecayFactor(config.GroundFriction, deltaTime)
	airDecay := utils.DecayFactor(config.AirFriction, deltaTime)

	for id, body := range s.ecs.Bodies {
		if _, isProjectile := s.ecs.Projectiles[id]; isProjectile {
			continue
		}
		if enemy, ok := s.ecs.Enemies[id]; ok && enemy.Grabbed {
			// Позицией владеет игрок
			continue
		}
		pos, okPos := s.ecs.Positions[id]
		vel, okVel := s.ecs.Velocities[id]
		if !okPos || !okVel {
			continue
		}

		if body.Gravity {
			vel.Y += config.Gravity * deltaTime
			if vel.Y > config.MaxFallSpeed {
				vel.Y = config.MaxFallSpeed
			}
		}

		pos.X += vel.X * deltaTime
		pos.Y += vel.Y * deltaTime

		// Границы мира
		if pos.X < 0 {
			pos.X = 0
			vel.X = 0
		} else if maxX := config.WorldWidth - body.Width; pos.X > maxX {
			pos.X = maxX
			vel.X = 0
		}
		if pos.Y < -config.WorldHeight {
			pos.Y = -config.WorldHeight
			vel.Y = 0
		}

		// Трение гасит горизонтальную скорость. Ввод и ИИ выставляют её
		// заново каждый кадр, так что на управляемое движение это не влияет.
		if body.OnGround {
			vel.X *= groundDecay
		} else {
			vel.X *= airDecay
		}
	}
}
