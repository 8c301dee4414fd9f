package system

import (
	"math"

	"nova-remains/internal/component"
	"nova-remains/internal/config"
	"nova-remains/internal/defs"
	"nova-remains/internal/entity"
	"nova-remains/internal/types"
	"nova-remains/internal/utils"
)

// thrownRecoverSpeed скорость, ниже которой брошенный враг снова встаёт на ноги.
const thrownRecoverSpeed = 20.0

// EnemyAISystem выбирает поведение врагов: патруль, преследование, атака.
type EnemyAISystem struct {
	ecs          *entity.ECS
	combatSystem *CombatSystem
}

func NewEnemyAISystem(ecs *entity.ECS, combatSystem *CombatSystem) *EnemyAISystem {
	return &EnemyAISystem{ecs: ecs, combatSystem: combatSystem}
}

// SelectMode выбирает режим по расстоянию до цели.
func SelectMode(dist float64) component.AIMode {
	switch {
	case dist <= config.EnemyAttackRange:
		return component.AIAttack
	case dist <= config.EnemyChaseRange:
		return component.AIChase
	}
	return component.AIPatrol
}

// Update обновляет всех врагов относительно игрока playerID.
func (s *EnemyAISystem) Update(deltaTime float64, playerID types.EntityID) {
	playerAlive := false
	if h, ok := s.ecs.Healths[playerID]; ok && h.Alive() {
		playerAlive = true
	}

	for id, enemy := range s.ecs.Enemies {
		if enemy.AttackCooldown > 0 {
			enemy.AttackCooldown -= deltaTime
		}
		if enemy.Grabbed {
			enemy.Mode = component.AIGrabbed
			continue
		}
		vel, ok := s.ecs.Velocities[id]
		if !ok {
			continue
		}
		body := s.ecs.Bodies[id]

		if enemy.Mode == component.AIThrown {
			if body == nil || !body.OnGround || math.Abs(vel.X) > thrownRecoverSpeed {
				continue
			}
			enemy.Mode = component.AIPatrol
			if pos, ok := s.ecs.Positions[id]; ok {
				enemy.PatrolOriginX = pos.X
			}
		}

		factor := s.ecs.StatusEffects[id].SpeedFactor(config.FreezeSpeedFactor)
		if factor == 0 {
			// Оглушён
			vel.X = 0
			continue
		}

		mode := component.AIPatrol
		var dx, dist float64
		if playerAlive {
			var ok bool
			dx, dist, ok = distance(s.ecs, id, playerID)
			if ok {
				mode = SelectMode(dist)
			}
		}
		enemy.Mode = mode

		switch mode {
		case component.AIAttack:
			vel.X = 0
			enemy.Facing = faceTowards(dx, enemy.Facing)
			if enemy.AttackCooldown <= 0 {
				s.attack(id, playerID, enemy)
			}
		case component.AIChase:
			enemy.Facing = faceTowards(dx, enemy.Facing)
			vel.X = enemy.Facing * enemy.Speed * factor
		default:
			s.patrol(id, enemy, vel, factor)
		}
	}
}

func (s *EnemyAISystem) attack(id, playerID types.EntityID, enemy *component.Enemy) {
	enemy.AttackCooldown = enemy.AttackInterval
	var effect *defs.EffectDef
	if def, ok := defs.EnemyLibrary[enemy.DefID]; ok {
		effect = def.Effect
	}
	s.combatSystem.PerformAttack(id, playerID, nil, effect)
}

func (s *EnemyAISystem) patrol(id types.EntityID, enemy *component.Enemy, vel *component.Velocity, factor float64) {
	pos, ok := s.ecs.Positions[id]
	if !ok {
		return
	}
	if enemy.PatrolDir == 0 {
		enemy.PatrolDir = 1
	}
	offset := pos.X - enemy.PatrolOriginX
	if offset > config.EnemyPatrolRadius {
		enemy.PatrolDir = -1
	} else if offset < -config.EnemyPatrolRadius {
		enemy.PatrolDir = 1
	}
	// Упёрлись в край мира
	if pos.X <= 0 {
		enemy.PatrolDir = 1
	} else if body, ok := s.ecs.Bodies[id]; ok && pos.X >= config.WorldWidth-body.Width {
		enemy.PatrolDir = -1
	}
	enemy.Facing = enemy.PatrolDir
	vel.X = enemy.PatrolDir * enemy.Speed * 0.5 * factor
}

func faceTowards(dx, current float64) float64 {
	if s := utils.Sign(dx); s != 0 {
		return s
	}
	if current == 0 {
		return 1
	}
	return current
}
