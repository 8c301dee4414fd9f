package system

import (
	"math"

	"nova-remains/internal/component"
	"nova-remains/internal/config"
	"nova-remains/internal/defs"
	"nova-remains/internal/entity"
	"nova-remains/internal/event"
	"nova-remains/internal/types"
	"nova-remains/pkg/geom"
)

// thrownHitSpeed минимальная скорость брошенного врага, при которой он
// сбивает других врагов.
const thrownHitSpeed = 120.0

// CollisionSystem разрешает AABB-столкновения: тела с платформами,
// игрок с врагами, снаряды и брошенные враги с врагами.
type CollisionSystem struct {
	ecs             *entity.ECS
	combatSystem    *CombatSystem
	eventDispatcher *event.Dispatcher
	emitter         *ParticleEmitter
	// Кого уже сбил брошенный враг за текущий полёт
	thrownHits map[types.EntityID]map[types.EntityID]bool
}

func NewCollisionSystem(ecs *entity.ECS, combatSystem *CombatSystem, eventDispatcher *event.Dispatcher, emitter *ParticleEmitter) *CollisionSystem {
	return &CollisionSystem{
		ecs:             ecs,
		combatSystem:    combatSystem,
		eventDispatcher: eventDispatcher,
		emitter:         emitter,
		thrownHits:      make(map[types.EntityID]map[types.EntityID]bool),
	}
}

func (s *CollisionSystem) Update(deltaTime float64) {
	s.resolvePlatforms(deltaTime)
	s.resolveProjectiles()
	s.resolveThrown()
	s.separatePlayerFromEnemies()
}

// resolvePlatforms ставит падающие тела на платформы. На обычную платформу
// можно встать только сверху, сквозь землю провалиться нельзя.
func (s *CollisionSystem) resolvePlatforms(deltaTime float64) {
	for id, body := range s.ecs.Bodies {
		if !body.Gravity {
			continue
		}
		if enemy, ok := s.ecs.Enemies[id]; ok && enemy.Grabbed {
			continue
		}
		pos, okPos := s.ecs.Positions[id]
		vel, okVel := s.ecs.Velocities[id]
		if !okPos || !okVel {
			continue
		}

		body.OnGround = false
		rect := body.Rect(pos)
		prevBottom := rect.Bottom() - vel.Y*deltaTime

		for pid, platform := range s.ecs.Platforms {
			ppos, ok := s.ecs.Positions[pid]
			pbody, okBody := s.ecs.Bodies[pid]
			if !ok || !okBody {
				continue
			}
			prect := pbody.Rect(ppos)
			if rect.Right() <= prect.X || rect.X >= prect.Right() {
				continue
			}

			landed := false
			if platform.Ground {
				landed = rect.Bottom() >= prect.Y
			} else {
				landed = vel.Y >= 0 && prevBottom <= prect.Y+1 && rect.Bottom() >= prect.Y
			}
			if landed {
				pos.Y = prect.Y - body.Height
				if vel.Y > 0 {
					vel.Y = 0
				}
				body.OnGround = true
				rect = body.Rect(pos)
			}
		}
	}
}

// resolveProjectiles проверяет попадания снарядов игрока по врагам.
func (s *CollisionSystem) resolveProjectiles() {
	for pid, proj := range s.ecs.Projectiles {
		ppos, ok := s.ecs.Positions[pid]
		pbody, okBody := s.ecs.Bodies[pid]
		if !ok || !okBody {
			continue
		}
		prect := pbody.Rect(ppos)

		for eid, enemy := range s.ecs.Enemies {
			if enemy.Grabbed {
				continue
			}
			erect, ok := s.rect(eid)
			if !ok || !prect.Intersects(erect) {
				continue
			}
			if h, ok := s.ecs.Healths[eid]; !ok || !h.Alive() {
				continue
			}
			var effect *defs.EffectDef
			if proj.Skill != nil {
				effect = proj.Skill.Effect
			}
			result := s.combatSystem.PerformAttack(proj.OwnerID, eid, proj.Skill, effect)
			emitHit(s.ecs, s.emitter, eid, result, proj.Skill)
			s.ecs.RemoveEntity(pid)
			break
		}
	}
}

// resolveThrown: брошенный враг наносит урон тем, в кого врезался.
func (s *CollisionSystem) resolveThrown() {
	for tid, thrown := range s.ecs.Enemies {
		if thrown.Mode != component.AIThrown {
			delete(s.thrownHits, tid)
			continue
		}
		vel, ok := s.ecs.Velocities[tid]
		if !ok || math.Abs(vel.X) < thrownHitSpeed {
			continue
		}
		trect, ok := s.rect(tid)
		if !ok {
			continue
		}
		hits := s.thrownHits[tid]
		if hits == nil {
			hits = make(map[types.EntityID]bool)
			s.thrownHits[tid] = hits
		}
		for eid, other := range s.ecs.Enemies {
			if eid == tid || other.Grabbed || hits[eid] {
				continue
			}
			erect, ok := s.rect(eid)
			if !ok || !trect.Intersects(erect) {
				continue
			}
			hits[eid] = true
			damage := config.ThrowDamage / 2
			ApplyDamage(s.ecs, eid, damage)
			if evel, ok := s.ecs.Velocities[eid]; ok {
				evel.X = vel.X * 0.5
			}
			x, y, _ := center(s.ecs, eid)
			if s.eventDispatcher != nil {
				s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyDamaged, Data: event.DamageData{
					AttackerID: thrown.GrabbedBy,
					TargetID:   eid,
					Amount:     damage,
					DamageType: defs.DamagePhysical,
					X:          x,
					Y:          y,
				}})
			}
			s.emitter.Emit(component.ParticleDust, x, y, 6)
		}
	}
	for tid := range s.thrownHits {
		if _, ok := s.ecs.Enemies[tid]; !ok {
			delete(s.thrownHits, tid)
		}
	}
}

// separatePlayerFromEnemies выталкивает врагов из игрока по горизонтали.
func (s *CollisionSystem) separatePlayerFromEnemies() {
	for pid, player := range s.ecs.Players {
		if player.FSM.Current == component.StateDead {
			continue
		}
		prect, ok := s.rect(pid)
		if !ok {
			continue
		}
		for eid, enemy := range s.ecs.Enemies {
			if enemy.Grabbed || enemy.Mode == component.AIThrown {
				continue
			}
			erect, ok := s.rect(eid)
			if !ok || !prect.Intersects(erect) {
				continue
			}
			dx, _ := prect.Overlap(erect)
			epos := s.ecs.Positions[eid]
			ecx, _ := erect.Center()
			pcx, _ := prect.Center()
			if ecx < pcx {
				epos.X -= dx
			} else {
				epos.X += dx
			}
			if epos.X < 0 {
				epos.X = 0
			} else if maxX := config.WorldWidth - erect.W; epos.X > maxX {
				epos.X = maxX
			}
		}
	}
}

func (s *CollisionSystem) rect(id types.EntityID) (geom.Rect, bool) {
	pos, ok := s.ecs.Positions[id]
	body, okBody := s.ecs.Bodies[id]
	if !ok || !okBody {
		return geom.Rect{}, false
	}
	return body.Rect(pos), true
}
