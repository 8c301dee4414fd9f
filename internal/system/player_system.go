// internal/system/player_system.go
package system

import (
	"math"

	"nova-remains/internal/component"
	"nova-remains/internal/config"
	"nova-remains/internal/defs"
	"nova-remains/internal/entity"
	"nova-remains/internal/event"
	"nova-remains/internal/input"
	"nova-remains/internal/interfaces"
	"nova-remains/internal/types"
	"nova-remains/pkg/geom"
)

const (
	meleeKnockback  = 180.0
	hurtKnockback   = 140.0
	grabMoveFactor  = 0.6
	grabHoldOffsetY = 8.0
)

// PlayerSystem переводит ввод в действия игрока через конечный автомат,
// ведёт кулдауны, ману, захват и бросок врагов, опыт и уровни.
type PlayerSystem struct {
	ecs             *entity.ECS
	combatSystem    *CombatSystem
	eventDispatcher *event.Dispatcher
	game            interfaces.GameContext
	emitter         *ParticleEmitter
}

func NewPlayerSystem(ecs *entity.ECS, combatSystem *CombatSystem, eventDispatcher *event.Dispatcher,
	game interfaces.GameContext, emitter *ParticleEmitter) *PlayerSystem {
	ps := &PlayerSystem{
		ecs:             ecs,
		combatSystem:    combatSystem,
		eventDispatcher: eventDispatcher,
		game:            game,
		emitter:         emitter,
	}
	eventDispatcher.SubscribeAll(ps, event.PlayerDamaged, event.EnemyKilled)
	return ps
}

// Update обрабатывает ввод за один кадр. Физику применяет MovementSystem.
func (s *PlayerSystem) Update(deltaTime float64, in input.State) {
	id := s.game.PlayerID()
	player, ok := s.ecs.Players[id]
	if !ok {
		return
	}
	vel, okVel := s.ecs.Velocities[id]
	body, okBody := s.ecs.Bodies[id]
	health, okHealth := s.ecs.Healths[id]
	combat, okCombat := s.ecs.Combats[id]
	if !okVel || !okBody || !okHealth || !okCombat {
		return
	}

	player.FSM.Tick(deltaTime)
	tickCooldowns(player, deltaTime)

	if !health.Alive() {
		if player.FSM.Current != component.StateDead {
			s.releaseGrab(player)
			player.FSM.Transition(component.StateDead)
			vel.X = 0
			combat.Defending = false
			s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerDied, Data: id})
		}
		return
	}
	if player.FSM.Current == component.StateDead {
		return
	}

	player.Mana = math.Min(player.MaxMana, player.Mana+config.ManaRegenPerSecond*deltaTime)

	effects := s.ecs.StatusEffects[id]
	stunned := effects.Has(defs.EffectStun)
	factor := effects.SpeedFactor(config.FreezeSpeedFactor)

	thrown := false
	if player.Grabbing() {
		thrown = s.updateGrab(id, player, in, deltaTime)
	}

	// Закончившееся действие возвращает автомат в покой
	if player.ActionTimer <= 0 && isTimedState(player.FSM.Current) {
		player.FSM.Transition(component.StateIdle)
	}
	locked := player.ActionTimer > 0 && isTimedState(player.FSM.Current)

	if !locked && !stunned && !thrown {
		s.handleActions(id, player, body, in)
		locked = player.ActionTimer > 0 && isTimedState(player.FSM.Current)
	}

	cur := player.FSM.Current
	canMove := !stunned && !(locked && (cur == component.StateDefend || cur == component.StateHurt ||
		(cur == component.StateAttack && body.OnGround)))

	dir := 0.0
	if in.Held(input.Left) {
		dir--
	}
	if in.Held(input.Right) {
		dir++
	}

	crouching := false
	switch {
	case stunned:
		vel.X = 0
	case canMove:
		crouching = in.Held(input.Down) && body.OnGround && !player.Grabbing()
		if crouching {
			vel.X = 0
		} else if dir != 0 {
			speed := player.Speed * factor
			if player.Grabbing() {
				speed *= grabMoveFactor
			}
			vel.X = dir * speed
			player.Facing = dir
		}
		if in.JustPressed(input.Up) && body.OnGround && !player.Grabbing() &&
			component.CanTransition(cur, component.StateJump) {
			vel.Y = config.JumpVelocity
			body.OnGround = false
			crouching = false
			s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerJumped, Data: id})
		}
	case locked && cur == component.StateAttack:
		vel.X = 0
	}

	if !locked {
		desired := component.StateIdle
		switch {
		case player.Grabbing():
			desired = component.StateGrab
		case !body.OnGround:
			desired = component.StateJump
		case crouching:
			desired = component.StateCrouch
		case dir != 0 && vel.X != 0:
			desired = component.StateWalk
		}
		player.FSM.Transition(desired)
	}
	combat.Defending = player.FSM.Current == component.StateDefend
}

// SyncGrabbed прижимает захваченного врага к игроку. Вызывается после физики.
func (s *PlayerSystem) SyncGrabbed() {
	for id, player := range s.ecs.Players {
		if !player.Grabbing() {
			continue
		}
		ppos, ok := s.ecs.Positions[id]
		epos, okE := s.ecs.Positions[player.GrabbedEnemy]
		if !ok || !okE {
			continue
		}
		epos.X = ppos.X + player.Facing*config.PlayerWidth*0.6
		epos.Y = ppos.Y - grabHoldOffsetY
		if evel, ok := s.ecs.Velocities[player.GrabbedEnemy]; ok {
			evel.X, evel.Y = 0, 0
		}
	}
}

func isTimedState(st component.PlayerState) bool {
	return st == component.StateAttack || st == component.StateDefend || st == component.StateHurt
}

func tickCooldowns(p *component.Player, deltaTime float64) {
	dec := func(v *float64) {
		if *v > 0 {
			*v = math.Max(0, *v-deltaTime)
		}
	}
	dec(&p.AttackCooldown)
	dec(&p.DefendCooldown)
	dec(&p.GrabCooldown)
	dec(&p.SkillCooldowns[0])
	dec(&p.SkillCooldowns[1])
	dec(&p.ActionTimer)
}

func (s *PlayerSystem) handleActions(id types.EntityID, player *component.Player, body *component.Body, in input.State) {
	switch {
	case in.JustPressed(input.Grab):
		if !player.Grabbing() && player.GrabCooldown <= 0 && body.OnGround {
			s.tryGrab(id, player)
		}
	case in.JustPressed(input.Attack):
		if player.AttackCooldown > 0 || player.Grabbing() {
			return
		}
		if player.FSM.Transition(component.StateAttack) {
			player.ActionTimer = config.AttackDuration
			player.AttackCooldown = config.AttackCooldown
			s.meleeAttack(id, player)
		}
	case in.JustPressed(input.Defend):
		if player.DefendCooldown > 0 || player.Grabbing() {
			return
		}
		if player.FSM.Transition(component.StateDefend) {
			player.ActionTimer = config.DefendDuration
			player.DefendCooldown = config.DefendCooldown
		}
	case in.JustPressed(input.Skill1):
		s.CastSkill(id, 0)
	case in.JustPressed(input.Skill2):
		s.CastSkill(id, 1)
	}
}

// meleeAttack бьёт всех врагов в прямоугольнике перед игроком.
func (s *PlayerSystem) meleeAttack(id types.EntityID, player *component.Player) {
	pos := s.ecs.Positions[id]
	x := pos.X + config.PlayerWidth
	if player.Facing < 0 {
		x = pos.X - config.AttackRange
	}
	hitbox := geom.NewRect(x, pos.Y, config.AttackRange, config.PlayerHeight)

	for eid, enemy := range s.ecs.Enemies {
		if enemy.Grabbed {
			continue
		}
		epos, ok := s.ecs.Positions[eid]
		ebody, okBody := s.ecs.Bodies[eid]
		if !ok || !okBody || !hitbox.Intersects(ebody.Rect(epos)) {
			continue
		}
		result := s.combatSystem.PerformAttack(id, eid, nil, nil)
		if !result.Dodged {
			if evel, ok := s.ecs.Velocities[eid]; ok {
				evel.X = player.Facing * meleeKnockback
			}
		}
		emitHit(s.ecs, s.emitter, eid, result, nil)
	}
}

// CastSkill применяет умение с индексом slot, если хватает маны и кулдаун прошёл.
func (s *PlayerSystem) CastSkill(id types.EntityID, slot int) bool {
	player, ok := s.ecs.Players[id]
	if !ok || slot < 0 || slot >= len(player.Skills) {
		return false
	}
	skill := &player.Skills[slot]
	if skill.ID == "" || player.SkillCooldowns[slot] > 0 || player.Mana < skill.ManaCost || player.Grabbing() {
		return false
	}
	if !player.FSM.Transition(component.StateAttack) {
		return false
	}
	player.Mana -= skill.ManaCost
	player.SkillCooldowns[slot] = skill.Cooldown
	player.ActionTimer = config.AttackDuration

	cx, cy, _ := center(s.ecs, id)
	if skill.Projectile {
		SpawnProjectile(s.ecs, id, skill, cx+player.Facing*config.PlayerWidth/2, cy, player.Facing)
	} else {
		for eid, enemy := range s.ecs.Enemies {
			if enemy.Grabbed {
				continue
			}
			if _, dist, ok := distance(s.ecs, id, eid); ok && dist <= skill.Radius {
				result := s.combatSystem.PerformAttack(id, eid, skill, skill.Effect)
				emitHit(s.ecs, s.emitter, eid, result, skill)
			}
		}
		s.emitter.Emit(particleForSkill(skill), cx, cy, 16)
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.SkillCast, Data: skill.ID})
	return true
}

func (s *PlayerSystem) tryGrab(id types.EntityID, player *component.Player) {
	var target types.EntityID
	best := math.MaxFloat64
	for eid, enemy := range s.ecs.Enemies {
		if enemy.Grabbed || enemy.Mode == component.AIThrown {
			continue
		}
		if h, ok := s.ecs.Healths[eid]; !ok || !h.Alive() {
			continue
		}
		dx, dist, ok := distance(s.ecs, id, eid)
		if !ok || dist > config.GrabRange || dx*player.Facing < -4 {
			continue
		}
		if dist < best {
			best = dist
			target = eid
		}
	}
	if target == 0 || !player.FSM.Transition(component.StateGrab) {
		return
	}

	enemy := s.ecs.Enemies[target]
	enemy.Grabbed = true
	enemy.GrabbedBy = id
	enemy.Mode = component.AIGrabbed
	if evel, ok := s.ecs.Velocities[target]; ok {
		evel.X, evel.Y = 0, 0
	}
	player.GrabbedEnemy = target
	player.GrabTimer = 0
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyGrabbed, Data: target})
}

// updateGrab ведёт удержание. Возвращает true, если враг был брошен.
func (s *PlayerSystem) updateGrab(id types.EntityID, player *component.Player, in input.State, deltaTime float64) bool {
	enemyID := player.GrabbedEnemy
	if h, ok := s.ecs.Healths[enemyID]; !ok || !h.Alive() {
		// Враг погиб в руках, например от яда
		player.GrabbedEnemy = 0
		player.FSM.Transition(component.StateIdle)
		return false
	}
	player.GrabTimer += deltaTime
	if in.JustPressed(input.Grab) || player.GrabTimer >= config.GrabMaxHold {
		s.throw(id, player)
		return true
	}
	return false
}

func (s *PlayerSystem) throw(id types.EntityID, player *component.Player) {
	enemyID := player.GrabbedEnemy
	enemy, ok := s.ecs.Enemies[enemyID]
	player.GrabbedEnemy = 0
	player.GrabTimer = 0
	player.GrabCooldown = config.GrabCooldown
	player.FSM.Transition(component.StateIdle)
	if !ok {
		return
	}

	enemy.Grabbed = false
	enemy.Mode = component.AIThrown
	if evel, ok := s.ecs.Velocities[enemyID]; ok {
		evel.X = player.Facing * config.ThrowImpulseX
		evel.Y = config.ThrowImpulseY
	}
	if ebody, ok := s.ecs.Bodies[enemyID]; ok {
		ebody.OnGround = false
	}

	dealt := ApplyDamage(s.ecs, enemyID, config.ThrowDamage)
	x, y, _ := center(s.ecs, enemyID)
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyDamaged, Data: event.DamageData{
		AttackerID: id,
		TargetID:   enemyID,
		Amount:     dealt,
		DamageType: defs.DamagePhysical,
		X:          x,
		Y:          y,
	}})
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyThrown, Data: enemyID})
	s.emitter.Emit(component.ParticleDust, x, y, 8)
}

// releaseGrab отпускает врага без броска.
func (s *PlayerSystem) releaseGrab(player *component.Player) {
	if !player.Grabbing() {
		return
	}
	if enemy, ok := s.ecs.Enemies[player.GrabbedEnemy]; ok {
		enemy.Grabbed = false
		enemy.GrabbedBy = 0
		enemy.Mode = component.AIPatrol
		if ebody, ok := s.ecs.Bodies[player.GrabbedEnemy]; ok {
			ebody.OnGround = false
		}
	}
	player.GrabbedEnemy = 0
	player.GrabTimer = 0
}

// GainExp начисляет опыт и повышает уровень столько раз, сколько нужно.
// Возвращает число полученных уровней.
func (s *PlayerSystem) GainExp(id types.EntityID, amount int) int {
	player, ok := s.ecs.Players[id]
	if !ok || amount <= 0 {
		return 0
	}
	player.Exp += amount
	levels := 0
	for player.Exp >= player.ExpToNext {
		player.Exp -= player.ExpToNext
		player.Level++
		player.ExpToNext = int(float64(player.ExpToNext) * config.ExpGrowthFactor)
		player.BaseMaxHealth += config.LevelHealthBonus
		player.BaseMaxMana += config.LevelManaBonus
		player.BaseDamage += config.LevelDamageBonus
		levels++
	}
	if levels == 0 {
		return 0
	}

	RecalculatePlayerStats(s.ecs, id, s.game.EquipmentBonus())
	if health, ok := s.ecs.Healths[id]; ok {
		health.Value = health.Max
	}
	player.Mana = player.MaxMana

	cx, cy, _ := center(s.ecs, id)
	s.emitter.Emit(component.ParticleLevelUp, cx, cy, 24)
	s.eventDispatcher.Dispatch(event.Event{Type: event.LevelUp, Data: event.LevelUpData{PlayerID: id, Level: player.Level}})
	return levels
}

// RecalculatePlayerStats пересчитывает итоговые характеристики игрока из
// базовых значений и бонусов экипировки.
func RecalculatePlayerStats(ecs *entity.ECS, id types.EntityID, bonus defs.ItemStats) {
	player, ok := ecs.Players[id]
	if !ok {
		return
	}
	if health, ok := ecs.Healths[id]; ok {
		health.Max = player.BaseMaxHealth + bonus.MaxHealth
		if health.Value > health.Max {
			health.Value = health.Max
		}
	}
	player.MaxMana = player.BaseMaxMana + bonus.MaxMana
	if player.Mana > player.MaxMana {
		player.Mana = player.MaxMana
	}
	if combat, ok := ecs.Combats[id]; ok {
		combat.Damage = player.BaseDamage + bonus.Damage
		combat.Defense = player.BaseDefense + bonus.Defense
		combat.CritChance = player.BaseCrit + bonus.Crit
	}
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *PlayerSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		if data, ok := e.Data.(event.KillData); ok {
			s.GainExp(s.game.PlayerID(), data.Exp)
		}
	case event.PlayerDamaged:
		data, ok := e.Data.(event.DamageData)
		if !ok || data.Periodic {
			return
		}
		s.onHurt(data)
	}
}

func (s *PlayerSystem) onHurt(data event.DamageData) {
	player, ok := s.ecs.Players[data.TargetID]
	if !ok || player.FSM.Current == component.StateDefend {
		return
	}
	if h, ok := s.ecs.Healths[data.TargetID]; !ok || !h.Alive() {
		return
	}
	if !component.CanTransition(player.FSM.Current, component.StateHurt) {
		return
	}
	s.releaseGrab(player)
	player.FSM.Transition(component.StateHurt)
	player.ActionTimer = config.HurtDuration

	if vel, ok := s.ecs.Velocities[data.TargetID]; ok {
		if ax, _, ok := center(s.ecs, data.AttackerID); ok {
			px, _, _ := center(s.ecs, data.TargetID)
			if px >= ax {
				vel.X = hurtKnockback
			} else {
				vel.X = -hurtKnockback
			}
		}
	}
}
