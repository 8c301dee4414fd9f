package system

import (
	"math"

	"nova-remains/internal/component"
	"nova-remains/internal/config"
	"nova-remains/internal/defs"
	"nova-remains/internal/entity"
	"nova-remains/internal/types"
)

// SpawnPlayer создаёт игрока из пресета персонажа, стоящего на земле в точке x.
func SpawnPlayer(ecs *entity.ECS, def defs.CharacterDefinition, x float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: config.GroundY - config.PlayerHeight}
	ecs.Velocities[id] = &component.Velocity{}
	ecs.Bodies[id] = &component.Body{Width: config.PlayerWidth, Height: config.PlayerHeight, OnGround: true, Gravity: true}
	ecs.Healths[id] = &component.Health{Value: def.Health, Max: def.Health}
	ecs.Combats[id] = &component.Combat{
		Damage:         def.Damage,
		Defense:        def.Defense,
		DamageType:     def.DamageType,
		CritChance:     def.CritChance,
		CritMultiplier: config.DefaultCritMultiplier,
		DodgeChance:    def.DodgeChance,
	}
	ecs.Players[id] = &component.Player{
		CharacterID:   def.ID,
		Speed:         def.Speed,
		Mana:          def.Mana,
		MaxMana:       def.Mana,
		Level:         1,
		ExpToNext:     config.BaseExpToNext,
		Facing:        1,
		BaseMaxHealth: def.Health,
		BaseMaxMana:   def.Mana,
		BaseDamage:    def.Damage,
		BaseDefense:   def.Defense,
		BaseCrit:      def.CritChance,
		Skills:        def.Skills,
	}
	ecs.Renderables[id] = &component.Renderable{Color: def.Color, Sprite: "characters/" + def.ID}
	return id
}

// SpawnEnemy создаёт врага в точке (x, y). difficulty масштабирует здоровье и урон.
func SpawnEnemy(ecs *entity.ECS, def defs.EnemyDefinition, x, y, difficulty float64) types.EntityID {
	if difficulty <= 0 {
		difficulty = 1
	}
	health := max(1, int(math.Round(float64(def.Health)*difficulty)))
	damage := max(1, int(math.Round(float64(def.Damage)*difficulty)))

	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Velocities[id] = &component.Velocity{}
	ecs.Bodies[id] = &component.Body{Width: config.EnemyWidth, Height: config.EnemyHeight, Gravity: true}
	ecs.Healths[id] = &component.Health{Value: health, Max: health}
	ecs.Combats[id] = &component.Combat{
		Damage:         damage,
		Defense:        def.Defense,
		DamageType:     def.DamageType,
		CritChance:     config.DefaultCritChance,
		CritMultiplier: config.DefaultCritMultiplier,
		DodgeChance:    def.DodgeChance,
	}
	ecs.Enemies[id] = &component.Enemy{
		DefID:          def.ID,
		Speed:          def.Speed,
		AttackInterval: def.AttackCooldown,
		Mode:           component.AIPatrol,
		Facing:         -1,
		PatrolOriginX:  x,
		PatrolDir:      -1,
		Exp:            def.Exp,
		Gold:           def.Gold,
	}
	ecs.Renderables[id] = &component.Renderable{Color: def.Color, Sprite: "enemies/" + def.ID}
	return id
}

// SpawnPlatform создаёт платформу. ground=true для земли уровня.
func SpawnPlatform(ecs *entity.ECS, x, y, w, h float64, ground bool) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Bodies[id] = &component.Body{Width: w, Height: h}
	ecs.Platforms[id] = &component.Platform{Ground: ground}
	c := config.PlatformColor
	if ground {
		c = config.GroundColor
	}
	ecs.Renderables[id] = &component.Renderable{Color: c}
	return id
}

// SpawnGround создаёт землю во всю ширину мира.
func SpawnGround(ecs *entity.ECS) types.EntityID {
	return SpawnPlatform(ecs, 0, config.GroundY, config.WorldWidth, config.WorldHeight-config.GroundY, true)
}
