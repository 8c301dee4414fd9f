// internal/defs/enemies.go
package defs

import "image/color"

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Health         int        `json:"health"`
	Damage         int        `json:"damage"`
	Defense        int        `json:"defense"`
	Speed          float64    `json:"speed"`
	DamageType     DamageType `json:"damage_type"`
	AttackCooldown float64    `json:"attack_cooldown"`
	DodgeChance    float64    `json:"dodge_chance"`
	Exp            int        `json:"exp"`
	Gold           int        `json:"gold"`
	Drops          LootTable  `json:"drops"`
	Effect         *EffectDef `json:"effect,omitempty"`
	Color          color.RGBA `json:"color"`
}

// EnemyLibrary is a map to hold all enemy definitions, keyed by their ID.
var EnemyLibrary = map[string]EnemyDefinition{
	"goblin": {
		ID: "goblin", Name: "Goblin", Health: 40, Damage: 6, Defense: 1, Speed: 120,
		DamageType: DamagePhysical, AttackCooldown: 1.0, DodgeChance: 0.08, Exp: 20, Gold: 10,
		Drops: LootTable{Chance: 0.2, Entries: []LootEntry{{ItemID: "health_potion", Weight: 3}, {ItemID: "mana_potion", Weight: 1}}},
		Color: color.RGBA{90, 160, 60, 255},
	},
	"orc": {
		ID: "orc", Name: "Orc", Health: 90, Damage: 12, Defense: 4, Speed: 80,
		DamageType: DamagePhysical, AttackCooldown: 1.6, DodgeChance: 0.02, Exp: 45, Gold: 25,
		Drops: LootTable{Chance: 0.3, Entries: []LootEntry{{ItemID: "health_potion", Weight: 2}, {ItemID: "iron_sword", Weight: 1}, {ItemID: "leather_armor", Weight: 1}}},
		Color: color.RGBA{120, 110, 70, 255},
	},
	"skeleton": {
		ID: "skeleton", Name: "Skeleton", Health: 60, Damage: 9, Defense: 2, Speed: 100,
		DamageType: DamageMagical, AttackCooldown: 1.2, DodgeChance: 0.05, Exp: 30, Gold: 15,
		Drops:  LootTable{Chance: 0.25, Entries: []LootEntry{{ItemID: "mana_potion", Weight: 2}, {ItemID: "bone_ring", Weight: 1}}},
		Effect: &EffectDef{Type: EffectPoison, Duration: 3, DamagePerSec: 2, Chance: 0.25},
		Color:  color.RGBA{220, 220, 200, 255},
	},
}
