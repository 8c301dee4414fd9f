// internal/defs/characters.go
package defs

import "image/color"

// CharacterDefinition хранит стартовые характеристики персонажа.
type CharacterDefinition struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Health      int        `json:"health"`
	Mana        float64    `json:"mana"`
	Damage      int        `json:"damage"`
	Defense     int        `json:"defense"`
	Speed       float64    `json:"speed"`
	DamageType  DamageType `json:"damage_type"`
	CritChance  float64    `json:"crit_chance"`
	DodgeChance float64    `json:"dodge_chance"`
	Skills      [2]Skill   `json:"skills"`
	Color       color.RGBA `json:"color"`
}

// CharacterLibrary персонажи, доступные на экране выбора, по ID.
var CharacterLibrary = map[string]CharacterDefinition{
	"knight": {
		ID: "knight", Name: "Elesis", Health: 150, Mana: 50, Damage: 14, Defense: 4, Speed: 220,
		DamageType: DamagePhysical, CritChance: 0.10, DodgeChance: 0.05,
		Skills: [2]Skill{
			{ID: "sword_wave", Name: "Sword Wave", ManaCost: 15, Cooldown: 1.5, DamageBonus: 6, DamageType: DamagePhysical, Projectile: true, Speed: 520},
			{ID: "critical_x", Name: "Critical X", ManaCost: 30, Cooldown: 4, DamageBonus: 12, DamageType: DamagePhysical, Radius: 90,
				Effect: &EffectDef{Type: EffectStun, Duration: 1}},
		},
		Color: color.RGBA{200, 40, 50, 255},
	},
	"archer": {
		ID: "archer", Name: "Lire", Health: 110, Mana: 70, Damage: 11, Defense: 2, Speed: 250,
		DamageType: DamagePhysical, CritChance: 0.15, DodgeChance: 0.10,
		Skills: [2]Skill{
			{ID: "ice_arrow", Name: "Ice Arrow", ManaCost: 12, Cooldown: 1.2, DamageBonus: 4, DamageType: DamageIce, Projectile: true, Speed: 700,
				Effect: &EffectDef{Type: EffectFreeze, Duration: 2}},
			{ID: "poison_rain", Name: "Poison Rain", ManaCost: 28, Cooldown: 5, DamageBonus: 2, DamageType: DamageMagical, Radius: 140,
				Effect: &EffectDef{Type: EffectPoison, Duration: 4, DamagePerSec: 4}},
		},
		Color: color.RGBA{60, 170, 80, 255},
	},
	"mage": {
		ID: "mage", Name: "Arme", Health: 90, Mana: 120, Damage: 9, Defense: 1, Speed: 200,
		DamageType: DamageMagical, CritChance: 0.10, DodgeChance: 0.05,
		Skills: [2]Skill{
			{ID: "fireball", Name: "Fireball", ManaCost: 18, Cooldown: 1.0, DamageBonus: 8, DamageType: DamageFire, Projectile: true, Speed: 460,
				Effect: &EffectDef{Type: EffectBurn, Duration: 3, DamagePerSec: 3}},
			{ID: "thunder", Name: "Thunder", ManaCost: 35, Cooldown: 4, DamageBonus: 14, DamageType: DamageLightning, Radius: 160,
				Effect: &EffectDef{Type: EffectStun, Duration: 0.8, Chance: 0.5}},
		},
		Color: color.RGBA{150, 70, 200, 255},
	},
	"thief": {
		ID: "thief", Name: "Lass", Health: 100, Mana: 60, Damage: 12, Defense: 2, Speed: 280,
		DamageType: DamagePhysical, CritChance: 0.25, DodgeChance: 0.15,
		Skills: [2]Skill{
			{ID: "shuriken", Name: "Shuriken", ManaCost: 10, Cooldown: 0.8, DamageBonus: 3, DamageType: DamagePhysical, Projectile: true, Speed: 800,
				Effect: &EffectDef{Type: EffectPoison, Duration: 3, DamagePerSec: 2, Chance: 0.4}},
			{ID: "shadow_burst", Name: "Shadow Burst", ManaCost: 30, Cooldown: 4, DamageBonus: 10, DamageType: DamageMagical, Radius: 100},
		},
		Color: color.RGBA{60, 60, 90, 255},
	},
}

// CharacterOrder порядок персонажей на экране выбора.
var CharacterOrder = []string{"knight", "archer", "mage", "thief"}
