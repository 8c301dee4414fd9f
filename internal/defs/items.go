// internal/defs/items.go
package defs

// ItemCategory категория предмета. Для экипировки совпадает со слотом экипировки.
type ItemCategory string

const (
	CategoryWeapon     ItemCategory = "weapon"
	CategoryArmor      ItemCategory = "armor"
	CategoryAccessory  ItemCategory = "accessory"
	CategoryConsumable ItemCategory = "consumable"
)

// EquipCategories категории, которые можно экипировать.
var EquipCategories = []ItemCategory{CategoryWeapon, CategoryArmor, CategoryAccessory}

// Equippable сообщает, можно ли экипировать предмет этой категории.
func (c ItemCategory) Equippable() bool {
	for _, ec := range EquipCategories {
		if ec == c {
			return true
		}
	}
	return false
}

// ItemStats бонусы к характеристикам от экипированного предмета.
type ItemStats struct {
	Damage    int     `json:"damage"`
	Defense   int     `json:"defense"`
	MaxHealth int     `json:"max_health"`
	MaxMana   float64 `json:"max_mana"`
	Crit      float64 `json:"crit"`
}

// ItemDefinition статические данные предмета.
type ItemDefinition struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Category    ItemCategory `json:"category"`
	Price       int          `json:"price"`
	MaxStack    int          `json:"max_stack"` // 0 или 1 - не складывается
	Stats       ItemStats    `json:"stats"`
	RestoreHP   int          `json:"restore_hp"`
	RestoreMana float64      `json:"restore_mana"`
	Description string       `json:"description"`
}

// Stackable сообщает, складывается ли предмет в одну ячейку.
func (d ItemDefinition) Stackable() bool {
	return d.MaxStack > 1
}

// ItemLibrary все предметы игры по ID.
var ItemLibrary = map[string]ItemDefinition{
	"health_potion": {ID: "health_potion", Name: "Health Potion", Category: CategoryConsumable, Price: 30, MaxStack: 10, RestoreHP: 50,
		Description: "Restores 50 health."},
	"mana_potion": {ID: "mana_potion", Name: "Mana Potion", Category: CategoryConsumable, Price: 40, MaxStack: 10, RestoreMana: 40,
		Description: "Restores 40 mana."},
	"iron_sword": {ID: "iron_sword", Name: "Iron Sword", Category: CategoryWeapon, Price: 150, Stats: ItemStats{Damage: 5},
		Description: "A plain but reliable blade."},
	"flame_staff": {ID: "flame_staff", Name: "Flame Staff", Category: CategoryWeapon, Price: 320, Stats: ItemStats{Damage: 8, MaxMana: 20},
		Description: "Warm to the touch."},
	"leather_armor": {ID: "leather_armor", Name: "Leather Armor", Category: CategoryArmor, Price: 120, Stats: ItemStats{Defense: 3, MaxHealth: 20},
		Description: "Light protection."},
	"knight_plate": {ID: "knight_plate", Name: "Knight Plate", Category: CategoryArmor, Price: 400, Stats: ItemStats{Defense: 7, MaxHealth: 50},
		Description: "Heavy plate of the Red Knights."},
	"bone_ring": {ID: "bone_ring", Name: "Bone Ring", Category: CategoryAccessory, Price: 180, Stats: ItemStats{Crit: 0.05},
		Description: "Sharpens the senses."},
}

// ShopStock порядок товаров в магазине.
var ShopStock = []string{"health_potion", "mana_potion", "iron_sword", "flame_staff", "leather_armor", "knight_plate", "bone_ring"}
