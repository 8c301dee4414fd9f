// internal/defs/loot_tables.go
package defs

// LootEntry представляет одну запись в таблице выпадения.
// ItemID - это ID предмета, а Weight - его "вес" или относительный шанс выпадения.
type LootEntry struct {
	ItemID string `json:"item_id"`
	Weight int    `json:"weight"`
}

// LootTable определяет шанс выпадения и список возможных предметов.
type LootTable struct {
	Chance  float64     `json:"chance"`
	Entries []LootEntry `json:"entries"`
}
