package app

import (
	"fmt"

	"nova-remains/internal/component"
	"nova-remains/internal/config"
	"nova-remains/internal/defs"
	"nova-remains/internal/system"
	"nova-remains/internal/utils"
)

// UseItem применяет расходник из ячейки slot к игроку.
func (g *Game) UseItem(slot int) (defs.ItemDefinition, error) {
	health := g.PlayerHealth()
	player := g.Player()
	if health == nil || player == nil || !health.Alive() {
		return defs.ItemDefinition{}, fmt.Errorf("use item: player is not alive")
	}
	def, err := g.Inventory.Use(slot)
	if err != nil {
		return def, err
	}
	if def.RestoreHP > 0 {
		health.Value = min(health.Max, health.Value+def.RestoreHP)
	}
	if def.RestoreMana > 0 {
		player.Mana = utils.Clamp(player.Mana+def.RestoreMana, 0, player.MaxMana)
	}
	if pos, ok := g.ECS.Positions[g.playerID]; ok {
		g.Emitter.Emit(component.ParticleLevelUp, pos.X+config.PlayerWidth/2, pos.Y, 8)
	}
	return def, nil
}

// ToggleEquip экипирует или снимает предмет и пересчитывает характеристики.
func (g *Game) ToggleEquip(slot int) error {
	if err := g.Inventory.ToggleEquip(slot); err != nil {
		return err
	}
	g.refreshStats()
	return nil
}

// Buy покупает qty предметов itemID в магазине.
func (g *Game) Buy(itemID string, qty int) error {
	return g.Shop.Buy(g.Inventory, itemID, qty)
}

// Sell продаёт qty предметов из ячейки slot. Проданная экипировка снимается.
func (g *Game) Sell(slot, qty int) (int, error) {
	gold, err := g.Shop.Sell(g.Inventory, slot, qty)
	if err != nil {
		return 0, err
	}
	g.refreshStats()
	return gold, nil
}

func (g *Game) refreshStats() {
	system.RecalculatePlayerStats(g.ECS, g.playerID, g.Inventory.Bonus())
}
