package app

import (
	"nova-remains/internal/component"
	"nova-remains/internal/defs"
	"nova-remains/internal/event"
	"nova-remains/internal/logging"
)

// rollLoot бросает таблицу добычи убитого врага. Выпавший предмет сразу
// попадает в инвентарь; если места нет, он теряется.
func (g *Game) rollLoot(kill event.KillData) string {
	def, ok := defs.EnemyLibrary[kill.DefID]
	if !ok || len(def.Drops.Entries) == 0 {
		return ""
	}
	if !g.Rng.Chance(def.Drops.Chance) {
		return ""
	}
	itemID := g.Rng.ChooseWeighted(def.Drops.Entries)
	if itemID == "" {
		return ""
	}
	if !g.Inventory.AddItem(itemID, 1) {
		logging.Logger.Debug().Str("item", itemID).Msg("loot lost: inventory full")
		return ""
	}
	g.EventDispatcher.Dispatch(event.Event{Type: event.ItemDropped, Data: event.DropData{ItemID: itemID, X: kill.X, Y: kill.Y}})
	g.Emitter.Emit(component.ParticleSpark, kill.X, kill.Y, 6)
	return itemID
}
