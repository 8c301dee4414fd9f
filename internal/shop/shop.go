// Package shop ведёт кошелёк игрока, покупку и продажу предметов.
package shop

import (
	"errors"
	"fmt"

	"nova-remains/internal/config"
	"nova-remains/internal/defs"
	"nova-remains/internal/event"
	"nova-remains/internal/inventory"
	"nova-remains/internal/logging"
)

var (
	ErrNotEnoughGold = errors.New("not enough gold")
	ErrNotForSale    = errors.New("item is not sold here")
	ErrInvalidAmount = errors.New("invalid amount")
)

// TradeData данные событий ItemPurchased и ItemSold.
type TradeData struct {
	ItemID   string
	Quantity int
	Gold     int // Сколько золота потрачено или получено
}

// Shop магазин с фиксированным ассортиментом и кошелёк игрока.
type Shop struct {
	gold            int
	stock           []string
	eventDispatcher *event.Dispatcher
}

// New создаёт магазин с начальным золотом gold. nil stock - defs.ShopStock.
func New(gold int, stock []string, eventDispatcher *event.Dispatcher) *Shop {
	if stock == nil {
		stock = defs.ShopStock
	}
	return &Shop{gold: gold, stock: stock, eventDispatcher: eventDispatcher}
}

func (s *Shop) Gold() int {
	return s.gold
}

// AddGold начисляет золото (награды, добыча).
func (s *Shop) AddGold(amount int) {
	if amount > 0 {
		s.gold += amount
	}
}

// Stock описания товаров в порядке витрины. Неизвестные ID пропускаются.
func (s *Shop) Stock() []defs.ItemDefinition {
	items := make([]defs.ItemDefinition, 0, len(s.stock))
	for _, id := range s.stock {
		if def, ok := defs.ItemLibrary[id]; ok {
			items = append(items, def)
		}
	}
	return items
}

func (s *Shop) inStock(itemID string) bool {
	for _, id := range s.stock {
		if id == itemID {
			return true
		}
	}
	return false
}

// SellPrice цена, по которой магазин выкупает предмет.
func SellPrice(def defs.ItemDefinition) int {
	return def.Price / config.SellPriceDivisor
}

// Buy покупает qty предметов в инвентарь inv. При нехватке золота или места
// ни золото, ни инвентарь не меняются.
func (s *Shop) Buy(inv *inventory.Inventory, itemID string, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("buy %s: %w", itemID, ErrInvalidAmount)
	}
	def, ok := defs.ItemLibrary[itemID]
	if !ok || !s.inStock(itemID) {
		return fmt.Errorf("buy %s: %w", itemID, ErrNotForSale)
	}
	cost := def.Price * qty
	if cost > s.gold {
		return fmt.Errorf("buy %d x %s for %d (have %d): %w", qty, itemID, cost, s.gold, ErrNotEnoughGold)
	}
	if err := inv.Add(itemID, qty); err != nil {
		return fmt.Errorf("buy %s: %w", itemID, err)
	}
	s.gold -= cost

	logging.Logger.Debug().Str("item", itemID).Int("qty", qty).Int("cost", cost).Int("gold", s.gold).Msg("item purchased")
	s.dispatch(event.ItemPurchased, TradeData{ItemID: itemID, Quantity: qty, Gold: cost})
	return nil
}

// Sell продаёт qty предметов из ячейки slot за половину цены.
// Возвращает полученное золото.
func (s *Shop) Sell(inv *inventory.Inventory, slot, qty int) (int, error) {
	item, ok := inv.Slot(slot)
	if !ok {
		return 0, fmt.Errorf("sell slot %d: %w", slot, inventory.ErrEmptySlot)
	}
	def, ok := defs.ItemLibrary[item.ItemID]
	if !ok {
		return 0, fmt.Errorf("sell %s: %w", item.ItemID, inventory.ErrUnknownItem)
	}
	if err := inv.Remove(slot, qty); err != nil {
		return 0, fmt.Errorf("sell %s: %w", item.ItemID, err)
	}
	earned := SellPrice(def) * qty
	s.gold += earned

	logging.Logger.Debug().Str("item", def.ID).Int("qty", qty).Int("earned", earned).Int("gold", s.gold).Msg("item sold")
	s.dispatch(event.ItemSold, TradeData{ItemID: def.ID, Quantity: qty, Gold: earned})
	return earned, nil
}

func (s *Shop) dispatch(t event.EventType, data TradeData) {
	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(event.Event{Type: t, Data: data})
	}
}
