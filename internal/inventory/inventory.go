// Package inventory хранит предметы игрока в фиксированном наборе ячеек
// и следит за экипировкой.
package inventory

import (
	"errors"
	"fmt"

	"nova-remains/internal/config"
	"nova-remains/internal/defs"
)

// Size число ячеек инвентаря.
const Size = config.InventorySize

var (
	ErrFull          = errors.New("inventory is full")
	ErrUnknownItem   = errors.New("unknown item")
	ErrInvalidSlot   = errors.New("invalid slot")
	ErrEmptySlot     = errors.New("slot is empty")
	ErrNotEquippable = errors.New("item cannot be equipped")
	ErrNotUsable     = errors.New("item cannot be used")
	ErrNotEnough     = errors.New("not enough items")
)

// Slot содержимое одной ячейки.
type Slot struct {
	ItemID   string
	Quantity int
	Equipped bool
}

// Inventory фиксированный массив ячеек; nil - пустая ячейка.
// Ячейка с Equipped=true всегда совпадает с записью в equipped по её категории.
type Inventory struct {
	slots    [Size]*Slot
	equipped map[defs.ItemCategory]int
}

func New() *Inventory {
	return &Inventory{equipped: make(map[defs.ItemCategory]int)}
}

func lookup(itemID string) (defs.ItemDefinition, error) {
	def, ok := defs.ItemLibrary[itemID]
	if !ok {
		return defs.ItemDefinition{}, fmt.Errorf("%w: %q", ErrUnknownItem, itemID)
	}
	return def, nil
}

func maxStack(def defs.ItemDefinition) int {
	if def.Stackable() {
		return def.MaxStack
	}
	return 1
}

// Slot возвращает копию ячейки i. ok=false для пустой или несуществующей ячейки.
func (inv *Inventory) Slot(i int) (Slot, bool) {
	if i < 0 || i >= Size || inv.slots[i] == nil {
		return Slot{}, false
	}
	return *inv.slots[i], true
}

// FreeSlots число пустых ячеек.
func (inv *Inventory) FreeSlots() int {
	n := 0
	for _, s := range inv.slots {
		if s == nil {
			n++
		}
	}
	return n
}

// Count сколько всего предметов itemID лежит в инвентаре.
func (inv *Inventory) Count(itemID string) int {
	n := 0
	for _, s := range inv.slots {
		if s != nil && s.ItemID == itemID {
			n += s.Quantity
		}
	}
	return n
}

// capacity сколько предметов def ещё поместится.
func (inv *Inventory) capacity(def defs.ItemDefinition) int {
	limit := maxStack(def)
	free := 0
	for _, s := range inv.slots {
		switch {
		case s == nil:
			free += limit
		case s.ItemID == def.ID && limit > 1:
			free += limit - s.Quantity
		}
	}
	return free
}

// Add кладёт qty предметов. Если всё не помещается, инвентарь не меняется.
func (inv *Inventory) Add(itemID string, qty int) error {
	def, err := lookup(itemID)
	if err != nil {
		return err
	}
	if qty <= 0 {
		return nil
	}
	if inv.capacity(def) < qty {
		return fmt.Errorf("add %d x %s: %w", qty, itemID, ErrFull)
	}

	limit := maxStack(def)
	// Сначала дополняем существующие стопки
	if limit > 1 {
		for _, s := range inv.slots {
			if qty == 0 {
				break
			}
			if s != nil && s.ItemID == itemID && s.Quantity < limit {
				n := min(qty, limit-s.Quantity)
				s.Quantity += n
				qty -= n
			}
		}
	}
	for i := range inv.slots {
		if qty == 0 {
			break
		}
		if inv.slots[i] == nil {
			n := min(qty, limit)
			inv.slots[i] = &Slot{ItemID: itemID, Quantity: n}
			qty -= n
		}
	}
	return nil
}

// AddItem то же, что Add, но сообщает только об успехе.
func (inv *Inventory) AddItem(itemID string, qty int) bool {
	return inv.Add(itemID, qty) == nil
}

func (inv *Inventory) slot(i int) (*Slot, error) {
	if i < 0 || i >= Size {
		return nil, fmt.Errorf("slot %d: %w", i, ErrInvalidSlot)
	}
	if inv.slots[i] == nil {
		return nil, fmt.Errorf("slot %d: %w", i, ErrEmptySlot)
	}
	return inv.slots[i], nil
}

// Remove убирает qty предметов из ячейки i. Опустевшая ячейка освобождается,
// экипированный предмет при этом снимается.
func (inv *Inventory) Remove(i, qty int) error {
	s, err := inv.slot(i)
	if err != nil {
		return err
	}
	if qty <= 0 || qty > s.Quantity {
		return fmt.Errorf("remove %d from slot %d: %w", qty, i, ErrNotEnough)
	}
	s.Quantity -= qty
	if s.Quantity == 0 {
		if s.Equipped {
			inv.unequip(i)
		}
		inv.slots[i] = nil
	}
	return nil
}

// RemoveItem убирает qty предметов itemID из любых ячеек.
func (inv *Inventory) RemoveItem(itemID string, qty int) error {
	if inv.Count(itemID) < qty {
		return fmt.Errorf("remove %d x %s: %w", qty, itemID, ErrNotEnough)
	}
	for i := Size - 1; i >= 0 && qty > 0; i-- {
		s := inv.slots[i]
		if s == nil || s.ItemID != itemID {
			continue
		}
		n := min(qty, s.Quantity)
		if err := inv.Remove(i, n); err != nil {
			return err
		}
		qty -= n
	}
	return nil
}

// Equip надевает предмет из ячейки i. Предмет той же категории, надетый
// ранее, снимается.
func (inv *Inventory) Equip(i int) error {
	s, err := inv.slot(i)
	if err != nil {
		return err
	}
	def, err := lookup(s.ItemID)
	if err != nil {
		return err
	}
	if !def.Category.Equippable() {
		return fmt.Errorf("equip %s: %w", def.ID, ErrNotEquippable)
	}
	if prev, ok := inv.equipped[def.Category]; ok && prev != i {
		inv.unequip(prev)
	}
	s.Equipped = true
	inv.equipped[def.Category] = i
	return nil
}

// Unequip снимает предмет из ячейки i.
func (inv *Inventory) Unequip(i int) error {
	s, err := inv.slot(i)
	if err != nil {
		return err
	}
	if s.Equipped {
		inv.unequip(i)
	}
	return nil
}

// ToggleEquip надевает или снимает предмет в ячейке i.
func (inv *Inventory) ToggleEquip(i int) error {
	s, err := inv.slot(i)
	if err != nil {
		return err
	}
	if s.Equipped {
		inv.unequip(i)
		return nil
	}
	return inv.Equip(i)
}

func (inv *Inventory) unequip(i int) {
	s := inv.slots[i]
	s.Equipped = false
	for cat, idx := range inv.equipped {
		if idx == i {
			delete(inv.equipped, cat)
		}
	}
}

// EquippedSlot индекс ячейки, надетой в категории cat.
func (inv *Inventory) EquippedSlot(cat defs.ItemCategory) (int, bool) {
	i, ok := inv.equipped[cat]
	return i, ok
}

// Use расходует один расходуемый предмет из ячейки i и возвращает его описание.
func (inv *Inventory) Use(i int) (defs.ItemDefinition, error) {
	s, err := inv.slot(i)
	if err != nil {
		return defs.ItemDefinition{}, err
	}
	def, err := lookup(s.ItemID)
	if err != nil {
		return defs.ItemDefinition{}, err
	}
	if def.Category != defs.CategoryConsumable {
		return defs.ItemDefinition{}, fmt.Errorf("use %s: %w", def.ID, ErrNotUsable)
	}
	if err := inv.Remove(i, 1); err != nil {
		return defs.ItemDefinition{}, err
	}
	return def, nil
}

// Bonus суммарные бонусы надетых предметов.
func (inv *Inventory) Bonus() defs.ItemStats {
	var total defs.ItemStats
	for _, i := range inv.equipped {
		s := inv.slots[i]
		if s == nil {
			continue
		}
		def, ok := defs.ItemLibrary[s.ItemID]
		if !ok {
			continue
		}
		total.Damage += def.Stats.Damage
		total.Defense += def.Stats.Defense
		total.MaxHealth += def.Stats.MaxHealth
		total.MaxMana += def.Stats.MaxMana
		total.Crit += def.Stats.Crit
	}
	return total
}

// Validate проверяет согласованность флагов Equipped и указателей по категориям.
func (inv *Inventory) Validate() error {
	seen := 0
	for i, s := range inv.slots {
		if s == nil || !s.Equipped {
			continue
		}
		seen++
		def, err := lookup(s.ItemID)
		if err != nil {
			return err
		}
		if idx, ok := inv.equipped[def.Category]; !ok || idx != i {
			return fmt.Errorf("slot %d marked equipped but %s points to %d", i, def.Category, idx)
		}
	}
	if seen != len(inv.equipped) {
		return fmt.Errorf("%d equipped slots, %d category pointers", seen, len(inv.equipped))
	}
	return nil
}
