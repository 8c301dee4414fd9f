package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"nova-remains/internal/config"
	"nova-remains/internal/defs"
	"nova-remains/internal/input"
	"nova-remains/internal/ui"
)

const (
	gridCols = 5
	cellSize = 64
	cellGap  = 8
)

// InventoryState сетка ячеек инвентаря. Enter надеть/снять, U использовать.
type InventoryState struct {
	sm     *StateMachine
	ctx    *Context
	parent *GameState
	cursor int
	info   *ui.InfoPanel
	status string
}

func NewInventoryState(sm *StateMachine, ctx *Context, parent *GameState) *InventoryState {
	return &InventoryState{sm: sm, ctx: ctx, parent: parent, info: ui.NewInfoPanel(ctx.Face)}
}

func (s *InventoryState) Enter() {
	s.parent.game.SetPaused(true)
	s.refreshInfo()
}

func (s *InventoryState) Update(deltaTime float64) {
	in := s.ctx.Input
	g := s.parent.game
	s.info.Update(deltaTime)

	if in.JustPressed(input.Pause) || in.JustPressed(input.Inventory) {
		s.sm.SetState(s.parent)
		return
	}
	moved := true
	switch {
	case in.JustPressed(input.Left):
		s.move(-1)
	case in.JustPressed(input.Right):
		s.move(1)
	case in.JustPressed(input.Up):
		s.move(-gridCols)
	case in.JustPressed(input.Down):
		s.move(gridCols)
	default:
		moved = false
	}

	switch {
	case in.JustPressed(input.Confirm):
		if err := g.ToggleEquip(s.cursor); err != nil {
			s.status = err.Error()
		} else {
			s.status = ""
		}
		moved = true
	case in.JustPressed(input.Use):
		if def, err := g.UseItem(s.cursor); err != nil {
			s.status = err.Error()
		} else {
			s.status = "used " + def.Name
		}
		moved = true
	}
	if moved {
		s.refreshInfo()
	}
}

func (s *InventoryState) move(d int) {
	s.cursor = (s.cursor + d + config.InventorySize) % config.InventorySize
}

func (s *InventoryState) refreshInfo() {
	slot, ok := s.parent.game.Inventory.Slot(s.cursor)
	if !ok {
		s.info.Hide()
		return
	}
	def, ok := defs.ItemLibrary[slot.ItemID]
	if !ok {
		s.info.Hide()
		return
	}
	footer := "[U] use"
	if def.Category.Equippable() {
		footer = "[Enter] equip / unequip"
	}
	s.info.SetItem(def, footer)
}

func (s *InventoryState) Draw(screen *ebiten.Image) {
	s.parent.Draw(screen)
	drawOverlay(screen, s.ctx.Face, "INVENTORY")

	g := s.parent.game
	face := s.ctx.Face
	rows := (config.InventorySize + gridCols - 1) / gridCols
	w := float32(gridCols*(cellSize+cellGap) - cellGap)
	x0 := float32(config.ScreenWidth)/2 - w/2
	y0 := float32(80)
	drawPanel(screen, x0-16, y0-16, w+32, float32(rows*(cellSize+cellGap)-cellGap)+32)

	for i := 0; i < config.InventorySize; i++ {
		x := x0 + float32(i%gridCols*(cellSize+cellGap))
		y := y0 + float32(i/gridCols*(cellSize+cellGap))
		vector.DrawFilledRect(screen, x, y, cellSize, cellSize, config.PanelColor, false)

		border := config.RoomStatusColors[0]
		slot, ok := g.Inventory.Slot(i)
		if ok && slot.Equipped {
			border = config.RoomStatusColors[3]
		}
		if i == s.cursor {
			border = config.HighlightColor
		}
		vector.StrokeRect(screen, x, y, cellSize, cellSize, 2, border, false)

		if !ok {
			continue
		}
		def := defs.ItemLibrary[slot.ItemID]
		name := def.Name
		if len(name) > 9 {
			name = name[:9]
		}
		ui.DrawText(screen, name, face, float64(x)+4, float64(y)+4, config.TextLightColor)
		if slot.Quantity > 1 {
			ui.DrawText(screen, fmt.Sprintf("x%d", slot.Quantity), face, float64(x)+4, float64(y)+cellSize-18, config.TextLightColor)
		}
		if slot.Equipped {
			ui.DrawText(screen, "E", face, float64(x)+cellSize-12, float64(y)+cellSize-18, config.HighlightColor)
		}
	}

	bonus := g.EquipmentBonus()
	summary := fmt.Sprintf("Gold %d   equipment: DMG %+d  DEF %+d  HP %+d  MP %+.0f",
		g.Shop.Gold(), bonus.Damage, bonus.Defense, bonus.MaxHealth, bonus.MaxMana)
	ui.DrawTextCentered(screen, summary, face, config.ScreenWidth/2, 400, config.TextLightColor)
	if s.status != "" {
		ui.DrawTextCentered(screen, s.status, face, config.ScreenWidth/2, 60, config.HighlightColor)
	}
	s.info.Draw(screen)
}

func (s *InventoryState) Exit() {}
