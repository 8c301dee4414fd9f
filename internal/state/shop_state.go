package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"nova-remains/internal/config"
	"nova-remains/internal/defs"
	"nova-remains/internal/input"
	"nova-remains/internal/shop"
	"nova-remains/internal/ui"
)

// ShopState лавка: слева товары, справа инвентарь. Стрелки влево/вправо
// переключают колонку, Enter покупает или продаёт одну штуку.
type ShopState struct {
	sm      *StateMachine
	ctx     *Context
	parent  *GameState
	selling bool
	stock   int
	slot    int
	info    *ui.InfoPanel
	status  string
}

func NewShopState(sm *StateMachine, ctx *Context, parent *GameState) *ShopState {
	return &ShopState{sm: sm, ctx: ctx, parent: parent, info: ui.NewInfoPanel(ctx.Face)}
}

func (s *ShopState) Enter() {
	s.parent.game.SetPaused(true)
	s.refreshInfo()
}

func (s *ShopState) Update(deltaTime float64) {
	in := s.ctx.Input
	g := s.parent.game
	s.info.Update(deltaTime)

	if in.JustPressed(input.Pause) || in.JustPressed(input.Shop) {
		s.sm.SetState(s.parent)
		return
	}
	stock := g.Shop.Stock()
	changed := true
	switch {
	case in.JustPressed(input.Left), in.JustPressed(input.Right):
		s.selling = !s.selling
	case in.JustPressed(input.Up):
		s.step(-1, len(stock))
	case in.JustPressed(input.Down):
		s.step(1, len(stock))
	case in.JustPressed(input.Confirm), in.JustPressed(input.Sell) && s.selling:
		s.trade(stock)
	default:
		changed = false
	}
	if changed {
		s.refreshInfo()
	}
}

func (s *ShopState) step(d, stockLen int) {
	if s.selling {
		s.slot = (s.slot + d + config.InventorySize) % config.InventorySize
		return
	}
	if stockLen > 0 {
		s.stock = (s.stock + d + stockLen) % stockLen
	}
}

func (s *ShopState) trade(stock []defs.ItemDefinition) {
	g := s.parent.game
	if s.selling {
		gold, err := g.Sell(s.slot, 1)
		if err != nil {
			s.status = err.Error()
			return
		}
		s.status = fmt.Sprintf("sold for %d gold", gold)
		return
	}
	if s.stock >= len(stock) {
		return
	}
	item := stock[s.stock]
	if err := g.Buy(item.ID, 1); err != nil {
		s.status = err.Error()
		return
	}
	s.status = "bought " + item.Name
}

func (s *ShopState) refreshInfo() {
	g := s.parent.game
	if s.selling {
		slot, ok := g.Inventory.Slot(s.slot)
		if !ok {
			s.info.Hide()
			return
		}
		s.info.SetItem(defs.ItemLibrary[slot.ItemID], "[Enter] sell one")
		return
	}
	stock := g.Shop.Stock()
	if s.stock < len(stock) {
		s.info.SetItem(stock[s.stock], "[Enter] buy one")
	}
}

func (s *ShopState) Draw(screen *ebiten.Image) {
	s.parent.Draw(screen)
	drawOverlay(screen, s.ctx.Face, "SHOP")

	g := s.parent.game
	face := s.ctx.Face
	lh := ui.LineHeight(face) + 3

	drawPanel(screen, 80, 70, 380, 380)
	drawPanel(screen, 500, 70, 380, 380)
	ui.DrawText(screen, fmt.Sprintf("Buy        gold: %d", g.Shop.Gold()), face, 96, 80, config.ExpColor)
	ui.DrawText(screen, "Sell", face, 516, 80, config.ExpColor)

	for i, item := range g.Shop.Stock() {
		c := config.TextLightColor
		if !s.selling && i == s.stock {
			c = config.HighlightColor
		}
		if item.Price > g.Shop.Gold() {
			c = cooldownColor
		}
		ui.DrawText(screen, fmt.Sprintf("%-18s %5d", item.Name, item.Price), face, 96, 100+lh*float64(i), c)
	}
	for i := 0; i < config.InventorySize; i++ {
		slot, ok := g.Inventory.Slot(i)
		c := config.TextLightColor
		if s.selling && i == s.slot {
			c = config.HighlightColor
		}
		label := "-"
		if ok {
			def := defs.ItemLibrary[slot.ItemID]
			label = fmt.Sprintf("%-18s x%-3d %4d", def.Name, slot.Quantity, shop.SellPrice(def))
			if slot.Equipped {
				label += " E"
			}
		}
		ui.DrawText(screen, label, face, 516, 100+lh*float64(i), c)
	}
	if s.status != "" {
		ui.DrawTextCentered(screen, s.status, face, config.ScreenWidth/2, 60, config.HighlightColor)
	}
	s.info.Draw(screen)
}

func (s *ShopState) Exit() {}
