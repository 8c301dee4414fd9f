// internal/state/game_state.go
package state

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	game "nova-remains/internal/app"
	"nova-remains/internal/component"
	"nova-remains/internal/config"
	"nova-remains/internal/defs"
	"nova-remains/internal/event"
	"nova-remains/internal/input"
	"nova-remains/internal/mission"
	"nova-remains/internal/render"
	"nova-remains/internal/ui"
)

const toastDuration = 2.5

// GameState экран игры: мир, HUD и переходы к окнам города.
type GameState struct {
	sm          *StateMachine
	ctx         *Context
	game        *game.Game
	world       *render.WorldRenderer
	health      *ui.PlayerHealthIndicator
	level       *ui.PlayerLevelIndicator
	wave        *ui.WaveIndicator
	indicator   *ui.StateIndicator
	pauseButton *ui.PauseButton

	toast      string
	toastTimer float64
}

// NewGameState создаёт новую игровую сессию за персонажа characterID.
func NewGameState(sm *StateMachine, ctx *Context, characterID string) (*GameState, error) {
	g, err := game.NewGame(game.Options{
		Seed:      ctx.Seed,
		Character: characterID,
		Settings:  ctx.Settings,
		Meter:     ctx.Meter,
	})
	if err != nil {
		return nil, err
	}
	if ctx.Sound != nil {
		g.AttachSound(ctx.Sound)
	}

	gs := &GameState{
		sm:          sm,
		ctx:         ctx,
		game:        g,
		world:       render.NewWorldRenderer(g.ECS, ctx.Sprites, ctx.Seed),
		health:      ui.NewPlayerHealthIndicator(16, 16, ctx.Face),
		level:       ui.NewPlayerLevelIndicator(16, 60, ctx.Face),
		wave:        ui.NewWaveIndicator(config.ScreenWidth/2, 16, ctx.Face),
		indicator:   ui.NewStateIndicator(config.ScreenWidth-200, 60, 8, ctx.Face),
		pauseButton: ui.NewPauseButton(config.ScreenWidth-30, 28, 10, config.TextLightColor, config.HighlightColor),
	}
	g.EventDispatcher.SubscribeAll(event.ListenerFunc(gs.onNotice), event.LevelUp, event.ItemDropped)
	return gs, nil
}

// onNotice выводит подъём уровня и выпавший лут сообщением на HUD.
func (g *GameState) onNotice(e event.Event) {
	switch data := e.Data.(type) {
	case event.LevelUpData:
		g.Notify("level up! now level %d", data.Level)
	case event.DropData:
		name := data.ItemID
		if def, ok := defs.ItemLibrary[data.ItemID]; ok {
			name = def.Name
		}
		g.Notify("picked up %s", name)
	}
}

// Close отключает от сессии общие ресурсы контекста перед выходом в меню.
func (g *GameState) Close() {
	g.game.LeaveRoom()
	g.game.AttachSound(nil)
}

// Game игровая сессия экрана.
func (g *GameState) Game() *game.Game {
	return g.game
}

func (g *GameState) Enter() {
	g.game.SetPaused(false)
	g.pauseButton.SetPaused(false)
	g.game.ApplySettings(g.ctx.Settings)
}

// Notify показывает короткое сообщение поверх HUD.
func (g *GameState) Notify(format string, args ...any) {
	g.toast = fmt.Sprintf(format, args...)
	g.toastTimer = toastDuration
}

func (g *GameState) Update(deltaTime float64) {
	in := g.ctx.Input
	if g.toastTimer > 0 {
		g.toastTimer -= deltaTime
	}

	if g.game.Phase() == component.PhaseGameOver {
		g.sm.SetState(NewGameOverState(g.sm, g.ctx, g))
		return
	}
	if in.JustPressed(input.Pause) || g.pauseButton.Update(g.game.GetGameTime()) {
		g.sm.SetState(NewPauseState(g.sm, g.ctx, g))
		return
	}

	switch {
	case in.JustPressed(input.Inventory):
		g.sm.SetState(NewInventoryState(g.sm, g.ctx, g))
		return
	case in.JustPressed(input.Missions):
		if g.game.Phase() != component.PhaseTown {
			g.Notify("mission board is in town")
		} else {
			g.sm.SetState(NewLobbyState(g.sm, g.ctx, g))
			return
		}
	case in.JustPressed(input.Shop):
		if g.game.Phase() != component.PhaseTown {
			g.Notify("shop is in town")
		} else {
			g.sm.SetState(NewShopState(g.sm, g.ctx, g))
			return
		}
	case g.game.Phase() == component.PhaseMissionCleared && in.JustPressed(input.Confirm):
		g.game.ReturnToTown()
		g.Notify("back in town")
	}

	g.game.Input = in
	g.game.Update(deltaTime)
	g.game.Input = input.None
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.world.Draw(screen, g.game.Camera(), g.game.GetGameTime())
	g.drawHUD(screen)
}

func (g *GameState) drawHUD(screen *ebiten.Image) {
	face := g.ctx.Face
	gameTime := g.game.GetGameTime()

	if p, hp := g.game.Player(), g.game.PlayerHealth(); p != nil && hp != nil {
		g.health.Draw(screen, hp.Value, hp.Max, p.Mana, p.MaxMana, gameTime)
		g.level.Draw(screen, p.Level, p.Exp, p.ExpToNext)
		g.drawSkills(screen, p)
	}

	if wave := g.game.ECS.Wave; wave != nil {
		left := g.game.WaveSystem.ActiveEnemies() + wave.EnemiesToSpawn
		g.wave.Draw(screen, g.game.CurrentMission(), wave.Index, left)
	}

	phase := g.game.Phase()
	label, c := phase.String(), config.RoomStatusColors[0]
	if room := g.game.ActiveRoom(); room != nil {
		label = fmt.Sprintf("%s / room %s", phase, room.Status)
		c = roomStatusColor(room.Status)
	}
	g.indicator.Draw(screen, label, c, gameTime)
	ui.DrawText(screen, fmt.Sprintf("Gold %d", g.game.Shop.Gold()), face, config.ScreenWidth-200, 80, config.ExpColor)
	g.pauseButton.Draw(screen)

	switch phase {
	case component.PhaseTown:
		ui.DrawText(screen, "[M] missions  [B] shop  [I] inventory", face, 16, config.ScreenHeight-24, config.TextLightColor)
	case component.PhaseMissionCleared:
		ui.DrawTextCentered(screen, "MISSION CLEAR", face, config.ScreenWidth/2, config.ScreenHeight/2-20, config.HighlightColor)
		ui.DrawTextCentered(screen, "press Enter to return to town", face, config.ScreenWidth/2, config.ScreenHeight/2, config.TextLightColor)
	}

	if g.toastTimer > 0 {
		ui.DrawTextCentered(screen, g.toast, face, config.ScreenWidth/2, config.ScreenHeight-60, config.HighlightColor)
	}
}

var cooldownColor = color.RGBA{120, 120, 140, 255}

func (g *GameState) drawSkills(screen *ebiten.Image, p *component.Player) {
	keys := [2]string{"K", "L"}
	for i, skill := range p.Skills {
		c := config.TextLightColor
		label := fmt.Sprintf("[%s] %s %.0fmp", keys[i], skill.Name, skill.ManaCost)
		if cd := p.SkillCooldowns[i]; cd > 0 {
			c = cooldownColor
			label += fmt.Sprintf(" %.1fs", cd)
		} else if p.Mana < skill.ManaCost {
			c = cooldownColor
		}
		ui.DrawText(screen, label, g.ctx.Face, 16, 84+float64(i)*16, c)
	}
}

func (g *GameState) Exit() {}

// roomStatusColor цвет статуса комнаты.
func roomStatusColor(s mission.RoomStatus) color.RGBA {
	return config.RoomStatusColors[int(s)%len(config.RoomStatusColors)]
}
