// internal/state/menu_state.go
package state

import (
	"fmt"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"nova-remains/internal/config"
	"nova-remains/internal/defs"
	"nova-remains/internal/input/keyboard"
	"nova-remains/internal/logging"
	"nova-remains/internal/ui"
)

// MenuState главное меню с выбором персонажа.
type MenuState struct {
	sm         *StateMachine
	ctx        *Context
	characters []defs.CharacterDefinition
	menu       *ui.Menu
	message    string
}

func NewMenuState(sm *StateMachine, ctx *Context) *MenuState {
	m := &MenuState{sm: sm, ctx: ctx, characters: menuCharacters()}
	var labels []string
	for i, c := range m.characters {
		labels = append(labels, fmt.Sprintf("%d. %s (%s)", i+1, c.Name, c.ID))
	}
	labels = append(labels, "Settings", "Quit")
	m.menu = ui.NewMenu(config.ScreenWidth/2-160, 150, 320, 36, 8, labels, ctx.Face)
	return m
}

// menuCharacters встроенные персонажи по порядку, затем загруженные из файлов.
func menuCharacters() []defs.CharacterDefinition {
	var out []defs.CharacterDefinition
	seen := map[string]bool{}
	for _, id := range defs.CharacterOrder {
		if c, ok := defs.CharacterLibrary[id]; ok {
			out = append(out, c)
			seen[id] = true
		}
	}
	var extra []string
	for id := range defs.CharacterLibrary {
		if !seen[id] {
			extra = append(extra, id)
		}
	}
	sort.Strings(extra)
	for _, id := range extra {
		out = append(out, defs.CharacterLibrary[id])
	}
	return out
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if d := keyboard.DigitJustPressed(); d > 0 && d <= len(m.characters) {
		m.menu.Select(d - 1)
		m.startGame(m.characters[d-1].ID)
		return
	}
	choice := m.menu.Update(m.ctx.Input)
	switch {
	case choice < 0:
	case choice < len(m.characters):
		m.startGame(m.characters[choice].ID)
	case choice == len(m.characters):
		m.sm.SetState(NewSettingsState(m.sm, m.ctx, m))
	default:
		m.ctx.Quit()
	}
}

func (m *MenuState) startGame(characterID string) {
	gs, err := NewGameState(m.sm, m.ctx, characterID)
	if err != nil {
		logging.Logger.Error().Err(err).Str("character", characterID).Msg("failed to start game")
		m.message = err.Error()
		return
	}
	m.sm.SetState(gs)
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ui.DrawTextCentered(screen, "NOVA REMAINS", m.ctx.Face, config.ScreenWidth/2, 70, config.HighlightColor)
	ui.DrawTextCentered(screen, "choose your character", m.ctx.Face, config.ScreenWidth/2, 100, config.TextLightColor)
	m.menu.Draw(screen)

	if sel := m.menu.Selected(); sel < len(m.characters) {
		c := m.characters[sel]
		info := fmt.Sprintf("HP %d  MP %.0f  DMG %d  DEF %d  %s", c.Health, c.Mana, c.Damage, c.Defense, c.DamageType)
		skills := fmt.Sprintf("K: %s   L: %s", c.Skills[0].Name, c.Skills[1].Name)
		ui.DrawTextCentered(screen, info, m.ctx.Face, config.ScreenWidth/2, config.ScreenHeight-90, config.TextLightColor)
		ui.DrawTextCentered(screen, skills, m.ctx.Face, config.ScreenWidth/2, config.ScreenHeight-70, config.TextLightColor)
	}
	if m.message != "" {
		ui.DrawTextCentered(screen, m.message, m.ctx.Face, config.ScreenWidth/2, config.ScreenHeight-40, config.HealthColor)
	}
}

func (m *MenuState) Exit() {}
