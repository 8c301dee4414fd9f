package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"nova-remains/internal/config"
	"nova-remains/internal/input"
	"nova-remains/internal/ui"
)

// GameOverState экран поражения со статистикой сессии.
type GameOverState struct {
	sm     *StateMachine
	ctx    *Context
	parent *GameState
}

func NewGameOverState(sm *StateMachine, ctx *Context, parent *GameState) *GameOverState {
	return &GameOverState{sm: sm, ctx: ctx, parent: parent}
}

func (s *GameOverState) Enter() {
	s.parent.game.SetPaused(true)
}

func (s *GameOverState) Update(deltaTime float64) {
	if s.ctx.Input.JustPressed(input.Confirm) || s.ctx.Input.JustPressed(input.Pause) {
		s.parent.Close()
		s.sm.SetState(NewMenuState(s.sm, s.ctx))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.parent.Draw(screen)
	drawOverlay(screen, s.ctx.Face, "GAME OVER")

	g := s.parent.game
	st := g.Telemetry.Stats()
	level := 0
	if p := g.Player(); p != nil {
		level = p.Level
	}
	lines := []string{
		fmt.Sprintf("level reached      %d", level),
		fmt.Sprintf("enemies killed     %d", st.EnemiesKilled),
		fmt.Sprintf("damage dealt       %d", st.DamageDealt),
		fmt.Sprintf("damage taken       %d", st.DamageTaken),
		fmt.Sprintf("critical hits      %d", st.CriticalHits),
		fmt.Sprintf("dodges             %d", st.Dodges),
		fmt.Sprintf("skills cast        %d", st.SkillsCast),
		fmt.Sprintf("enemies thrown     %d", st.Throws),
		fmt.Sprintf("missions cleared   %d", st.MissionsCleared),
		fmt.Sprintf("gold               %d", g.Shop.Gold()),
	}
	drawPanel(screen, config.ScreenWidth/2-170, 90, 340, 300)
	lh := ui.LineHeight(s.ctx.Face) + 6
	for i, line := range lines {
		ui.DrawText(screen, line, s.ctx.Face, config.ScreenWidth/2-150, 110+lh*float64(i), config.TextLightColor)
	}
	ui.DrawTextCentered(screen, "press Enter to return to the main menu", s.ctx.Face, config.ScreenWidth/2, 420, config.HighlightColor)
}

func (s *GameOverState) Exit() {}
