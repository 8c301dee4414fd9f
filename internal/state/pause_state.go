// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"nova-remains/internal/component"
	"nova-remains/internal/config"
	"nova-remains/internal/input"
	"nova-remains/internal/ui"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

const (
	pauseResume = iota
	pauseSettings
	pauseTown
	pauseMenu
)

// PauseState меню паузы поверх замершей игры.
type PauseState struct {
	sm     *StateMachine
	ctx    *Context
	parent *GameState
	menu   *ui.Menu
}

func NewPauseState(sm *StateMachine, ctx *Context, parent *GameState) *PauseState {
	labels := []string{"Resume", "Settings", "Return to town", "Main menu"}
	return &PauseState{
		sm:     sm,
		ctx:    ctx,
		parent: parent,
		menu:   ui.NewMenu(config.ScreenWidth/2-130, 170, 260, 36, 10, labels, ctx.Face),
	}
}

func (s *PauseState) Enter() {
	s.parent.game.SetPaused(true)
	s.parent.pauseButton.SetPaused(true)
}

func (s *PauseState) Update(deltaTime float64) {
	if s.ctx.Input.JustPressed(input.Pause) {
		s.sm.SetState(s.parent)
		return
	}
	switch s.menu.Update(s.ctx.Input) {
	case pauseResume:
		s.sm.SetState(s.parent)
	case pauseSettings:
		s.sm.SetState(NewSettingsState(s.sm, s.ctx, s))
	case pauseTown:
		if s.parent.game.Phase() != component.PhaseTown {
			s.parent.game.ReturnToTown()
		}
		s.sm.SetState(s.parent)
	case pauseMenu:
		s.parent.Close()
		s.sm.SetState(NewMenuState(s.sm, s.ctx))
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.parent.Draw(screen)
	drawOverlay(screen, s.ctx.Face, "PAUSED")
	s.menu.Draw(screen)
}

func (s *PauseState) Exit() {}
