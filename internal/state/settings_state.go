package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"nova-remains/internal/config"
	"nova-remains/internal/input"
	"nova-remains/internal/logging"
	"nova-remains/internal/settings"
	"nova-remains/internal/ui"
)

const (
	rowSave = iota + int(settings.FieldAutoSave) + 1
	rowClear
	rowBack
	rowCount
)

// SettingsState экран настроек. Стрелки влево/вправо меняют значение,
// Enter на кнопках сохраняет, очищает (с подтверждением) или выходит.
type SettingsState struct {
	sm         *StateMachine
	ctx        *Context
	back       State
	draft      settings.Settings
	row        int
	confirming bool
	status     string
}

func NewSettingsState(sm *StateMachine, ctx *Context, back State) *SettingsState {
	return &SettingsState{sm: sm, ctx: ctx, back: back, draft: ctx.Settings}
}

func (s *SettingsState) Enter() {}

func (s *SettingsState) Update(deltaTime float64) {
	in := s.ctx.Input

	if s.confirming {
		switch {
		case in.JustPressed(input.Confirm):
			s.clear()
		case in.JustPressed(input.Pause):
			s.confirming = false
			s.status = "clear cancelled"
		}
		return
	}

	switch {
	case in.JustPressed(input.Pause):
		s.sm.SetState(s.back)
		return
	case in.JustPressed(input.Up):
		s.row = (s.row - 1 + rowCount) % rowCount
	case in.JustPressed(input.Down):
		s.row = (s.row + 1) % rowCount
	case in.JustPressed(input.Left):
		s.adjust(-1)
	case in.JustPressed(input.Right):
		s.adjust(1)
	case in.JustPressed(input.Confirm):
		s.activate()
	}
}

func (s *SettingsState) adjust(dir int) {
	if s.row >= rowSave {
		return
	}
	s.draft = s.draft.Adjust(settings.Field(s.row), dir)
	if s.draft.AutoSave || settings.Field(s.row) == settings.FieldAutoSave {
		s.save()
	} else {
		s.ctx.ApplySettings(s.draft)
		s.status = "not saved"
	}
}

func (s *SettingsState) activate() {
	switch s.row {
	case rowSave:
		s.save()
	case rowClear:
		s.confirming = true
	case rowBack:
		s.sm.SetState(s.back)
	default:
		s.adjust(1)
	}
}

func (s *SettingsState) save() {
	if err := s.ctx.SaveSettings(s.draft); err != nil {
		s.status = fmt.Sprintf("save failed: %v", err)
		return
	}
	s.draft = s.ctx.Settings
	s.status = "saved"
}

func (s *SettingsState) clear() {
	s.confirming = false
	if s.ctx.Store != nil {
		if err := s.ctx.Store.Clear(); err != nil {
			s.status = fmt.Sprintf("clear failed: %v", err)
			return
		}
	}
	s.draft = settings.Defaults()
	s.ctx.ApplySettings(s.draft)
	logging.Logger.Info().Msg("settings cleared")
	s.status = "settings reset to defaults"
}

func (s *SettingsState) Draw(screen *ebiten.Image) {
	if s.back != nil {
		s.back.Draw(screen)
	}
	drawOverlay(screen, s.ctx.Face, "SETTINGS")
	drawPanel(screen, config.ScreenWidth/2-220, 70, 440, 400)

	face := s.ctx.Face
	lh := ui.LineHeight(face) + 8
	y := 90.0
	x := float64(config.ScreenWidth/2 - 200)
	for _, f := range settings.Fields() {
		c := config.TextLightColor
		prefix := "  "
		if int(f) == s.row {
			c, prefix = config.HighlightColor, "> "
		}
		ui.DrawText(screen, prefix+f.String(), face, x, y, c)
		ui.DrawText(screen, "< "+s.draft.Value(f)+" >", face, x+240, y, c)
		y += lh
	}
	y += lh / 2
	for i, label := range []string{"Save", "Clear saved settings", "Back"} {
		c, prefix := config.TextLightColor, "  "
		if s.row == rowSave+i {
			c, prefix = config.HighlightColor, "> "
		}
		ui.DrawText(screen, prefix+label, face, x, y, c)
		y += lh
	}

	msg := s.status
	if s.confirming {
		msg = "clear all saved settings? Enter to confirm, Esc to cancel"
	}
	if msg != "" {
		ui.DrawTextCentered(screen, msg, face, config.ScreenWidth/2, 480, config.HighlightColor)
	}
}

func (s *SettingsState) Exit() {}
