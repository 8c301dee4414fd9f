package state

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"nova-remains/internal/component"
	"nova-remains/internal/config"
	"nova-remains/internal/defs"
	"nova-remains/internal/input"
	"nova-remains/internal/mission"
	"nova-remains/internal/ui"
)

// LobbyState доска миссий, комната и чат. Мир в это время продолжает
// обновляться, чтобы шли отсчёт старта и ответы ботов.
type LobbyState struct {
	sm       *StateMachine
	ctx      *Context
	parent   *GameState
	missions []defs.MissionDefinition
	selected int
	chat     *ui.ChatPanel
	status   string
}

func NewLobbyState(sm *StateMachine, ctx *Context, parent *GameState) *LobbyState {
	return &LobbyState{
		sm:       sm,
		ctx:      ctx,
		parent:   parent,
		missions: parent.game.Board.Missions(),
		chat:     ui.NewChatPanel(500, 250, 420, 250, ctx.Face),
	}
}

func (s *LobbyState) Enter() {
	s.parent.game.SetPaused(false)
}

func (s *LobbyState) Update(deltaTime float64) {
	g := s.parent.game
	g.Update(deltaTime)
	if g.Phase() == component.PhaseMission {
		s.sm.SetState(s.parent)
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		s.chat.Focused = !s.chat.Focused
		return
	}
	if s.chat.Focused {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			s.chat.Focused = false
			return
		}
		if msg, ok := s.chat.Update(); ok {
			if _, sent := g.SendChat(msg); !sent {
				s.status = "message not sent"
			}
		}
		return
	}

	in := s.ctx.Input
	switch {
	case in.JustPressed(input.Pause), in.JustPressed(input.Missions):
		s.sm.SetState(s.parent)
	case in.JustPressed(input.Up):
		s.selected = (s.selected - 1 + len(s.missions)) % max(len(s.missions), 1)
	case in.JustPressed(input.Down):
		s.selected = (s.selected + 1) % max(len(s.missions), 1)
	case in.JustPressed(input.Confirm):
		s.confirm()
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		s.report(g.AddBot())
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		g.LeaveRoom()
		s.status = "left the room"
	}
}

// confirm без комнаты создаёт её под выбранную миссию, в комнате
// запускает отсчёт.
func (s *LobbyState) confirm() {
	g := s.parent.game
	room := g.ActiveRoom()
	if room == nil {
		if s.selected >= len(s.missions) {
			return
		}
		if _, err := g.HostRoom(s.missions[s.selected].ID); err != nil {
			s.status = err.Error()
			return
		}
		s.status = "room created, [A] add bot, [Enter] start"
		return
	}
	if err := g.StartRoom(); err != nil {
		s.status = err.Error()
		return
	}
	s.status = "starting..."
}

func (s *LobbyState) report(m mission.Member, err error) {
	switch {
	case errors.Is(err, mission.ErrRoomNotFound):
		s.status = "create a room first"
	case err != nil:
		s.status = err.Error()
	default:
		s.status = m.Name + " joined"
	}
}

func (s *LobbyState) Draw(screen *ebiten.Image) {
	g := s.parent.game
	s.parent.Draw(screen)
	drawOverlay(screen, s.ctx.Face, "MISSION BOARD")
	face := s.ctx.Face
	lh := ui.LineHeight(face) + 4

	level := 1
	if p := g.Player(); p != nil {
		level = p.Level
	}
	drawPanel(screen, 40, 70, 430, 430)
	for i, m := range s.missions {
		c := config.TextLightColor
		if m.RequiredLevel > level {
			c = cooldownColor
		}
		prefix := "  "
		if i == s.selected {
			prefix = "> "
			if m.RequiredLevel <= level {
				c = config.HighlightColor
			}
		}
		line := fmt.Sprintf("%s%-20s Lv%-2d  %d exp %d gold  x%d", prefix, m.Name, m.RequiredLevel, m.RewardExp, m.RewardGold, g.Board.Completions(m.ID))
		ui.DrawText(screen, line, face, 52, 84+lh*float64(i), c)
	}

	drawPanel(screen, 500, 70, 420, 170)
	if room := g.ActiveRoom(); room != nil {
		header := fmt.Sprintf("Room %s  %s", room.MissionID, room.Status)
		if left, ok := g.Rooms.Countdown(room.ID); ok {
			header += fmt.Sprintf("  %.1fs", left)
		}
		ui.DrawText(screen, header, face, 512, 80, roomStatusColor(room.Status))
		for i, m := range room.Members {
			tag := ""
			switch {
			case m.ID == room.HostID:
				tag = " (host)"
			case m.Ready:
				tag = " (ready)"
			}
			ui.DrawText(screen, fmt.Sprintf("%s [%s]%s", m.Name, m.Character, tag), face, 512, 80+lh*float64(i+1), config.TextLightColor)
		}
	} else {
		ui.DrawText(screen, "no room: select a mission and press Enter", face, 512, 80, config.TextLightColor)
	}

	s.chat.Draw(screen, g.Lobby.Messages())
	help := "[Up/Down] select  [Enter] host/start  [A] add bot  [Backspace] leave  [Tab] chat  [Esc] close"
	ui.DrawTextCentered(screen, help, face, config.ScreenWidth/2, config.ScreenHeight-24, config.TextLightColor)
	if s.status != "" {
		ui.DrawTextCentered(screen, s.status, face, config.ScreenWidth/2, 54, config.HighlightColor)
	}
}

func (s *LobbyState) Exit() {
	s.chat.Focused = false
}
