package app

import (
	"errors"
	"fmt"

	"nova-remains/internal/component"
	"nova-remains/internal/config"
	"nova-remains/internal/defs"
	"nova-remains/internal/logging"
	"nova-remains/internal/mission"
)

var (
	ErrMissionActive = errors.New("mission already in progress")
	ErrGameOver      = errors.New("game over")
)

// StartMission запускает миссию id, если уровень игрока позволяет.
func (g *Game) StartMission(id string) error {
	switch g.ECS.Phase {
	case component.PhaseMission:
		return ErrMissionActive
	case component.PhaseGameOver:
		return ErrGameOver
	}
	player := g.Player()
	if player == nil {
		return fmt.Errorf("start mission %s: no player", id)
	}
	def, err := g.Board.Check(id, player.Level)
	if err != nil {
		return err
	}

	g.ClearProjectiles()
	g.WaveSystem.StartMission(&def)
	g.resetPlayerPosition()
	logging.Logger.Info().Str("mission", def.ID).Int("waves", len(def.Waves)).Msg("mission started")
	return nil
}

// CurrentMission текущая миссия или nil.
func (g *Game) CurrentMission() *defs.MissionDefinition {
	return g.WaveSystem.Mission()
}

// ReturnToTown завершает миссию (пройденную или нет) и восстанавливает игрока.
func (g *Game) ReturnToTown() {
	if g.ECS.Phase == component.PhaseMission {
		logging.Logger.Info().Msg("mission aborted")
		g.failRoom()
	}
	g.WaveSystem.Abort()
	g.ClearProjectiles()
	g.StateSystem.SwitchToTown()
	g.leaveRoom()
	g.restorePlayer()
	g.resetPlayerPosition()
}

func (g *Game) rewardMission(id string) {
	exp, gold, err := g.Board.Complete(id)
	if err != nil {
		logging.Logger.Warn().Err(err).Str("mission", id).Msg("mission reward failed")
		return
	}
	g.PlayerSystem.GainExp(g.playerID, exp)
	g.Shop.AddGold(gold)
	if g.activeRoom != "" {
		if err := g.Rooms.Complete(g.activeRoom); err != nil {
			logging.Logger.Debug().Err(err).Msg("room complete")
		}
	}
	logging.Logger.Info().Str("mission", id).Int("exp", exp).Int("gold", gold).Msg("mission cleared")
}

func (g *Game) resetPlayerPosition() {
	if pos, ok := g.ECS.Positions[g.playerID]; ok {
		pos.X = townSpawnX
		pos.Y = config.GroundY - config.PlayerHeight
	}
	if vel, ok := g.ECS.Velocities[g.playerID]; ok {
		vel.X, vel.Y = 0, 0
	}
	g.CameraSystem.SnapTo(g.playerID)
}

func (g *Game) restorePlayer() {
	if h := g.PlayerHealth(); h != nil && h.Alive() {
		h.Value = h.Max
	}
	if p := g.Player(); p != nil {
		p.Mana = p.MaxMana
	}
	delete(g.ECS.StatusEffects, g.playerID)
}

// --- Rooms & lobby ---

// MemberID идентификатор локального игрока в комнатах.
func (g *Game) MemberID() string {
	return g.memberID
}

// ActiveRoom комната, в которой сейчас игрок, или nil.
func (g *Game) ActiveRoom() *mission.Room {
	if g.activeRoom == "" {
		return nil
	}
	r, err := g.Rooms.Room(g.activeRoom)
	if err != nil {
		return nil
	}
	return r
}

// HostRoom создаёт комнату миссии с игроком-хостом, выходя из прежней.
func (g *Game) HostRoom(missionID string) (*mission.Room, error) {
	player := g.Player()
	if player == nil {
		return nil, fmt.Errorf("host room: no player")
	}
	if _, err := g.Board.Check(missionID, player.Level); err != nil {
		return nil, err
	}
	g.leaveRoom()

	name := g.characterID
	if def, ok := defs.CharacterLibrary[g.characterID]; ok {
		name = def.Name
	}
	r, err := g.Rooms.CreateRoom(missionID, mission.Member{ID: g.memberID, Name: name, Character: g.characterID})
	if err != nil {
		return nil, err
	}
	g.activeRoom = r.ID
	return r, nil
}

// AddBot добавляет бота в активную комнату.
func (g *Game) AddBot() (mission.Member, error) {
	if g.activeRoom == "" {
		return mission.Member{}, mission.ErrRoomNotFound
	}
	return g.Rooms.AddBot(g.activeRoom)
}

// StartRoom запускает отсчёт активной комнаты.
func (g *Game) StartRoom() error {
	if g.activeRoom == "" {
		return mission.ErrRoomNotFound
	}
	return g.Rooms.Start(g.activeRoom, g.memberID)
}

// LeaveRoom выходит из активной комнаты; без игроков она уничтожается.
func (g *Game) LeaveRoom() {
	g.leaveRoom()
}

func (g *Game) leaveRoom() {
	if g.activeRoom == "" {
		return
	}
	if err := g.Rooms.Leave(g.activeRoom, g.memberID); err != nil {
		logging.Logger.Debug().Err(err).Str("room", g.activeRoom).Msg("leave room")
	}
	g.activeRoom = ""
}

func (g *Game) onRoomStarted(room *mission.Room) {
	if room.ID != g.activeRoom {
		return
	}
	if err := g.StartMission(room.MissionID); err != nil {
		logging.Logger.Warn().Err(err).Str("room", room.ID).Msg("room mission failed to start")
	}
}

// failRoom закрывает комнату проваленной миссии.
func (g *Game) failRoom() {
	if g.activeRoom == "" {
		return
	}
	if r := g.ActiveRoom(); r != nil && r.Status == mission.RoomInProgress {
		if err := g.Rooms.Close(g.activeRoom); err == nil {
			g.activeRoom = ""
		}
	}
}

// SendChat отправляет сообщение в чат лобби от имени игрока.
func (g *Game) SendChat(text string) (mission.ChatMessage, bool) {
	name := g.characterID
	if def, ok := defs.CharacterLibrary[g.characterID]; ok {
		name = def.Name
	}
	return g.Lobby.Send(name, text)
}
