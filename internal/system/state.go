package system

import (
	"nova-remains/internal/component"
	"nova-remains/internal/entity"
	"nova-remains/internal/event"
	"nova-remains/internal/interfaces"
)

// StateSystem переключает фазу сессии по игровым событиям.
type StateSystem struct {
	ecs             *entity.ECS
	gameContext     interfaces.Game
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, gameContext interfaces.Game, eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{
		ecs:             ecs,
		gameContext:     gameContext,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.SubscribeAll(ss, event.PlayerDied, event.MissionCleared)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.PlayerDied:
		s.SwitchToGameOver()
	case event.MissionCleared:
		s.ecs.Phase = component.PhaseMissionCleared
		s.gameContext.ClearProjectiles()
	}
}

// SwitchToGameOver останавливает миссию после смерти игрока.
func (s *StateSystem) SwitchToGameOver() {
	s.ecs.Phase = component.PhaseGameOver
	s.ecs.Wave = nil
	s.gameContext.ClearProjectiles()
}

// SwitchToTown возвращает сессию в город и убирает остатки миссии.
func (s *StateSystem) SwitchToTown() {
	s.ecs.Phase = component.PhaseTown
	s.ecs.Wave = nil
	s.gameContext.ClearEnemies()
	s.gameContext.ClearProjectiles()
}

func (s *StateSystem) Current() component.GamePhase {
	return s.ecs.Phase
}
