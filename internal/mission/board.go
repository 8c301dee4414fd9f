// Package mission содержит доску миссий, локальные комнаты с ботами и чат лобби.
package mission

import (
	"errors"
	"fmt"

	"nova-remains/internal/defs"
)

var (
	ErrMissionNotFound = errors.New("mission not found")
	ErrLevelTooLow     = errors.New("level too low")
)

// Board список миссий и счётчик их прохождений.
type Board struct {
	completed map[string]int
}

func NewBoard() *Board {
	return &Board{completed: make(map[string]int)}
}

// Missions все миссии в порядке доски.
func (b *Board) Missions() []defs.MissionDefinition {
	list := make([]defs.MissionDefinition, 0, len(defs.MissionOrder))
	for _, id := range defs.MissionOrder {
		if m, ok := defs.MissionLibrary[id]; ok {
			list = append(list, m)
		}
	}
	return list
}

// Available миссии, доступные на уровне level.
func (b *Board) Available(level int) []defs.MissionDefinition {
	var list []defs.MissionDefinition
	for _, m := range b.Missions() {
		if m.RequiredLevel <= level {
			list = append(list, m)
		}
	}
	return list
}

// Check проверяет, что миссию id можно начать на уровне level.
func (b *Board) Check(id string, level int) (defs.MissionDefinition, error) {
	m, ok := defs.MissionLibrary[id]
	if !ok {
		return defs.MissionDefinition{}, fmt.Errorf("%w: %q", ErrMissionNotFound, id)
	}
	if level < m.RequiredLevel {
		return defs.MissionDefinition{}, fmt.Errorf("mission %s needs level %d, have %d: %w", id, m.RequiredLevel, level, ErrLevelTooLow)
	}
	return m, nil
}

// Complete отмечает прохождение и возвращает награду.
func (b *Board) Complete(id string) (exp, gold int, err error) {
	m, ok := defs.MissionLibrary[id]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrMissionNotFound, id)
	}
	b.completed[id]++
	return m.RewardExp, m.RewardGold, nil
}

// Completions сколько раз пройдена миссия.
func (b *Board) Completions(id string) int {
	return b.completed[id]
}
