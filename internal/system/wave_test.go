package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nova-remains/internal/component"
	"nova-remains/internal/config"
	"nova-remains/internal/defs"
	"nova-remains/internal/event"
)

func testMission() *defs.MissionDefinition {
	return &defs.MissionDefinition{
		ID:   "test",
		Name: "Test",
		Waves: []defs.WaveDefinition{
			{EnemyID: "goblin", Count: 2, SpawnInterval: 0.5},
			{EnemyID: "orc", Count: 1, SpawnInterval: 1},
		},
		Platforms: []defs.PlatformDef{{X: 100, Y: 360, W: 200, H: 16}},
	}
}

func killAll(w *testWorld) {
	for id := range w.ecs.Enemies {
		w.ecs.RemoveEntity(id)
		w.dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.KillData{EnemyID: id}})
	}
}

func TestWaveSystem_RunsMissionToClear(t *testing.T) {
	w := newTestWorld()
	SpawnGround(w.ecs)
	w.spawnPlayer("knight", 1600)
	ws := NewWaveSystem(w.ecs, w.dispatcher, w.game)

	ws.StartMission(testMission())
	require.NotNil(t, w.ecs.Wave)
	assert.Equal(t, component.PhaseMission, w.ecs.Phase)
	assert.Len(t, w.ecs.Platforms, 2)
	assert.Len(t, w.events[event.WaveStarted], 1)

	ws.Update(0.1)
	assert.Len(t, w.ecs.Enemies, 1, "first enemy spawns immediately")
	ws.Update(0.2)
	assert.Len(t, w.ecs.Enemies, 1)
	ws.Update(0.3)
	assert.Len(t, w.ecs.Enemies, 2)
	assert.Equal(t, 2, ws.ActiveEnemies())

	// Волна не заканчивается, пока враги живы
	ws.Update(1)
	assert.Zero(t, w.ecs.Wave.Index)

	killAll(w)
	assert.Zero(t, ws.ActiveEnemies())
	ws.Update(0.1)
	require.NotNil(t, w.ecs.Wave)
	assert.Equal(t, 1, w.ecs.Wave.Index)
	assert.Equal(t, "orc", w.ecs.Wave.EnemyID)

	ws.Update(0.1)
	require.Len(t, w.ecs.Enemies, 1)
	killAll(w)
	ws.Update(0.1)

	assert.Nil(t, w.ecs.Wave)
	assert.Equal(t, component.PhaseMissionCleared, w.ecs.Phase)
	require.Len(t, w.events[event.MissionCleared], 1)
	assert.Equal(t, "test", w.events[event.MissionCleared][0].Data)
}

func TestWaveSystem_SpawnsAtScreenEdgesWithDifficulty(t *testing.T) {
	w := newTestWorld()
	w.spawnPlayer("knight", 1600)
	w.game.difficulty = 1.5
	ws := NewWaveSystem(w.ecs, w.dispatcher, w.game)
	ws.StartMission(testMission())

	ws.Update(0.5)
	ws.Update(0.5)
	require.Len(t, w.ecs.Enemies, 2)

	var xs []float64
	for id := range w.ecs.Enemies {
		xs = append(xs, w.ecs.Positions[id].X)
		assert.Equal(t, 60, w.ecs.Healths[id].Max)
		assert.Equal(t, 9, w.ecs.Combats[id].Damage)
	}
	playerCenter := 1600 + config.PlayerWidth/2
	offset := config.ScreenWidth/2 - config.MissionSpawnMargin
	assert.ElementsMatch(t, []float64{playerCenter + offset, playerCenter - offset}, xs)
}

func TestWaveSystem_AbortReturnsToTown(t *testing.T) {
	w := newTestWorld()
	SpawnGround(w.ecs)
	w.spawnPlayer("knight", 1600)
	ws := NewWaveSystem(w.ecs, w.dispatcher, w.game)
	ws.StartMission(testMission())
	ws.Update(0.1)

	ws.Abort()
	assert.Nil(t, ws.Mission())
	assert.Nil(t, w.ecs.Wave)
	assert.Empty(t, w.ecs.Enemies)
	assert.Len(t, w.ecs.Platforms, 1, "ground stays")
	assert.Equal(t, component.PhaseTown, w.ecs.Phase)

	ws.Update(1)
	assert.Empty(t, w.ecs.Enemies)
}

func TestWaveSystem_IgnoresEnemiesSpawnedOutsideWaves(t *testing.T) {
	w := newTestWorld()
	SpawnGround(w.ecs)
	w.spawnPlayer("knight", 1600)
	ws := NewWaveSystem(w.ecs, w.dispatcher, w.game)
	ws.StartMission(testMission())

	ws.Update(0.1)
	require.Equal(t, 1, ws.ActiveEnemies())

	extra := SpawnEnemy(w.ecs, defs.EnemyLibrary["orc"], 1700, 400, 1)
	w.ecs.RemoveEntity(extra)
	w.dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.KillData{EnemyID: extra}})
	assert.Equal(t, 1, ws.ActiveEnemies())

	// Второй гоблин волны ещё не вышел, первый жив: волна продолжается
	ws.Update(0.5)
	ws.Update(0.1)
	require.NotNil(t, w.ecs.Wave)
	assert.Zero(t, w.ecs.Wave.Index)
	assert.Equal(t, 2, ws.ActiveEnemies())
	assert.Empty(t, w.events[event.MissionCleared])
}

func TestStateSystem_PhaseTransitions(t *testing.T) {
	w := newTestWorld()
	game := &fakeGame{}
	ss := NewStateSystem(w.ecs, game, w.dispatcher)

	w.dispatcher.Dispatch(event.Event{Type: event.PlayerDied})
	assert.Equal(t, component.PhaseGameOver, ss.Current())
	assert.Equal(t, 1, game.projectilesCleared)

	ss.SwitchToTown()
	assert.Equal(t, component.PhaseTown, ss.Current())
	assert.Equal(t, 1, game.enemiesCleared)
}

type fakeGame struct {
	enemiesCleared     int
	projectilesCleared int
}

func (g *fakeGame) ClearEnemies()     { g.enemiesCleared++ }
func (g *fakeGame) ClearProjectiles() { g.projectilesCleared++ }
