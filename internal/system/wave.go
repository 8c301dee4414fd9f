// internal/system/wave.go
package system

import (
	"nova-remains/internal/component"
	"nova-remains/internal/config"
	"nova-remains/internal/defs"
	"nova-remains/internal/entity"
	"nova-remains/internal/event"
	"nova-remains/internal/interfaces"
	"nova-remains/internal/logging"
	"nova-remains/internal/types"
	"nova-remains/internal/utils"
)

// WaveSystem ведёт волны текущей миссии: спавнит врагов по таймеру и
// объявляет о зачистке, когда все волны пройдены.
type WaveSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	game            interfaces.GameContext
	mission         *defs.MissionDefinition
	spawned         map[types.EntityID]struct{} // Живые враги, заспавненные волнами
	spawnSide       float64
}

func NewWaveSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, game interfaces.GameContext) *WaveSystem {
	ws := &WaveSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		game:            game,
		spawned:         make(map[types.EntityID]struct{}),
		spawnSide:       1,
	}
	eventDispatcher.Subscribe(event.EnemyKilled, ws)
	return ws
}

// StartMission строит платформы миссии и запускает первую волну.
func (s *WaveSystem) StartMission(def *defs.MissionDefinition) {
	s.ecs.ClearEnemies()
	s.ecs.ClearPlatforms()
	for _, p := range def.Platforms {
		SpawnPlatform(s.ecs, p.X, p.Y, p.W, p.H, false)
	}
	s.mission = def
	clear(s.spawned)
	s.ecs.Phase = component.PhaseMission
	s.ecs.Wave = s.StartWave(0)
}

// StartWave готовит волну с индексом index. nil, если волн больше нет.
func (s *WaveSystem) StartWave(index int) *component.Wave {
	if s.mission == nil || index >= len(s.mission.Waves) {
		return nil
	}
	waveDef := s.mission.Waves[index]
	if _, ok := defs.EnemyLibrary[waveDef.EnemyID]; !ok {
		logging.Logger.Warn().Str("enemy", waveDef.EnemyID).Str("mission", s.mission.ID).Msg("unknown enemy in wave")
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: index + 1})
	return &component.Wave{
		Index:          index,
		EnemyID:        waveDef.EnemyID,
		EnemiesToSpawn: waveDef.Count,
		SpawnTimer:     waveDef.SpawnInterval, // первый враг появляется сразу
		SpawnInterval:  waveDef.SpawnInterval,
	}
}

// Mission текущая миссия или nil.
func (s *WaveSystem) Mission() *defs.MissionDefinition {
	return s.mission
}

// ActiveEnemies сколько заспавненных волнами врагов ещё живо. Враги,
// созданные в обход волн, не учитываются.
func (s *WaveSystem) ActiveEnemies() int {
	return len(s.spawned)
}

// Abort прерывает миссию без награды.
func (s *WaveSystem) Abort() {
	s.mission = nil
	s.ecs.Wave = nil
	clear(s.spawned)
	s.ecs.ClearEnemies()
	s.ecs.ClearPlatforms()
	s.ecs.Phase = component.PhaseTown
}

func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.ecs.Wave
	if s.ecs.Phase != component.PhaseMission || wave == nil {
		return
	}
	if wave.EnemiesToSpawn > 0 {
		wave.SpawnTimer += deltaTime
		if wave.SpawnTimer >= wave.SpawnInterval {
			s.spawnEnemy(wave)
			wave.EnemiesToSpawn--
			wave.SpawnTimer = 0
		}
		return
	}
	if len(s.spawned) > 0 {
		return
	}

	if next := s.StartWave(wave.Index + 1); next != nil {
		s.ecs.Wave = next
		return
	}
	s.ecs.Wave = nil
	s.ecs.Phase = component.PhaseMissionCleared
	s.eventDispatcher.Dispatch(event.Event{Type: event.MissionCleared, Data: s.mission.ID})
}

func (s *WaveSystem) spawnEnemy(wave *component.Wave) {
	def, ok := defs.EnemyLibrary[wave.EnemyID]
	if !ok {
		return
	}

	// Враги появляются у краёв экрана, поочерёдно слева и справа от игрока
	px := config.WorldWidth / 2
	if cx, _, ok := center(s.ecs, s.game.PlayerID()); ok {
		px = cx
	}
	x := px + s.spawnSide*(config.ScreenWidth/2-config.MissionSpawnMargin)
	if x < 0 || x > config.WorldWidth-config.EnemyWidth {
		x = px - s.spawnSide*(config.ScreenWidth/2-config.MissionSpawnMargin)
	}
	x = utils.Clamp(x, 0, config.WorldWidth-config.EnemyWidth)
	s.spawnSide = -s.spawnSide

	y := config.GroundY - config.EnemyHeight - 60
	id := SpawnEnemy(s.ecs, def, x, y, s.game.Difficulty())
	s.spawned[id] = struct{}{}
}

func (s *WaveSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyKilled {
		return
	}
	if kill, ok := e.Data.(event.KillData); ok {
		delete(s.spawned, kill.EnemyID)
	}
}
