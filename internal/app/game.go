// internal/app/game.go
package app

import (
	"fmt"

	"go.opentelemetry.io/otel/metric"

	"nova-remains/internal/audio"
	"nova-remains/internal/component"
	"nova-remains/internal/config"
	"nova-remains/internal/defs"
	"nova-remains/internal/entity"
	"nova-remains/internal/event"
	"nova-remains/internal/input"
	"nova-remains/internal/inventory"
	"nova-remains/internal/logging"
	"nova-remains/internal/mission"
	"nova-remains/internal/settings"
	"nova-remains/internal/shop"
	"nova-remains/internal/system"
	"nova-remains/internal/telemetry"
	"nova-remains/internal/timer"
	"nova-remains/internal/types"
	"nova-remains/internal/utils"
)

// Options параметры новой игровой сессии.
type Options struct {
	Seed      int64
	Character string
	Settings  settings.Settings
	Meter     metric.Meter // nil - счётчики no-op
}

// Game holds the main game state and logic.
type Game struct {
	ECS                *entity.ECS
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService
	Scheduler          *timer.Scheduler
	MovementSystem     *system.MovementSystem
	CollisionSystem    *system.CollisionSystem
	CombatSystem       *system.CombatSystem
	PlayerSystem       *system.PlayerSystem
	EnemyAISystem      *system.EnemyAISystem
	StatusEffectSystem *system.StatusEffectSystem
	ProjectileSystem   *system.ProjectileSystem
	VisualEffectSystem *system.VisualEffectSystem
	CameraSystem       *system.CameraSystem
	WaveSystem         *system.WaveSystem
	StateSystem        *system.StateSystem
	Emitter            *system.ParticleEmitter

	Inventory *inventory.Inventory
	Shop      *shop.Shop
	Board     *mission.Board
	Rooms     *mission.RoomManager
	Lobby     *mission.Lobby
	Telemetry *telemetry.Recorder
	Sound     *audio.SoundManager

	Input input.State

	settings    settings.Settings
	playerID    types.EntityID
	characterID string
	memberID    string
	activeRoom  string
	gameTime    float64
	isPaused    bool
}

// NewGame собирает мир, системы и подсистемы города для персонажа opts.Character.
func NewGame(opts Options) (*Game, error) {
	charDef, ok := defs.CharacterLibrary[opts.Character]
	if !ok {
		return nil, fmt.Errorf("unknown character %q", opts.Character)
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(opts.Seed)
	scheduler := timer.NewScheduler()

	g := &Game{
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		Scheduler:       scheduler,
		Inventory:       inventory.New(),
		Board:           mission.NewBoard(),
		Input:           input.None,
		settings:        opts.Settings.Normalize(),
		characterID:     charDef.ID,
	}
	g.Emitter = system.NewParticleEmitter(ecs, rng, g.ParticleBudget)
	g.CombatSystem = system.NewCombatSystem(ecs, rng, eventDispatcher)
	g.MovementSystem = system.NewMovementSystem(ecs)
	g.CollisionSystem = system.NewCollisionSystem(ecs, g.CombatSystem, eventDispatcher, g.Emitter)
	g.PlayerSystem = system.NewPlayerSystem(ecs, g.CombatSystem, eventDispatcher, g, g.Emitter)
	g.EnemyAISystem = system.NewEnemyAISystem(ecs, g.CombatSystem)
	g.StatusEffectSystem = system.NewStatusEffectSystem(ecs, eventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(ecs)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs)
	g.CameraSystem = system.NewCameraSystem(ecs, config.ScreenWidth, config.ScreenHeight)
	g.WaveSystem = system.NewWaveSystem(ecs, eventDispatcher, g)
	g.StateSystem = system.NewStateSystem(ecs, g, eventDispatcher)

	g.Shop = shop.New(config.StartingGold, nil, eventDispatcher)
	g.Rooms = mission.NewRoomManager(scheduler, eventDispatcher, utils.UUIDService{}, rng)
	g.Rooms.OnStart(g.onRoomStarted)
	g.Lobby = mission.NewLobby(scheduler, eventDispatcher, rng)
	g.memberID = utils.UUIDService{}.New()

	// Без телеметрии счётчики no-op, статистика сессии ведётся всё равно
	rec, err := telemetry.New(opts.Meter)
	if err != nil {
		return nil, fmt.Errorf("telemetry: %w", err)
	}
	g.Telemetry = rec
	g.Telemetry.Attach(eventDispatcher)

	listener := &GameEventListener{game: g}
	eventDispatcher.SubscribeAll(listener, event.EnemyKilled, event.MissionCleared, event.PlayerDied)

	system.SpawnGround(ecs)
	g.playerID = system.SpawnPlayer(ecs, charDef, townSpawnX)
	g.CameraSystem.SnapTo(g.playerID)

	logging.Logger.Info().
		Str("character", charDef.ID).
		Int64("seed", opts.Seed).
		Str("difficulty", g.settings.Difficulty).
		Msg("game created")
	return g, nil
}

const townSpawnX = 200.0

// Update progresses the game state by one frame.
func (g *Game) Update(deltaTime float64) {
	if g.isPaused {
		return
	}
	dt := deltaTime
	if dt > config.MaxDeltaTime {
		dt = config.MaxDeltaTime
	}
	if dt <= 0 {
		return
	}
	g.gameTime += dt
	g.ECS.GameTime = g.gameTime

	g.Scheduler.Update(dt)

	g.PlayerSystem.Update(dt, g.Input)
	g.MovementSystem.Update(dt)
	g.PlayerSystem.SyncGrabbed()

	g.CameraSystem.Update(dt, g.playerID)

	if g.ECS.Phase != component.PhaseGameOver {
		g.EnemyAISystem.Update(dt, g.playerID)
	}
	g.StatusEffectSystem.Update(dt)

	g.ProjectileSystem.Update(dt)
	g.VisualEffectSystem.Update(dt)

	g.CollisionSystem.Update(dt)

	g.cleanupDestroyedEntities()

	g.WaveSystem.Update(dt)
}

// cleanupDestroyedEntities убирает погибших врагов: опыт, золото, добыча.
func (g *Game) cleanupDestroyedEntities() {
	for id, enemy := range g.ECS.Enemies {
		health, ok := g.ECS.Healths[id]
		if !ok || health.Alive() {
			continue
		}
		x, y := g.entityCenter(id)
		g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.KillData{
			EnemyID: id,
			DefID:   enemy.DefID,
			Exp:     enemy.Exp,
			Gold:    enemy.Gold,
			X:       x,
			Y:       y,
		}})
		g.Emitter.Emit(component.ParticleDust, x, y, 12)
		g.ECS.RemoveEntity(id)
	}
}

func (g *Game) entityCenter(id types.EntityID) (float64, float64) {
	pos, ok := g.ECS.Positions[id]
	if !ok {
		return 0, 0
	}
	if body, ok := g.ECS.Bodies[id]; ok {
		return pos.X + body.Width/2, pos.Y + body.Height/2
	}
	return pos.X, pos.Y
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		if data, ok := e.Data.(event.KillData); ok {
			l.game.Shop.AddGold(data.Gold)
			l.game.rollLoot(data)
		}
	case event.MissionCleared:
		if id, ok := e.Data.(string); ok {
			l.game.rewardMission(id)
		}
	case event.PlayerDied:
		l.game.failRoom()
	}
}

// --- Public Accessors & Mutators ---

func (g *Game) PlayerID() types.EntityID {
	return g.playerID
}

func (g *Game) CharacterID() string {
	return g.characterID
}

// Player компонент игрока или nil.
func (g *Game) Player() *component.Player {
	return g.ECS.Players[g.playerID]
}

func (g *Game) PlayerHealth() *component.Health {
	return g.ECS.Healths[g.playerID]
}

// Difficulty множитель здоровья и урона врагов.
func (g *Game) Difficulty() float64 {
	return g.settings.DifficultyMultiplier()
}

func (g *Game) ParticleBudget() int {
	return g.settings.ParticleBudget()
}

func (g *Game) EquipmentBonus() defs.ItemStats {
	return g.Inventory.Bonus()
}

func (g *Game) Settings() settings.Settings {
	return g.settings
}

// ApplySettings применяет новые настройки: громкость сразу, сложность к
// следующим врагам, бюджет частиц к следующим эффектам.
func (g *Game) ApplySettings(s settings.Settings) {
	g.settings = s.Normalize()
	if g.Sound != nil {
		g.Sound.SetVolume(g.settings.EffectiveSFXVolume())
	}
	logging.Logger.Debug().
		Str("quality", g.settings.GraphicsQuality).
		Str("difficulty", g.settings.Difficulty).
		Msg("settings applied")
}

// AttachSound подписывает звуковой менеджер на события игры вместо
// прежнего. nil отключает звук сессии.
func (g *Game) AttachSound(sm *audio.SoundManager) {
	if g.Sound != nil {
		g.Sound.Detach(g.EventDispatcher)
	}
	g.Sound = sm
	if sm == nil {
		return
	}
	sm.SetVolume(g.settings.EffectiveSFXVolume())
	sm.Attach(g.EventDispatcher)
}

func (g *Game) ClearEnemies() {
	g.ECS.ClearEnemies()
}

func (g *Game) ClearProjectiles() {
	for id := range g.ECS.Projectiles {
		g.ECS.RemoveEntity(id)
	}
}

func (g *Game) SetPaused(paused bool) {
	g.isPaused = paused
}

// IsPaused возвращает текущее состояние паузы.
func (g *Game) IsPaused() bool {
	return g.isPaused
}

func (g *Game) GetGameTime() float64 {
	return g.gameTime
}

func (g *Game) Phase() component.GamePhase {
	return g.ECS.Phase
}

// Camera текущая камера мира.
func (g *Game) Camera() system.Camera {
	return g.CameraSystem.Camera
}

// SpawnEnemyNear создаёт врага defID рядом с игроком (отладка).
func (g *Game) SpawnEnemyNear(defID string) (types.EntityID, error) {
	def, ok := defs.EnemyLibrary[defID]
	if !ok {
		return 0, fmt.Errorf("unknown enemy %q", defID)
	}
	x, _ := g.entityCenter(g.playerID)
	x = utils.Clamp(x+150, 0, config.WorldWidth-config.EnemyWidth)
	return system.SpawnEnemy(g.ECS, def, x, config.GroundY-config.EnemyHeight, g.Difficulty()), nil
}
