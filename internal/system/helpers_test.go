package system

import (
	"nova-remains/internal/config"
	"nova-remains/internal/defs"
	"nova-remains/internal/entity"
	"nova-remains/internal/event"
	"nova-remains/internal/types"
)

// fixedRandom всегда возвращает одно и то же значение.
type fixedRandom struct{ v float64 }

func (r fixedRandom) Float64() float64 { return r.v }

type testGame struct {
	player     types.EntityID
	difficulty float64
	budget     int
	bonus      defs.ItemStats
}

func (g *testGame) PlayerID() types.EntityID       { return g.player }
func (g *testGame) Difficulty() float64            { return g.difficulty }
func (g *testGame) ParticleBudget() int            { return g.budget }
func (g *testGame) EquipmentBonus() defs.ItemStats { return g.bonus }

type testWorld struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	game       *testGame
	combat     *CombatSystem
	emitter    *ParticleEmitter
	events     map[event.EventType][]event.Event
}

// newTestWorld собирает мир с генератором, возвращающим 0.5: разброс урона
// ровно 1.0, криты и уклонения с шансом ниже 50% не срабатывают.
func newTestWorld() *testWorld {
	w := &testWorld{
		ecs:        entity.NewECS(),
		dispatcher: event.NewDispatcher(),
		game:       &testGame{difficulty: 1, budget: config.MaxParticlesHigh},
		events:     make(map[event.EventType][]event.Event),
	}
	rng := fixedRandom{v: 0.5}
	w.combat = NewCombatSystem(w.ecs, rng, w.dispatcher)
	w.emitter = NewParticleEmitter(w.ecs, rng, w.game.ParticleBudget)
	record := event.ListenerFunc(func(e event.Event) {
		w.events[e.Type] = append(w.events[e.Type], e)
	})
	w.dispatcher.SubscribeAll(record,
		event.EnemyDamaged, event.PlayerDamaged, event.PlayerDied, event.AttackDodged,
		event.StatusApplied, event.EnemyThrown, event.EnemyGrabbed, event.SkillCast,
		event.LevelUp, event.WaveStarted, event.MissionCleared, event.PlayerJumped)
	return w
}

func (w *testWorld) spawnPlayer(character string, x float64) types.EntityID {
	id := SpawnPlayer(w.ecs, defs.CharacterLibrary[character], x)
	w.game.player = id
	return id
}

func (w *testWorld) spawnEnemy(enemy string, x float64) types.EntityID {
	return SpawnEnemy(w.ecs, defs.EnemyLibrary[enemy], x, config.GroundY-config.EnemyHeight, 1)
}
