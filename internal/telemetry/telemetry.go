// Package telemetry считает игровые события и публикует их как
// OpenTelemetry-счётчики. С выключенным Provider счётчики no-op,
// локальная статистика при этом ведётся всегда.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"nova-remains/internal/event"
)

const instrumentationName = "nova-remains/internal/telemetry"

// Stats итоги текущей сессии, показываются на экране поражения.
type Stats struct {
	EnemiesKilled   int
	DamageDealt     int
	DamageTaken     int
	CriticalHits    int
	Dodges          int
	SkillsCast      int
	Throws          int
	LevelUps        int
	ItemsDropped    int
	ItemsBought     int
	MissionsCleared int
	Deaths          int
}

// Recorder подписчик диспетчера событий.
type Recorder struct {
	stats Stats

	kills    metric.Int64Counter
	damage   metric.Int64Counter
	skills   metric.Int64Counter
	missions metric.Int64Counter
	deaths   metric.Int64Counter
}

// Events типы событий, на которые подписывается Recorder.
var Events = []event.EventType{
	event.EnemyKilled,
	event.EnemyDamaged,
	event.PlayerDamaged,
	event.AttackDodged,
	event.SkillCast,
	event.EnemyThrown,
	event.LevelUp,
	event.ItemDropped,
	event.ItemPurchased,
	event.MissionCleared,
	event.PlayerDied,
}

// New создаёт Recorder на meter. nil meter - счётчики no-op.
func New(meter metric.Meter) (*Recorder, error) {
	if meter == nil {
		meter = noop.Meter{}
	}
	r := &Recorder{}

	var err error
	if r.kills, err = meter.Int64Counter("game.enemies.killed",
		metric.WithDescription("Enemies killed by the player")); err != nil {
		return nil, fmt.Errorf("creating kills counter: %w", err)
	}
	if r.damage, err = meter.Int64Counter("game.damage",
		metric.WithDescription("Damage dealt and taken"),
		metric.WithUnit("{hp}")); err != nil {
		return nil, fmt.Errorf("creating damage counter: %w", err)
	}
	if r.skills, err = meter.Int64Counter("game.skills.cast",
		metric.WithDescription("Skills cast by the player")); err != nil {
		return nil, fmt.Errorf("creating skills counter: %w", err)
	}
	if r.missions, err = meter.Int64Counter("game.missions.cleared",
		metric.WithDescription("Missions cleared")); err != nil {
		return nil, fmt.Errorf("creating missions counter: %w", err)
	}
	if r.deaths, err = meter.Int64Counter("game.player.deaths",
		metric.WithDescription("Player deaths")); err != nil {
		return nil, fmt.Errorf("creating deaths counter: %w", err)
	}
	return r, nil
}

// Attach подписывает Recorder на игровые события.
func (r *Recorder) Attach(d *event.Dispatcher) {
	d.SubscribeAll(r, Events...)
}

func (r *Recorder) Stats() Stats {
	return r.stats
}

func (r *Recorder) Reset() {
	r.stats = Stats{}
}

func (r *Recorder) OnEvent(e event.Event) {
	ctx := context.Background()
	switch e.Type {
	case event.EnemyKilled:
		r.stats.EnemiesKilled++
		attrs := metric.WithAttributes()
		if kill, ok := e.Data.(event.KillData); ok {
			attrs = metric.WithAttributes(attribute.String("enemy", kill.DefID))
		}
		r.kills.Add(ctx, 1, attrs)
	case event.EnemyDamaged, event.PlayerDamaged:
		data, ok := e.Data.(event.DamageData)
		if !ok {
			return
		}
		direction := "dealt"
		if e.Type == event.PlayerDamaged {
			direction = "taken"
			r.stats.DamageTaken += data.Amount
		} else {
			r.stats.DamageDealt += data.Amount
			if data.Critical {
				r.stats.CriticalHits++
			}
		}
		r.damage.Add(ctx, int64(data.Amount), metric.WithAttributes(
			attribute.String("direction", direction),
			attribute.String("type", string(data.DamageType)),
		))
	case event.AttackDodged:
		r.stats.Dodges++
	case event.SkillCast:
		r.stats.SkillsCast++
		skill, _ := e.Data.(string)
		r.skills.Add(ctx, 1, metric.WithAttributes(attribute.String("skill", skill)))
	case event.EnemyThrown:
		r.stats.Throws++
	case event.LevelUp:
		r.stats.LevelUps++
	case event.ItemDropped:
		r.stats.ItemsDropped++
	case event.ItemPurchased:
		r.stats.ItemsBought++
	case event.MissionCleared:
		r.stats.MissionsCleared++
		mission, _ := e.Data.(string)
		r.missions.Add(ctx, 1, metric.WithAttributes(attribute.String("mission", mission)))
	case event.PlayerDied:
		r.stats.Deaths++
		r.deaths.Add(ctx, 1)
	}
}
