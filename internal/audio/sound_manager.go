// Package audio синтезирует звуковые эффекты игры через beep.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"nova-remains/internal/event"
	"nova-remains/internal/logging"
	"nova-remains/internal/utils"
)

const sampleRate = beep.SampleRate(44100)

// SoundType звуковой эффект.
type SoundType int

const (
	SoundHit SoundType = iota
	SoundCrit
	SoundHurt
	SoundJump
	SoundSkill
	SoundThrow
	SoundDodge
	SoundCoin
	SoundLevelUp
	SoundDeath
	SoundClear
)

// Sound собирает поток эффекта с громкостью volume (0..1).
func Sound(t SoundType, volume float64) beep.Streamer {
	ms := time.Millisecond
	var s beep.Streamer
	switch t {
	case SoundHit:
		s = beep.Mix(
			tone(180, -300, 90*ms, WaveSquare, sampleRate),
			newVolume(tone(0, 0, 60*ms, WaveNoise, sampleRate), 0.4),
		)
	case SoundCrit:
		s = beep.Seq(
			tone(260, -200, 70*ms, WaveSquare, sampleRate),
			tone(520, -400, 110*ms, WaveSaw, sampleRate),
		)
	case SoundHurt:
		s = tone(140, -120, 160*ms, WaveSaw, sampleRate)
	case SoundJump:
		s = tone(300, 1800, 120*ms, WaveSquare, sampleRate)
	case SoundSkill:
		s = beep.Mix(
			tone(440, 900, 250*ms, WaveSine, sampleRate),
			newVolume(tone(880, 900, 250*ms, WaveSine, sampleRate), 0.3),
		)
	case SoundThrow:
		s = newVolume(tone(0, 0, 200*ms, WaveNoise, sampleRate), 0.6)
	case SoundDodge:
		s = tone(700, -1500, 80*ms, WaveSine, sampleRate)
	case SoundCoin:
		s = beep.Seq(
			tone(987.77, 0, 70*ms, WaveSquare, sampleRate),
			tone(1318.51, 0, 160*ms, WaveSquare, sampleRate),
		)
	case SoundLevelUp:
		s = beep.Seq(
			tone(523.25, 0, 90*ms, WaveSquare, sampleRate),
			tone(659.25, 0, 90*ms, WaveSquare, sampleRate),
			tone(783.99, 0, 180*ms, WaveSquare, sampleRate),
		)
	case SoundDeath:
		s = tone(220, -180, 700*ms, WaveSaw, sampleRate)
	case SoundClear:
		s = beep.Seq(
			tone(392, 0, 120*ms, WaveSine, sampleRate),
			tone(523.25, 0, 120*ms, WaveSine, sampleRate),
			tone(783.99, 0, 300*ms, WaveSine, sampleRate),
		)
	default:
		return nil
	}
	return newVolume(s, volume*0.5)
}

// SoundFor звук для игрового события.
func SoundFor(e event.Event) (SoundType, bool) {
	switch e.Type {
	case event.EnemyDamaged:
		if d, ok := e.Data.(event.DamageData); ok && d.Periodic {
			return 0, false
		} else if ok && d.Critical {
			return SoundCrit, true
		}
		return SoundHit, true
	case event.PlayerDamaged:
		if d, ok := e.Data.(event.DamageData); ok && d.Periodic {
			return 0, false
		}
		return SoundHurt, true
	case event.PlayerJumped:
		return SoundJump, true
	case event.SkillCast:
		return SoundSkill, true
	case event.EnemyThrown:
		return SoundThrow, true
	case event.AttackDodged:
		return SoundDodge, true
	case event.ItemPurchased, event.ItemSold, event.ItemDropped:
		return SoundCoin, true
	case event.LevelUp:
		return SoundLevelUp, true
	case event.PlayerDied:
		return SoundDeath, true
	case event.MissionCleared:
		return SoundClear, true
	}
	return 0, false
}

// Events события, озвучиваемые SoundManager.
var Events = []event.EventType{
	event.EnemyDamaged, event.PlayerDamaged, event.PlayerJumped, event.SkillCast,
	event.EnemyThrown, event.AttackDodged, event.ItemPurchased, event.ItemSold,
	event.ItemDropped, event.LevelUp, event.PlayerDied, event.MissionCleared,
}

// SoundManager проигрывает эффекты через общий микшер колонки.
// До Initialize звуки только считаются.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	played      map[SoundType]int
}

func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: 1,
		played: make(map[SoundType]int),
	}
}

// Initialize открывает аудиоустройство.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	logging.Logger.Info().Int("sample_rate", int(sampleRate)).Msg("audio initialized")
	return nil
}

// SetVolume задаёт итоговую громкость эффектов (master * sfx).
func (sm *SoundManager) SetVolume(v float64) {
	sm.mu.Lock()
	sm.volume = utils.Clamp(v, 0, 1)
	sm.mu.Unlock()
}

func (sm *SoundManager) Volume() float64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.volume
}

func (sm *SoundManager) Play(t SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.played[t]++
	if !sm.initialized || sm.volume <= 0 {
		return
	}
	s := Sound(t, sm.volume)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Played сколько раз запрошен звук t.
func (sm *SoundManager) Played(t SoundType) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played[t]
}

func (sm *SoundManager) OnEvent(e event.Event) {
	if t, ok := SoundFor(e); ok {
		sm.Play(t)
	}
}

// Attach подписывает SoundManager на игровые события.
func (sm *SoundManager) Attach(d *event.Dispatcher) {
	d.SubscribeAll(sm, Events...)
}

// Detach отписывает SoundManager от событий диспетчера d.
func (sm *SoundManager) Detach(d *event.Dispatcher) {
	for _, t := range Events {
		d.Unsubscribe(t, sm)
	}
}

// Cleanup останавливает все звуки.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	sm.initialized = false
}
