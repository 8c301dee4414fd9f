// Package settings хранит пользовательские настройки игры.
package settings

import (
	"errors"

	"nova-remains/internal/config"
	"nova-remains/internal/utils"
)

// Key имя блоба настроек в хранилище.
const Key = "novaRemainsSettings"

const (
	QualityLow    = "low"
	QualityMedium = "medium"
	QualityHigh   = "high"

	DifficultyEasy   = "easy"
	DifficultyNormal = "normal"
	DifficultyHard   = "hard"

	MinSensitivity = 0.1
	MaxSensitivity = 3.0
	MinFPS         = 30
	MaxFPS         = 240
)

// ErrCorrupt сохранённые настройки не удалось разобрать.
var ErrCorrupt = errors.New("settings blob is corrupt")

// Settings пользовательские настройки. Громкости в диапазоне [0, 1].
type Settings struct {
	MasterVolume     float64 `json:"masterVolume" mapstructure:"masterVolume"`
	SFXVolume        float64 `json:"sfxVolume" mapstructure:"sfxVolume"`
	MusicVolume      float64 `json:"musicVolume" mapstructure:"musicVolume"`
	InvertY          bool    `json:"invertY" mapstructure:"invertY"`
	MouseSensitivity float64 `json:"mouseSensitivity" mapstructure:"mouseSensitivity"`
	GraphicsQuality  string  `json:"graphicsQuality" mapstructure:"graphicsQuality"`
	ParticleEffects  bool    `json:"particleEffects" mapstructure:"particleEffects"`
	MaxFPS           int     `json:"maxFPS" mapstructure:"maxFPS"`
	Difficulty       string  `json:"difficulty" mapstructure:"difficulty"`
	AutoSave         bool    `json:"autoSave" mapstructure:"autoSave"`
}

// Store постоянное хранилище блоба настроек.
// Load при отсутствии сохранённых данных возвращает Defaults() без ошибки.
type Store interface {
	Load() (Settings, error)
	Save(s Settings) error
	Clear() error
}

func Defaults() Settings {
	return Settings{
		MasterVolume:     0.8,
		SFXVolume:        0.8,
		MusicVolume:      0.6,
		InvertY:          false,
		MouseSensitivity: 1.0,
		GraphicsQuality:  QualityHigh,
		ParticleEffects:  true,
		MaxFPS:           config.DefaultTPS,
		Difficulty:       DifficultyNormal,
		AutoSave:         true,
	}
}

// Normalize приводит значения к допустимым диапазонам.
// Неизвестные строки заменяются значениями по умолчанию.
func (s Settings) Normalize() Settings {
	d := Defaults()
	s.MasterVolume = utils.Clamp(s.MasterVolume, 0, 1)
	s.SFXVolume = utils.Clamp(s.SFXVolume, 0, 1)
	s.MusicVolume = utils.Clamp(s.MusicVolume, 0, 1)
	s.MouseSensitivity = utils.Clamp(s.MouseSensitivity, MinSensitivity, MaxSensitivity)
	switch s.GraphicsQuality {
	case QualityLow, QualityMedium, QualityHigh:
	default:
		s.GraphicsQuality = d.GraphicsQuality
	}
	switch s.Difficulty {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
	default:
		s.Difficulty = d.Difficulty
	}
	if s.MaxFPS < MinFPS {
		s.MaxFPS = MinFPS
	}
	if s.MaxFPS > MaxFPS {
		s.MaxFPS = MaxFPS
	}
	return s
}

// ParticleBudget максимальное число частиц для текущего качества графики.
func (s Settings) ParticleBudget() int {
	if !s.ParticleEffects {
		return 0
	}
	switch s.GraphicsQuality {
	case QualityLow:
		return config.MaxParticlesLow
	case QualityMedium:
		return config.MaxParticlesMedium
	default:
		return config.MaxParticlesHigh
	}
}

// DifficultyMultiplier множитель здоровья и урона врагов.
func (s Settings) DifficultyMultiplier() float64 {
	switch s.Difficulty {
	case DifficultyEasy:
		return 0.75
	case DifficultyHard:
		return 1.35
	default:
		return 1.0
	}
}

func (s Settings) EffectiveSFXVolume() float64 {
	return s.MasterVolume * s.SFXVolume
}

func (s Settings) EffectiveMusicVolume() float64 {
	return s.MasterVolume * s.MusicVolume
}

// Cycle возвращает следующее значение из options после current.
func Cycle(options []string, current string) string {
	for i, o := range options {
		if o == current {
			return options[(i+1)%len(options)]
		}
	}
	if len(options) == 0 {
		return current
	}
	return options[0]
}

var (
	QualityOptions    = []string{QualityLow, QualityMedium, QualityHigh}
	DifficultyOptions = []string{DifficultyEasy, DifficultyNormal, DifficultyHard}
)
