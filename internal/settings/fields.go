package settings

import (
	"fmt"
	"math"
)

// Field настраиваемый параметр в порядке экрана настроек.
type Field int

const (
	FieldMasterVolume Field = iota
	FieldSFXVolume
	FieldMusicVolume
	FieldInvertY
	FieldMouseSensitivity
	FieldGraphicsQuality
	FieldParticleEffects
	FieldMaxFPS
	FieldDifficulty
	FieldAutoSave
	fieldCount
)

// Fields все поля по порядку.
func Fields() []Field {
	out := make([]Field, fieldCount)
	for i := range out {
		out[i] = Field(i)
	}
	return out
}

var fieldLabels = [...]string{
	"Master volume", "SFX volume", "Music volume", "Invert Y", "Mouse sensitivity",
	"Graphics quality", "Particle effects", "Max FPS", "Difficulty", "Auto save",
}

func (f Field) String() string {
	if f >= 0 && f < fieldCount {
		return fieldLabels[f]
	}
	return "unknown"
}

const (
	volumeStep      = 0.1
	sensitivityStep = 0.1
	fpsStep         = 30
)

// Adjust меняет поле f на один шаг в направлении dir (-1 или +1).
// Переключатели и списки меняются при любом ненулевом dir.
func (s Settings) Adjust(f Field, dir int) Settings {
	if dir == 0 {
		return s
	}
	d := float64(dir)
	switch f {
	case FieldMasterVolume:
		s.MasterVolume = roundStep(s.MasterVolume + d*volumeStep)
	case FieldSFXVolume:
		s.SFXVolume = roundStep(s.SFXVolume + d*volumeStep)
	case FieldMusicVolume:
		s.MusicVolume = roundStep(s.MusicVolume + d*volumeStep)
	case FieldInvertY:
		s.InvertY = !s.InvertY
	case FieldMouseSensitivity:
		s.MouseSensitivity = roundStep(s.MouseSensitivity + d*sensitivityStep)
	case FieldGraphicsQuality:
		s.GraphicsQuality = step(QualityOptions, s.GraphicsQuality, dir)
	case FieldParticleEffects:
		s.ParticleEffects = !s.ParticleEffects
	case FieldMaxFPS:
		s.MaxFPS += dir * fpsStep
	case FieldDifficulty:
		s.Difficulty = step(DifficultyOptions, s.Difficulty, dir)
	case FieldAutoSave:
		s.AutoSave = !s.AutoSave
	}
	return s.Normalize()
}

// Value текстовое значение поля для экрана настроек.
func (s Settings) Value(f Field) string {
	switch f {
	case FieldMasterVolume:
		return percent(s.MasterVolume)
	case FieldSFXVolume:
		return percent(s.SFXVolume)
	case FieldMusicVolume:
		return percent(s.MusicVolume)
	case FieldInvertY:
		return onOff(s.InvertY)
	case FieldMouseSensitivity:
		return fmt.Sprintf("%.1f", s.MouseSensitivity)
	case FieldGraphicsQuality:
		return s.GraphicsQuality
	case FieldParticleEffects:
		return onOff(s.ParticleEffects)
	case FieldMaxFPS:
		return fmt.Sprintf("%d", s.MaxFPS)
	case FieldDifficulty:
		return s.Difficulty
	case FieldAutoSave:
		return onOff(s.AutoSave)
	}
	return ""
}

// step сдвигает значение по списку options на dir позиций с переходом
// через край.
func step(options []string, current string, dir int) string {
	if dir > 0 {
		return Cycle(options, current)
	}
	for i, o := range options {
		if o == current {
			return options[(i-1+len(options))%len(options)]
		}
	}
	return options[0]
}

// roundStep убирает ошибку накопления при шаге 0.1.
func roundStep(v float64) float64 {
	return math.Round(v*10) / 10
}

func percent(v float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(v*100)))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
