package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdjust_StepsAndClamps(t *testing.T) {
	s := Defaults()

	s = s.Adjust(FieldMasterVolume, 1)
	assert.Equal(t, 0.9, s.MasterVolume)
	s = s.Adjust(FieldMasterVolume, 1).Adjust(FieldMasterVolume, 1)
	assert.Equal(t, 1.0, s.MasterVolume, "clamped at 100%")

	s = s.Adjust(FieldMaxFPS, -1).Adjust(FieldMaxFPS, -1)
	assert.Equal(t, MinFPS, s.MaxFPS)

	s = s.Adjust(FieldMouseSensitivity, -1)
	assert.Equal(t, 0.9, s.MouseSensitivity)
}

func TestAdjust_TogglesAndLists(t *testing.T) {
	s := Defaults()

	assert.True(t, s.Adjust(FieldInvertY, 1).InvertY)
	assert.False(t, s.Adjust(FieldParticleEffects, -1).ParticleEffects)
	assert.False(t, s.Adjust(FieldAutoSave, 1).AutoSave)

	assert.Equal(t, QualityLow, s.Adjust(FieldGraphicsQuality, 1).GraphicsQuality)
	assert.Equal(t, QualityMedium, s.Adjust(FieldGraphicsQuality, -1).GraphicsQuality)
	assert.Equal(t, DifficultyHard, s.Adjust(FieldDifficulty, 1).Difficulty)
	assert.Equal(t, DifficultyEasy, s.Adjust(FieldDifficulty, -1).Difficulty)

	assert.Equal(t, s, s.Adjust(FieldDifficulty, 0))
}

func TestValueAndLabels(t *testing.T) {
	s := Defaults()
	assert.Equal(t, "80%", s.Value(FieldMasterVolume))
	assert.Equal(t, "off", s.Value(FieldInvertY))
	assert.Equal(t, "1.0", s.Value(FieldMouseSensitivity))
	assert.Equal(t, "60", s.Value(FieldMaxFPS))
	assert.Equal(t, "normal", s.Value(FieldDifficulty))

	assert.Len(t, Fields(), 10)
	assert.Equal(t, "Max FPS", FieldMaxFPS.String())
	assert.Equal(t, "unknown", Field(99).String())
}
