package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_ClampsOutOfRange(t *testing.T) {
	s := Settings{
		MasterVolume:     1.7,
		SFXVolume:        -0.5,
		MusicVolume:      0.4,
		MouseSensitivity: 10,
		GraphicsQuality:  "ultra",
		MaxFPS:           5,
		Difficulty:       "nightmare",
	}.Normalize()

	assert.Equal(t, 1.0, s.MasterVolume)
	assert.Equal(t, 0.0, s.SFXVolume)
	assert.Equal(t, 0.4, s.MusicVolume)
	assert.Equal(t, MaxSensitivity, s.MouseSensitivity)
	assert.Equal(t, QualityHigh, s.GraphicsQuality)
	assert.Equal(t, MinFPS, s.MaxFPS)
	assert.Equal(t, DifficultyNormal, s.Difficulty)
}

func TestParticleBudgetAndDifficulty(t *testing.T) {
	s := Defaults()
	assert.Equal(t, 400, s.ParticleBudget())
	s.GraphicsQuality = QualityMedium
	assert.Equal(t, 200, s.ParticleBudget())
	s.GraphicsQuality = QualityLow
	assert.Equal(t, 60, s.ParticleBudget())
	s.ParticleEffects = false
	assert.Zero(t, s.ParticleBudget())

	tests := map[string]float64{DifficultyEasy: 0.75, DifficultyNormal: 1.0, DifficultyHard: 1.35}
	for d, want := range tests {
		s.Difficulty = d
		assert.Equal(t, want, s.DifficultyMultiplier(), d)
	}

	s.MasterVolume, s.SFXVolume = 0.5, 0.5
	assert.InDelta(t, 0.25, s.EffectiveSFXVolume(), 1e-9)
}

func TestCycle(t *testing.T) {
	assert.Equal(t, QualityMedium, Cycle(QualityOptions, QualityLow))
	assert.Equal(t, QualityLow, Cycle(QualityOptions, QualityHigh))
	assert.Equal(t, QualityLow, Cycle(QualityOptions, "bogus"))
}

func storeCases(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()
	db, err := OpenSQLite(filepath.Join(dir, "settings.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return map[string]Store{
		"file":   NewFileStore(dir),
		"sqlite": db,
	}
}

func TestStores_RoundTrip(t *testing.T) {
	for name, store := range storeCases(t) {
		t.Run(name, func(t *testing.T) {
			s, err := store.Load()
			require.NoError(t, err)
			assert.Equal(t, Defaults(), s, "empty store loads defaults")

			s.MasterVolume = 0.3
			s.InvertY = true
			s.GraphicsQuality = QualityLow
			s.MaxFPS = 120
			s.Difficulty = DifficultyHard
			s.AutoSave = false
			require.NoError(t, store.Save(s))

			loaded, err := store.Load()
			require.NoError(t, err)
			assert.Equal(t, s, loaded)

			// Повторное сохранение перезаписывает блоб
			s.MusicVolume = 0.1
			require.NoError(t, store.Save(s))
			loaded, err = store.Load()
			require.NoError(t, err)
			assert.Equal(t, 0.1, loaded.MusicVolume)
		})
	}
}

func TestStores_SaveClampsValues(t *testing.T) {
	for name, store := range storeCases(t) {
		t.Run(name, func(t *testing.T) {
			s := Defaults()
			s.SFXVolume = 4
			require.NoError(t, store.Save(s))

			loaded, err := store.Load()
			require.NoError(t, err)
			assert.Equal(t, 1.0, loaded.SFXVolume)
		})
	}
}

func TestStores_Clear(t *testing.T) {
	for name, store := range storeCases(t) {
		t.Run(name, func(t *testing.T) {
			s := Defaults()
			s.Difficulty = DifficultyEasy
			require.NoError(t, store.Save(s))
			require.NoError(t, store.Clear())

			loaded, err := store.Load()
			require.NoError(t, err)
			assert.Equal(t, Defaults(), loaded)

			// Очистка пустого хранилища не ошибка
			assert.NoError(t, store.Clear())
		})
	}
}

func TestFileStore_MissingFieldsUseDefaults(t *testing.T) {
	store := NewFileStore(t.TempDir())
	body := `{"novaRemainsSettings": {"masterVolume": 0.2, "maxFPS": 1000}}`
	require.NoError(t, os.WriteFile(store.Path(), []byte(body), 0644))

	s, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 0.2, s.MasterVolume)
	assert.Equal(t, MaxFPS, s.MaxFPS)
	assert.Equal(t, Defaults().SFXVolume, s.SFXVolume)
	assert.Equal(t, Defaults().GraphicsQuality, s.GraphicsQuality)
	assert.True(t, s.AutoSave)
}

func TestFileStore_SaveKeepsKeyCase(t *testing.T) {
	store := NewFileStore(t.TempDir())
	s := Defaults()
	s.MasterVolume = 0.3
	require.NoError(t, store.Save(s))

	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	var blob map[string]map[string]any
	require.NoError(t, json.Unmarshal(raw, &blob))

	require.Contains(t, blob, "novaRemainsSettings")
	saved := blob["novaRemainsSettings"]
	for _, key := range []string{"masterVolume", "sfxVolume", "musicVolume", "invertY", "mouseSensitivity",
		"graphicsQuality", "particleEffects", "maxFPS", "difficulty", "autoSave"} {
		assert.Contains(t, saved, key)
	}
	assert.Equal(t, 0.3, saved["masterVolume"])

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 0.3, loaded.MasterVolume)
}

func TestFileStore_CorruptFile(t *testing.T) {
	store := NewFileStore(t.TempDir())
	require.NoError(t, os.WriteFile(store.Path(), []byte(`{oops`), 0644))

	s, err := store.Load()
	assert.ErrorIs(t, err, ErrCorrupt)
	assert.Equal(t, Defaults(), s)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	st, err := Open("file", dir)
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, st)

	st, err = Open("sqlite", dir)
	require.NoError(t, err)
	require.IsType(t, &SQLiteStore{}, st)
	_ = st.(*SQLiteStore).Close()

	_, err = Open("redis", dir)
	assert.Error(t, err)
}
