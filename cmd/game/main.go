// cmd/game/main.go
package main

import (
	"context"
	"flag"
	"image/color"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"nova-remains/internal/assets"
	"nova-remains/internal/audio"
	"nova-remains/internal/config"
	"nova-remains/internal/defs"
	"nova-remains/internal/input/keyboard"
	"nova-remains/internal/logging"
	"nova-remains/internal/settings"
	"nova-remains/internal/state"
	"nova-remains/internal/telemetry"
	"nova-remains/internal/ui"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	ctx            *state.Context
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	if a.ctx.ShouldQuit() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "nova.json", "path to the config file")
	seed := flag.Int64("seed", 0, "world seed, 0 picks one from the clock")
	character := flag.String("character", "", "skip the menu and start as this character")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Logger.Fatal().Err(err).Msg("failed to load config")
	}
	logOut := os.Stderr
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			logging.Logger.Fatal().Err(err).Str("path", cfg.LogFile).Msg("failed to open log file")
		}
		defer f.Close()
		logOut = f
	}
	logging.Setup(cfg.LogLevel, logOut, true)

	metrics, err := telemetry.NewProvider(telemetry.Config{
		Enabled:     cfg.TelemetryEnabled,
		ServiceName: "nova-remains",
		Writer:      logOut,
	})
	if err != nil {
		logging.Logger.Fatal().Err(err).Msg("failed to set up telemetry")
	}
	defer func() {
		if err := metrics.Shutdown(context.Background()); err != nil {
			logging.Logger.Warn().Err(err).Msg("telemetry shutdown")
		}
	}()

	if loaded, err := defs.LoadAll(cfg.DefsDir); err != nil {
		logging.Logger.Fatal().Err(err).Str("dir", cfg.DefsDir).Msg("failed to load definitions")
	} else if len(loaded) > 0 {
		logging.Logger.Info().Interface("loaded", loaded).Msg("definitions loaded")
	}

	store, err := settings.Open(cfg.SettingsStore, cfg.SettingsPath)
	if err != nil {
		logging.Logger.Fatal().Err(err).Msg("failed to open settings store")
	}
	if closer, ok := store.(*settings.SQLiteStore); ok {
		defer closer.Close()
	}
	userSettings, err := store.Load()
	if err != nil {
		logging.Logger.Warn().Err(err).Msg("settings are corrupt, using defaults")
	}

	if *seed == 0 {
		*seed = cfg.Seed
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	face, err := ui.LoadFace(fontPath(cfg.AssetsDir), 14)
	if err != nil {
		logging.Logger.Warn().Err(err).Msg("font not loaded, using built-in face")
	}

	ctx := &state.Context{
		Store:     store,
		Sprites:   assets.NewSpriteManager(cfg.AssetsDir),
		Face:      face,
		Input:     keyboard.New(nil),
		Seed:      *seed,
		Meter:     metrics.Meter(),
	}
	if cfg.AudioEnabled {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			logging.Logger.Warn().Err(err).Msg("audio disabled")
		} else {
			ctx.Sound = sm
			defer sm.Cleanup()
		}
	}
	ctx.ApplySettings(userSettings)
	ctx.Sprites.Preload(spriteNames())
	defer ctx.Sprites.Unload()

	sm := state.NewStateMachine()
	start := *character
	if start == "" {
		start = cfg.StartCharacter
	}
	if start != "" {
		gs, err := state.NewGameState(sm, ctx, start)
		if err != nil {
			logging.Logger.Fatal().Err(err).Msg("failed to start game")
		}
		sm.SetState(gs)
	} else {
		sm.SetState(state.NewMenuState(sm, ctx))
	}

	app := &AppGame{
		stateMachine:   sm,
		ctx:            ctx,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Nova Remains")
	logging.Logger.Info().Int64("seed", *seed).Msg("starting")
	if err := ebiten.RunGame(app); err != nil {
		logging.Logger.Error().Err(err).Msg("game stopped")
	}
}

// spriteNames спрайты персонажей и врагов с цветами заглушек.
func spriteNames() map[string]color.RGBA {
	names := make(map[string]color.RGBA)
	for id, c := range defs.CharacterLibrary {
		names["characters/"+id] = c.Color
	}
	for id, e := range defs.EnemyLibrary {
		names["enemies/"+id] = e.Color
	}
	return names
}

// fontPath первый найденный шрифт в assets/fonts или пустая строка.
func fontPath(assetsDir string) string {
	for _, name := range []string{"main.ttf", "main.otf"} {
		p := filepath.Join(assetsDir, "fonts", name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
