// cmd/term/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	game "nova-remains/internal/app"
	"nova-remains/internal/audio"
	"nova-remains/internal/component"
	"nova-remains/internal/config"
	"nova-remains/internal/defs"
	"nova-remains/internal/input"
	"nova-remains/internal/logging"
	"nova-remains/internal/settings"
	"nova-remains/internal/telemetry"
	"nova-remains/internal/term"
)

const frameTime = 16 * time.Millisecond

func main() {
	configPath := flag.String("config", "nova.json", "path to the config file")
	seed := flag.Int64("seed", 0, "world seed, 0 picks one from the clock")
	character := flag.String("character", "", "character to play")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	// Экран занят tcell, поэтому лог только в файл
	logPath := cfg.LogFile
	if logPath == "" {
		logPath = "nova-term.log"
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintln(os.Stderr, "log file:", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logging.Setup(cfg.LogLevel, logFile, true)
	log := logging.For("term")

	metrics, err := telemetry.NewProvider(telemetry.Config{
		Enabled:     cfg.TelemetryEnabled,
		ServiceName: "nova-remains-term",
		Writer:      logFile,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up telemetry")
	}
	defer func() {
		if err := metrics.Shutdown(context.Background()); err != nil {
			log.Warn().Err(err).Msg("telemetry shutdown")
		}
	}()

	if _, err := defs.LoadAll(cfg.DefsDir); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.DefsDir).Msg("failed to load definitions")
	}

	store, err := settings.Open(cfg.SettingsStore, cfg.SettingsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open settings store")
	}
	if closer, ok := store.(*settings.SQLiteStore); ok {
		defer closer.Close()
	}
	userSettings, err := store.Load()
	if err != nil {
		log.Warn().Err(err).Msg("settings are corrupt, using defaults")
	}

	if *seed == 0 {
		*seed = cfg.Seed
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	charID := *character
	if charID == "" {
		charID = cfg.StartCharacter
	}
	if charID == "" {
		charID = defs.CharacterOrder[0]
	}

	g, err := game.NewGame(game.Options{
		Seed:      *seed,
		Character: charID,
		Settings:  userSettings,
		Meter:     metrics.Meter(),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if cfg.AudioEnabled {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			log.Warn().Err(err).Msg("audio disabled")
		} else {
			g.AttachSound(sm)
			defer sm.Cleanup()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create screen")
	}
	if err := screen.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to init screen")
	}
	defer screen.Fini()
	screen.HideCursor()

	log.Info().Int64("seed", *seed).Str("character", charID).Msg("starting")
	run(screen, g)

	st := g.Telemetry.Stats()
	log.Info().Interface("stats", st).Msg("session finished")
}

func run(screen tcell.Screen, g *game.Game) {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	in := term.NewInput()
	renderer := term.NewRenderer()
	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if quit := handleKey(g, in, ev); quit {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if dt > config.MaxDeltaTime {
				dt = config.MaxDeltaTime
			}
			step(g, in, dt)
			w, h := screen.Size()
			term.Draw(screen, renderer.Rasterize(g, w, h))
		}
	}
}

// handleKey разбирает клавиши, которые не являются игровыми действиями.
// Возвращает true, если пора выходить.
func handleKey(g *game.Game, in *term.Input, ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		switch {
		case r == 'q' || r == 'Q':
			return true
		case r >= '1' && r <= '9' && g.Phase() == component.PhaseTown:
			startMission(g, int(r-'1'))
			return false
		}
	}
	in.HandleKey(ev)
	return false
}

func startMission(g *game.Game, index int) {
	missions := g.Board.Missions()
	if index >= len(missions) {
		return
	}
	if err := g.StartMission(missions[index].ID); err != nil {
		logging.For("term").Info().Err(err).Str("mission", missions[index].ID).Msg("mission not started")
	}
}

func step(g *game.Game, in *term.Input, dt float64) {
	switch g.Phase() {
	case component.PhaseMissionCleared:
		if in.JustPressed(input.Confirm) {
			g.ReturnToTown()
		}
	case component.PhaseMission:
		if in.JustPressed(input.Pause) {
			g.ReturnToTown()
		}
	}
	if in.JustPressed(input.Use) && g.Phase() != component.PhaseGameOver {
		useFirstConsumable(g)
	}
	g.Input = in
	g.Update(dt)
	g.Input = input.None
	in.EndFrame(dt)
}

// useFirstConsumable пьёт первое зелье из инвентаря.
func useFirstConsumable(g *game.Game) {
	for i := 0; i < config.InventorySize; i++ {
		slot, ok := g.Inventory.Slot(i)
		if !ok {
			continue
		}
		def, known := defs.ItemLibrary[slot.ItemID]
		if !known || def.Category != defs.CategoryConsumable {
			continue
		}
		if _, err := g.UseItem(i); err == nil {
			return
		}
	}
}
