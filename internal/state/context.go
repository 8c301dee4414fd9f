package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.opentelemetry.io/otel/metric"

	"nova-remains/internal/assets"
	"nova-remains/internal/audio"
	"nova-remains/internal/config"
	"nova-remains/internal/input"
	"nova-remains/internal/logging"
	"nova-remains/internal/settings"
	"nova-remains/internal/ui"
)

// Context общие зависимости экранов. Создаётся в main и передаётся
// каждому состоянию явно.
type Context struct {
	Store     settings.Store
	Settings  settings.Settings
	Sound     *audio.SoundManager // nil, если звук выключен
	Sprites   *assets.SpriteManager
	Face      text.Face
	Input     input.State
	Seed      int64
	Meter     metric.Meter // Счётчики телеметрии, nil - no-op

	quit bool
}

// Quit просит главный цикл завершиться.
func (c *Context) Quit() {
	c.quit = true
}

func (c *Context) ShouldQuit() bool {
	return c.quit
}

// SaveSettings нормализует, применяет и сохраняет настройки.
func (c *Context) SaveSettings(s settings.Settings) error {
	c.ApplySettings(s)
	if c.Store == nil {
		return nil
	}
	if err := c.Store.Save(c.Settings); err != nil {
		logging.Logger.Error().Err(err).Msg("failed to save settings")
		return err
	}
	return nil
}

// ApplySettings применяет настройки без сохранения.
func (c *Context) ApplySettings(s settings.Settings) {
	c.Settings = s.Normalize()
	ebiten.SetTPS(c.Settings.MaxFPS)
	if c.Sound != nil {
		c.Sound.SetVolume(c.Settings.EffectiveSFXVolume())
	}
}

// drawOverlay затемняет экран и рисует заголовок по центру сверху.
func drawOverlay(screen *ebiten.Image, face text.Face, title string) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	if title != "" {
		ui.DrawTextCentered(screen, title, face, config.ScreenWidth/2, 40, config.HighlightColor)
	}
}

// drawPanel рамка окна поверх игры.
func drawPanel(screen *ebiten.Image, x, y, w, h float32) {
	vector.DrawFilledRect(screen, x, y, w, h, config.PanelColor, false)
	vector.StrokeRect(screen, x, y, w, h, 2, config.RoomStatusColors[0], false)
}
