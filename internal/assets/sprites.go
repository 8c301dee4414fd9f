// Package assets загружает и кэширует изображения спрайтов.
package assets

import (
	"image/color"
	"path/filepath"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog"

	"nova-remains/internal/logging"
	"nova-remains/pkg/render"
)

// SpriteManager управляет загрузкой и кэшированием спрайтов.
// Имя спрайта - путь без расширения относительно <root>/images,
// например "characters/knight".
type SpriteManager struct {
	root string
	log  *zerolog.Logger

	mu      sync.Mutex
	sprites map[string]*ebiten.Image
	missing map[string]bool
}

// NewSpriteManager создаёт менеджер для каталога ассетов root.
func NewSpriteManager(root string) *SpriteManager {
	return &SpriteManager{
		root:    root,
		log:     logging.For("assets"),
		sprites: make(map[string]*ebiten.Image),
		missing: make(map[string]bool),
	}
}

// Path путь к файлу спрайта.
func (m *SpriteManager) Path(name string) string {
	return filepath.Join(m.root, "images", filepath.FromSlash(name)+".png")
}

// Get возвращает спрайт name. Если файл не загрузился, один раз пишет
// предупреждение и возвращает сгенерированную заглушку цвета fallback.
func (m *SpriteManager) Get(name string, fallback color.RGBA) *ebiten.Image {
	m.mu.Lock()
	defer m.mu.Unlock()

	if img, ok := m.sprites[name]; ok {
		return img
	}

	img, _, err := ebitenutil.NewImageFromFile(m.Path(name))
	if err != nil {
		if !m.missing[name] {
			m.log.Warn().Err(err).Str("sprite", name).Msg("sprite not loaded, using placeholder")
			m.missing[name] = true
		}
		img = ebiten.NewImageFromImage(render.NewPlaceholder(name, fallback, render.PlaceholderWidth, render.PlaceholderHeight))
	}
	m.sprites[name] = img
	return img
}

// Preload загружает набор спрайтов заранее, возвращает число заглушек.
func (m *SpriteManager) Preload(names map[string]color.RGBA) int {
	placeholders := 0
	for name, c := range names {
		m.Get(name, c)
		if m.IsPlaceholder(name) {
			placeholders++
		}
	}
	m.log.Info().Int("sprites", len(names)).Int("placeholders", placeholders).Msg("sprites preloaded")
	return placeholders
}

// IsPlaceholder сообщает, заменён ли спрайт заглушкой.
func (m *SpriteManager) IsPlaceholder(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.missing[name]
}

// Unload освобождает все изображения.
func (m *SpriteManager) Unload() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for name, img := range m.sprites {
		img.Deallocate()
		delete(m.sprites, name)
	}
	m.missing = make(map[string]bool)
}
