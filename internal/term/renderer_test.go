package term

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	game "nova-remains/internal/app"
	"nova-remains/internal/config"
	"nova-remains/internal/settings"
)

func newGame(t *testing.T) *game.Game {
	t.Helper()
	g, err := game.NewGame(game.Options{Seed: 3, Character: "knight", Settings: settings.Defaults()})
	require.NoError(t, err)
	return g
}

func TestRasterize_DrawsGroundPlayerAndHUD(t *testing.T) {
	g := newGame(t)
	r := NewRenderer()
	f := r.Rasterize(g, 80, 24)

	require.Equal(t, 80, f.W)
	require.Equal(t, 24, f.H)

	worldRows := f.H - HUDRows
	groundRow := int(config.GroundY / (config.ScreenHeight / float64(worldRows)))
	assert.Equal(t, '#', f.At(0, groundRow).Rune)

	var player bool
	for y := 0; y < worldRows; y++ {
		if strings.ContainsRune(f.Row(y), '@') {
			player = true
		}
	}
	assert.True(t, player, "player is visible")

	assert.Contains(t, f.Row(worldRows), "Lv1")
	assert.Contains(t, f.Row(worldRows), "town")
	assert.Contains(t, f.Row(worldRows+1), "start mission")
}

func TestRasterize_EnemyUsesDefinitionLetter(t *testing.T) {
	g := newGame(t)
	_, err := g.SpawnEnemyNear("goblin")
	require.NoError(t, err)

	f := NewRenderer().Rasterize(g, 80, 24)
	var found bool
	for y := 0; y < f.H-HUDRows; y++ {
		if strings.ContainsRune(f.Row(y), 'g') {
			found = true
		}
	}
	assert.True(t, found)
}

func TestFrame_ClipsOutOfBounds(t *testing.T) {
	f := NewFrame(4, 4)
	f.Set(-1, 0, 'x', tcell.StyleDefault)
	f.Set(4, 0, 'x', tcell.StyleDefault)
	f.Text(2, 1, "abc", tcell.StyleDefault)

	assert.Equal(t, "    ", f.Row(0))
	assert.Equal(t, "  ab", f.Row(1))
	assert.Equal(t, ' ', f.At(10, 10).Rune)
}

func TestDraw_SimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(10, 4)

	f := NewFrame(10, 4)
	f.Text(0, 0, "hi", tcell.StyleDefault)
	Draw(screen, f)

	r, _, _, _ := screen.GetContent(1, 0)
	assert.Equal(t, 'i', r)
}
