package term

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	game "nova-remains/internal/app"
	"nova-remains/internal/component"
	"nova-remains/internal/config"
	"nova-remains/internal/defs"
	"nova-remains/internal/types"
)

// HUDRows строки под миром, занятые HUD.
const HUDRows = 2

// Cell символ и стиль одной клетки.
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Frame кадр в символах, построчно.
type Frame struct {
	W, H  int
	Cells []Cell
}

func NewFrame(w, h int) *Frame {
	f := &Frame{W: max(w, 1), H: max(h, HUDRows+1)}
	f.Cells = make([]Cell, f.W*f.H)
	f.Clear()
	return f
}

func (f *Frame) Clear() {
	for i := range f.Cells {
		f.Cells[i] = Cell{Rune: ' ', Style: tcell.StyleDefault}
	}
}

// At клетка (x, y); за пределами кадра пустая.
func (f *Frame) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= f.W || y >= f.H {
		return Cell{Rune: ' '}
	}
	return f.Cells[y*f.W+x]
}

func (f *Frame) Set(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= f.W || y >= f.H {
		return
	}
	f.Cells[y*f.W+x] = Cell{Rune: r, Style: style}
}

// Text пишет строку с (x, y), обрезая по краю.
func (f *Frame) Text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		f.Set(x, y, r, style)
		x++
	}
}

// Row строка кадра как текст.
func (f *Frame) Row(y int) string {
	rs := make([]rune, f.W)
	for x := range rs {
		rs[x] = f.At(x, y).Rune
	}
	return string(rs)
}

func styleOf(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// Renderer переводит мир в символы: одна клетка покрывает
// ScreenWidth/W на ScreenHeight/(H-HUDRows) пикселей видимой области.
type Renderer struct {
	frame *Frame
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Rasterize строит кадр w x h для текущего состояния игры.
func (r *Renderer) Rasterize(g *game.Game, w, h int) *Frame {
	if r.frame == nil || r.frame.W != w || r.frame.H != h {
		r.frame = NewFrame(w, h)
	} else {
		r.frame.Clear()
	}
	f := r.frame
	worldRows := f.H - HUDRows
	cam := g.Camera()
	cellW := float64(config.ScreenWidth) / float64(f.W)
	cellH := float64(config.ScreenHeight) / float64(worldRows)

	toCell := func(x, y float64) (int, int) {
		return int(math.Floor((x - cam.X) / cellW)), int(math.Floor((y - cam.Y) / cellH))
	}
	fillBody := func(id types.EntityID, ch rune, style tcell.Style) {
		pos, body := g.ECS.Positions[id], g.ECS.Bodies[id]
		if pos == nil || body == nil {
			return
		}
		x0, y0 := toCell(pos.X, pos.Y)
		x1, y1 := toCell(pos.X+body.Width-1, pos.Y+body.Height-1)
		for y := max(y0, 0); y <= min(y1, worldRows-1); y++ {
			for x := x0; x <= x1; x++ {
				f.Set(x, y, ch, style)
			}
		}
	}

	for id, p := range g.ECS.Platforms {
		ch, c := '=', config.PlatformColor
		if p.Ground {
			ch, c = '#', config.GroundColor
		}
		fillBody(id, ch, styleOf(c))
	}
	for id, e := range g.ECS.Enemies {
		style := r.entityStyle(g, id)
		if _, ok := g.ECS.DamageFlashes[id]; ok {
			style = style.Reverse(true)
		}
		ch := 'e'
		if e.DefID != "" {
			ch = []rune(e.DefID)[0]
		}
		fillBody(id, ch, style)
	}
	if g.Player() != nil {
		id := g.PlayerID()
		style := r.entityStyle(g, id).Bold(true)
		if _, ok := g.ECS.DamageFlashes[id]; ok {
			style = style.Reverse(true)
		}
		fillBody(id, '@', style)
	}
	for id, proj := range g.ECS.Projectiles {
		pos := g.ECS.Positions[id]
		if pos == nil {
			continue
		}
		x, y := toCell(pos.X, pos.Y)
		ch := '*'
		if proj.Skill != nil && proj.Skill.DamageType == defs.DamageIce {
			ch = '>'
		}
		if y < worldRows {
			f.Set(x, y, ch, tcell.StyleDefault.Foreground(tcell.ColorYellow))
		}
	}
	for id, p := range g.ECS.Particles {
		pos := g.ECS.Positions[id]
		if pos == nil || p.Alpha() < 0.3 {
			continue
		}
		x, y := toCell(pos.X, pos.Y)
		if y < worldRows && f.At(x, y).Rune == ' ' {
			f.Set(x, y, '.', styleOf(p.Color))
		}
	}

	r.drawHUD(g, worldRows)
	return f
}

func (r *Renderer) entityStyle(g *game.Game, id types.EntityID) tcell.Style {
	if rend := g.ECS.Renderables[id]; rend != nil {
		return styleOf(rend.Color)
	}
	return tcell.StyleDefault
}

func (r *Renderer) drawHUD(g *game.Game, top int) {
	f := r.frame
	light := styleOf(config.TextLightColor)
	for x := 0; x < f.W; x++ {
		f.Set(x, top, ' ', light.Reverse(true))
	}

	status := g.Phase().String()
	if wave := g.ECS.Wave; wave != nil {
		if m := g.CurrentMission(); m != nil {
			status = fmt.Sprintf("%s wave %d/%d", m.Name, wave.Index+1, len(m.Waves))
		}
	}
	if p, hp := g.Player(), g.PlayerHealth(); p != nil && hp != nil {
		line := fmt.Sprintf(" Lv%d HP %d/%d MP %.0f/%.0f EXP %d/%d Gold %d | %s",
			p.Level, hp.Value, hp.Max, p.Mana, p.MaxMana, p.Exp, p.ExpToNext, g.Shop.Gold(), status)
		f.Text(0, top, line, light.Reverse(true))
	}

	var help string
	switch g.Phase() {
	case component.PhaseTown:
		help = "arrows move  z attack  x defend  c grab  k/l skills  1-9 start mission  u potion  q quit"
	case component.PhaseMission:
		help = "arrows move  z attack  x defend  c grab  k/l skills  u potion  esc town  q quit"
	case component.PhaseMissionCleared:
		help = "MISSION CLEAR  enter: back to town"
	case component.PhaseGameOver:
		st := g.Telemetry.Stats()
		help = fmt.Sprintf("GAME OVER  kills %d  damage %d  q quit", st.EnemiesKilled, st.DamageDealt)
	}
	f.Text(1, top+1, help, light)
}

// Draw выводит кадр на экран tcell.
func Draw(screen tcell.Screen, f *Frame) {
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			c := f.Cells[y*f.W+x]
			screen.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
	screen.Show()
}
