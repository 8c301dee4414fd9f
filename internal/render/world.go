// internal/render/world.go
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"nova-remains/internal/assets"
	"nova-remains/internal/component"
	"nova-remains/internal/config"
	"nova-remains/internal/defs"
	"nova-remains/internal/entity"
	"nova-remains/internal/system"
	"nova-remains/internal/types"
	pkgrender "nova-remains/pkg/render"
)

var (
	burnTint    = color.RGBA{255, 150, 80, 255}
	freezeTint  = color.RGBA{140, 200, 255, 255}
	poisonTint  = color.RGBA{140, 230, 120, 255}
	stunColor   = color.RGBA{255, 240, 120, 255}
	shieldColor = color.RGBA{120, 180, 255, 160}
	slashColor  = color.RGBA{255, 255, 255, 200}
	hpBackColor = color.RGBA{40, 10, 10, 200}
)

type backgroundLayer struct {
	image    *ebiten.Image
	parallax float64
}

// WorldRenderer рисует мир со смещением камеры: фон, платформы,
// персонажей, снаряды и частицы.
type WorldRenderer struct {
	ecs        *entity.ECS
	sprites    *assets.SpriteManager
	background []backgroundLayer
}

// NewWorldRenderer готовит фон заранее, кадр только копирует слои.
func NewWorldRenderer(ecs *entity.ECS, sprites *assets.SpriteManager, seed int64) *WorldRenderer {
	r := &WorldRenderer{ecs: ecs, sprites: sprites}
	for _, l := range pkgrender.NewBackground(pkgrender.DefaultBackground, config.ScreenWidth, config.ScreenHeight, uint64(seed)) {
		r.background = append(r.background, backgroundLayer{
			image:    ebiten.NewImageFromImage(l.Image),
			parallax: l.Parallax,
		})
	}
	return r
}

// Draw рисует кадр мира.
func (r *WorldRenderer) Draw(screen *ebiten.Image, cam system.Camera, gameTime float64) {
	screen.Fill(config.BackgroundColor)
	r.drawBackground(screen, cam.X)

	ox, oy := float32(-cam.X), float32(-cam.Y)

	for id := range r.ecs.Platforms {
		pos, body := r.ecs.Positions[id], r.ecs.Bodies[id]
		if pos == nil || body == nil {
			continue
		}
		c := config.PlatformColor
		if rend, ok := r.ecs.Renderables[id]; ok {
			c = rend.Color
		}
		vector.DrawFilledRect(screen, float32(pos.X)+ox, float32(pos.Y)+oy, float32(body.Width), float32(body.Height), c, false)
		vector.DrawFilledRect(screen, float32(pos.X)+ox, float32(pos.Y)+oy, float32(body.Width), 3, pkgrender.ScaleColor(c, 1.4), false)
	}

	for id, enemy := range r.ecs.Enemies {
		r.drawActor(screen, id, enemy.Facing, ox, oy, gameTime)
		r.drawHealthBar(screen, id, ox, oy)
	}
	if id, player := r.player(); player != nil {
		r.drawActor(screen, id, player.Facing, ox, oy, gameTime)
		r.drawPlayerAction(screen, id, player, ox, oy)
	}

	for id, proj := range r.ecs.Projectiles {
		pos := r.ecs.Positions[id]
		if pos == nil {
			continue
		}
		c := config.TextLightColor
		if proj.Skill != nil {
			c = projectileColor(proj.Skill.DamageType)
		}
		vector.DrawFilledCircle(screen, float32(pos.X)+ox, float32(pos.Y)+oy, 5, c, true)
		vector.DrawFilledCircle(screen, float32(pos.X)+ox, float32(pos.Y)+oy, 9, pkgrender.WithAlpha(c, 0.3), true)
	}

	for id, p := range r.ecs.Particles {
		pos := r.ecs.Positions[id]
		if pos == nil {
			continue
		}
		c := pkgrender.WithAlpha(p.Color, p.Alpha()*float64(p.Color.A)/255)
		size := float32(p.Size)
		vector.DrawFilledRect(screen, float32(pos.X)+ox-size/2, float32(pos.Y)+oy-size/2, size, size, c, false)
	}
}

func (r *WorldRenderer) drawBackground(screen *ebiten.Image, camX float64) {
	for _, l := range r.background {
		w := float64(l.image.Bounds().Dx())
		off := pkgrender.ScrollOffset(camX, l.parallax, w)
		// Слой бесшовный: две копии закрывают экран при любом смещении
		for _, x := range []float64{-off, w - off} {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(x, 0)
			screen.DrawImage(l.image, op)
		}
	}
}

func (r *WorldRenderer) player() (types.EntityID, *component.Player) {
	for id, p := range r.ecs.Players {
		return id, p
	}
	return 0, nil
}

// drawActor рисует спрайт сущности по размеру её тела с отражением по
// направлению взгляда, оттенком статусов и вспышкой урона.
func (r *WorldRenderer) drawActor(screen *ebiten.Image, id types.EntityID, facing float64, ox, oy float32, gameTime float64) {
	pos, body, rend := r.ecs.Positions[id], r.ecs.Bodies[id], r.ecs.Renderables[id]
	if pos == nil || body == nil || rend == nil {
		return
	}
	x, y := float32(pos.X)+ox, float32(pos.Y)+oy
	w, h := float32(body.Width), float32(body.Height)

	if rend.Sprite == "" || r.sprites == nil {
		vector.DrawFilledRect(screen, x, y, w, h, tinted(rend.Color, r.ecs.StatusEffects[id]), false)
	} else {
		img := r.sprites.Get(rend.Sprite, rend.Color)
		iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
		op := &ebiten.DrawImageOptions{}
		sx := float64(w) / float64(iw)
		if facing < 0 {
			op.GeoM.Scale(-sx, float64(h)/float64(ih))
			op.GeoM.Translate(float64(x+w), float64(y))
		} else {
			op.GeoM.Scale(sx, float64(h)/float64(ih))
			op.GeoM.Translate(float64(x), float64(y))
		}
		if tint := statusTint(r.ecs.StatusEffects[id]); tint != nil {
			op.ColorScale.ScaleWithColor(*tint)
		}
		screen.DrawImage(img, op)
	}

	if flash, ok := r.ecs.DamageFlashes[id]; ok && flash.Timer > 0 {
		a := flash.Timer / config.DamageFlashDuration
		vector.DrawFilledRect(screen, x, y, w, h, pkgrender.WithAlpha(config.DamageFlash, 0.7*a), false)
	}
	if r.ecs.StatusEffects[id].Has(defs.EffectStun) {
		// Звёздочки над головой оглушённого
		for i := 0; i < 3; i++ {
			angle := gameTime*4 + float64(i)*2*math.Pi/3
			sx := x + w/2 + float32(math.Cos(angle)*12)
			sy := y - 8 + float32(math.Sin(angle)*3)
			vector.DrawFilledCircle(screen, sx, sy, 2.5, stunColor, true)
		}
	}
}

func (r *WorldRenderer) drawPlayerAction(screen *ebiten.Image, id types.EntityID, p *component.Player, ox, oy float32) {
	pos, body := r.ecs.Positions[id], r.ecs.Bodies[id]
	if pos == nil || body == nil {
		return
	}
	x, y := float32(pos.X)+ox, float32(pos.Y)+oy
	w, h := float32(body.Width), float32(body.Height)
	front := x + w
	if p.Facing < 0 {
		front = x
	}
	dir := float32(1)
	if p.Facing < 0 {
		dir = -1
	}

	switch p.FSM.Current {
	case component.StateAttack:
		reach := float32(config.AttackRange - config.PlayerWidth/2)
		vector.StrokeLine(screen, front, y+h*0.2, front+dir*reach, y+h*0.6, 3, slashColor, true)
	case component.StateDefend:
		vector.DrawFilledRect(screen, front+dir*2-2, y+4, 5, h-8, shieldColor, false)
	}
}

func (r *WorldRenderer) drawHealthBar(screen *ebiten.Image, id types.EntityID, ox, oy float32) {
	pos, body, hp := r.ecs.Positions[id], r.ecs.Bodies[id], r.ecs.Healths[id]
	if pos == nil || body == nil || hp == nil || hp.Max <= 0 || hp.Value >= hp.Max {
		return
	}
	x, y := float32(pos.X)+ox, float32(pos.Y)+oy-8
	w := float32(body.Width)
	ratio := float32(hp.Value) / float32(hp.Max)
	vector.DrawFilledRect(screen, x, y, w, 4, hpBackColor, false)
	vector.DrawFilledRect(screen, x, y, w*ratio, 4, config.HealthColor, false)
}

func statusTint(s *component.StatusEffects) *color.RGBA {
	switch {
	case s.Has(defs.EffectFreeze):
		return &freezeTint
	case s.Has(defs.EffectBurn):
		return &burnTint
	case s.Has(defs.EffectPoison):
		return &poisonTint
	}
	return nil
}

func tinted(c color.RGBA, s *component.StatusEffects) color.RGBA {
	if tint := statusTint(s); tint != nil {
		return pkgrender.MixColor(c, *tint, 0.5)
	}
	return c
}

func projectileColor(t defs.DamageType) color.RGBA {
	switch t {
	case defs.DamageFire:
		return burnTint
	case defs.DamageIce:
		return freezeTint
	case defs.DamageLightning:
		return stunColor
	case defs.DamageMagical:
		return color.RGBA{200, 120, 255, 255}
	}
	return config.TextLightColor
}
