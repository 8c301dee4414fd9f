package system

import (
	"math"

	"nova-remains/internal/config"
	"nova-remains/internal/entity"
	"nova-remains/internal/types"
	"nova-remains/internal/utils"
)

// Camera смещение видимой области в мировых координатах.
type Camera struct {
	X, Y         float64
	ViewW, ViewH float64
}

// CameraSystem плавно ведёт камеру за игроком.
type CameraSystem struct {
	ecs    *entity.ECS
	Camera Camera
}

func NewCameraSystem(ecs *entity.ECS, viewW, viewH float64) *CameraSystem {
	return &CameraSystem{ecs: ecs, Camera: Camera{ViewW: viewW, ViewH: viewH}}
}

// Update сдвигает камеру к центру цели, не выходя за границы мира.
func (s *CameraSystem) Update(deltaTime float64, target types.EntityID) {
	cx, cy, ok := center(s.ecs, target)
	if !ok {
		return
	}
	// Доля пути за кадр пересчитывается под фактический deltaTime
	t := 1 - math.Pow(1-config.CameraLerp, deltaTime*60)

	c := &s.Camera
	tx, ty := c.clamp(cx-c.ViewW/2, cy-c.ViewH/2)
	c.X = utils.Lerp(c.X, tx, t)
	c.Y = utils.Lerp(c.Y, ty, t)
}

// clamp ограничивает смещение камеры границами мира.
func (c *Camera) clamp(x, y float64) (float64, float64) {
	return utils.Clamp(x, 0, math.Max(0, config.WorldWidth-c.ViewW)),
		utils.Clamp(y, 0, math.Max(0, config.WorldHeight-c.ViewH))
}

// SnapTo мгновенно центрирует камеру на цели.
func (s *CameraSystem) SnapTo(target types.EntityID) {
	s.Camera.X, s.Camera.Y = 0, 0
	cx, cy, ok := center(s.ecs, target)
	if !ok {
		return
	}
	c := &s.Camera
	c.X, c.Y = c.clamp(cx-c.ViewW/2, cy-c.ViewH/2)
}
