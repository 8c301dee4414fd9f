// internal/component/particle.go
package component

import "image/color"

// ParticleType выбирает цвет, размер и время жизни частицы.
type ParticleType int

const (
	ParticleHit ParticleType = iota
	ParticleCrit
	ParticleDust
	ParticleFire
	ParticleIce
	ParticlePoison
	ParticleSpark
	ParticleLevelUp
)

// Particle короткоживущая визуальная частица.
type Particle struct {
	Type    ParticleType
	Life    float64
	MaxLife float64
	Size    float64
	Color   color.RGBA
	Gravity float64
}

// Alpha прозрачность по оставшейся жизни, 0..1.
func (p *Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	a := p.Life / p.MaxLife
	if a < 0 {
		return 0
	}
	return a
}
