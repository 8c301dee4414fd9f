// internal/component/projectile.go
package component

import (
	"nova-remains/internal/defs"
	"nova-remains/internal/types"
)

// Projectile представляет летящий снаряд.
type Projectile struct {
	OwnerID types.EntityID
	Skill   *defs.Skill // Умение, которым выпущен снаряд
	Life    float64     // Оставшееся время жизни, секунды
}
