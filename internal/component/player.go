// internal/component/player.go
package component

import (
	"nova-remains/internal/defs"
	"nova-remains/internal/types"
)

// Player хранит информацию, специфичную для игрока: ресурсы, прогрессию,
// кулдауны действий и захваченного врага.
type Player struct {
	CharacterID string
	Speed       float64
	Mana        float64
	MaxMana     float64
	Level       int // Текущий уровень игрока
	Exp         int // Текущее количество очков опыта
	ExpToNext   int // Количество опыта, необходимое для следующего уровня
	Facing      float64

	AttackCooldown float64
	DefendCooldown float64
	GrabCooldown   float64
	SkillCooldowns [2]float64
	ActionTimer    float64 // Сколько ещё длится атака/защита/оглушение от удара

	GrabbedEnemy types.EntityID
	GrabTimer    float64

	FSM PlayerFSM

	// Базовые характеристики без учёта экипировки
	BaseMaxHealth int
	BaseMaxMana   float64
	BaseDamage    int
	BaseDefense   int
	BaseCrit      float64
	Skills        [2]defs.Skill
}

// Grabbing сообщает, держит ли игрок врага.
func (p *Player) Grabbing() bool {
	return p.GrabbedEnemy != 0
}
