// internal/event/types.go
package event

import (
	"nova-remains/internal/defs"
	"nova-remains/internal/types"
)

const (
	EnemyDamaged     EventType = "EnemyDamaged"  // Враг получил урон
	EnemyKilled      EventType = "EnemyKilled"   // Враг уничтожен
	PlayerDamaged    EventType = "PlayerDamaged" // Игрок получил урон
	PlayerDied       EventType = "PlayerDied"    // Здоровье игрока упало до нуля
	AttackDodged     EventType = "AttackDodged"  // Цель увернулась
	StatusApplied    EventType = "StatusApplied" // Наложен статус-эффект
	PlayerJumped     EventType = "PlayerJumped"
	EnemyGrabbed     EventType = "EnemyGrabbed"
	EnemyThrown      EventType = "EnemyThrown"
	SkillCast        EventType = "SkillCast"
	LevelUp          EventType = "LevelUp"
	ItemDropped      EventType = "ItemDropped" // С врага выпал предмет
	WaveStarted      EventType = "WaveStarted"
	MissionCleared   EventType = "MissionCleared"   // Все враги миссии уничтожены
	RoomStatusChange EventType = "RoomStatusChange" // Статус комнаты изменился
	ChatMessage      EventType = "ChatMessage"
	ItemPurchased    EventType = "ItemPurchased"
	ItemSold         EventType = "ItemSold"
)

// DamageData данные событий EnemyDamaged / PlayerDamaged.
type DamageData struct {
	AttackerID types.EntityID
	TargetID   types.EntityID
	Amount     int
	Critical   bool
	Periodic   bool // Урон от горения или яда
	DamageType defs.DamageType
	X, Y       float64
}

// KillData данные события EnemyKilled.
type KillData struct {
	EnemyID types.EntityID
	DefID   string
	Exp     int
	Gold    int
	X, Y    float64
}

// StatusData данные события StatusApplied.
type StatusData struct {
	TargetID types.EntityID
	Effect   defs.EffectType
	Duration float64
}

// LevelUpData данные события LevelUp.
type LevelUpData struct {
	PlayerID types.EntityID
	Level    int
}

// DropData данные события ItemDropped.
type DropData struct {
	ItemID string
	X, Y   float64
}
