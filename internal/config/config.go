// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 960
	ScreenHeight = 540
	WorldWidth   = 3200.0
	WorldHeight  = 540.0
	GroundY      = 480.0 // Верх земли
	MaxDeltaTime = 0.06
	DefaultTPS   = 60

	// Физика (единицы: пиксели и секунды)
	Gravity        = 1800.0
	MaxFallSpeed   = 900.0
	JumpVelocity   = -640.0
	GroundFriction = 0.80 // Покадровый коэффициент при 60 FPS
	AirFriction    = 0.95
	CameraLerp     = 0.1 // Доля пути к цели за кадр при 60 FPS

	PlayerWidth  = 32.0
	PlayerHeight = 48.0
	EnemyWidth   = 32.0
	EnemyHeight  = 44.0

	// Кулдауны и длительности действий игрока, секунды
	AttackCooldown     = 0.5
	AttackDuration     = 0.25
	AttackRange        = 56.0
	DefendCooldown     = 1.0
	DefendDuration     = 0.6
	DefendDamageFactor = 0.3
	GrabCooldown       = 1.5
	GrabRange          = 40.0
	GrabMaxHold        = 2.0
	ThrowImpulseX      = 520.0
	ThrowImpulseY      = -380.0
	ThrowDamage        = 20
	HurtDuration       = 0.2
	ManaRegenPerSecond = 4.0

	// Искусственный интеллект врагов
	EnemyChaseRange   = 200.0
	EnemyAttackRange  = 50.0
	EnemyPatrolRadius = 100.0

	// Боевые параметры по умолчанию
	DefaultCritChance     = 0.10
	DefaultCritMultiplier = 1.5
	DefaultDodgeChance    = 0.05
	MinDamageVariation    = 0.8
	MaxDamageVariation    = 1.2
	MinDamage             = 1
	StatusTickInterval    = 1.0
	FreezeSpeedFactor     = 0.5
	DamageFlashDuration   = 0.15

	// Частицы и снаряды
	MaxParticlesHigh   = 400
	MaxParticlesMedium = 200
	MaxParticlesLow    = 60
	ProjectileLifetime = 1.5

	// Прогрессия
	BaseExpToNext      = 100
	ExpGrowthFactor    = 1.5
	LevelHealthBonus   = 20
	LevelManaBonus     = 10
	LevelDamageBonus   = 2
	StartingGold       = 200
	SellPriceDivisor   = 2
	InventorySize      = 20
	MissionStartDelay  = 3.0
	ChatReplyMinDelay  = 1.0
	ChatReplyMaxDelay  = 3.0
	MaxPlayersPerRoom  = 4
	MissionSpawnMargin = 120.0
)

var (
	BackgroundColor = color.RGBA{24, 22, 40, 255}
	GroundColor     = color.RGBA{62, 48, 40, 255}
	PlatformColor   = color.RGBA{110, 88, 64, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	HealthColor     = color.RGBA{210, 50, 50, 255}
	ManaColor       = color.RGBA{60, 110, 230, 255}
	ExpColor        = color.RGBA{230, 200, 60, 255}
	PanelColor      = color.RGBA{10, 10, 20, 200}
	HighlightColor  = color.RGBA{255, 215, 0, 255}
	DamageFlash     = color.RGBA{255, 255, 255, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 140}

	// Цвета статусов комнаты: ожидание, старт, в процессе, завершена
	RoomStatusColors = []color.RGBA{
		{70, 130, 180, 220},
		{230, 180, 40, 220},
		{220, 60, 60, 220},
		{60, 180, 90, 220},
	}
)
