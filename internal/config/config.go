// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth      = 800
	ScreenHeight     = 600
	TicksPerSecond   = 60
	TickDuration     = 1.0 / TicksPerSecond
	MaxDeltaTime     = 0.06
	MaxTicksPerFrame = 4

	SpawnIntervalTicks = 180 // 3.0 единицы времени
	EnemyHealth        = 100
	EnemySpeed         = 2.0
	EnemyRadius        = 10.0

	BulletSpeed     = 10.0
	BulletMaxRange  = 500.0
	BulletRadius    = 3.0
	CollisionRadius = 20.0

	TowerDamage        = 10
	TowerRange         = 100.0
	TowerX             = ScreenWidth / 2
	TowerY             = ScreenHeight / 2
	TowerHalfSize      = 25.0
	TowerShootCooldown = 0.5

	DamageUpgradeStep         = 5
	FireRateUpgradeFactor     = 0.8
	DamageUpgradeCostPerLvl   = 20
	FireRateUpgradeCostPerLvl = 25

	ScorePerKill    = 10
	CurrencyPerKill = 5

	HealthBarWidth  = 24.0
	HealthBarHeight = 4.0
	HealthBarOffset = 16.0

	ClickCooldown = 300 // мс
	ToastDuration = 2.0 // секунды
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	TowerColor      = color.RGBA{255, 128, 0, 255}
	RangeColor      = color.RGBA{255, 128, 0, 60}
	EnemyColor      = color.RGBA{220, 60, 60, 255}
	BulletColor     = color.RGBA{255, 255, 0, 255}
	HealthFullColor = color.RGBA{50, 205, 50, 255}
	HealthLowColor  = color.RGBA{220, 60, 60, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	ButtonColor     = color.RGBA{70, 130, 180, 220}
	ButtonOffColor  = color.RGBA{90, 90, 90, 220}
	PauseOverlay    = color.RGBA{0, 0, 0, 128}
)
