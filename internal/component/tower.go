// component/tower.go
package component

import (
	"math"

	"satoshi-defense/internal/config"
)

// Tower: единственная башня игрока. Меняется только через улучшения и выстрелы.
type Tower struct {
	damage        int
	rng           float64
	position      Vec2
	shootCooldown float64 // время между выстрелами
	lastShot      float64 // время последнего удачного выстрела
	damageLevel   int
	fireRateLevel int
}

// NewTower creates a level 1 tower. lastShot starts at -Inf so the first
// shot is never blocked by the cooldown.
func NewTower(damage int, rng float64, position Vec2) *Tower {
	return &Tower{
		damage:        damage,
		rng:           rng,
		position:      position,
		shootCooldown: config.TowerShootCooldown,
		lastShot:      math.Inf(-1),
		damageLevel:   1,
		fireRateLevel: 1,
	}
}

// UpgradeDamage adds a flat damage bonus. Cost checks are the caller's job.
func (t *Tower) UpgradeDamage() {
	t.damageLevel++
	t.damage += config.DamageUpgradeStep
}

// UpgradeFireRate shortens the cooldown by 20%, compounding per level.
func (t *Tower) UpgradeFireRate() {
	t.fireRateLevel++
	t.shootCooldown *= config.FireRateUpgradeFactor
}

// RestoreLevels raises the tower to the given levels in one step, with the
// same result as calling the upgrades one by one. Levels at or below the
// current ones are ignored. Damage saturates at math.MaxInt.
func (t *Tower) RestoreLevels(damageLevel, fireRateLevel int) {
	if steps := damageLevel - t.damageLevel; steps > 0 {
		if steps > (math.MaxInt-t.damage)/config.DamageUpgradeStep {
			t.damage = math.MaxInt
		} else {
			t.damage += steps * config.DamageUpgradeStep
		}
		t.damageLevel = damageLevel
	}
	if steps := fireRateLevel - t.fireRateLevel; steps > 0 {
		t.shootCooldown *= math.Pow(config.FireRateUpgradeFactor, float64(steps))
		t.fireRateLevel = fireRateLevel
	}
}

func (t *Tower) DamageUpgradeCost() int {
	return config.DamageUpgradeCostPerLvl * t.damageLevel
}

func (t *Tower) FireRateUpgradeCost() int {
	return config.FireRateUpgradeCostPerLvl * t.fireRateLevel
}

// InRange reports whether p is within range; the boundary itself counts.
func (t *Tower) InRange(p Vec2) bool {
	return t.position.DistanceTo(p) <= t.rng
}

// ReadyAt reports whether the cooldown has elapsed at time now.
func (t *Tower) ReadyAt(now float64) bool {
	return now-t.lastShot >= t.shootCooldown
}

// Shoot fires at target if the tower is off cooldown and the target is in
// range. A failed attempt leaves lastShot untouched.
func (t *Tower) Shoot(target Vec2, now float64) (*Bullet, bool) {
	if !t.ReadyAt(now) || !t.InRange(target) {
		return nil, false
	}
	t.lastShot = now
	return NewBullet(t.position, target, config.BulletSpeed, t.damage), true
}

func (t *Tower) Damage() int            { return t.damage }
func (t *Tower) Range() float64         { return t.rng }
func (t *Tower) Position() Vec2         { return t.position }
func (t *Tower) ShootCooldown() float64 { return t.shootCooldown }
func (t *Tower) LastShot() float64      { return t.lastShot }
func (t *Tower) DamageLevel() int       { return t.damageLevel }
func (t *Tower) FireRateLevel() int     { return t.fireRateLevel }
