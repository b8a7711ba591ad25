package component

import "satoshi-defense/internal/types"

// Enemy представляет вражескую сущность, которая идет прямо на башню.
type Enemy struct {
	ID        types.EntityID
	health    int
	maxHealth int
	speed     float64
	position  Vec2
}

// NewEnemy snapshots health as the enemy's maximum health.
func NewEnemy(health int, speed float64, position Vec2) *Enemy {
	if health < 1 {
		health = 1
	}
	return &Enemy{
		health:    health,
		maxHealth: health,
		speed:     speed,
		position:  position,
	}
}

// MoveToward steps speed units straight at target. There is no slowdown near
// the target, so a fast enemy overshoots and oscillates around it.
func (e *Enemy) MoveToward(target Vec2) {
	dir, dist := e.position.DirectionTo(target)
	if dist > 0 {
		e.position = e.position.Add(dir.Scale(e.speed))
	}
}

// ApplyDamage: вычитание с насыщением, здоровье не опускается ниже нуля.
func (e *Enemy) ApplyDamage(amount int) {
	if amount <= 0 {
		return
	}
	if amount >= e.health {
		e.health = 0
		return
	}
	e.health -= amount
}

func (e *Enemy) Health() int    { return e.health }
func (e *Enemy) MaxHealth() int { return e.maxHealth }
func (e *Enemy) Speed() float64 { return e.speed }
func (e *Enemy) Position() Vec2 { return e.position }
func (e *Enemy) IsDead() bool   { return e.health == 0 }

// HealthFraction is used only for drawing health bars.
func (e *Enemy) HealthFraction() float64 {
	return float64(e.health) / float64(e.maxHealth)
}
