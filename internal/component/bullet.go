// internal/component/bullet.go
package component

import "satoshi-defense/internal/config"

// Bullet представляет летящий снаряд. Скорость и урон задаются при выстреле
// и больше не меняются.
type Bullet struct {
	position Vec2
	velocity Vec2
	damage   int
	start    Vec2
}

// NewBullet aims a bullet from start at target. When start == target the
// bullet has zero velocity and never moves.
func NewBullet(start, target Vec2, speed float64, damage int) *Bullet {
	dir, _ := start.DirectionTo(target)
	if damage < 0 {
		damage = 0
	}
	return &Bullet{
		position: start,
		velocity: dir.Scale(speed),
		damage:   damage,
		start:    start,
	}
}

// Advance moves the bullet by one tick of velocity.
func (b *Bullet) Advance() {
	b.position = b.position.Add(b.velocity)
}

func (b *Bullet) Position() Vec2 { return b.position }
func (b *Bullet) Velocity() Vec2 { return b.velocity }
func (b *Bullet) Damage() int    { return b.damage }

// DistanceTraveled: путь от точки выстрела до текущей позиции.
func (b *Bullet) DistanceTraveled() float64 {
	return b.start.DistanceTo(b.position)
}

// Expired reports whether the bullet flew past its maximum range.
func (b *Bullet) Expired() bool {
	return b.DistanceTraveled() > config.BulletMaxRange
}

// CollidesWith reports whether p lies strictly inside the collision radius.
func (b *Bullet) CollidesWith(p Vec2) bool {
	dx := b.position.X - p.X
	dy := b.position.Y - p.Y
	return dx*dx+dy*dy < config.CollisionRadius*config.CollisionRadius
}
