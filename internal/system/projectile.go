// internal/system/projectile.go
package system

import (
	"satoshi-defense/internal/component"
	"satoshi-defense/internal/entity"
)

// KillHandler вызывается сразу, как только попадание обнулило здоровье врага.
type KillHandler func(enemy *component.Enemy)

// ProjectileSystem двигает снаряды и разрешает попадания.
type ProjectileSystem struct {
	world  *entity.World
	onKill KillHandler
}

func NewProjectileSystem(world *entity.World, onKill KillHandler) *ProjectileSystem {
	return &ProjectileSystem{world: world, onKill: onKill}
}

// Update advances bullets in creation order. A bullet past its range is
// marked and skips collision. Otherwise it hits the first live enemy in
// storage order, at most one per tick. Enemies already killed this tick are
// ignored so a kill is never paid twice. Removal is left to World.Sweep.
func (s *ProjectileSystem) Update() (hits int) {
	for i, bullet := range s.world.Bullets {
		bullet.Advance()

		if bullet.Expired() {
			s.world.MarkBullet(i)
			continue
		}

		for _, enemy := range s.world.Enemies {
			if s.world.EnemyMarked(enemy.ID) {
				continue
			}
			if !bullet.CollidesWith(enemy.Position()) {
				continue
			}

			enemy.ApplyDamage(bullet.Damage())
			s.world.MarkBullet(i)
			hits++

			if enemy.IsDead() {
				s.world.MarkEnemy(enemy.ID)
				if s.onKill != nil {
					s.onKill(enemy)
				}
			}
			break
		}
	}
	return hits
}
