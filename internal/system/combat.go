package system

import (
	"satoshi-defense/internal/component"
	"satoshi-defense/internal/entity"
	"satoshi-defense/internal/event"
)

// TargetingSystem выбирает ближайшего врага и просит башню выстрелить.
type TargetingSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewTargetingSystem(world *entity.World, d *event.Dispatcher) *TargetingSystem {
	return &TargetingSystem{world: world, eventDispatcher: d}
}

// FindNearestEnemy returns the enemy closest to p. Ties go to the enemy
// stored first.
func (s *TargetingSystem) FindNearestEnemy(p component.Vec2) *component.Enemy {
	var nearest *component.Enemy
	best := 0.0
	for _, enemy := range s.world.Enemies {
		d := p.DistanceTo(enemy.Position())
		if nearest == nil || d < best {
			nearest = enemy
			best = d
		}
	}
	return nearest
}

// Update offers the nearest enemy to the tower. The new bullet, if any, is
// appended to the world.
func (s *TargetingSystem) Update(tower *component.Tower, now float64) *component.Bullet {
	target := s.FindNearestEnemy(tower.Position())
	if target == nil {
		return nil
	}
	bullet, ok := tower.Shoot(target.Position(), now)
	if !ok {
		return nil
	}
	s.world.AddBullet(bullet)
	s.eventDispatcher.Dispatch(event.Event{Type: event.BulletFired})
	return bullet
}
