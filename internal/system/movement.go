// internal/system/movement.go
package system

import (
	"satoshi-defense/internal/component"
	"satoshi-defense/internal/entity"
)

// MovementSystem ведет всех врагов прямо к башне. Цель пересчитывается каждый тик.
type MovementSystem struct {
	world *entity.World
}

func NewMovementSystem(world *entity.World) *MovementSystem {
	return &MovementSystem{world: world}
}

func (s *MovementSystem) Update(target component.Vec2) {
	for _, enemy := range s.world.Enemies {
		enemy.MoveToward(target)
	}
}
