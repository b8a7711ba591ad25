// internal/system/wave.go
package system

import (
	"satoshi-defense/internal/component"
	"satoshi-defense/internal/config"
	"satoshi-defense/internal/entity"
	"satoshi-defense/internal/event"
	"satoshi-defense/internal/utils"
)

// Edge: сторона экрана, с которой появляется враг.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

// SpawnSystem выпускает одного врага каждые SpawnIntervalTicks тиков.
// Счетчик целочисленный, поэтому накопление ошибки float не влияет на ритм.
type SpawnSystem struct {
	world           *entity.World
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	interval        uint64
}

func NewSpawnSystem(world *entity.World, rng *utils.PRNGService, d *event.Dispatcher) *SpawnSystem {
	return &SpawnSystem{
		world:           world,
		rng:             rng,
		eventDispatcher: d,
		interval:        config.SpawnIntervalTicks,
	}
}

// Update spawns when tick is a positive multiple of the interval.
func (s *SpawnSystem) Update(tick uint64) {
	if tick == 0 || tick%s.interval != 0 {
		return
	}
	s.Spawn()
}

// Spawn places one base enemy at a random point on a random screen edge.
func (s *SpawnSystem) Spawn() *component.Enemy {
	pos := s.edgePoint(Edge(s.rng.Intn(4)))
	enemy := component.NewEnemy(config.EnemyHealth, config.EnemySpeed, pos)
	id := s.world.AddEnemy(enemy)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemySpawned,
		Data: event.EnemyData{ID: id, X: pos.X, Y: pos.Y},
	})
	return enemy
}

func (s *SpawnSystem) edgePoint(edge Edge) component.Vec2 {
	switch edge {
	case EdgeLeft:
		return component.Vec2{X: 0, Y: s.rng.Float64() * config.ScreenHeight}
	case EdgeRight:
		return component.Vec2{X: config.ScreenWidth, Y: s.rng.Float64() * config.ScreenHeight}
	case EdgeTop:
		return component.Vec2{X: s.rng.Float64() * config.ScreenWidth, Y: 0}
	default:
		return component.Vec2{X: s.rng.Float64() * config.ScreenWidth, Y: config.ScreenHeight}
	}
}
