// internal/entity/ecs.go
package entity

import (
	"satoshi-defense/internal/component"
	"satoshi-defense/internal/types"
)

// World хранит всех врагов и все снаряды игры. Порядок хранения важен:
// снаряды обрабатываются в порядке создания, враги в порядке появления.
type World struct {
	NextID  types.EntityID
	Enemies []*component.Enemy
	Bullets []*component.Bullet

	deadEnemies map[types.EntityID]bool
	deadBullets map[int]bool
}

func NewWorld() *World {
	return &World{
		NextID:      1,
		deadEnemies: make(map[types.EntityID]bool),
		deadBullets: make(map[int]bool),
	}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// AddEnemy stamps the enemy with a fresh ID and appends it.
func (w *World) AddEnemy(e *component.Enemy) types.EntityID {
	e.ID = w.NewEntity()
	w.Enemies = append(w.Enemies, e)
	return e.ID
}

func (w *World) AddBullet(b *component.Bullet) {
	w.Bullets = append(w.Bullets, b)
}

// MarkEnemy schedules an enemy for removal at the next Sweep.
func (w *World) MarkEnemy(id types.EntityID) {
	w.deadEnemies[id] = true
}

func (w *World) EnemyMarked(id types.EntityID) bool {
	return w.deadEnemies[id]
}

// MarkBullet schedules the bullet at index i for removal at the next Sweep.
// Indexes stay valid until then because nothing is removed mid-scan.
func (w *World) MarkBullet(i int) {
	w.deadBullets[i] = true
}

// Sweep drops every marked entity, keeping the survivors in their order.
func (w *World) Sweep() (enemiesRemoved, bulletsRemoved int) {
	if len(w.deadEnemies) > 0 {
		kept := w.Enemies[:0]
		for _, e := range w.Enemies {
			if !w.deadEnemies[e.ID] {
				kept = append(kept, e)
			}
		}
		for i := len(kept); i < len(w.Enemies); i++ {
			w.Enemies[i] = nil
		}
		enemiesRemoved = len(w.Enemies) - len(kept)
		w.Enemies = kept
		clear(w.deadEnemies)
	}

	if len(w.deadBullets) > 0 {
		kept := w.Bullets[:0]
		for i, b := range w.Bullets {
			if !w.deadBullets[i] {
				kept = append(kept, b)
			}
		}
		for i := len(kept); i < len(w.Bullets); i++ {
			w.Bullets[i] = nil
		}
		bulletsRemoved = len(w.Bullets) - len(kept)
		w.Bullets = kept
		clear(w.deadBullets)
	}
	return enemiesRemoved, bulletsRemoved
}

// Clear removes every enemy and bullet.
func (w *World) Clear() {
	w.Enemies = nil
	w.Bullets = nil
	clear(w.deadEnemies)
	clear(w.deadBullets)
}
