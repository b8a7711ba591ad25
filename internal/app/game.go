// internal/app/game.go
package app

import (
	"satoshi-defense/internal/component"
	"satoshi-defense/internal/config"
	"satoshi-defense/internal/entity"
	"satoshi-defense/internal/event"
	"satoshi-defense/internal/logger"
	"satoshi-defense/internal/save"
	"satoshi-defense/internal/system"
	"satoshi-defense/internal/utils"
)

// Game holds the simulation state: every enemy and bullet, score, currency,
// the clock and the persisted save record.
type Game struct {
	World            *entity.World
	SpawnSystem      *system.SpawnSystem
	MovementSystem   *system.MovementSystem
	ProjectileSystem *system.ProjectileSystem
	TargetingSystem  *system.TargetingSystem
	EventDispatcher  *event.Dispatcher

	store    save.Store
	saveData save.SaveData
	score    int
	currency int
	ticks    uint64
}

// NewGame loads the save record once and seeds currency from it.
// A nil dispatcher is allowed.
func NewGame(store save.Store, rng *utils.PRNGService, d *event.Dispatcher) *Game {
	world := entity.NewWorld()
	data := store.Load()
	g := &Game{
		World:           world,
		EventDispatcher: d,
		store:           store,
		saveData:        data,
		currency:        data.Satoshis,
	}
	g.SpawnSystem = system.NewSpawnSystem(world, rng, d)
	g.MovementSystem = system.NewMovementSystem(world)
	g.ProjectileSystem = system.NewProjectileSystem(world, g.onEnemyKilled)
	g.TargetingSystem = system.NewTargetingSystem(world, d)
	return g
}

// Update progresses the game by exactly one tick.
func (g *Game) Update(tower *component.Tower) {
	g.ticks++
	g.SpawnSystem.Update(g.ticks)
	g.MovementSystem.Update(tower.Position())
	g.ProjectileSystem.Update()
	g.World.Sweep()
	g.TargetingSystem.Update(tower, g.Time())
}

func (g *Game) onEnemyKilled(enemy *component.Enemy) {
	g.score += config.ScorePerKill
	g.currency += config.CurrencyPerKill
	g.saveData.Satoshis = g.currency
	if g.score > g.saveData.HighScore {
		g.saveData.HighScore = g.score
	}
	pos := enemy.Position()
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.EnemyKilled,
		Data: event.EnemyData{ID: enemy.ID, X: pos.X, Y: pos.Y},
	})
	g.persist("kill")
}

// TryUpgradeTowerDamage buys a damage level if the player can afford it.
// Insufficient funds is a normal outcome and reported as false.
func (g *Game) TryUpgradeTowerDamage(tower *component.Tower) bool {
	cost := tower.DamageUpgradeCost()
	if g.currency < cost {
		return false
	}
	g.currency -= cost
	tower.UpgradeDamage()
	g.saveData.Satoshis = g.currency
	g.saveData.DamageLevel = tower.DamageLevel()
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerUpgraded,
		Data: event.UpgradeData{Kind: event.UpgradeDamage, Level: tower.DamageLevel(), Cost: cost},
	})
	g.persist("damage upgrade")
	return true
}

// TryUpgradeTowerFireRate buys a fire-rate level if the player can afford it.
func (g *Game) TryUpgradeTowerFireRate(tower *component.Tower) bool {
	cost := tower.FireRateUpgradeCost()
	if g.currency < cost {
		return false
	}
	g.currency -= cost
	tower.UpgradeFireRate()
	g.saveData.Satoshis = g.currency
	g.saveData.FireRateLevel = tower.FireRateLevel()
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerUpgraded,
		Data: event.UpgradeData{Kind: event.UpgradeFireRate, Level: tower.FireRateLevel(), Cost: cost},
	})
	g.persist("fire rate upgrade")
	return true
}

// RestoreTower applies the saved upgrade levels to a fresh tower. It is
// free and writes nothing; levels of 0 or 1 leave the tower as built.
func (g *Game) RestoreTower(tower *component.Tower) {
	tower.RestoreLevels(g.saveData.DamageLevel, g.saveData.FireRateLevel)
}

// Save writes the current save record through the store.
func (g *Game) Save() error {
	if err := g.store.Save(g.saveData); err != nil {
		return err
	}
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameSaved})
	return nil
}

// persist saves and swallows the error after logging it; the tick goes on.
func (g *Game) persist(reason string) {
	if err := g.Save(); err != nil {
		logger.Persistence.Error("failed to save game data after %s: %v", reason, err)
		g.EventDispatcher.Dispatch(event.Event{Type: event.SaveFailed, Data: err})
	}
}

// --- Public Accessors & Mutators ---

// AddEnemy inserts an enemy directly, bypassing the spawn timer.
func (g *Game) AddEnemy(enemy *component.Enemy) {
	g.World.AddEnemy(enemy)
}

// IncrementScore adds points without touching currency or the save file.
func (g *Game) IncrementScore(points int) {
	if points > 0 {
		g.score += points
	}
}

func (g *Game) Enemies() []*component.Enemy  { return g.World.Enemies }
func (g *Game) Bullets() []*component.Bullet { return g.World.Bullets }
func (g *Game) Score() int                   { return g.score }
func (g *Game) Currency() int                { return g.currency }
func (g *Game) HighScore() int               { return g.saveData.HighScore }
func (g *Game) Ticks() uint64                { return g.ticks }

// Time возвращает время симуляции в секундах, 1/60 за тик.
func (g *Game) Time() float64 {
	return float64(g.ticks) / config.TicksPerSecond
}
